package entity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/sortline-go/internal/domain/entity"
	"github.com/hapkiduki/sortline-go/internal/domain/valueobject"
)

// newPackage builds a package from raw scalars, failing the test on
// invalid measurements.
func newPackage(t *testing.T, width, height, length, mass float64) entity.Package {
	t.Helper()
	pkg, err := entity.NewPackageFromScalars(width, height, length, mass)
	require.NoError(t, err)
	return pkg
}

func TestPackageVolume(t *testing.T) {
	assert.Equal(t, 125_000.0, newPackage(t, 50, 50, 50, 10).Volume())
	assert.Equal(t, 1_000_000.0, newPackage(t, 100, 100, 100, 10).Volume())
	assert.Equal(t, 0.0, newPackage(t, 0, 100, 100, 10).Volume())
}

func TestPackageLongestDimension(t *testing.T) {
	assert.Equal(t, 160.0, newPackage(t, 160, 50, 50, 10).LongestDimension())
	assert.Equal(t, 160.0, newPackage(t, 50, 160, 50, 10).LongestDimension())
	assert.Equal(t, 160.0, newPackage(t, 50, 50, 160, 10).LongestDimension())
	assert.Equal(t, 50.0, newPackage(t, 50, 50, 50, 10).LongestDimension())
}

func TestPackageIsBulky(t *testing.T) {
	tests := []struct {
		name                        string
		width, height, length, mass float64
		want                        bool
	}{
		{"small package", 50, 50, 50, 10, false},
		{"volume just below threshold", 99.9999, 100, 100, 10, false},
		{"volume exactly at threshold", 100, 100, 100, 10, true},
		{"volume above threshold", 200, 100, 100, 10, true},
		{"width exactly at dimension threshold", 150, 10, 10, 10, true},
		{"height exactly at dimension threshold", 10, 150, 10, 10, true},
		{"length exactly at dimension threshold", 10, 10, 150, 10, true},
		{"dimension just below threshold", 149.999, 10, 10, 10, false},
		{"long but thin", 160, 1, 1, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newPackage(t, tt.width, tt.height, tt.length, tt.mass).IsBulky())
		})
	}
}

func TestPackageIsHeavy(t *testing.T) {
	assert.False(t, newPackage(t, 10, 10, 10, 19.999).IsHeavy())
	assert.True(t, newPackage(t, 10, 10, 10, 20).IsHeavy(), "threshold is inclusive")
	assert.True(t, newPackage(t, 10, 10, 10, 25).IsHeavy())
}

func TestPackageSortCategory(t *testing.T) {
	tests := []struct {
		name                        string
		width, height, length, mass float64
		want                        entity.Category
	}{
		{"neither bulky nor heavy", 50, 50, 50, 10, entity.CategoryStandard},
		{"bulky by volume", 100, 100, 100, 10, entity.CategorySpecial},
		{"bulky by dimension", 160, 50, 50, 10, entity.CategorySpecial},
		{"heavy only", 50, 50, 50, 25, entity.CategorySpecial},
		{"bulky and heavy", 160, 50, 50, 25, entity.CategoryRejected},
		{"volume at threshold and heavy", 100, 100, 100, 20, entity.CategoryRejected},
		{"everything at zero", 0, 0, 0, 0, entity.CategoryStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newPackage(t, tt.width, tt.height, tt.length, tt.mass).SortCategory())
		})
	}
}

// TestPackageSortCategoryRejectsBothNotSpecial pins the case a plain OR
// would get wrong: a package that is both bulky and heavy must be rejected,
// never routed to the special lane.
func TestPackageSortCategoryRejectsBothNotSpecial(t *testing.T) {
	pkg := newPackage(t, 160, 50, 50, 25)

	require.True(t, pkg.IsBulky())
	require.True(t, pkg.IsHeavy())
	assert.Equal(t, entity.CategoryRejected, pkg.SortCategory())
}

func TestPackageSortCategoryBoundaries(t *testing.T) {
	t.Run("volume 999,999 with small dimensions and light mass is standard", func(t *testing.T) {
		// 99.9999 * 100 * 100 = 999,999
		pkg := newPackage(t, 99.9999, 100, 100, 19.999)
		assert.InDelta(t, 999_999, pkg.Volume(), 1e-6)
		assert.Equal(t, entity.CategoryStandard, pkg.SortCategory())
	})

	t.Run("single dimension at 150 is special", func(t *testing.T) {
		assert.Equal(t, entity.CategorySpecial, newPackage(t, 150, 1, 1, 1).SortCategory())
	})

	t.Run("mass at 20 is special", func(t *testing.T) {
		assert.Equal(t, entity.CategorySpecial, newPackage(t, 1, 1, 1, 20).SortCategory())
	})
}

func TestPackageSortCategoryDeterminism(t *testing.T) {
	pkg := newPackage(t, 100, 100, 100, 20)

	first := pkg.SortCategory()
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, pkg.SortCategory())
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		name                        string
		width, height, length, mass float64
		want                        string
	}{
		{"standard package", 50, 50, 50, 10, "STANDARD"},
		{"bulky by volume", 100, 100, 100, 10, "SPECIAL"},
		{"bulky by dimension", 160, 50, 50, 10, "SPECIAL"},
		{"heavy package", 50, 50, 50, 25, "SPECIAL"},
		{"bulky and heavy", 160, 50, 50, 25, "REJECTED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := entity.Sort(tt.width, tt.height, tt.length, tt.mass)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestSortAgreesWithSortCategory checks the label and enum forms of the
// classifier denote the same category for the same measurements.
func TestSortAgreesWithSortCategory(t *testing.T) {
	inputs := []struct{ w, h, l, m float64 }{
		{0, 0, 0, 0},
		{50, 50, 50, 10},
		{99.9999, 100, 100, 19.999},
		{100, 100, 100, 10},
		{100, 100, 100, 20},
		{149.999, 10, 10, 10},
		{150, 10, 10, 10},
		{160, 50, 50, 10},
		{50, 50, 50, 20},
		{50, 50, 50, 25},
		{160, 50, 50, 25},
		{1000, 1000, 1000, 1000},
	}

	for _, in := range inputs {
		label, err := entity.Sort(in.w, in.h, in.l, in.m)
		require.NoError(t, err)

		pkg := newPackage(t, in.w, in.h, in.l, in.m)
		assert.Equal(t, pkg.SortCategory().String(), label,
			"label and enum forms disagree for %v", pkg)
	}
}

func TestSortRejectsInvalidMeasurements(t *testing.T) {
	cases := []struct {
		name                        string
		width, height, length, mass float64
	}{
		{"negative width", -1, 50, 50, 10},
		{"negative mass", 50, 50, 50, -10},
		{"NaN height", 50, math.NaN(), 50, 10},
		{"infinite length", 50, 50, math.Inf(1), 10},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := entity.Sort(tt.width, tt.height, tt.length, tt.mass)
			require.ErrorIs(t, err, valueobject.ErrInvalidQuantity)
			assert.Empty(t, got)
		})
	}
}

func TestNewPackageFromScalarsNamesBadField(t *testing.T) {
	_, err := entity.NewPackageFromScalars(50, -1, 50, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "height")
}

func TestCategoryIsValid(t *testing.T) {
	assert.True(t, entity.CategoryStandard.IsValid())
	assert.True(t, entity.CategorySpecial.IsValid())
	assert.True(t, entity.CategoryRejected.IsValid())
	assert.False(t, entity.Category("UNKNOWN").IsValid())
}

func TestPackageString(t *testing.T) {
	assert.Equal(t, "160.0x50.0x50.0 cm, 25.0 kg", newPackage(t, 160, 50, 50, 25).String())
}
