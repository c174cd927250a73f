// Package entity contains the core bussiness entities of the domain layer.
package entity

import (
	"fmt"

	"github.com/hapkiduki/sortline-go/internal/domain/valueobject"
)

// Sorting thresholds. These are fixed characteristics of the sorting line's
// physical lanes, not configuration.
const (
	// BulkyVolumeThresholdCm3 is the volume at or above which a package
	// is bulky, in cubic centimeters.
	BulkyVolumeThresholdCm3 = 1_000_000.0

	// BulkyDimensionThresholdCm is the single-dimension magnitude at or
	// above which a package is bulky, in centimeters.
	BulkyDimensionThresholdCm = 150.0

	// HeavyMassThresholdKg is the mass at or above which a package is
	// heavy, in kilograms.
	HeavyMassThresholdKg = 20.0
)

// Category represents the sorting outcome for a package.
type Category string

const (
	// CategoryStandard is for packages that are neither bulky nor heavy.
	// They can be handled normally.
	CategoryStandard Category = "STANDARD"

	// CategorySpecial is for packages that are bulky or heavy, but not both.
	// They require special handling.
	CategorySpecial Category = "SPECIAL"

	// CategoryRejected is for packages that are both bulky and heavy.
	// The line cannot handle them.
	CategoryRejected Category = "REJECTED"
)

// IsValid checks if the category is one of the three known variants.
//
// Returns:
//   - bool: true if the category is Standard, Special, or Rejected
func (c Category) IsValid() bool {
	switch c {
	case CategoryStandard, CategorySpecial, CategoryRejected:
		return true
	}
	return false
}

// String returns the literal label of the category.
//
// Returns:
//   - string: "STANDARD", "SPECIAL", or "REJECTED"
func (c Category) String() string {
	return string(c)
}

// Package is the aggregate subject to classification: three spatial
// dimensions and one mass. It is immutable after construction and carries no
// identity; two packages with the same measurements are interchangeable.
type Package struct {
	// Width in centimeters.
	Width valueobject.Length `json:"width"`

	// Height in centimeters.
	Height valueobject.Length `json:"height"`

	// Length in centimeters.
	Length valueobject.Length `json:"length"`

	// Mass in kilograms.
	Mass valueobject.Mass `json:"mass"`
}

// NewPackage creates a new Package from already-validated value objects.
//
// Parameters:
//   - width: Width of the package
//   - height: Height of the package
//   - length: Length of the package
//   - mass: Mass of the package
//
// Returns:
//   - Package: the created Package
func NewPackage(width, height, length valueobject.Length, mass valueobject.Mass) Package {
	return Package{
		Width:  width,
		Height: height,
		Length: length,
		Mass:   mass,
	}
}

// NewPackageFromScalars creates a new Package from four raw measurements,
// validating each through its value-object constructor.
//
// Parameters:
//   - width: Width in centimeters
//   - height: Height in centimeters
//   - length: Length in centimeters
//   - mass: Mass in kilograms
//
// Returns:
//   - Package: the created Package
//   - error: valueobject.ErrInvalidQuantity if any measurement is negative,
//     NaN, or infinite
func NewPackageFromScalars(width, height, length, mass float64) (Package, error) {
	w, err := valueobject.NewLength(width)
	if err != nil {
		return Package{}, fmt.Errorf("width: %w", err)
	}
	h, err := valueobject.NewLength(height)
	if err != nil {
		return Package{}, fmt.Errorf("height: %w", err)
	}
	l, err := valueobject.NewLength(length)
	if err != nil {
		return Package{}, fmt.Errorf("length: %w", err)
	}
	m, err := valueobject.NewMass(mass)
	if err != nil {
		return Package{}, err
	}
	return NewPackage(w, h, l, m), nil
}

// Volume calculates the volume in cubic centimeters.
// It is derived from the dimensions at call time, never stored.
//
// Returns:
//   - float64: width × height × length in cm³
func (p Package) Volume() float64 {
	return p.Width.Centimeters * p.Height.Centimeters * p.Length.Centimeters
}

// LongestDimension returns the largest of the three dimensions.
//
// Returns:
//   - float64: the longest dimension in centimeters
func (p Package) LongestDimension() float64 {
	longest := p.Width.Centimeters
	if p.Height.Centimeters > longest {
		longest = p.Height.Centimeters
	}
	if p.Length.Centimeters > longest {
		longest = p.Length.Centimeters
	}
	return longest
}

// IsBulky checks if the package is bulky: its volume is at least
// 1,000,000 cm³ or any single dimension is at least 150 cm.
// Both comparisons are inclusive.
//
// Returns:
//   - bool: true if the package is bulky
func (p Package) IsBulky() bool {
	return p.Volume() >= BulkyVolumeThresholdCm3 ||
		p.LongestDimension() >= BulkyDimensionThresholdCm
}

// IsHeavy checks if the package is heavy: its mass is at least 20 kg.
// The comparison is inclusive.
//
// Returns:
//   - bool: true if the package is heavy
func (p Package) IsHeavy() bool {
	return p.Mass.AtLeast(HeavyMassThresholdKg)
}

// SortCategory classifies the package for the sorting line.
//
// Decision table:
//   - bulky and heavy  -> Rejected
//   - bulky or heavy   -> Special (exactly one of the two)
//   - neither          -> Standard
//
// Rejected must win over Special when both predicates hold, so the two
// conditions are checked in that order rather than folded into a single OR.
//
// Returns:
//   - Category: the sorting category for this package
func (p Package) SortCategory() Category {
	bulky := p.IsBulky()
	heavy := p.IsHeavy()

	switch {
	case bulky && heavy:
		return CategoryRejected
	case bulky || heavy:
		return CategorySpecial
	default:
		return CategoryStandard
	}
}

// String returns a formatted string representation of the package.
//
// Returns:
//   - string: formatted measurements (e.g., "50.0x50.0x50.0 cm, 10.0 kg")
func (p Package) String() string {
	return fmt.Sprintf("%.1fx%.1fx%.1f cm, %.1f kg",
		p.Width.Centimeters, p.Height.Centimeters, p.Length.Centimeters, p.Mass.Kilograms)
}

// Sort classifies a package described by four raw measurements and returns
// the literal category label. It is a thin adapter over SortCategory for
// callers that do not want to construct the value objects; on valid input
// the two always agree.
//
// Parameters:
//   - width: Width in centimeters
//   - height: Height in centimeters
//   - length: Length in centimeters
//   - mass: Mass in kilograms
//
// Returns:
//   - string: "STANDARD", "SPECIAL", or "REJECTED"
//   - error: valueobject.ErrInvalidQuantity if any measurement is negative,
//     NaN, or infinite
func Sort(width, height, length, mass float64) (string, error) {
	pkg, err := NewPackageFromScalars(width, height, length, mass)
	if err != nil {
		return "", err
	}
	return pkg.SortCategory().String(), nil
}
