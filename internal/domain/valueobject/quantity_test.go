package valueobject_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/sortline-go/internal/domain/valueobject"
)

func TestNewLength(t *testing.T) {
	t.Run("accepts non-negative finite values", func(t *testing.T) {
		for _, cm := range []float64{0, 0.5, 150, 1e9} {
			l, err := valueobject.NewLength(cm)
			require.NoError(t, err)
			assert.Equal(t, cm, l.Centimeters)
		}
	})

	t.Run("rejects negative values", func(t *testing.T) {
		_, err := valueobject.NewLength(-1)
		require.ErrorIs(t, err, valueobject.ErrInvalidQuantity)
	})

	t.Run("rejects NaN", func(t *testing.T) {
		_, err := valueobject.NewLength(math.NaN())
		require.ErrorIs(t, err, valueobject.ErrInvalidQuantity)
	})

	t.Run("rejects infinity", func(t *testing.T) {
		_, err := valueobject.NewLength(math.Inf(1))
		require.ErrorIs(t, err, valueobject.ErrInvalidQuantity)

		_, err = valueobject.NewLength(math.Inf(-1))
		require.ErrorIs(t, err, valueobject.ErrInvalidQuantity)
	})
}

func TestNewMass(t *testing.T) {
	t.Run("accepts non-negative finite values", func(t *testing.T) {
		m, err := valueobject.NewMass(19.999)
		require.NoError(t, err)
		assert.Equal(t, 19.999, m.Kilograms)
	})

	t.Run("rejects negative values", func(t *testing.T) {
		_, err := valueobject.NewMass(-0.001)
		require.ErrorIs(t, err, valueobject.ErrInvalidQuantity)
	})

	t.Run("rejects non-finite values", func(t *testing.T) {
		_, err := valueobject.NewMass(math.NaN())
		require.ErrorIs(t, err, valueobject.ErrInvalidQuantity)

		_, err = valueobject.NewMass(math.Inf(1))
		require.ErrorIs(t, err, valueobject.ErrInvalidQuantity)
	})
}

func TestMustLength(t *testing.T) {
	t.Run("returns the value on valid input", func(t *testing.T) {
		assert.Equal(t, 42.0, valueobject.MustLength(42).Centimeters)
	})

	t.Run("panics on invalid input", func(t *testing.T) {
		assert.Panics(t, func() { valueobject.MustLength(-1) })
	})
}

func TestMustMass(t *testing.T) {
	t.Run("panics on invalid input", func(t *testing.T) {
		assert.Panics(t, func() { valueobject.MustMass(math.NaN()) })
	})
}

func TestLengthAtLeast(t *testing.T) {
	l := valueobject.MustLength(150)

	assert.True(t, l.AtLeast(150), "comparison must be inclusive")
	assert.True(t, l.AtLeast(100))
	assert.False(t, l.AtLeast(150.1))
}

func TestMassAtLeast(t *testing.T) {
	m := valueobject.MustMass(20)

	assert.True(t, m.AtLeast(20), "comparison must be inclusive")
	assert.False(t, valueobject.MustMass(19.999).AtLeast(20))
}

func TestQuantityEquality(t *testing.T) {
	assert.True(t, valueobject.MustLength(10).Equals(valueobject.MustLength(10)))
	assert.False(t, valueobject.MustLength(10).Equals(valueobject.MustLength(10.5)))
	assert.True(t, valueobject.MustMass(0).Equals(valueobject.MustMass(0)))
	assert.True(t, valueobject.MustMass(0).IsZero())
	assert.False(t, valueobject.MustLength(1).IsZero())
}

func TestQuantityString(t *testing.T) {
	assert.Equal(t, "150.0 cm", valueobject.MustLength(150).String())
	assert.Equal(t, "20.5 kg", valueobject.MustMass(20.5).String())
}
