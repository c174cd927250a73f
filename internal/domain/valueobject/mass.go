// Package valueobject contains value objects that represent concepts without identity.
package valueobject

import "fmt"

// Mass represents the weight of a package.
// The magnitude is stored in kilograms.
//
// Mass and Length are distinct types on purpose: a call site cannot hand a
// weight where a dimension is expected without the compiler objecting.
type Mass struct {
	// Magnitude in kilograms.
	Kilograms float64 `json:"kilograms"`
}

// NewMass creates a new Mass value object.
//
// Parameters:
//   - kg: Magnitude in kilograms (must be finite and non-negative)
//
// Returns:
//   - Mass: the created Mass value object
//   - error: ErrInvalidQuantity if kg is negative, NaN, or infinite
func NewMass(kg float64) (Mass, error) {
	if !validMagnitude(kg) {
		return Mass{}, fmt.Errorf("mass %v: %w", kg, ErrInvalidQuantity)
	}
	return Mass{Kilograms: kg}, nil
}

// MustMass creates a new Mass and panics on invalid input.
// Use this for trusted, compile-time-known magnitudes (tests, examples).
//
// Parameters:
//   - kg: Magnitude in kilograms
//
// Returns:
//   - Mass: the created Mass value object
func MustMass(kg float64) Mass {
	m, err := NewMass(kg)
	if err != nil {
		panic(err)
	}
	return m
}

// IsZero checks if the mass is zero.
//
// Returns:
//   - bool: true if the magnitude is zero
func (m Mass) IsZero() bool {
	return m.Kilograms == 0
}

// AtLeast checks if the mass meets or exceeds a threshold.
// The comparison is inclusive.
//
// Parameters:
//   - kg: Threshold in kilograms
//
// Returns:
//   - bool: true if the mass is greater than or equal to the threshold
func (m Mass) AtLeast(kg float64) bool {
	return m.Kilograms >= kg
}

// Equals checks if two Mass values are equal.
//
// Parameters:
//   - other: the Mass to compare
//
// Returns:
//   - bool: true if both magnitudes are equal
func (m Mass) Equals(other Mass) bool {
	return m.Kilograms == other.Kilograms
}

// String returns a formatted string representation of the Mass.
//
// Returns:
//   - string: Formatted string (e.g., "20.0 kg")
func (m Mass) String() string {
	return fmt.Sprintf("%.1f kg", m.Kilograms)
}
