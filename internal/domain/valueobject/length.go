// Package valueobject contains value objects that represent concepts without identity.
// Value objects are immutable and compared by their attributes rather than identity.
// They encapsulate validation logic and ensure data integrity.
//
// Value Objects follow these principles:
//   - Immutability: Once created, they cannot be changed.
//   - Equality: Two value objects are equal if all their attributes are equal.
//   - Self-validation: They validate their own data upon creation.
//   - Side-effect free: Methods returns new instances rather than modifying state
package valueobject

import (
	"errors"
	"fmt"
	"math"
)

// Quantity errors define domain-specific error conditions.
var (
	// ErrInvalidQuantity is returned when a physical quantity is constructed
	// from a value that is negative, NaN, or infinite. Malformed measurements
	// are rejected at the boundary so a NaN can never flow into the
	// classification arithmetic and silently compare as "not bulky, not heavy".
	ErrInvalidQuantity = errors.New("quantity must be a finite, non-negative number")
)

// validMagnitude reports whether v can back a physical quantity.
func validMagnitude(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Length represents a single spatial dimension of a package.
// The magnitude is stored in centimeters.
//
// Example usage:
//
//	width := valueobject.MustLength(100) // 100 cm
//	width.Centimeters()                  // 100.0
type Length struct {
	// Magnitude in centimeters.
	Centimeters float64 `json:"centimeters"`
}

// NewLength creates a new Length value object.
//
// Parameters:
//   - cm: Magnitude in centimeters (must be finite and non-negative)
//
// Returns:
//   - Length: the created Length value object
//   - error: ErrInvalidQuantity if cm is negative, NaN, or infinite
func NewLength(cm float64) (Length, error) {
	if !validMagnitude(cm) {
		return Length{}, fmt.Errorf("length %v: %w", cm, ErrInvalidQuantity)
	}
	return Length{Centimeters: cm}, nil
}

// MustLength creates a new Length and panics on invalid input.
// Use this for trusted, compile-time-known magnitudes (tests, examples).
//
// Parameters:
//   - cm: Magnitude in centimeters
//
// Returns:
//   - Length: the created Length value object
func MustLength(cm float64) Length {
	l, err := NewLength(cm)
	if err != nil {
		panic(err)
	}
	return l
}

// IsZero checks if the length is zero.
//
// Returns:
//   - bool: true if the magnitude is zero
func (l Length) IsZero() bool {
	return l.Centimeters == 0
}

// AtLeast checks if the length meets or exceeds a threshold.
// The comparison is inclusive.
//
// Parameters:
//   - cm: Threshold in centimeters
//
// Returns:
//   - bool: true if the length is greater than or equal to the threshold
func (l Length) AtLeast(cm float64) bool {
	return l.Centimeters >= cm
}

// Equals checks if two Length values are equal.
//
// Parameters:
//   - other: the Length to compare
//
// Returns:
//   - bool: true if both magnitudes are equal
func (l Length) Equals(other Length) bool {
	return l.Centimeters == other.Centimeters
}

// String returns a formatted string representation of the Length.
//
// Returns:
//   - string: Formatted string (e.g., "150.0 cm")
func (l Length) String() string {
	return fmt.Sprintf("%.1f cm", l.Centimeters)
}
