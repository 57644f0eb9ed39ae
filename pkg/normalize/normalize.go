// Package normalize maps raw signal values onto a 0..1 scale relative to
// the largest value observed in the same batch.
package normalize

// Mode selects whether larger or smaller raw values score higher.
type Mode int

const (
	// Direct scores larger values higher.
	Direct Mode = iota
	// Inverse scores smaller values higher (distance, age).
	Inverse
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m == Inverse {
		return "inverse"
	}
	return "direct"
}

// Normalize scales value against maxObserved. A zero maximum means every
// value in the batch is zero: Direct treats that as fully normalized (1) and
// Inverse as no advantage (0).
func Normalize(value, maxObserved float64, mode Mode) float64 {
	if mode == Inverse {
		if maxObserved == 0 {
			return 0
		}
		return 1 - value/maxObserved
	}

	if maxObserved == 0 {
		return 1
	}
	return value / maxObserved
}

// Max returns the largest of values, or 0 when values is empty.
func Max(values ...float64) float64 {
	var m float64
	for i, v := range values {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}
