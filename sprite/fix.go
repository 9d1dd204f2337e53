package sprite

import "math"

// Fix is a Q16.16 fixed point value. It is stored in 64 bits so that
// large sentinel positions stay representable.
type Fix int64

const (
	FixShift = 16
	FixOne   = Fix(1 << FixShift)
	FixMask  = FixOne - 1
)

// FromInt converts an integer to fixed point.
func FromInt(i int) Fix {
	return Fix(int64(i) << FixShift)
}

// FromFloat converts a float to the nearest fixed point value.
func FromFloat(f float64) Fix {
	return Fix(math.Round(f * float64(FixOne)))
}

// Int truncates towards negative infinity.
func (f Fix) Int() int {
	return int(f >> FixShift)
}

// Round converts to the nearest integer, halves rounding up. Collision and
// hitbox coordinates use it; screen positions floor through Int.
func (f Fix) Round() int {
	return int((f + FixOne/2) >> FixShift)
}

func (f Fix) Float() float64 {
	return float64(f) / float64(FixOne)
}

// Frac returns the fractional bits only.
func (f Fix) Frac() Fix {
	return f & FixMask
}

func (f Fix) Mul(g Fix) Fix {
	return Fix((int64(f) * int64(g)) >> FixShift)
}

// Scale multiplies by a float, used for trigonometric headings.
func (f Fix) Scale(v float64) Fix {
	return FromFloat(f.Float() * v)
}
