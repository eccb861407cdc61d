package scenario

import (
	"github.com/katalvlaran/outbreak/growth"
)

// Stepper is the click-to-advance animation state: it starts at generation
// 0 and moves forward one generation per Next until its ceiling.
// The zero value is not usable; call NewStepper.
type Stepper struct {
	current int
	max     int
}

// NewStepper returns a stepper with the given ceiling; max < 0 is treated as 0.
func NewStepper(max int) *Stepper {
	if max < 0 {
		max = 0
	}
	return &Stepper{max: max}
}

// Next advances one generation. It reports false once the ceiling is reached.
func (s *Stepper) Next() bool {
	if s.current >= s.max {
		return false
	}
	s.current++
	return true
}

// Reset returns to generation 0.
func (s *Stepper) Reset() { s.current = 0 }

// Current returns the generation shown.
func (s *Stepper) Current() int { return s.current }

// Max returns the ceiling.
func (s *Stepper) Max() int { return s.max }

// Series returns the curve at Re = r0 through the current generation.
func (s *Stepper) Series(r0 float64) (growth.Series, error) {
	return growth.GenerateSeries(r0, s.current, growth.WithMaxGenerations(s.max))
}
