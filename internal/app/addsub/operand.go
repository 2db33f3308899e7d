package addsub

import (
	"fmt"
	"math/rand/v2"

	"github.com/tutu-network/mathsheet/internal/domain"
)

// MaxDigits bounds digits_max so that the sum of two operands fits in an
// int32 (999_999_999 + 999_999_999 < 2^31).
const MaxDigits = 9

// Range is an inclusive operand length range in decimal digits.
type Range struct {
	Min int
	Max int
}

// NewRange validates and returns a digit range.
func NewRange(digitsMin, digitsMax int) (Range, error) {
	if digitsMin < 1 || digitsMax < digitsMin || digitsMax > MaxDigits {
		return Range{}, fmt.Errorf("digits %d..%d: %w", digitsMin, digitsMax, domain.ErrInvalidDigitRange)
	}
	return Range{Min: digitsMin, Max: digitsMax}, nil
}

// Lo is the smallest operand, 10^(Min-1).
func (r Range) Lo() int { return pow10(r.Min - 1) }

// Hi is the largest operand, 10^Max - 1.
func (r Range) Hi() int { return pow10(r.Max) - 1 }

// Operand draws one integer uniformly from [Lo, Hi].
func (r Range) Operand(rng *rand.Rand) int {
	return r.Lo() + rng.IntN(r.Hi()-r.Lo()+1)
}

func pow10(n int) int {
	v := 1
	for range n {
		v *= 10
	}
	return v
}
