package addsub

import "github.com/tutu-network/mathsheet/internal/domain"

// Resolve picks the operator so the result is never negative: subtraction
// when a > b, addition otherwise (ties included).
func Resolve(a, b int) (domain.Operator, int) {
	if a > b {
		return domain.OpSub, a - b
	}
	return domain.OpAdd, a + b
}
