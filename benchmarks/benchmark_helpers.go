// Package benchmarks measures the cost of cplx arithmetic against the
// builtin complex128 type.
package benchmarks

import (
	"math/rand"

	"github.com/utkarsh5026/cplxme/cplx"
)

// operandCount is a power of two so indexes can be masked.
const operandCount = 1 << 10

// makeOperands returns deterministic operands with components in [-1000, 1000].
func makeOperands(seed int64) []cplx.Number {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- benchmark data
	ops := make([]cplx.Number, operandCount)
	for i := range ops {
		ops[i] = cplx.New(rng.Float64()*2000-1000, rng.Float64()*2000-1000)
	}
	return ops
}

// makeScalars returns deterministic non-zero scalars.
func makeScalars(seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- benchmark data
	ks := make([]float64, operandCount)
	for i := range ks {
		ks[i] = rng.Float64()*99 + 1
	}
	return ks
}
