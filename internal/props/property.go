// Package props checks algebraic properties of cplx.Number against randomly
// generated samples.
package props

import (
	"errors"
	"fmt"
	"math"

	"github.com/utkarsh5026/cplxme/cplx"
)

var (
	ErrPropertyViolated = errors.New("property violated")
	ErrUnknownProperty  = errors.New("unknown property")

	// ErrSkipSample is returned by a Check whose precondition does not hold
	// for the sample, e.g. a divisor too close to zero.
	ErrSkipSample = errors.New("sample skipped")
)

// minDivisorMagnitude is the smallest |b|² a division property accepts.
const minDivisorMagnitude = 1e-12

// Sample is one set of operands for a property.
type Sample struct {
	A, B, C cplx.Number
}

// Property is a named algebraic law over up to three operands.
//
// Arity is how many operands the law reads, in order A, B, C; operands past
// it are left zero. An Arity outside 1..3 generates all three.
//
// Check returns nil when the law holds, ErrSkipSample when the sample does
// not satisfy the law's precondition, and an error wrapping
// ErrPropertyViolated otherwise.
type Property struct {
	Name        string
	Description string
	Arity       int
	Check       func(s Sample, tol float64) error
}

// All returns every known property in a stable order.
func All() []Property {
	return []Property{
		{
			Name:        "add-commutative",
			Description: "a + b = b + a",
			Arity:       2,
			Check: func(s Sample, _ float64) error {
				return expectEqual(s.A.Add(s.B), s.B.Add(s.A))
			},
		},
		{
			Name:        "add-associative",
			Description: "(a + b) + c ≈ a + (b + c)",
			Arity:       3,
			Check: func(s Sample, tol float64) error {
				return expectClose(s.A.Add(s.B).Add(s.C), s.A.Add(s.B.Add(s.C)), tol)
			},
		},
		{
			Name:        "add-identity",
			Description: "a + 0 = a",
			Arity:       1,
			Check: func(s Sample, _ float64) error {
				return expectEqual(s.A.Add(cplx.Zero()), s.A)
			},
		},
		{
			Name:        "subtract-inverse",
			Description: "(a + b) - b ≈ a",
			Arity:       2,
			Check: func(s Sample, tol float64) error {
				return expectClose(s.A.Add(s.B).Subtract(s.B), s.A, tol)
			},
		},
		{
			Name:        "multiply-commutative",
			Description: "a · b ≈ b · a",
			Arity:       2,
			Check: func(s Sample, tol float64) error {
				return expectClose(s.A.Multiply(s.B), s.B.Multiply(s.A), tol)
			},
		},
		{
			Name:        "divide-inverse",
			Description: "(a · b) / b ≈ a for b ≠ 0",
			Arity:       2,
			Check: func(s Sample, tol float64) error {
				if s.B.MagnitudeSquared() < minDivisorMagnitude {
					return ErrSkipSample
				}
				return expectClose(s.A.Multiply(s.B).Divide(s.B), s.A, tol)
			},
		},
		{
			Name:        "conjugate-involution",
			Description: "conj(conj(a)) = a",
			Arity:       1,
			Check: func(s Sample, _ float64) error {
				return expectEqual(s.A.Conjugate().Conjugate(), s.A)
			},
		},
		{
			Name:        "scalar-multiply",
			Description: "a · k ≈ a · (k + 0j)",
			Arity:       2,
			Check: func(s Sample, tol float64) error {
				k := s.B.Real()
				return expectClose(s.A.MultiplyScalar(k), s.A.Multiply(cplx.New(k, 0)), tol)
			},
		},
		{
			Name:        "scalar-divide",
			Description: "a / k = a · (1/k) for k ≠ 0",
			Arity:       2,
			Check: func(s Sample, _ float64) error {
				k := s.B.Real()
				if k == 0 {
					return ErrSkipSample
				}
				return expectEqual(s.A.DivideScalar(k), s.A.MultiplyScalar(1/k))
			},
		},
		{
			Name:        "conjugate-product",
			Description: "a · conj(a) ≈ |a|² + 0j",
			Arity:       1,
			Check: func(s Sample, tol float64) error {
				return expectClose(s.A.Multiply(s.A.Conjugate()), cplx.New(s.A.MagnitudeSquared(), 0), tol)
			},
		},
	}
}

// Lookup returns the named properties in the order given. With no names it
// returns All().
func Lookup(names ...string) ([]Property, error) {
	all := All()
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]Property, len(all))
	for _, p := range all {
		byName[p.Name] = p
	}

	selected := make([]Property, 0, len(names))
	for _, name := range names {
		p, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
		}
		selected = append(selected, p)
	}
	return selected, nil
}

func expectEqual(got, want cplx.Number) error {
	if got.Equal(want) {
		return nil
	}
	return fmt.Errorf("%w: got %s, want %s", ErrPropertyViolated, detail(got), detail(want))
}

// expectClose compares componentwise with a tolerance relative to the
// larger magnitude, and never below tol in absolute terms.
func expectClose(got, want cplx.Number, tol float64) error {
	scale := math.Max(1, math.Max(got.Abs(), want.Abs()))
	if got.ApproxEqual(want, tol*scale) {
		return nil
	}
	return fmt.Errorf("%w: got %s, want %s (tolerance %g)", ErrPropertyViolated, detail(got), detail(want), tol*scale)
}

// detail renders n with enough digits to show a rounding-level difference.
func detail(n cplx.Number) string {
	return n.Format(cplx.WithPrecision(12), cplx.WithGroupSeparator(""))
}
