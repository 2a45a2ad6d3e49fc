package cplx

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
)

// Add returns n + o.
// (a + bj) + (c + dj) = (a + c) + (b + d)j
func (n Number) Add(o Number) Number {
	return New(n.re+o.re, n.im+o.im)
}

// Subtract returns n - o, computed as n + (-o).
func (n Number) Subtract(o Number) Number {
	return n.Add(o.Negate())
}

// Negate returns -n.
func (n Number) Negate() Number {
	return New(-n.re, -n.im)
}

// Multiply returns the complex product n · o.
// (a + bj)(c + dj) = (ac - bd) + (ad + bc)j
func (n Number) Multiply(o Number) Number {
	return New(
		n.re*o.re-n.im*o.im,
		n.re*o.im+n.im*o.re,
	)
}

// MultiplyScalar scales both components by k.
func (n Number) MultiplyScalar(k float64) Number {
	return New(n.re*k, n.im*k)
}

// Divide returns n / o by multiplying numerator and denominator with the
// conjugate of o:
//
//	(a + bj) / (c + dj) = (a + bj)(c - dj) / (c² + d²)
//
// A zero divisor is not trapped; the result carries Inf or NaN components.
func (n Number) Divide(o Number) Number {
	conj := o.Conjugate()
	top := n.Multiply(conj)
	bottom := o.Multiply(conj)

	return top.DivideScalar(bottom.Real())
}

// DivideScalar returns n multiplied by 1/k. k == 0 yields Inf or NaN
// components per IEEE 754.
func (n Number) DivideScalar(k float64) Number {
	return n.MultiplyScalar(1 / k)
}

// CheckedDivide is Divide that returns ErrDivisionByZero instead of
// producing non-finite components when o has zero magnitude.
func (n Number) CheckedDivide(o Number) (Number, error) {
	if o.MagnitudeSquared() == 0 {
		return Number{}, fmt.Errorf("dividing %s by %s: %w", n, o, ErrDivisionByZero)
	}
	return n.Divide(o), nil
}

// CheckedDivideScalar is DivideScalar that returns ErrDivisionByZero when k is zero.
func (n Number) CheckedDivideScalar(k float64) (Number, error) {
	if k == 0 {
		return Number{}, fmt.Errorf("dividing %s by scalar %g: %w", n, k, ErrDivisionByZero)
	}
	return n.DivideScalar(k), nil
}

// Conjugate returns (re, -im).
func (n Number) Conjugate() Number {
	return New(n.re, -n.im)
}

// MagnitudeSquared returns re² + im², the divisor used by Divide.
func (n Number) MagnitudeSquared() float64 {
	return n.re*n.re + n.im*n.im
}

// Abs returns the magnitude |n| without intermediate overflow.
func (n Number) Abs() float64 {
	return math.Hypot(n.re, n.im)
}
