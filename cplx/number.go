package cplx

import "math"

// Number is a complex number with float64 components.
//
// The zero value is (0, 0) and ready to use. Methods have value receivers
// and return new values; only SetReal and SetImaginary mutate, and those are
// meant for use right after construction.
type Number struct {
	re float64
	im float64
}

// New returns the complex number re + im·j.
func New(re, im float64) Number {
	return Number{re: re, im: im}
}

// Zero returns (0, 0).
func Zero() Number {
	return Number{}
}

// Copy returns a Number with the same components as n.
func Copy(n Number) Number {
	return New(n.Real(), n.Imaginary())
}

// FromComplex128 converts a builtin complex128.
func FromComplex128(c complex128) Number {
	return New(real(c), imag(c))
}

// Clone is the method form of Copy.
func (n Number) Clone() Number {
	return Copy(n)
}

// Real returns the real component.
func (n Number) Real() float64 {
	return n.re
}

// Imaginary returns the imaginary component.
func (n Number) Imaginary() float64 {
	return n.im
}

// SetReal overwrites the real component in place.
func (n *Number) SetReal(re float64) {
	n.re = re
}

// SetImaginary overwrites the imaginary component in place.
func (n *Number) SetImaginary(im float64) {
	n.im = im
}

// WithReal returns a copy of n with the real component replaced.
func (n Number) WithReal(re float64) Number {
	return New(re, n.im)
}

// WithImaginary returns a copy of n with the imaginary component replaced.
func (n Number) WithImaginary(im float64) Number {
	return New(n.re, im)
}

// Complex128 converts n to the builtin complex128.
func (n Number) Complex128() complex128 {
	return complex(n.re, n.im)
}

// Equal reports whether both components are exactly equal.
// NaN components are never equal, matching float64 comparison.
func (n Number) Equal(o Number) bool {
	return n.re == o.re && n.im == o.im
}

// ApproxEqual reports whether each component of n is within tol of o.
// Identical components always match, so equal infinities compare equal;
// NaN never matches.
func (n Number) ApproxEqual(o Number, tol float64) bool {
	return componentClose(n.re, o.re, tol) && componentClose(n.im, o.im, tol)
}

func componentClose(a, b, tol float64) bool {
	return a == b || math.Abs(a-b) <= tol
}

// IsNaN reports whether either component is NaN.
func (n Number) IsNaN() bool {
	return math.IsNaN(n.re) || math.IsNaN(n.im)
}

// IsInf reports whether either component is an infinity.
func (n Number) IsInf() bool {
	return math.IsInf(n.re, 0) || math.IsInf(n.im, 0)
}
