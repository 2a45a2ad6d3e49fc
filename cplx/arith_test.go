package cplx

import (
	"errors"
	"math"
	"testing"
)

// closeTo compares componentwise with a tolerance scaled by the operands' magnitude.
func closeTo(a, b Number, tol float64) bool {
	scale := math.Max(1, math.Max(a.Abs(), b.Abs()))
	return a.ApproxEqual(b, tol*scale)
}

var propertySamples = []Number{
	New(3, 4),
	New(1, -2),
	New(-0.5, 0.25),
	New(1e3, -7),
	New(2.5, 0),
	New(0, -1),
	New(-123.456, 789.012),
	New(1e-3, 1e-3),
}

func TestArithmetic_Concrete(t *testing.T) {
	tests := []struct {
		name string
		got  Number
		want Number
	}{
		{name: "add", got: New(3, 4).Add(New(1, -2)), want: New(4, 2)},
		{name: "subtract", got: New(5, 3).Subtract(New(2, 7)), want: New(3, -4)},
		{name: "negate", got: New(1, -2).Negate(), want: New(-1, 2)},
		{name: "multiply", got: New(1, 2).Multiply(New(3, 4)), want: New(-5, 10)},
		{name: "multiply by i", got: New(0, 1).Multiply(New(0, 1)), want: New(-1, 0)},
		{name: "multiply scalar", got: New(1.5, -2).MultiplyScalar(4), want: New(6, -8)},
		{name: "divide real", got: New(4, 0).Divide(New(2, 0)), want: New(2, 0)},
		{name: "divide scalar", got: New(6, -3).DivideScalar(4), want: New(1.5, -0.75)},
		{name: "conjugate", got: New(3, 4).Conjugate(), want: New(3, -4)},
		{name: "conjugate of real", got: New(3, 0).Conjugate(), want: New(3, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestDivide_Complex(t *testing.T) {
	got := New(3, 4).Divide(New(1, -2))
	want := New(-1, 2)

	if !got.ApproxEqual(want, 1e-12) {
		t.Errorf("(3+4j)/(1-2j) = %v, want %v", got, want)
	}
}

func TestDivide_MatchesBuiltin(t *testing.T) {
	for _, a := range propertySamples {
		for _, b := range propertySamples {
			got := a.Divide(b)
			want := FromComplex128(a.Complex128() / b.Complex128())
			if !closeTo(got, want, 1e-12) {
				t.Errorf("%v / %v = %v, builtin gives %v", a, b, got, want)
			}
		}
	}
}

func TestArithmetic_DoesNotMutateOperands(t *testing.T) {
	a := New(3, 4)
	b := New(1, -2)

	_ = a.Add(b)
	_ = a.Subtract(b)
	_ = a.Multiply(b)
	_ = a.MultiplyScalar(3)
	_ = a.Divide(b)
	_ = a.DivideScalar(3)
	_ = a.Conjugate()
	_ = a.Negate()

	if !a.Equal(New(3, 4)) {
		t.Errorf("left operand changed: %v", a)
	}
	if !b.Equal(New(1, -2)) {
		t.Errorf("right operand changed: %v", b)
	}
}

func TestDivideScalar_ByZero(t *testing.T) {
	tests := []struct {
		name string
		n    Number
	}{
		{name: "unit real", n: New(1, 0)},
		{name: "mixed signs", n: New(-2, 3)},
		{name: "zero", n: Zero()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.n.DivideScalar(0)
			for _, c := range []float64{got.Real(), got.Imaginary()} {
				if !math.IsInf(c, 0) && !math.IsNaN(c) {
					t.Errorf("DivideScalar(0) = %v, want Inf or NaN components", got)
				}
			}
		})
	}

	got := New(1, 0).DivideScalar(0)
	if !math.IsInf(got.Real(), 1) {
		t.Errorf("real part = %v, want +Inf", got.Real())
	}
	if !math.IsNaN(got.Imaginary()) {
		t.Errorf("imaginary part = %v, want NaN", got.Imaginary())
	}
}

func TestDivide_ByZeroComplex(t *testing.T) {
	got := New(1, 1).Divide(Zero())
	if !got.IsNaN() && !got.IsInf() {
		t.Errorf("division by zero = %v, want non-finite components", got)
	}
}

func TestSpecialValues_Propagate(t *testing.T) {
	nan := New(math.NaN(), 0)

	if !nan.Add(New(1, 1)).IsNaN() {
		t.Error("NaN should propagate through Add")
	}
	if !New(1, 1).Multiply(nan).IsNaN() {
		t.Error("NaN should propagate through Multiply")
	}
	if !New(1, 0).DivideScalar(0).Add(New(1, 1)).IsNaN() {
		t.Error("NaN from division by zero should propagate")
	}
}

func TestCheckedDivide(t *testing.T) {
	a := New(3, 4)

	_, err := a.CheckedDivide(Zero())
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}

	q, err := a.CheckedDivide(New(1, -2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.Equal(a.Divide(New(1, -2))) {
		t.Errorf("CheckedDivide = %v, want %v", q, a.Divide(New(1, -2)))
	}
}

func TestCheckedDivideScalar(t *testing.T) {
	a := New(3, 4)

	_, err := a.CheckedDivideScalar(0)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}

	q, err := a.CheckedDivideScalar(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.Equal(New(1.5, 2)) {
		t.Errorf("CheckedDivideScalar(2) = %v, want (1.5, 2)", q)
	}
}

func TestMagnitude(t *testing.T) {
	n := New(3, 4)

	if got := n.MagnitudeSquared(); got != 25 {
		t.Errorf("MagnitudeSquared() = %v, want 25", got)
	}
	if got := n.Abs(); got != 5 {
		t.Errorf("Abs() = %v, want 5", got)
	}
	if got := New(1e200, 1e200).Abs(); math.IsInf(got, 0) {
		t.Errorf("Abs() overflowed for large components")
	}
}

func TestProperties_Add(t *testing.T) {
	for _, a := range propertySamples {
		if !a.Add(Zero()).Equal(a) {
			t.Errorf("additive identity failed for %v", a)
		}
		for _, b := range propertySamples {
			if !a.Add(b).Equal(b.Add(a)) {
				t.Errorf("add not commutative for %v, %v", a, b)
			}
			if !closeTo(a.Add(b).Subtract(b), a, 1e-12) {
				t.Errorf("(a+b)-b = %v, want %v", a.Add(b).Subtract(b), a)
			}
			for _, c := range propertySamples {
				left := a.Add(b).Add(c)
				right := a.Add(b.Add(c))
				if !closeTo(left, right, 1e-12) {
					t.Errorf("add not associative: %v vs %v", left, right)
				}
			}
		}
	}
}

func TestProperties_Multiply(t *testing.T) {
	for _, a := range propertySamples {
		if !a.Conjugate().Conjugate().Equal(a) {
			t.Errorf("conjugate not an involution for %v", a)
		}
		for _, b := range propertySamples {
			if !closeTo(a.Multiply(b), b.Multiply(a), 1e-15) {
				t.Errorf("multiply not commutative for %v, %v", a, b)
			}
			if got := a.Multiply(b).Divide(b); !closeTo(got, a, 1e-12) {
				t.Errorf("(a*b)/b = %v, want %v", got, a)
			}
		}
	}
}

func TestProperties_ScalarAgreement(t *testing.T) {
	for _, a := range propertySamples {
		for _, k := range []float64{-3, 0.5, 2, 1e3} {
			if got, want := a.MultiplyScalar(k), a.Multiply(New(k, 0)); !got.Equal(want) {
				t.Errorf("%v * %v = %v, want %v", a, k, got, want)
			}
			if got, want := a.DivideScalar(k), a.MultiplyScalar(1/k); !got.Equal(want) {
				t.Errorf("%v / %v = %v, want %v", a, k, got, want)
			}
		}
	}
}

func TestProperties_ConjugateProduct(t *testing.T) {
	for _, b := range propertySamples {
		p := b.Multiply(b.Conjugate())
		want := New(b.MagnitudeSquared(), 0)
		if !closeTo(p, want, 1e-15) {
			t.Errorf("b*conj(b) = %v, want %v", p, want)
		}
	}
}
