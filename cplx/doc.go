// Package cplx provides a small, immutable-by-convention complex number value
// type with closed-form arithmetic on two float64 components.
//
// The primary type is Number, a value holding a real and an imaginary part.
// Every arithmetic operation returns a new Number and leaves its operands
// untouched, so values can be copied and shared freely.
//
// # Basic Usage
//
//	a := cplx.New(3, 4)
//	b := cplx.New(1, -2)
//	sum := a.Add(b)             // (4.00 + 2.00j)
//	product := a.Multiply(b)    // (11.00 - 2.00j)
//	quotient := a.Divide(b)     // (-1.00 + 2.00j)
//	fmt.Println(sum, product, quotient)
//
// # Scalars
//
// Go has no overloading, so scalar variants carry their own names:
//
//   - MultiplyScalar(k): scales both components by k
//   - DivideScalar(k): multiplies by 1/k
//
// # Division by Zero
//
// Divide and DivideScalar follow IEEE 754 rules: dividing by zero yields
// Inf or NaN components which propagate through later operations. Callers
// that prefer an error use CheckedDivide or CheckedDivideScalar:
//
//	q, err := a.CheckedDivide(cplx.Zero())
//	if errors.Is(err, cplx.ErrDivisionByZero) {
//	    // handle
//	}
//
// # Formatting
//
// String renders "(R ± Ij)" with two decimals and a comma thousands
// separator, independent of the process locale:
//
//	cplx.New(3, -4.5).String()           // "(3.00 - 4.50j)"
//	cplx.New(-1234567.891, 1000).String() // "(-1,234,567.89 + 1,000.00j)"
//
// Format accepts functional options to change the rendering:
//
//   - WithPrecision(n): Digits after the decimal separator (default: 2)
//   - WithGroupSeparator(s): Thousands separator, "" disables grouping (default: ",")
//   - WithDecimalSeparator(s): Decimal separator (default: ".")
//   - WithImaginaryUnit(s): Suffix of the imaginary part (default: "j")
package cplx
