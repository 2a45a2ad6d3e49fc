package cplx

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// String renders n as "(R ± Ij)" with two decimals and a comma thousands
// separator. The sign is " - " when the imaginary part is negative and
// " + " otherwise; the imaginary magnitude is printed without a sign.
func (n Number) String() string {
	return n.Format()
}

// Format renders n like String, with the given options applied.
func (n Number) Format(opts ...FormatOption) string {
	cfg := createFormatConfig(opts...)

	sign := " + "
	if n.im < 0 {
		sign = " - "
	}

	var b strings.Builder
	b.WriteString("(")
	b.WriteString(formatComponent(n.re, cfg))
	b.WriteString(sign)
	b.WriteString(formatComponent(math.Abs(n.im), cfg))
	b.WriteString(cfg.imaginaryUnit)
	b.WriteString(")")
	return b.String()
}

// formatComponent formats v with a fixed number of decimals and a grouped
// integer part. Ties round half away from zero on the shortest decimal
// representation of v. It never consults the process locale.
func formatComponent(v float64, cfg formatConfig) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	negative := math.Signbit(v)
	digits := decimal.NewFromFloat(math.Abs(v)).StringFixed(int32(cfg.precision))

	intPart, fracPart, hasFrac := strings.Cut(digits, ".")

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString(groupDigits(intPart, cfg.groupSeparator))
	if hasFrac {
		b.WriteString(cfg.decimalSep)
		b.WriteString(fracPart)
	}
	return b.String()
}

// groupDigits inserts sep between every group of three digits, counted from
// the right.
func groupDigits(s, sep string) string {
	if sep == "" || len(s) <= 3 {
		return s
	}

	var result strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result.WriteString(sep)
		}
		result.WriteRune(c)
	}
	return result.String()
}
