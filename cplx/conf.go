package cplx

// FormatOption is a functional option for configuring how a Number is rendered.
type FormatOption func(*formatConfig)

type formatConfig struct {
	precision      int
	groupSeparator string
	decimalSep     string
	imaginaryUnit  string
}

func defaultFormatConfig() formatConfig {
	return formatConfig{
		precision:      2,
		groupSeparator: ",",
		decimalSep:     ".",
		imaginaryUnit:  "j",
	}
}

func createFormatConfig(opts ...FormatOption) formatConfig {
	cfg := defaultFormatConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithPrecision sets the number of digits after the decimal separator.
// Negative values are ignored. If not specified, defaults to 2.
func WithPrecision(digits int) FormatOption {
	return func(cfg *formatConfig) {
		if digits >= 0 {
			cfg.precision = digits
		}
	}
}

// WithGroupSeparator sets the thousands separator of the integer part.
// An empty separator disables grouping. If not specified, defaults to ",".
func WithGroupSeparator(sep string) FormatOption {
	return func(cfg *formatConfig) {
		cfg.groupSeparator = sep
	}
}

// WithDecimalSeparator sets the separator between integer and fractional
// digits. Empty values are ignored. If not specified, defaults to ".".
func WithDecimalSeparator(sep string) FormatOption {
	return func(cfg *formatConfig) {
		if sep != "" {
			cfg.decimalSep = sep
		}
	}
}

// WithImaginaryUnit sets the suffix written after the imaginary magnitude.
// Empty values are ignored. If not specified, defaults to "j".
//
// Example:
//
//	n.Format(WithImaginaryUnit("i")) // "(3.00 - 4.50i)"
func WithImaginaryUnit(unit string) FormatOption {
	return func(cfg *formatConfig) {
		if unit != "" {
			cfg.imaginaryUnit = unit
		}
	}
}
