//go:build !windows

package term

// EnableVirtualTerminal is a no-op; non-Windows terminals handle ANSI
// sequences natively.
func EnableVirtualTerminal() {}
