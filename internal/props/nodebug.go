//go:build !debug

package props

func debugLog(string, ...any) {}
