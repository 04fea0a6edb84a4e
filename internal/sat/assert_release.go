//go:build !assertions

package sat

// assertf is a no-op in production builds; see assert.go.
func assertf(cond bool, format string, args ...any) {}
