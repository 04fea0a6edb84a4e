//go:build assertions

package sat

import "fmt"

// assertf panics if cond is false. Internal invariant violations are
// programmer bugs (§7): guarded by assertions that abort in debug builds
// (built with -tags assertions) and compiled out of production builds.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
