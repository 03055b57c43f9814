// Package callback binds arguments to a function ahead of time.
package callback

// Bind returns a no-argument callback that calls method with params. The
// params slice is copied, so later changes by the caller are not seen.
func Bind(method func(args ...any), params ...any) func() {
	bound := append([]any(nil), params...)
	return func() {
		method(bound...)
	}
}
