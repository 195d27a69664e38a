// Package patch helps apply partial-update requests where nil means
// "keep the current value".
package patch

func Coalesce[T any](ptr *T, current T) T {
	if ptr == nil {
		return current
	}
	return *ptr
}
