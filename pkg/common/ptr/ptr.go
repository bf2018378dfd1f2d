// Package ptr provides helper functions for working with pointers.
package ptr

// New returns a pointer to v. Request options use it to mark a field as set.
func New[T any](v T) *T {
	return &v
}
