package ptr

// Ptr returns a pointer to v. Shorthand for taking the address of literals
// and loop variables when filling optional fields.
func Ptr[T any](v T) *T {
	return &v
}
