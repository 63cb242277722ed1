package kernel

// Error describes a kernel error. Kernel errors are declared as package-level
// pointers to Error values: the Go allocator is not available while the
// bootstrap code runs so errors.New and fmt.Errorf cannot be used.
type Error struct {
	// The module where the error occurred.
	Module string

	// The error message
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}
