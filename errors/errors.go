package errors

// Error is a constant-friendly error type. Sentinel errors across the
// module are declared as untyped constants of this type so they can be
// compared with == by callers.
type Error string

func (e Error) Error() string {
	return string(e)
}
