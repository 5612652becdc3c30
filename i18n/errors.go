package i18n

// TrError is an error identified by a catalog key. Format arguments and a
// wrapped cause may be attached without losing the identity of the key, so
// errors.Is matches any two TrErrors sharing a key.
//
// Example usage:
//
//	err := NewError("argparse.error.unknown_option")
//	err = err.WithArgs("-x")
type TrError struct {
	key     string
	args    []any
	wrapped error
	bundle  *Bundle
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	return &TrError{key: key}
}

// Error returns the catalog message, formatted with args if provided
func (e *TrError) Error() string {
	b := e.bundle
	if b == nil {
		b = Default()
	}
	msg := b.T(e.key, e.args...)
	if e.wrapped != nil {
		return msg + ": " + e.wrapped.Error()
	}

	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...any) *TrError {
	return &TrError{
		key:     e.key,
		args:    args,
		wrapped: e.wrapped,
		bundle:  e.bundle,
	}
}

// Wrap returns a copy of the error wrapping err
func (e *TrError) Wrap(err error) *TrError {
	return &TrError{
		key:     e.key,
		args:    e.args,
		wrapped: err,
		bundle:  e.bundle,
	}
}

// WithBundle returns a copy of the error rendered through bundle
func (e *TrError) WithBundle(bundle *Bundle) *TrError {
	return &TrError{
		key:     e.key,
		args:    e.args,
		wrapped: e.wrapped,
		bundle:  bundle,
	}
}

// Is implements errors.Is by comparing keys
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.key == t.key
	}

	return false
}

// Key returns the catalog key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []any {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}
