package lucid

// Explainer is the capability an error type implements to describe itself
// in user-facing terms.
type Explainer interface {
	Explain(ctx Context) UserFacingError
}

// ConvertFunc inspects an opaque error and, when it recognizes it, produces
// its user-facing form. Returning false means "not mine" and is a normal
// outcome, never a failure.
//
// A converter must return false for every error it does not specifically
// recognize. One that unconditionally returns true swallows every error
// reaching it and starves the converters registered after it; nothing
// detects this at runtime.
type ConvertFunc func(err error, ctx Context) (UserFacingError, bool)

// ForType returns a converter that recognizes exactly the error type T and
// delegates to its Explain method.
//
// Matching is a direct type assertion against the value at the current
// resolution level; wrap chains are not searched. A cause of type T inside
// a wrapped error surfaces as a Related entry of the enclosing error, not
// as the error itself.
func ForType[T interface {
	error
	Explainer
}]() ConvertFunc {
	return func(err error, ctx Context) (UserFacingError, bool) {
		t, ok := err.(T)
		if !ok {
			return UserFacingError{}, false
		}
		return t.Explain(ctx), true
	}
}
