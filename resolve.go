package lucid

// maxResolveDepth caps cause-chain recursion so an error that reports
// itself (or an ancestor) as its own cause still terminates.
const maxResolveDepth = 64

// Resolve turns an opaque error into its user-facing form using the
// default registry. See Registry.Resolve.
func Resolve(err error, ctx Context) UserFacingError {
	return defaultRegistry.Resolve(err, ctx)
}

// Resolve turns an opaque error into its user-facing form. The first
// registered converter that recognizes the error decides the result; later
// converters are not consulted and results are never merged. When no
// converter matches, the error's own text becomes the summary and its cause
// chain, resolved recursively the same way, becomes the Related entries:
// one entry for a plain wrapped cause, one per branch for multi-errors.
//
// Resolve never fails. A nil error resolves to the zero UserFacingError.
func (r *Registry) Resolve(err error, ctx Context) UserFacingError {
	return r.resolve(err, ctx, 0)
}

func (r *Registry) resolve(err error, ctx Context, depth int) UserFacingError {
	if err == nil {
		return UserFacingError{}
	}

	for _, convert := range r.snapshot() {
		if ufe, ok := convert(err, ctx); ok {
			return ufe
		}
	}

	ufe := New(NewCause(err.Error()))
	if depth >= maxResolveDepth {
		return ufe
	}

	switch wrapped := err.(type) {
	case interface{ Unwrap() error }:
		if cause := wrapped.Unwrap(); cause != nil {
			ufe = ufe.WithRelated(r.resolve(cause, ctx, depth+1))
		}
	case interface{ Unwrap() []error }:
		for _, cause := range wrapped.Unwrap() {
			if cause == nil {
				continue
			}
			ufe = ufe.WithRelated(r.resolve(cause, ctx, depth+1))
		}
	}
	return ufe
}
