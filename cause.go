// Package lucid turns internal errors into structured, user-facing
// explanations. An extensible registry of converters resolves an opaque
// error value into a UserFacingError tree; the render package turns that
// tree into terminal, JSON, or short-form text.
package lucid

// FileLabel marks the half-open byte range [Start, End) of a highlight's
// content and says what that span means to the user.
type FileLabel struct {
	Start   int
	End     int
	Message string
}

// FileHighlight points at parts of one file. Content is a verbatim snapshot
// taken when the error was recorded: the file may have changed on disk by
// the time the error is shown, so it is never re-read.
type FileHighlight struct {
	Path    string
	Content string
	Labels  []FileLabel
}

// ErrorCause describes what went wrong, in terms meant for the end user.
// Construct it with NewCause and the With* setters; fields may be added
// over time, so positional construction has no compatibility story.
type ErrorCause struct {
	// Summary is always shown. Keep it precise but free of internals.
	Summary string
	// ExtendedReason explains why the error happened, when known at
	// construction time. Empty means absent.
	ExtendedReason string
	// Highlights mark the file regions the error concerns.
	Highlights []FileHighlight
}

// NewCause starts an ErrorCause with the required summary.
func NewCause(summary string) ErrorCause {
	return ErrorCause{Summary: summary}
}

func (c ErrorCause) WithSummary(summary string) ErrorCause {
	c.Summary = summary
	return c
}

func (c ErrorCause) WithExtendedReason(reason string) ErrorCause {
	c.ExtendedReason = reason
	return c
}

func (c ErrorCause) WithHighlight(h FileHighlight) ErrorCause {
	c.Highlights = append(c.Highlights, h)
	return c
}

// UserFacingError is the resolved, presentation-ready form of an error: one
// cause plus the errors related to it, either its resolved cause chain or
// attached sibling context. It is not an error value itself and carries no
// retry or matching semantics.
type UserFacingError struct {
	Cause   ErrorCause
	Related []UserFacingError
}

// New wraps a cause with no related errors.
func New(cause ErrorCause) UserFacingError {
	return UserFacingError{Cause: cause}
}

func (u UserFacingError) WithRelated(related UserFacingError) UserFacingError {
	u.Related = append(u.Related, related)
	return u
}
