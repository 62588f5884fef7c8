package lucid

import "golang.org/x/text/language"

// Context carries environment information into converters without widening
// their signatures. Obtain one with NewContext and derive variants with the
// With* methods; converters must treat it as read-only.
type Context struct {
	locale language.Tag
}

// NewContext returns the default context: undetermined locale.
func NewContext() Context {
	return Context{locale: language.Und}
}

// WithLocale returns a copy of the context for the given locale.
func (c Context) WithLocale(tag language.Tag) Context {
	c.locale = tag
	return c
}

// Locale reports the language explanations should be written in,
// language.Und when none was set.
func (c Context) Locale() language.Tag {
	return c.locale
}
