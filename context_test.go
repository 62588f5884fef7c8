package lucid

import (
	"testing"

	"golang.org/x/text/language"
)

func TestContextDefaults(t *testing.T) {
	ctx := NewContext()
	if ctx.Locale() != language.Und {
		t.Errorf("Locale() = %v, want Und", ctx.Locale())
	}
}

func TestContextWithLocaleCopies(t *testing.T) {
	base := NewContext()
	german := base.WithLocale(language.German)

	if german.Locale() != language.German {
		t.Errorf("derived Locale() = %v, want German", german.Locale())
	}
	if base.Locale() != language.Und {
		t.Errorf("base context mutated: %v", base.Locale())
	}
}
