package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "lucid.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write lucid.toml: %v", err)
	}
	return path
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, ok, err := Find(nested)
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if !ok {
		t.Fatal("Find() ok = false, want true")
	}
	if got != want {
		t.Errorf("Find() = %q, want %q", got, want)
	}
}

func TestFindMissing(t *testing.T) {
	_, ok, err := Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if ok {
		t.Error("Find() ok = true, want false")
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[render]
width = 100
color = "on"
context = 1
locale = "de"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := Config{Render: RenderConfig{Width: 100, Color: "on", Context: 1, Locale: "de"}}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadKeepsDefaultsForAbsentKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[render]
color = "off"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Render.Color != "off" {
		t.Errorf("Color = %q, want %q", cfg.Render.Color, "off")
	}
	if cfg.Render.Context != Default().Render.Context {
		t.Errorf("Context = %d, want default %d", cfg.Render.Context, Default().Render.Context)
	}
	if cfg.Render.Width != Default().Render.Width {
		t.Errorf("Width = %d, want default %d", cfg.Render.Width, Default().Render.Width)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "color",
			body: "[render]\ncolor = \"rainbow\"\n",
			want: "render.color",
		},
		{
			name: "width",
			body: "[render]\nwidth = -1\n",
			want: "render.width",
		},
		{
			name: "context",
			body: "[render]\ncontext = -2\n",
			want: "render.context",
		},
		{
			name: "locale",
			body: "[render]\nlocale = \"not a locale\"\n",
			want: "render.locale",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() error = nil, want validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestDiscoverFallsBackToDefaults(t *testing.T) {
	cfg, path, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if path != "" {
		t.Errorf("path = %q, want empty", path)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestParseLocale(t *testing.T) {
	tag, err := RenderConfig{Locale: "fr"}.ParseLocale()
	if err != nil {
		t.Fatalf("ParseLocale() error: %v", err)
	}
	if tag != language.French {
		t.Errorf("tag = %v, want %v", tag, language.French)
	}

	und, err := RenderConfig{}.ParseLocale()
	if err != nil {
		t.Fatalf("ParseLocale() error: %v", err)
	}
	if und != language.Und {
		t.Errorf("tag = %v, want Und", und)
	}
}
