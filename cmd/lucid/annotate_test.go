package main

import (
	"testing"

	"lucid/annotate"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    annotate.Label
		wantErr bool
	}{
		{
			name: "with message",
			spec: "18:21:expected a number",
			want: annotate.Label{Start: 18, End: 21, Message: "expected a number"},
		},
		{
			name: "message keeps its colons",
			spec: "0:4:see https://example.com:8080/docs",
			want: annotate.Label{Start: 0, End: 4, Message: "see https://example.com:8080/docs"},
		},
		{
			name: "no message",
			spec: "5:9",
			want: annotate.Label{Start: 5, End: 9},
		},
		{name: "missing end", spec: "5", wantErr: true},
		{name: "bad start", spec: "x:9:msg", wantErr: true},
		{name: "bad end", spec: "5:y:msg", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLabel(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseLabel() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseLabel() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseLabel(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		value   string
		want    annotate.Kind
		wantErr bool
	}{
		{value: "error", want: annotate.KindError},
		{value: "warning", want: annotate.KindWarning},
		{value: "note", want: annotate.KindNote},
		{value: " Error ", want: annotate.KindError},
		{value: "fatal", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseKind(tt.value)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseKind(%q) error = nil, want error", tt.value)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseKind(%q) error: %v", tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseKind(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestReadUIMode(t *testing.T) {
	tests := []struct {
		value   string
		want    uiMode
		wantErr bool
	}{
		{value: "", want: uiModeAuto},
		{value: "auto", want: uiModeAuto},
		{value: "on", want: uiModeOn},
		{value: "OFF", want: uiModeOff},
		{value: "maybe", wantErr: true},
	}
	for _, tt := range tests {
		got, err := readUIMode(tt.value)
		if tt.wantErr {
			if err == nil {
				t.Errorf("readUIMode(%q) error = nil, want error", tt.value)
			}
			continue
		}
		if err != nil {
			t.Errorf("readUIMode(%q) error: %v", tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("readUIMode(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
