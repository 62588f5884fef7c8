package render

import (
	"strings"
	"testing"

	"lucid"
)

func compositeError() lucid.UserFacingError {
	highlight := lucid.FileHighlight{
		Path:    "cfg.toml",
		Content: sampleContent,
		Labels: []lucid.FileLabel{
			{Start: 10, End: 15, Message: "the key"},
			{Start: 18, End: 21, Message: "the value"},
		},
	}
	leaf := lucid.New(lucid.NewCause("strconv.Atoi: parsing \"two\": invalid syntax"))
	return lucid.New(
		lucid.NewCause("bad configuration value").
			WithExtendedReason("values under [limits] must be integers").
			WithHighlight(highlight),
	).WithRelated(leaf)
}

func TestBuildOutput(t *testing.T) {
	out := BuildOutput(compositeError(), JSONOpts{})

	if out.Summary != "bad configuration value" {
		t.Errorf("Summary = %q", out.Summary)
	}
	if out.ExtendedReason != "values under [limits] must be integers" {
		t.Errorf("ExtendedReason = %q", out.ExtendedReason)
	}
	if len(out.Highlights) != 1 {
		t.Fatalf("len(Highlights) = %d, want 1", len(out.Highlights))
	}
	hl := out.Highlights[0]
	if hl.Path != "cfg.toml" {
		t.Errorf("Path = %q", hl.Path)
	}
	if hl.Content != "" {
		t.Errorf("Content = %q, want empty without IncludeContent", hl.Content)
	}
	if len(hl.Labels) != 2 {
		t.Fatalf("len(Labels) = %d, want 2", len(hl.Labels))
	}
	if hl.Labels[1].StartByte != 18 || hl.Labels[1].EndByte != 21 || hl.Labels[1].Message != "the value" {
		t.Errorf("Labels[1] = %+v", hl.Labels[1])
	}
	if len(out.Related) != 1 {
		t.Fatalf("len(Related) = %d, want 1", len(out.Related))
	}
	if got := out.Related[0].Summary; !strings.Contains(got, "invalid syntax") {
		t.Errorf("Related[0].Summary = %q", got)
	}
}

func TestBuildOutputIncludeContent(t *testing.T) {
	out := BuildOutput(compositeError(), JSONOpts{IncludeContent: true})
	if out.Highlights[0].Content != sampleContent {
		t.Errorf("Content = %q, want the snapshot", out.Highlights[0].Content)
	}
}

func TestBuildOutputMaxDepth(t *testing.T) {
	leaf := lucid.New(lucid.NewCause("leaf"))
	mid := lucid.New(lucid.NewCause("mid")).WithRelated(leaf)
	top := lucid.New(lucid.NewCause("top")).WithRelated(mid)

	out := BuildOutput(top, JSONOpts{MaxDepth: 2})
	if len(out.Related) != 1 {
		t.Fatalf("len(Related) = %d, want 1", len(out.Related))
	}
	if len(out.Related[0].Related) != 0 {
		t.Errorf("depth limit not applied: %+v", out.Related[0].Related)
	}
}

func TestJSONOmitsEmptyFields(t *testing.T) {
	var b strings.Builder
	if err := JSON(&b, lucid.New(lucid.NewCause("plain")), JSONOpts{}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	got := b.String()

	if !strings.Contains(got, `"summary": "plain"`) {
		t.Errorf("summary missing:\n%s", got)
	}
	for _, key := range []string{"extended_reason", "highlights", "related", "content"} {
		if strings.Contains(got, key) {
			t.Errorf("empty field %q was encoded:\n%s", key, got)
		}
	}
}
