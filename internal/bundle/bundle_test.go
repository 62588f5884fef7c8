package bundle

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"lucid"
)

func sampleBundle() Bundle {
	highlight := lucid.FileHighlight{
		Path:    "cfg.toml",
		Content: "alpha = 1\nbravo = two\n",
		Labels: []lucid.FileLabel{
			{Start: 18, End: 21, Message: "expected a number"},
		},
	}
	leaf := lucid.New(lucid.NewCause("strconv.Atoi: parsing \"two\": invalid syntax"))
	report := lucid.New(
		lucid.NewCause("bad configuration value").
			WithExtendedReason("values under [limits] must be integers").
			WithHighlight(highlight),
	).WithRelated(leaf)

	return Bundle{
		Saved:  time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		Tool:   "lucid-test",
		Report: report,
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := sampleBundle()

	var buf bytes.Buffer
	if err := Encode(&buf, in); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	out, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if !out.Saved.Equal(in.Saved) {
		t.Errorf("Saved = %v, want %v", out.Saved, in.Saved)
	}
	if out.Tool != in.Tool {
		t.Errorf("Tool = %q, want %q", out.Tool, in.Tool)
	}
	if !reflect.DeepEqual(out.Report, in.Report) {
		t.Errorf("Report = %+v, want %+v", out.Report, in.Report)
	}
}

func TestDecodeRejectsUnknownSchema(t *testing.T) {
	var buf bytes.Buffer
	p := payload{Schema: 99, Tool: "future-lucid"}
	if err := msgpack.NewEncoder(&buf).Encode(&p); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	_, err := Decode(&buf)
	if !errors.Is(err, ErrSchema) {
		t.Errorf("Decode() error = %v, want ErrSchema", err)
	}
}

func TestWriteFileReadFile(t *testing.T) {
	in := sampleBundle()
	path := filepath.Join(t.TempDir(), "reports", "out.lucid")

	if err := WriteFile(path, in); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	out, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !reflect.DeepEqual(out.Report, in.Report) {
		t.Errorf("Report = %+v, want %+v", out.Report, in.Report)
	}

	// No temp files should survive a successful write.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestWriteFileCleansUpOnRenameFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.lucid")
	// A directory at the target path makes the final rename fail.
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("mkdir fixture: %v", err)
	}

	if err := WriteFile(path, sampleBundle()); err == nil {
		t.Fatal("WriteFile() succeeded with a directory at the target path")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 1 || !entries[0].IsDir() {
		t.Errorf("temp file left behind, directory entries: %v", entries)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.lucid"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want fs.ErrNotExist", err)
	}
}
