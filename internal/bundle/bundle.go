// Package bundle reads and writes .lucid files, the on-disk form of a
// resolved report. A bundle is a single msgpack stream holding a schema
// version, save metadata, and the report tree itself.
package bundle

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"lucid"
)

// Current schema version - increment when the payload format changes
const schemaVersion uint16 = 1

// ErrSchema is returned when a bundle was written with a schema version
// this build does not understand.
var ErrSchema = errors.New("unsupported bundle schema")

// Bundle pairs a stored report with the metadata written alongside it.
type Bundle struct {
	Saved  time.Time
	Tool   string
	Report lucid.UserFacingError
}

// payload is the wire form. Report trees are mirrored into plain structs
// so the core types stay free of codec concerns.
type payload struct {
	Schema uint16
	Saved  time.Time
	Tool   string
	Report reportPayload
}

type reportPayload struct {
	Summary        string
	ExtendedReason string
	Highlights     []highlightPayload
	Related        []reportPayload
}

type highlightPayload struct {
	Path    string
	Content string
	Labels  []labelPayload
}

type labelPayload struct {
	Start   int
	End     int
	Message string
}

// Encode writes b to w as a single msgpack stream.
func Encode(w io.Writer, b Bundle) error {
	p := payload{
		Schema: schemaVersion,
		Saved:  b.Saved,
		Tool:   b.Tool,
		Report: encodeReport(b.Report),
	}
	return msgpack.NewEncoder(w).Encode(&p)
}

// Decode reads a bundle from r.
func Decode(r io.Reader) (Bundle, error) {
	var p payload
	if err := msgpack.NewDecoder(r).Decode(&p); err != nil {
		return Bundle{}, err
	}
	if p.Schema != schemaVersion {
		return Bundle{}, fmt.Errorf("%w: got %d, want %d", ErrSchema, p.Schema, schemaVersion)
	}
	return Bundle{
		Saved:  p.Saved,
		Tool:   p.Tool,
		Report: decodeReport(p.Report),
	}, nil
}

// WriteFile writes b to path atomically via a temp file in the same
// directory.
func WriteFile(path string, b Bundle) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := Encode(f, b); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// ReadFile reads the bundle stored at path.
func ReadFile(path string) (Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return Bundle{}, err
	}
	defer func() {
		_ = f.Close()
	}()
	return Decode(f)
}

func encodeReport(ufe lucid.UserFacingError) reportPayload {
	p := reportPayload{
		Summary:        ufe.Cause.Summary,
		ExtendedReason: ufe.Cause.ExtendedReason,
	}
	for _, fh := range ufe.Cause.Highlights {
		hp := highlightPayload{Path: fh.Path, Content: fh.Content}
		for _, l := range fh.Labels {
			hp.Labels = append(hp.Labels, labelPayload{Start: l.Start, End: l.End, Message: l.Message})
		}
		p.Highlights = append(p.Highlights, hp)
	}
	for _, rel := range ufe.Related {
		p.Related = append(p.Related, encodeReport(rel))
	}
	return p
}

func decodeReport(p reportPayload) lucid.UserFacingError {
	cause := lucid.ErrorCause{
		Summary:        p.Summary,
		ExtendedReason: p.ExtendedReason,
	}
	for _, hp := range p.Highlights {
		fh := lucid.FileHighlight{Path: hp.Path, Content: hp.Content}
		for _, l := range hp.Labels {
			fh.Labels = append(fh.Labels, lucid.FileLabel{Start: l.Start, End: l.End, Message: l.Message})
		}
		cause.Highlights = append(cause.Highlights, fh)
	}
	ufe := lucid.UserFacingError{Cause: cause}
	for _, rel := range p.Related {
		ufe.Related = append(ufe.Related, decodeReport(rel))
	}
	return ufe
}
