// Package dataset reads evaluation records and writes run results as JSON.
package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/baditaflorin/go_text_normalization/internal/core/domain"
)

type rawRecord struct {
	Input          *string `json:"input"`
	ExpectedOutput *string `json:"expected_output"`
	Language       *string `json:"language"`
}

// Decode reads a JSON array of records. input and expected_output are required.
func Decode(r io.Reader) ([]domain.Record, error) {
	var raw []rawRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	records := make([]domain.Record, len(raw))
	for i, rr := range raw {
		if rr.Input == nil {
			return nil, fmt.Errorf("record %d: missing required field %q", i, "input")
		}
		if rr.ExpectedOutput == nil {
			return nil, fmt.Errorf("record %d: missing required field %q", i, "expected_output")
		}
		records[i] = domain.Record{Input: *rr.Input, ExpectedOutput: *rr.ExpectedOutput}
		if rr.Language != nil {
			records[i].Language = *rr.Language
		}
	}
	return records, nil
}

// Encode writes results as an indented JSON array. Non-ASCII and HTML
// characters are written verbatim.
func Encode(w io.Writer, results []domain.Result) error {
	if results == nil {
		results = []domain.Result{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}

// FileSource loads records from a JSON file.
type FileSource struct {
	Path string
}

// Load reads and decodes the file.
func (s FileSource) Load(_ context.Context) ([]domain.Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// FileSink writes results to a JSON file. The file is replaced only after the
// whole result set has been written.
type FileSink struct {
	Path string
}

// Write encodes results into a temporary file next to Path and renames it into place.
func (s FileSink) Write(_ context.Context, results []domain.Result) (err error) {
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temporary output: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, results); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temporary output: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("replace output: %w", err)
	}
	return nil
}
