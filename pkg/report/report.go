// Package report defines the pyright JSON report model and a reader.
// The report is the output of `pyright --outputjson`, read either from a
// named file or from standard input. Only the fields pyrignore needs are
// modeled; unknown fields are ignored.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// RemovalRule is the rule pyright reports for a suppression comment
// that is no longer necessary.
const RemovalRule = "reportUnnecessaryTypeIgnoreComment"

type Report struct {
	GeneralDiagnostics []*Diagnostic `json:"generalDiagnostics"`
}

type Diagnostic struct {
	File  string `json:"file"`
	Range Range  `json:"range"`
	// Rule may be absent. An empty rule is never a removal request.
	Rule string `json:"rule,omitempty"`
}

type Range struct {
	Start Position `json:"start"`
}

type Position struct {
	// Line is zero-based.
	Line int `json:"line"`
}

// Line returns the zero-based start line of the diagnostic.
func (d *Diagnostic) Line() int {
	return d.Range.Start.Line
}

// IsRemoval reports whether the diagnostic requests removing a
// suppression comment rather than adding one.
func (d *Diagnostic) IsRemoval() bool {
	return d.Rule == RemovalRule
}

type Reader struct {
	fs    afero.Fs
	stdin io.Reader
}

func NewReader(fs afero.Fs, stdin io.Reader) *Reader {
	return &Reader{fs: fs, stdin: stdin}
}

// Read decodes a report from path, or from standard input if path is
// empty or "-". A decode failure is fatal to the run.
func (r *Reader) Read(rep *Report, path string) error {
	if path == "" || path == "-" {
		if err := json.NewDecoder(r.stdin).Decode(rep); err != nil {
			return fmt.Errorf("decode the report from stdin as JSON: %w", err)
		}
		return nil
	}
	f, err := r.fs.Open(path)
	if err != nil {
		return fmt.Errorf("open the report file: %w", err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(rep); err != nil {
		return fmt.Errorf("decode the report file as JSON: %w", err)
	}
	return nil
}
