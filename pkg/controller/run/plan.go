package run

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/pyrignore/pkg/report"
)

// Plan is the per-run patch plan: one FileBuffer per distinct file
// referenced by any diagnostic, in first-reference order. It is built
// while classifying diagnostics and discarded at the end of the run.
type Plan struct {
	buffers map[string]*FileBuffer
	order   []string
}

func NewPlan() *Plan {
	return &Plan{buffers: map[string]*FileBuffer{}}
}

// Buffers returns the file buffers in first-reference order.
func (p *Plan) Buffers() []*FileBuffer {
	bufs := make([]*FileBuffer, 0, len(p.order))
	for _, path := range p.order {
		bufs = append(bufs, p.buffers[path])
	}
	return bufs
}

// FileBuffer is the mutable in-memory state of one file during a run.
// Lines retain their original terminators.
type FileBuffer struct {
	Path  string
	Lines []string
	// added holds line indices classified as additions, including lines
	// that already carried the comment so a second diagnostic can't
	// append a second one.
	added map[int]struct{}
	// removed holds line indices classified as removals. Marker presence
	// is re-validated at apply time.
	removed map[int]struct{}
	// appended holds the indices the addition phase actually modified.
	// The removal phase skips them: a removal targeting such a line was
	// meant for a comment from a previous run, not the one just added.
	appended map[int]struct{}
	changed  bool
}

// Content returns the buffer's full text.
func (b *FileBuffer) Content() string {
	return strings.Join(b.Lines, "")
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// loadFile returns the plan's buffer for path, loading the file on first
// reference. A missing file yields (nil, nil) after a warning; the caller
// skips the diagnostic.
func (c *Controller) loadFile(logE *logrus.Entry, plan *Plan, path string) (*FileBuffer, error) {
	if buf, ok := plan.buffers[path]; ok {
		return buf, nil
	}
	ok, err := afero.Exists(c.fs, path)
	if err != nil {
		return nil, fmt.Errorf("check if a file exists: %w", err)
	}
	if !ok {
		logE.WithField("file", path).Warn("the file isn't found. Skipping")
		return nil, nil
	}
	b, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read a file: %w", err)
	}
	buf := &FileBuffer{
		Path:     path,
		Lines:    splitLines(string(b)),
		added:    map[int]struct{}{},
		removed:  map[int]struct{}{},
		appended: map[int]struct{}{},
	}
	plan.buffers[path] = buf
	plan.order = append(plan.order, path)
	return buf, nil
}

// classify records one diagnostic in the plan. Recoverable conditions
// (missing file, out-of-range line, ignored rule, excluded file) skip the
// diagnostic and never abort the run.
func (c *Controller) classify(logE *logrus.Entry, plan *Plan, diag *report.Diagnostic) error {
	excluded, err := c.cfg.ExcludesFile(diag.File)
	if err != nil {
		return err
	}
	if excluded {
		logE.WithField("file", diag.File).Debug("the file is excluded by the configuration")
		return nil
	}
	buf, err := c.loadFile(logE, plan, diag.File)
	if err != nil {
		return err
	}
	if buf == nil {
		return nil
	}
	line := diag.Line()
	if diag.IsRemoval() {
		// Out-of-range removals are dropped without a warning. The apply
		// phase re-validates that a marker is present anyway.
		if line >= 0 && line < len(buf.Lines) {
			buf.removed[line] = struct{}{}
		}
		return nil
	}
	if c.cfg.IgnoresRule(diag.Rule) {
		logE.WithFields(logrus.Fields{
			"file": diag.File,
			"rule": diag.Rule,
		}).Debug("the rule is ignored by the configuration")
		return nil
	}
	if line >= len(buf.Lines) {
		logE.WithFields(logrus.Fields{
			"file": diag.File,
			"line": line + 1,
		}).Warn("the line is out of range. Skipping")
		return nil
	}
	if line < 0 {
		return nil
	}
	buf.added[line] = struct{}{}
	return nil
}
