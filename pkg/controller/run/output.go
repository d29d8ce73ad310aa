package run

import (
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/afero"
)

const filePermission os.FileMode = 0o644

func (c *Controller) output(plan *Plan) error {
	switch {
	case c.param.Inplace:
		return c.writeInplace(plan)
	case c.param.Diff:
		return c.outputDiff(plan)
	default:
		return c.outputPlain(plan)
	}
}

// writeInplace overwrites each changed file with its buffer. Writes are
// not transactional: a failure leaves already written files written.
func (c *Controller) writeInplace(plan *Plan) error {
	for _, buf := range plan.Buffers() {
		if !buf.changed {
			continue
		}
		if err := afero.WriteFile(c.fs, buf.Path, []byte(buf.Content()), filePermission); err != nil {
			return fmt.Errorf("write a file: %w", err)
		}
	}
	c.logger.Success("ignore comments were processed successfully")
	return nil
}

// outputDiff prints a unified diff between each file's on-disk content,
// re-read fresh, and its buffer. Unchanged files produce no output.
func (c *Controller) outputDiff(plan *Plan) error {
	for _, buf := range plan.Buffers() {
		b, err := afero.ReadFile(c.fs, buf.Path)
		if err != nil {
			return fmt.Errorf("read a file: %w", err)
		}
		text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        splitLines(string(b)),
			B:        buf.Lines,
			FromFile: buf.Path,
			ToFile:   buf.Path,
			Context:  3,
		})
		if err != nil {
			return fmt.Errorf("compute a unified diff: %w", err)
		}
		fmt.Fprint(c.stdout, text)
	}
	return nil
}

// outputPlain prints each loaded buffer with a file path header.
func (c *Controller) outputPlain(plan *Plan) error {
	for _, buf := range plan.Buffers() {
		fmt.Fprintf(c.stdout, "--- %s ---\n", buf.Path)
		fmt.Fprint(c.stdout, buf.Content())
		fmt.Fprintln(c.stdout)
	}
	return nil
}
