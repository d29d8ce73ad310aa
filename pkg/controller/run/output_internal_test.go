package run

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/pyrignore/pkg/config"
)

func newOutputController(fs afero.Fs, param *ParamRun) *Controller {
	return &Controller{
		fs:     fs,
		cfg:    &config.Config{},
		param:  param,
		logger: NewLogger(param.Stderr),
		stdout: param.Stdout,
	}
}

func newChangedBuffer(path string, lines []string) *FileBuffer {
	return &FileBuffer{
		Path:     path,
		Lines:    lines,
		added:    map[int]struct{}{},
		removed:  map[int]struct{}{},
		appended: map[int]struct{}{},
		changed:  true,
	}
}

func TestController_writeInplace(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "a.py", []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "b.py", []byte("y = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	ctrl := newOutputController(fs, &ParamRun{Inplace: true, Stdout: stdout, Stderr: stderr})

	plan := NewPlan()
	changed := newChangedBuffer("a.py", []string{"x = 1  # type: ignore\n"})
	plan.buffers["a.py"] = changed
	plan.order = append(plan.order, "a.py")
	unchanged := newChangedBuffer("b.py", []string{"overwritten\n"})
	unchanged.changed = false
	plan.buffers["b.py"] = unchanged
	plan.order = append(plan.order, "b.py")

	if err := ctrl.output(plan); err != nil {
		t.Fatal(err)
	}
	a, err := afero.ReadFile(fs, "a.py")
	if err != nil {
		t.Fatal(err)
	}
	if exp := "x = 1  # type: ignore\n"; string(a) != exp {
		t.Errorf("a.py: wanted %q, got %q", exp, string(a))
	}
	b, err := afero.ReadFile(fs, "b.py")
	if err != nil {
		t.Fatal(err)
	}
	if exp := "y = 2\n"; string(b) != exp {
		t.Errorf("b.py must not be rewritten: got %q", string(b))
	}
	if !strings.Contains(stderr.String(), "processed successfully") {
		t.Errorf("stderr must contain the confirmation:\n%s", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout must be empty in in-place mode:\n%s", stdout.String())
	}
}

func TestController_outputDiff(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "a.py", []byte("x = 1\ny = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	stdout := &bytes.Buffer{}
	ctrl := newOutputController(fs, &ParamRun{Diff: true, Stdout: stdout, Stderr: &bytes.Buffer{}})

	plan := NewPlan()
	buf := newChangedBuffer("a.py", []string{"x = 1\n", "y = 2  # type: ignore\n"})
	plan.buffers["a.py"] = buf
	plan.order = append(plan.order, "a.py")

	if err := ctrl.output(plan); err != nil {
		t.Fatal(err)
	}
	out := stdout.String()
	for _, want := range []string{"--- a.py", "+++ a.py", "-y = 2\n", "+y = 2  # type: ignore\n", " x = 1\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("diff must contain %q:\n%s", want, out)
		}
	}
	// the file itself is untouched in diff mode
	b, err := afero.ReadFile(fs, "a.py")
	if err != nil {
		t.Fatal(err)
	}
	if exp := "x = 1\ny = 2\n"; string(b) != exp {
		t.Errorf("a.py must not be rewritten: got %q", string(b))
	}
}

func TestController_outputPlain(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	stdout := &bytes.Buffer{}
	ctrl := newOutputController(fs, &ParamRun{Stdout: stdout, Stderr: &bytes.Buffer{}})

	plan := NewPlan()
	buf := newChangedBuffer("a.py", []string{"x = 1  # type: ignore\n"})
	plan.buffers["a.py"] = buf
	plan.order = append(plan.order, "a.py")

	if err := ctrl.output(plan); err != nil {
		t.Fatal(err)
	}
	exp := "--- a.py ---\nx = 1  # type: ignore\n\n"
	if stdout.String() != exp {
		t.Errorf("wanted %q, got %q", exp, stdout.String())
	}
}
