// Package config handles pyrignore's configuration file (.pyrignore.yaml).
// The configuration is optional; every field has a default. It controls
// which suppression comment is appended, which diagnostic rules are ignored,
// and which files are excluded from annotation.
package config

import (
	"errors"
	"fmt"
	"path"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

const (
	CommentStyleType    = "type"
	CommentStylePyright = "pyright"
)

type Config struct {
	CommentStyle string         `json:"comment_style,omitempty" yaml:"comment_style" jsonschema:"enum=type,enum=pyright,description=Suppression comment style appended to reported lines. type appends '# type: ignore' and pyright appends '# pyright: ignore'"`
	IgnoreRules  []string       `json:"ignore_rules,omitempty" yaml:"ignore_rules" jsonschema:"description=Diagnostic rules that are never annotated"`
	ExcludeFiles []*ExcludeFile `json:"exclude_files,omitempty" yaml:"exclude_files" jsonschema:"description=Files whose diagnostics are skipped"`
}

type ExcludeFile struct {
	Pattern string `json:"pattern" jsonschema:"description=A glob pattern of excluded files."`
}

func (f *ExcludeFile) Init() error {
	if f.Pattern == "" {
		return errors.New("pattern is required")
	}
	if _, err := path.Match(f.Pattern, "a"); err != nil {
		return fmt.Errorf("parse pattern as a glob: %w", err)
	}
	return nil
}

func (c *Config) Init() error {
	switch c.CommentStyle {
	case "":
		c.CommentStyle = CommentStyleType
	case CommentStyleType, CommentStylePyright:
	default:
		return errors.New("comment_style must be type or pyright")
	}
	for _, f := range c.ExcludeFiles {
		if err := f.Init(); err != nil {
			return fmt.Errorf("initialize exclude_file: %w", err)
		}
	}
	return nil
}

// IgnoresRule reports whether diagnostics with the rule must not be annotated.
func (c *Config) IgnoresRule(rule string) bool {
	if rule == "" {
		return false
	}
	for _, r := range c.IgnoreRules {
		if r == rule {
			return true
		}
	}
	return false
}

// ExcludesFile reports whether diagnostics for the file path must be skipped.
func (c *Config) ExcludesFile(p string) (bool, error) {
	for _, f := range c.ExcludeFiles {
		matched, err := path.Match(f.Pattern, p)
		if err != nil {
			return false, fmt.Errorf("match %s as a glob: %w", f.Pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, p := range []string{".pyrignore.yaml", ".pyrignore.yml"} {
		f, err := afero.Exists(fs, p)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", p, err)
		}
		if f {
			return p, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	return getConfigPath(f.fs)
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

// Read decodes the configuration file into cfg and validates it.
// An empty path means no configuration file; cfg keeps its defaults.
func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return cfg.Init()
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	if err := cfg.Init(); err != nil {
		return fmt.Errorf("validate a configuration file: %w", err)
	}
	return nil
}
