// Package run implements the core logic of pyrignore.
// The controller consumes a pyright JSON report, builds a per-file patch
// plan (which lines get a suppression comment appended and which get one
// stripped), applies the plan to in-memory line buffers, and hands the
// result to one of three output sinks: in-place write, unified diff, or
// plain print. Source files are treated as opaque sequences of text lines;
// nothing here parses Python.
package run

import (
	"io"

	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/pyrignore/pkg/config"
	"github.com/suzuki-shunsuke/pyrignore/pkg/report"
)

type Controller struct {
	fs           afero.Fs
	reportReader ReportReader
	cfgFinder    ConfigFinder
	cfgReader    ConfigReader
	cfg          *config.Config
	param        *ParamRun
	logger       *Logger
	stdout       io.Writer
}

type ReportReader interface {
	Read(rep *report.Report, path string) error
}

type ConfigFinder interface {
	Find(configFilePath string) (string, error)
}

type ConfigReader interface {
	Read(cfg *config.Config, configFilePath string) error
}

func New(fs afero.Fs, reportReader ReportReader, cfgFinder ConfigFinder, cfgReader ConfigReader, param *ParamRun) *Controller {
	return &Controller{
		fs:           fs,
		reportReader: reportReader,
		cfgFinder:    cfgFinder,
		cfgReader:    cfgReader,
		cfg:          &config.Config{},
		param:        param,
		logger:       NewLogger(param.Stderr),
		stdout:       param.Stdout,
	}
}
