package run

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/pyrignore/pkg/config"
	"github.com/suzuki-shunsuke/pyrignore/pkg/report"
)

type ParamRun struct {
	// ReportFilePath is the pyright report path. Empty or "-" means stdin.
	ReportFilePath string
	ConfigFilePath string
	Inplace        bool
	Diff           bool
	Stdout         io.Writer
	Stderr         io.Writer
}

// Run executes one annotation run: read the configuration and the report,
// classify every diagnostic into a patch plan, apply the plan to the
// in-memory buffers, and emit the result through the selected sink.
// The whole report is consumed before any file is mutated.
func (c *Controller) Run(_ context.Context, logE *logrus.Entry) error {
	if err := c.readConfig(); err != nil {
		return err
	}
	rep := &report.Report{}
	if err := c.reportReader.Read(rep, c.param.ReportFilePath); err != nil {
		return err //nolint:wrapcheck
	}
	plan := NewPlan()
	for _, diag := range rep.GeneralDiagnostics {
		if err := c.classify(logE, plan, diag); err != nil {
			return err
		}
	}
	c.apply(plan)
	return c.output(plan)
}

func (c *Controller) readConfig() error {
	p, err := c.cfgFinder.Find(c.param.ConfigFilePath)
	if err != nil {
		return fmt.Errorf("find a configuration file: %w", err)
	}
	c.param.ConfigFilePath = p
	cfg := &config.Config{}
	if err := c.cfgReader.Read(cfg, c.param.ConfigFilePath); err != nil {
		return fmt.Errorf("read a configuration file: %w", err)
	}
	c.cfg = cfg
	return nil
}
