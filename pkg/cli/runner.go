// Package cli builds pyrignore's command line interface.
package cli

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/pyrignore/pkg/cli/initcmd"
	runcmd "github.com/suzuki-shunsuke/pyrignore/pkg/cli/run"
	"github.com/urfave/cli/v3"
)

type Runner struct {
	LDFlags *LDFlags
	LogE    *logrus.Entry
}

type LDFlags struct {
	Version string
	Commit  string
	Date    string
}

func Run(ctx context.Context, logE *logrus.Entry, ldFlags *LDFlags, args ...string) error {
	r := &Runner{
		LDFlags: ldFlags,
		LogE:    logE,
	}
	return r.Run(ctx, args...)
}

func (r *Runner) Run(ctx context.Context, args ...string) error {
	cmd := &cli.Command{
		Name:    "pyrignore",
		Usage:   "Add and remove ignore comments based on pyright diagnostics. https://github.com/suzuki-shunsuke/pyrignore",
		Version: r.LDFlags.Version + " (" + r.LDFlags.Commit + ")",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level",
				Sources: cli.EnvVars("PYRIGNORE_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name: "config",
				Aliases: []string{
					"c",
				},
				Usage:   "configuration file path",
				Sources: cli.EnvVars("PYRIGNORE_CONFIG"),
			},
		},
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			runcmd.New(r.LogE),
			initcmd.New(r.LogE),
			r.newVersionCommand(),
		},
	}
	return cmd.Run(ctx, args) //nolint:wrapcheck
}
