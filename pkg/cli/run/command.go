package run

import (
	"context"
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/pyrignore/pkg/config"
	"github.com/suzuki-shunsuke/pyrignore/pkg/controller/run"
	"github.com/suzuki-shunsuke/pyrignore/pkg/log"
	"github.com/suzuki-shunsuke/pyrignore/pkg/report"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry) *cli.Command {
	r := &runner{
		logE: logE,
	}
	return r.Command()
}

type runner struct {
	logE *logrus.Entry
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Annotate source files based on a pyright JSON report",
		Description: `Read a pyright JSON report and append '# type: ignore' comments to reported lines.
Lines whose suppression comments pyright flags as unnecessary
(reportUnnecessaryTypeIgnoreComment) get their comments removed.

$ pyright --outputjson | pyrignore run

You can also pass the report file path as an argument.

e.g.

$ pyrignore run pyright.json

By default the result is printed to standard output. Use -i to rewrite
files in place, or -d to preview the changes as a unified diff.
`,
		Action: r.action,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "inplace",
				Aliases: []string{"i"},
				Usage:   "Modify files in place",
			},
			&cli.BoolFlag{
				Name:    "diff",
				Aliases: []string{"d"},
				Usage:   "Show changes in unified diff format",
			},
		},
	}
}

var errConfigConflict = errors.New("the --inplace and --diff options are mutually exclusive")

func (r *runner) action(ctx context.Context, c *cli.Command) error {
	log.SetLevel(c.String("log-level"), r.logE)
	if c.Bool("inplace") && c.Bool("diff") {
		return errConfigConflict
	}
	fs := afero.NewOsFs()
	param := &run.ParamRun{
		ReportFilePath: c.Args().First(),
		ConfigFilePath: c.String("config"),
		Inplace:        c.Bool("inplace"),
		Diff:           c.Bool("diff"),
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
	}
	ctrl := run.New(fs, report.NewReader(fs, os.Stdin), config.NewFinder(fs), config.NewReader(fs), param)
	return ctrl.Run(ctx, r.logE) //nolint:wrapcheck
}
