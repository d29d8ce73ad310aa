// Package initcmd implements the 'pyrignore init' command, which writes
// a template .pyrignore.yaml so users can quickly set up the tool.
package initcmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/pyrignore/pkg/controller/initcmd"
	"github.com/suzuki-shunsuke/pyrignore/pkg/log"
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
		Name:  "init",
		Usage: "Create .pyrignore.yaml if it doesn't exist",
		Description: `Create .pyrignore.yaml if it doesn't exist

$ pyrignore init

You can also pass a configuration file path.

e.g.

$ pyrignore init .config/pyrignore.yaml
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	log.SetLevel(c.String("log-level"), r.logE)
	ctrl := initcmd.New(afero.NewOsFs())
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = c.String("config")
	}
	if configFilePath == "" {
		configFilePath = ".pyrignore.yaml"
	}
	return ctrl.Init(configFilePath) //nolint:wrapcheck
}
