package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/suzuki-shunsuke/pyrignore/refs/heads/main/json-schema/pyrignore.json
# pyrignore - https://github.com/suzuki-shunsuke/pyrignore
# comment_style: type
# ignore_rules:
#   - reportMissingTypeStubs
# exclude_files:
#   - pattern: generated/*.py
`
	filePermission os.FileMode = 0o644
)

// Init creates a configuration file with a commented template if it
// doesn't exist yet.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}
