package initcmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/suzuki-shunsuke/ghannotate/refs/heads/main/json-schema/ghannotate.json
# ghannotate - https://github.com/suzuki-shunsuke/ghannotate
# title: Annotations
# format: auto # auto, json, yaml, sarif
# ignore_missing_file: true
# ignore_unauthorized_error: false
# workflow_commands: false
# required_version: ">= 1.0.0"
`
	filePermission os.FileMode = 0o644
)

// Init creates a configuration file with a template if it doesn't exist.
func (c *Controller) Init(logE *logrus.Entry, configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		logE.WithField("config", configFilePath).Info("the configuration file already exists")
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	logE.WithField("config", configFilePath).Info("created a configuration file")
	return nil
}
