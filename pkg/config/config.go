// Package config reads the optional configuration file of ghannotate.
package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/ghannotate/pkg/finding"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Title                   string `json:"title,omitempty" jsonschema:"description=The name and output title of the check run. The default is Annotations"`
	Format                  string `json:"format,omitempty" jsonschema:"enum=auto,enum=json,enum=yaml,enum=sarif,description=The format of the input file. By default it is decided by the file extension"`
	IgnoreMissingFile       *bool  `json:"ignore_missing_file,omitempty" yaml:"ignore_missing_file" jsonschema:"description=Succeed without doing anything if the input file doesn't exist. The default is true"`
	IgnoreUnauthorizedError *bool  `json:"ignore_unauthorized_error,omitempty" yaml:"ignore_unauthorized_error" jsonschema:"description=Succeed if the token isn't allowed to create a check run. The default is false"`
	WorkflowCommands        *bool  `json:"workflow_commands,omitempty" yaml:"workflow_commands" jsonschema:"description=Print findings as GitHub Actions workflow commands too"`
	RequiredVersion         string `json:"required_version,omitempty" yaml:"required_version" jsonschema:"description=A version constraint of ghannotate such as >= 1.0.0"`
}

// Validate checks the values that can be checked without an input file.
func (c *Config) Validate() error {
	switch c.Format {
	case "", finding.FormatAuto, finding.FormatJSON, finding.FormatYAML, finding.FormatSARIF:
		return nil
	default:
		return fmt.Errorf("format must be one of auto, json, yaml, and sarif: %s", c.Format)
	}
}

// CheckRequiredVersion checks if the running version satisfies required_version.
// The check is skipped if either is empty or the running version isn't a
// semantic version such as a development build.
func CheckRequiredVersion(constraint, current string) error {
	if constraint == "" || current == "" {
		return nil
	}
	cv, err := version.NewVersion(current)
	if err != nil {
		return nil //nolint:nilerr
	}
	constraints, err := version.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parse required_version: %w", logerr.WithFields(err, logrus.Fields{
			"required_version": constraint,
		}))
	}
	if !constraints.Check(cv) {
		return logerr.WithFields(fmt.Errorf("ghannotate %s doesn't satisfy required_version", current), logrus.Fields{ //nolint:err113
			"required_version": constraint,
		})
	}
	return nil
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".ghannotate.yaml", ".github/ghannotate.yaml", ".ghannotate.yml", ".github/ghannotate.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
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

// Find returns configFilePath if it isn't empty.
// Otherwise it searches the default paths, and returns an empty string if
// no configuration file is found.
func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	p, err := getConfigPath(f.fs)
	if err != nil {
		return "", err
	}
	return p, nil
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate a configuration file: %w", err)
	}
	return nil
}
