// Package runtimeconfig aggregates file and flag level configuration for the
// checkdocs CLI.
package runtimeconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// ErrInputRequired indicates the catalog file path is missing.
var ErrInputRequired = errors.New("checkdocs config: input catalog path is required")

// ErrOutputDirRequired indicates the page destination is missing.
var ErrOutputDirRequired = errors.New("checkdocs config: output directory is required")

// ErrPreviewDirRequired indicates preview is enabled without a destination.
var ErrPreviewDirRequired = errors.New("checkdocs config: preview output directory is required when preview is enabled")

// ErrPreviewRequiresFences indicates preview cannot be combined with pygments delimiters.
var ErrPreviewRequiresFences = errors.New("checkdocs config: preview requires fenced code blocks, disable pygments")

// ErrLoggingFormatInvalid indicates an unsupported logging format.
var ErrLoggingFormatInvalid = errors.New("checkdocs config: logging format is invalid")

// Config aggregates every runtime option of the generator. Fields use simple
// types so flags and the optional YAML file can both populate them.
type Config struct {
	Input     string        `yaml:"input"`
	OutputDir string        `yaml:"output_dir"`
	Examples  ExampleConfig `yaml:"examples"`
	Pages     PageConfig    `yaml:"pages"`
	Preview   PreviewConfig `yaml:"preview"`
	Logging   LoggingConfig `yaml:"logging"`
}

// ExampleConfig locates the companion example source tree.
type ExampleConfig struct {
	BaseDir string `yaml:"base_dir"`
}

// PageConfig captures page rendering toggles.
type PageConfig struct {
	FrontMatter bool `yaml:"front_matter"`
	Pygments    bool `yaml:"pygments"`
	Index       bool `yaml:"index"`
}

// PreviewConfig captures HTML preview rendering toggles.
type PreviewConfig struct {
	Enabled   bool   `yaml:"enabled"`
	OutputDir string `yaml:"output_dir"`
}

// LoggingConfig captures provider options for runtime logging.
type LoggingConfig struct {
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"add_source"`
	Focus     []string `yaml:"focus"`
}

// Load reads a YAML configuration file into a Config. A missing path returns
// zero values so flag-only invocations work unchanged.
func Load(path string) (Config, error) {
	var cfg Config
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("checkdocs config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("checkdocs config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks cross-field consistency before the run starts.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return ErrInputRequired
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return ErrOutputDirRequired
	}
	if c.Preview.Enabled {
		if strings.TrimSpace(c.Preview.OutputDir) == "" {
			return ErrPreviewDirRequired
		}
		if c.Pages.Pygments {
			return ErrPreviewRequiresFences
		}
	}

	errs := validation.Errors{}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "json", "console", "pretty":
	default:
		errs["logging.format"] = validation.NewError("checkdocs.config.logging_format_invalid", ErrLoggingFormatInvalid.Error())
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
