// Package config is the Configuration external collaborator (spec.md §3,
// §6): only the resulting values matter to the core, but ncexe still needs
// a concrete loader to produce them. Grounded on
// dcosson-h2/internal/config/config.go's Load/LoadFrom split and its
// "missing file is not an error" policy, built on the same
// gopkg.in/yaml.v3 dependency.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Configuration is the subset spec.md §3 names: theme name and whether to
// show non-executable files in the File List.
type Configuration struct {
	Theme      string `yaml:"theme"`
	ShowNotExe bool   `yaml:"show_notexe"`
}

// defaultConfiguration is what ncexe runs with when no file, flag, or
// environment variable supplies a value.
func defaultConfiguration() Configuration {
	return Configuration{Theme: "dark"}
}

// DefaultPath resolves ~/.config/ncexe.yaml, falling back to a relative
// path if the home directory can't be determined (mirrors h2's ConfigDir).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "ncexe.yaml")
	}
	return filepath.Join(home, ".config", "ncexe.yaml")
}

// Load resolves the configuration file path with priority
// explicitPath > $NCEXE_CONFIG > DefaultPath(), then delegates to
// LoadFrom.
func Load(explicitPath string) (Configuration, error) {
	path := explicitPath
	if path == "" {
		path = os.Getenv("NCEXE_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	return LoadFrom(path)
}

// LoadFrom reads and unmarshals the YAML file at path. A missing file
// yields the zero-value-plus-defaults Configuration with no error — a
// typo'd default path should never stop the viewer from starting.
func LoadFrom(path string) (Configuration, error) {
	cfg := defaultConfiguration()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Merge applies CLI flag overrides on top of a file-loaded Configuration.
// CLI flags always win: a non-empty cliTheme replaces the file's theme,
// and cliShowNotExe forces ShowNotExe on regardless of the file's value
// (there is no CLI way to force it off once the file has it on — matching
// the teacher pack's additive-override convention for boolean flags).
func (c Configuration) Merge(cliTheme string, cliShowNotExe bool) Configuration {
	merged := c
	if cliTheme != "" {
		merged.Theme = cliTheme
	}
	if cliShowNotExe {
		merged.ShowNotExe = true
	}
	return merged
}
