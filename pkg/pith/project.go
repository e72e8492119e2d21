package pith

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// ProjectConfigFile is the name of the project configuration file.
const ProjectConfigFile = "pith.toml"

// ProjectConfig represents a pith.toml project configuration file.
type ProjectConfig struct {
	Format FormatConfig `toml:"format"`
	Check  CheckConfig  `toml:"check"`
}

// FormatConfig configures Format.
type FormatConfig struct {
	// Indent is written once per nesting level. Defaults to a tab.
	Indent string `toml:"indent,omitempty"`
}

// Formatter returns a Formatter configured by c.
func (c FormatConfig) Formatter() *Formatter {
	return &Formatter{IndentString: c.Indent}
}

// LoadProjectConfig loads a pith.toml file from the given path.
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	var config ProjectConfig
	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("parsing %s: unknown key %q", path, undecoded[0].String())
	}
	for _, code := range config.Check.Disable {
		if !slices.Contains(CheckCodes, code) {
			return nil, errors.Errorf("parsing %s: unknown check %q", path, code)
		}
	}
	return &config, nil
}

// FindProjectConfig searches for a pith.toml file starting from dir and
// walking up to parent directories. Returns the path to pith.toml and the
// parsed config, or ("", nil, nil) if not found.
func FindProjectConfig(dir string) (string, *ProjectConfig, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, err
	}
	for {
		path := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(path); err == nil {
			config, err := LoadProjectConfig(path)
			if err != nil {
				return "", nil, err
			}
			return path, config, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil, nil
		}
		dir = parent
	}
}
