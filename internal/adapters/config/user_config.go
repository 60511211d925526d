package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"go.trai.ch/hatchery/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultUserConfigPath returns $XDG_CONFIG_HOME/hatchery/config.yaml.
func DefaultUserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, domain.AppName, domain.UserConfigFileName)
}

// DefaultDataDir returns $XDG_DATA_HOME/hatchery.
func DefaultDataDir() string {
	return filepath.Join(xdg.DataHome, domain.AppName)
}

// UserConfigLoader implements ports.UserConfigLoader for a YAML file.
// A missing file yields the defaults.
type UserConfigLoader struct {
	path string
}

// NewUserConfigLoader creates a loader reading path.
func NewUserConfigLoader(path string) *UserConfigLoader {
	return &UserConfigLoader{path: path}
}

// Load reads the user configuration.
func (l *UserConfigLoader) Load() (*domain.UserConfig, error) {
	cfg := &domain.UserConfig{DataDir: DefaultDataDir()}

	// #nosec G304 -- path is the user's own configuration file
	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrUserConfigReadFailed.Error()), "path", l.path)
	}

	var file UserConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrUserConfigParseFailed.Error()), "path", l.path)
	}

	if file.Dirs.Data != "" {
		cfg.DataDir = expandHome(file.Dirs.Data)
	}
	cfg.EnvDirs = file.Dirs.Env
	cfg.Verbosity = file.Verbose - file.Quiet

	return cfg, nil
}

func expandHome(path string) string {
	if rest, ok := cutHome(path); ok {
		return filepath.Join(xdg.Home, rest)
	}
	return path
}

func cutHome(path string) (string, bool) {
	if path == "~" {
		return "", true
	}
	if len(path) > 1 && path[0] == '~' && path[1] == filepath.Separator {
		return path[2:], true
	}
	return "", false
}
