package domain

import (
	"maps"
	"os"
	"slices"
	"strings"
)

// EnvVars is a set of environment variable overrides applied for a bounded scope.
type EnvVars map[string]string

// Apply sets every variable in the process environment and returns a function that
// restores the previous state, unsetting variables that did not exist before.
// The restore function must be called exactly once, typically with defer.
func (e EnvVars) Apply() (restore func()) {
	type previous struct {
		value   string
		present bool
	}

	saved := make(map[string]previous, len(e))
	for key, value := range e {
		old, ok := os.LookupEnv(key)
		saved[key] = previous{value: old, present: ok}
		_ = os.Setenv(key, value)
	}

	return func() {
		for key, prev := range saved {
			if prev.present {
				_ = os.Setenv(key, prev.value)
			} else {
				_ = os.Unsetenv(key)
			}
		}
	}
}

// Merge returns a new set containing e overridden by other.
func (e EnvVars) Merge(other EnvVars) EnvVars {
	merged := make(EnvVars, len(e)+len(other))
	maps.Copy(merged, e)
	maps.Copy(merged, other)
	return merged
}

// Environ renders the variables as sorted "KEY=VALUE" pairs.
func (e EnvVars) Environ() []string {
	keys := slices.Sorted(maps.Keys(e))
	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+e[k])
	}
	return env
}

// IsTruthy reports whether an environment variable value means "enabled".
func IsTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true":
		return true
	default:
		return false
	}
}
