package config

import (
	"os"
	"path/filepath"
)

// Hooks used for testing (overridable)
var (
	getwd = os.Getwd
	stat  = os.Stat
)

// ResolveConfigPath finds the configuration file by walking up from the
// working directory. It checks <dir>/cix.yaml and <dir>/.cix/cix.yaml in
// each directory and returns "" when nothing is found.
func ResolveConfigPath() string {
	cwd, err := getwd()
	if err != nil {
		return ""
	}
	for {
		for _, candidate := range []string{
			filepath.Join(cwd, ConfigFile),
			filepath.Join(cwd, ConfigDir, ConfigFile),
		} {
			if fi, err := stat(candidate); err == nil && !fi.IsDir() {
				return candidate
			}
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break // reached filesystem root
		}
		cwd = parent
	}
	return ""
}
