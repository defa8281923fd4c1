// Package config loads plume.yml, the optional per-project configuration.
// A missing file yields the defaults; a present file is schema-validated
// before use.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the fixed name of the project configuration file.
const FileName = "plume.yml"

// Config is the resolved plume configuration.
type Config struct {
	Workspace WorkspaceConfig
	Class     ClassConfig
}

// WorkspaceConfig controls how the base folder is selected.
type WorkspaceConfig struct {
	Roots []string // workspace root directories
	Mode  string   // "fixed" or "narrow"
}

// ClassConfig controls the generated class files.
type ClassConfig struct {
	GuardStyle string // "pragma" or "ifndef"
	HeaderExt  string
	SourceExt  string
	HeaderDir  string // default header subfolder for split placement
	SourceDir  string // default source subfolder for split placement
}

// Detect reports whether dir contains a plume.yml.
func Detect(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, FileName))
	return err == nil
}

// Load reads plume.yml from dir, applying defaults for anything unset.
// Environment variables with the PLUME_ prefix override file values,
// e.g. PLUME_WORKSPACE_MODE=fixed.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)

	// Schema-validate the raw file before viper flattens it.
	if data, err := os.ReadFile(path); err == nil {
		if err := Validate(data); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", FileName, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigName("plume")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.AutomaticEnv()
	v.SetEnvPrefix("PLUME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("workspace.roots", []string{"."})
	v.SetDefault("workspace.mode", "narrow")
	v.SetDefault("class.guard_style", "pragma")
	v.SetDefault("class.header_ext", ".hpp")
	v.SetDefault("class.source_ext", ".cpp")
	v.SetDefault("class.header_dir", "include")
	v.SetDefault("class.source_dir", "src")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading %s: %w", FileName, err)
		}
	}

	return &Config{
		Workspace: WorkspaceConfig{
			Roots: v.GetStringSlice("workspace.roots"),
			Mode:  v.GetString("workspace.mode"),
		},
		Class: ClassConfig{
			GuardStyle: v.GetString("class.guard_style"),
			HeaderExt:  v.GetString("class.header_ext"),
			SourceExt:  v.GetString("class.source_ext"),
			HeaderDir:  v.GetString("class.header_dir"),
			SourceDir:  v.GetString("class.source_dir"),
		},
	}, nil
}
