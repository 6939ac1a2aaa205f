package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Output contains directory configuration for export results.
type Output struct {
	ExportDir string `toml:"export_dir"`
	// MinFreeMB is the minimum free disk space the preflight check
	// requires in the export directory's filesystem.
	MinFreeMB int `toml:"min_free_mb"`
}

// Export contains layer selection and encoding settings.
type Export struct {
	IncludeInvisible bool   `toml:"include_invisible"`
	IncludeReference bool   `toml:"include_reference"`
	IncludeStatic    bool   `toml:"include_static"`
	UseFullClipRange bool   `toml:"use_full_clip_range"`
	ExportName       string `toml:"export_name"`
	Format           string `toml:"format"`
	PNGCompression   int    `toml:"png_compression"`
}

// Naming contains the cell image filename scheme.
type Naming struct {
	Variant   string `toml:"variant"`
	Prefix    string `toml:"prefix"`
	Suffix    string `toml:"suffix"`
	Separator string `toml:"separator"`
}

// Manifest contains configuration for the run history database.
type Manifest struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for xsheet.
//
// Configuration sections by subsystem:
//   - Output: export directory and disk space floor
//   - Export: layer selection, sheet name, and image encoding
//   - Naming: cell image filename scheme
//   - Manifest: export run history database
//   - Logging: log format and level
type Config struct {
	Output   Output   `toml:"output"`
	Export   Export   `toml:"export"`
	Naming   Naming   `toml:"naming"`
	Manifest Manifest `toml:"manifest"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/xsheet/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("xsheet.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories a run needs. The manifest
// directory is created on a best-effort basis so exports still work when
// run history is unavailable.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Output.ExportDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Output.ExportDir, err)
	}
	if c.Manifest.Enabled && strings.TrimSpace(c.Manifest.Path) != "" {
		_ = os.MkdirAll(filepath.Dir(c.Manifest.Path), 0o755)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
