package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultExportDir      = "~/exports"
	defaultMinFreeMB      = 64
	defaultExportName     = "export"
	defaultFormat         = "png"
	defaultPNGCompression = 6
	defaultNamingVariant  = "name-seq"
	defaultSeparator      = "_"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			ExportDir: defaultExportDir,
			MinFreeMB: defaultMinFreeMB,
		},
		Export: Export{
			UseFullClipRange: true,
			ExportName:       defaultExportName,
			Format:           defaultFormat,
			PNGCompression:   defaultPNGCompression,
		},
		Naming: Naming{
			Variant:   defaultNamingVariant,
			Separator: defaultSeparator,
		},
		Manifest: Manifest{
			Enabled: true,
			Path:    defaultManifestPath(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultManifestPath() string {
	if base, ok := os.LookupEnv("XDG_DATA_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "xsheet", "manifest.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.local/share/xsheet/manifest.db"
	}
	return filepath.Join(home, ".local", "share", "xsheet", "manifest.db")
}
