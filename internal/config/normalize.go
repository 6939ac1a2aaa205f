package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	c.normalizeExport()
	c.normalizeNaming()
	if err := c.normalizeManifest(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeOutput() error {
	var err error
	if strings.TrimSpace(c.Output.ExportDir) == "" {
		c.Output.ExportDir = defaultExportDir
	}
	if c.Output.ExportDir, err = expandPath(c.Output.ExportDir); err != nil {
		return fmt.Errorf("output.export_dir: %w", err)
	}
	if c.Output.MinFreeMB <= 0 {
		c.Output.MinFreeMB = defaultMinFreeMB
	}
	return nil
}

func (c *Config) normalizeExport() {
	c.Export.ExportName = strings.TrimSpace(c.Export.ExportName)
	if c.Export.ExportName == "" {
		c.Export.ExportName = defaultExportName
	}
	c.Export.Format = strings.ToLower(strings.TrimSpace(c.Export.Format))
	if c.Export.Format == "" {
		c.Export.Format = defaultFormat
	}
}

func (c *Config) normalizeNaming() {
	c.Naming.Variant = strings.ToLower(strings.TrimSpace(c.Naming.Variant))
	if c.Naming.Variant == "" {
		c.Naming.Variant = defaultNamingVariant
	}
	if c.Naming.Separator == "" {
		c.Naming.Separator = defaultSeparator
	}
}

func (c *Config) normalizeManifest() error {
	var err error
	if strings.TrimSpace(c.Manifest.Path) == "" {
		c.Manifest.Path = defaultManifestPath()
	}
	if c.Manifest.Path, err = expandPath(c.Manifest.Path); err != nil {
		return fmt.Errorf("manifest.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
