package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateExport(); err != nil {
		return err
	}
	if err := c.validateNaming(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateExport() error {
	switch c.Export.Format {
	case "png", "tga":
	default:
		return fmt.Errorf("export.format must be png or tga, got %q", c.Export.Format)
	}
	if c.Export.PNGCompression < 0 || c.Export.PNGCompression > 9 {
		return errors.New("export.png_compression must be between 0 and 9")
	}
	return nil
}

func (c *Config) validateNaming() error {
	switch c.Naming.Variant {
	case "seq-only", "name-seq":
	default:
		return fmt.Errorf("naming.variant must be seq-only or name-seq, got %q", c.Naming.Variant)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
