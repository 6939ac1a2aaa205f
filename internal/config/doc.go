// Package config loads, normalizes, and validates the TOML configuration
// file. Defaults are applied first so a missing file yields a fully usable
// configuration.
package config
