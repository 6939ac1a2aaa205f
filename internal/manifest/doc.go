// Package manifest records export run history in a local SQLite database
// so past runs can be listed and inspected from the CLI.
package manifest
