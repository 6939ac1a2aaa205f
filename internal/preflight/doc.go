// Package preflight verifies the environment before an export run starts:
// project file readability, export directory access, and free disk space.
package preflight
