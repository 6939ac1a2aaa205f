package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoWork marks runs that found no exportable layers.
	ErrNoWork = errors.New("no work")
	// ErrRender marks failures positioning or rasterizing a frame.
	ErrRender = errors.New("render failure")
	// ErrAssetWrite marks failures persisting an exported image.
	ErrAssetWrite = errors.New("asset write failure")
	// ErrSerialize marks failures writing the exposure-sheet document.
	ErrSerialize = errors.New("serialize failure")
	// ErrConfiguration marks invalid export configuration.
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later outcome classification. The marker
// should be one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrRender
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "export failure"
	}
	return strings.Join(parts, ": ")
}
