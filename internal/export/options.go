package export

import (
	"strings"

	"xsheet/internal/naming"
	"xsheet/internal/render"
	"xsheet/internal/services"
)

// DefaultExportName is the basename of the sheet document when none is
// configured.
const DefaultExportName = "export"

// Options is the fully-enumerated configuration surface the runner
// consumes. Plain data; validated once at entry.
type Options struct {
	IncludeInvisible bool
	IncludeReference bool
	IncludeStatic    bool
	UseFullClipRange bool
	ExportName       string
	Scheme           naming.Scheme
	Encode           render.EncodeOptions
}

// DefaultOptions mirrors the exporter's shipped defaults: full clip range,
// visible non-reference layers only, PNG cells named Layer_0001.png.
func DefaultOptions() Options {
	return Options{
		UseFullClipRange: true,
		ExportName:       DefaultExportName,
		Scheme:           naming.DefaultScheme(render.FormatPNG.Extension()),
		Encode:           render.EncodeOptions{Format: render.FormatPNG, PNGCompression: 6},
	}
}

// Validate normalizes and checks the options.
func (o *Options) Validate() error {
	if strings.TrimSpace(o.ExportName) == "" {
		o.ExportName = DefaultExportName
	}
	if _, err := render.ParseFormat(string(o.Encode.Format)); err != nil {
		return services.Wrap(services.ErrConfiguration, "export", "validate options", "", err)
	}
	if o.Encode.PNGCompression < 0 || o.Encode.PNGCompression > 9 {
		return services.Wrap(services.ErrConfiguration, "export", "validate options",
			"png compression must be between 0 and 9", nil)
	}
	if o.Scheme.Extension == "" {
		o.Scheme.Extension = o.Encode.Format.Extension()
	}
	if err := o.Scheme.Validate(); err != nil {
		return services.Wrap(services.ErrConfiguration, "export", "validate options", "", err)
	}
	return nil
}
