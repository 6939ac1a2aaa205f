package main

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"xsheet/internal/export"
)

// newCLIProgress returns a sink that draws an interactive bar on terminals
// and falls back to occasional plain lines when output is piped.
func newCLIProgress(w io.Writer) export.ProgressSink {
	if shouldColorize(w) {
		return &barProgress{writer: w}
	}
	return &lineProgress{writer: w}
}

type barProgress struct {
	writer io.Writer
	bar    *progressbar.ProgressBar
	total  int
}

func (p *barProgress) Report(completed, total int, message string) {
	if p.bar == nil || p.total != total {
		p.total = total
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(p.writer),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetWidth(30),
		)
	}
	p.bar.Describe(message)
	_ = p.bar.Set(completed)
	if completed >= total {
		_ = p.bar.Finish()
	}
}

type lineProgress struct {
	writer      io.Writer
	lastPercent int
}

func (p *lineProgress) Report(completed, total int, message string) {
	if total <= 0 {
		return
	}
	percent := completed * 100 / total
	if percent == p.lastPercent && completed != total {
		return
	}
	p.lastPercent = percent
	fmt.Fprintf(p.writer, "[%3d%%] %s\n", percent, message)
}
