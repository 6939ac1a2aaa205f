package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"xsheet/internal/manifest"
)

// messageWidth caps the message column so one long failure reason does not
// stretch the whole runs table.
const messageWidth = 48

// renderRunsTable lays out export run history, newest first as given. The
// count columns are right-aligned; cells counts both deduplicated track
// images and static layer images.
func renderRunsTable(runs []manifest.Run) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Started", "Outcome", "Tracks", "Cells", "Sheet", "Message"})

	for _, run := range runs {
		tw.AppendRow(table.Row{
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.Outcome,
			strconv.Itoa(run.TrackCount),
			strconv.Itoa(run.UniqueAssets + run.StaticCount),
			run.SheetPath,
			truncate(run.Message, messageWidth),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// truncate shortens value to at most max runes, eliding with "..." when it
// cuts. Cuts land on rune boundaries so multibyte text stays valid.
func truncate(value string, max int) string {
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
