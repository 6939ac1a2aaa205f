package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"xsheet/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check [project.toml]",
		Short: "Run environment checks without exporting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			projectPath := ""
			if len(args) == 1 {
				projectPath = args[0]
			}

			results := preflight.RunAll(cfg, projectPath)
			printResults(cmd.OutOrStdout(), results)
			if !preflight.AllPassed(results) {
				return fmt.Errorf("preflight checks failed")
			}
			return nil
		},
	}
}

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

const statusLabelWidth = 20

func printResults(w io.Writer, results []preflight.Result) {
	colorize := shouldColorize(w)
	for _, result := range results {
		fmt.Fprintln(w, renderResultLine(result, colorize))
	}
}

func renderResultLine(result preflight.Result, colorize bool) string {
	status := "ERROR"
	color := ansiRed
	if result.Passed {
		status = "OK"
		color = ansiGreen
	}
	detail := strings.TrimSpace(result.Detail)
	line := fmt.Sprintf("  %-*s [%s]", statusLabelWidth, result.Name+":", status)
	if detail != "" {
		line += " " + detail
	}
	if colorize {
		return color + line + ansiReset
	}
	return line
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
