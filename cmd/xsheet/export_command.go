package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"xsheet/internal/config"
	"xsheet/internal/export"
	"xsheet/internal/imaging"
	"xsheet/internal/logging"
	"xsheet/internal/manifest"
	"xsheet/internal/naming"
	"xsheet/internal/preflight"
	"xsheet/internal/project"
	"xsheet/internal/render"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var (
		outDir           string
		exportName       string
		format           string
		pngCompression   int
		includeInvisible bool
		includeReference bool
		includeStatic    bool
		playbackRange    bool
		skipPreflight    bool
	)

	cmd := &cobra.Command{
		Use:   "export <project.toml>",
		Short: "Export a project to an exposure sheet and cell images",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			projectPath, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve project path: %w", err)
			}

			exportDir := cfg.Output.ExportDir
			if cmd.Flags().Changed("out") {
				if exportDir, err = config.ExpandPath(outDir); err != nil {
					return fmt.Errorf("resolve export directory: %w", err)
				}
			}

			opts := optionsFromConfig(cfg)
			if cmd.Flags().Changed("name") {
				opts.ExportName = exportName
			}
			if cmd.Flags().Changed("format") {
				parsed, err := render.ParseFormat(format)
				if err != nil {
					return err
				}
				opts.Encode.Format = parsed
				opts.Scheme.Extension = parsed.Extension()
			}
			if cmd.Flags().Changed("png-compression") {
				opts.Encode.PNGCompression = pngCompression
			}
			if cmd.Flags().Changed("include-invisible") {
				opts.IncludeInvisible = includeInvisible
			}
			if cmd.Flags().Changed("include-reference") {
				opts.IncludeReference = includeReference
			}
			if cmd.Flags().Changed("include-static") {
				opts.IncludeStatic = includeStatic
			}
			if cmd.Flags().Changed("playback-range") {
				opts.UseFullClipRange = !playbackRange
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
			})
			if err != nil {
				return err
			}

			if err := os.MkdirAll(exportDir, 0o755); err != nil {
				return fmt.Errorf("create export directory %q: %w", exportDir, err)
			}

			if !skipPreflight {
				checkCfg := *cfg
				checkCfg.Output.ExportDir = exportDir
				results := preflight.RunAll(&checkCfg, projectPath)
				if !preflight.AllPassed(results) {
					printResults(cmd.ErrOrStderr(), results)
					return fmt.Errorf("preflight checks failed")
				}
			}

			proj, err := project.Load(projectPath)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			runner, err := export.NewRunner(export.Params{
				Source:   project.NewSource(proj),
				Writer:   imaging.NewFileWriter(),
				Options:  opts,
				Progress: newCLIProgress(cmd.ErrOrStderr()),
				Logger:   logger,
			})
			if err != nil {
				return err
			}

			var store *manifest.Store
			var runID string
			if cfg.Manifest.Enabled {
				store, err = manifest.Open(cfg.Manifest.Path)
				if err != nil {
					// Run history is best-effort; the export itself matters more.
					logger.Warn("manifest unavailable", logging.Error(err))
				} else {
					defer store.Close()
					if run, err := store.RecordStart(runCtx, projectPath, exportDir); err == nil {
						runID = run.ID
					} else {
						logger.Warn("failed to record run start", logging.Error(err))
					}
				}
			}

			result, runErr := runner.Run(runCtx, exportDir)

			if store != nil && runID != "" {
				finishErr := store.RecordFinish(context.Background(), runID, manifest.RunUpdate{
					Outcome:       string(result.Outcome),
					SheetPath:     result.SheetPath,
					TrackCount:    result.TrackCount,
					KeyframeCount: result.KeyframeCount,
					UniqueAssets:  result.UniqueAssets,
					StaticCount:   result.StaticCount,
					Message:       result.Message,
				})
				if finishErr != nil {
					logger.Warn("failed to record run outcome", logging.Error(finishErr))
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Summary())
			if result.Succeeded() {
				fmt.Fprintf(cmd.OutOrStdout(), "Sheet: %s\n", result.SheetPath)
			}
			return runErr
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Export directory (defaults to output.export_dir)")
	cmd.Flags().StringVar(&exportName, "name", "", "Basename of the sheet document")
	cmd.Flags().StringVar(&format, "format", "", "Cell image format: png or tga")
	cmd.Flags().IntVar(&pngCompression, "png-compression", 6, "PNG compression level (0-9)")
	cmd.Flags().BoolVar(&includeInvisible, "include-invisible", false, "Export hidden layers")
	cmd.Flags().BoolVar(&includeReference, "include-reference", false, "Export reference layers")
	cmd.Flags().BoolVar(&includeStatic, "include-static", false, "Export static layers as single images")
	cmd.Flags().BoolVar(&playbackRange, "playback-range", false, "Export the playback range instead of the full clip")
	cmd.Flags().BoolVar(&skipPreflight, "skip-preflight", false, "Skip environment checks before exporting")

	return cmd
}

// optionsFromConfig maps the configuration file's export and naming
// sections onto runner options.
func optionsFromConfig(cfg *config.Config) export.Options {
	format, err := render.ParseFormat(cfg.Export.Format)
	if err != nil {
		format = render.FormatPNG
	}
	return export.Options{
		IncludeInvisible: cfg.Export.IncludeInvisible,
		IncludeReference: cfg.Export.IncludeReference,
		IncludeStatic:    cfg.Export.IncludeStatic,
		UseFullClipRange: cfg.Export.UseFullClipRange,
		ExportName:       cfg.Export.ExportName,
		Scheme: naming.Scheme{
			Variant:   naming.Variant(cfg.Naming.Variant),
			Prefix:    cfg.Naming.Prefix,
			Suffix:    cfg.Naming.Suffix,
			Separator: cfg.Naming.Separator,
			Extension: format.Extension(),
		},
		Encode: render.EncodeOptions{
			Format:         format,
			PNGCompression: cfg.Export.PNGCompression,
		},
	}
}
