package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"hara/internal/config"
	"hara/internal/logging"
	"hara/internal/manifest"
	"hara/internal/pipeline"
)

type buildOptions struct {
	output  string
	format  string
	index   string
	noIndex bool
	dryRun  bool
}

func newBuildOptions() *buildOptions {
	return &buildOptions{}
}

func (o *buildOptions) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&o.output, "output", "o", "", "Manifest output path (overrides config)")
	flags.StringVar(&o.format, "format", "", "Manifest format: json or yaml (overrides config)")
	flags.StringVar(&o.index, "index", "", "Also rebuild a SQLite search index at this path")
	flags.BoolVar(&o.noIndex, "no-index", false, "Skip the configured search index")
	flags.BoolVar(&o.dryRun, "dry-run", false, "Print the manifest to stdout instead of writing it")
}

// apply returns a copy of cfg with the flag overrides applied.
func (o *buildOptions) apply(cfg *config.Config) (*config.Config, error) {
	out := *cfg
	if value := strings.TrimSpace(o.output); value != "" {
		out.Paths.Output = value
	}
	if value := strings.TrimSpace(o.format); value != "" {
		out.Output.Format = strings.ToLower(value)
	}
	if value := strings.TrimSpace(o.index); value != "" {
		out.Paths.Index = value
	}
	if o.noIndex {
		out.Paths.Index = ""
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	// A format override without an explicit output path follows the format's
	// extension so YAML never lands in manifest.json.
	if strings.TrimSpace(o.format) != "" && strings.TrimSpace(o.output) == "" {
		format, err := manifest.ParseFormat(out.Output.Format)
		if err != nil {
			return nil, err
		}
		out.Paths.Output = manifest.PathForFormat(out.Paths.Output, format)
	}
	return &out, nil
}

func newBuildCommand(ctx *commandContext) *cobra.Command {
	opts := newBuildOptions()
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Scan the metadata tree and write the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, ctx, opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

func runBuild(cmd *cobra.Command, ctx *commandContext, opts *buildOptions) error {
	base, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	cfg, err := opts.apply(base)
	if err != nil {
		return err
	}

	runID := logging.NewRunID()
	logger, err := ctx.newLogger(cmd, runID)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(cmd.Context(), pipeline.Options{
		Config: cfg,
		Logger: logger,
		RunID:  runID,
		DryRun: opts.dryRun,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.dryRun {
		_, err := fmt.Fprintf(out, "%s\n", result.Data)
		return err
	}

	logger.Info("manifest build complete",
		logging.Int("records", len(result.Report.Catalog)),
		logging.Duration("elapsed", result.Duration),
	)

	colorize := shouldColorize(out)
	for _, line := range buildSummary(cfg, result, colorize) {
		fmt.Fprintln(out, line)
	}
	return nil
}

func buildSummary(cfg *config.Config, result pipeline.Result, colorize bool) []string {
	records := len(result.Report.Catalog)
	size := humanize.Bytes(uint64(len(result.Data)))

	manifestMsg := fmt.Sprintf("%s -> %s (%s records, %s)", result.Format, cfg.Paths.Output, humanize.Comma(int64(records)), size)
	if result.Output.Unchanged {
		manifestMsg += ", unchanged"
	}
	lines := []string{
		renderStatusLine("Manifest", statusOK, manifestMsg, colorize),
		renderStatusLine("Subjects", statusInfo, fmt.Sprintf("%d scanned, %d entries skipped", result.Report.Subjects, result.Report.Skipped), colorize),
	}
	if dups := len(result.Report.Duplicates); dups > 0 {
		lines = append(lines, renderStatusLine("Duplicate ids", statusWarn, fmt.Sprintf("%d id(s) shared by several files", dups), colorize))
	}
	if result.Indexed {
		lines = append(lines, renderStatusLine("Search index", statusOK, cfg.Paths.Index, colorize))
	}
	return lines
}
