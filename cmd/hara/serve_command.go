package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"hara/internal/index"
	"hara/internal/logging"
	"hara/internal/manifest"
	"hara/internal/pipeline"
	"hara/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var (
		bind  string
		site  string
		build bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview the catalog over HTTP",
		Long:  "Serve the manifest, a JSON search API, and the metadata and paper files the records reference.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runID := logging.NewRunID()
			logger, err := ctx.newLogger(cmd, runID)
			if err != nil {
				return err
			}
			format, err := manifest.ParseFormat(cfg.Output.Format)
			if err != nil {
				return err
			}

			if build {
				if _, err := pipeline.Run(cmd.Context(), pipeline.Options{Config: cfg, Logger: logger, RunID: runID}); err != nil {
					return err
				}
			}

			opts := server.Options{
				Bind:         cfg.Serve.Bind,
				ManifestPath: cfg.Paths.Output,
				Format:       format,
				Roots:        []string{cfg.Paths.MetaRoot, cfg.Paths.PaperRoot},
				SiteDir:      filepath.Dir(cfg.Paths.Output),
				Logger:       logger,
			}
			if value := strings.TrimSpace(bind); value != "" {
				opts.Bind = value
			}
			if value := strings.TrimSpace(site); value != "" {
				opts.SiteDir = value
			}
			if indexAvailable(cfg) {
				store, err := index.Open(cmd.Context(), cfg.Paths.Index)
				if err != nil {
					return err
				}
				defer store.Close()
				opts.Source = server.NewIndexSource(store)
			}

			return server.New(opts).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (overrides config)")
	cmd.Flags().StringVar(&site, "site", "", "Directory with the front-end files (default: the manifest's directory)")
	cmd.Flags().BoolVar(&build, "build", false, "Build the manifest before serving")
	return cmd
}
