package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hara/internal/catalog"
	"hara/internal/config"
	"hara/internal/index"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var (
		subject    string
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Search titles and abstracts",
		Long:  "Search matches text case-insensitively against titles and abstracts, the same way the catalog page does.\nThe SQLite index is used when configured and built; otherwise the manifest is scanned.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if limit < 0 {
				return fmt.Errorf("invalid --limit %d", limit)
			}
			q := catalog.Query{Subject: subject, Limit: limit}
			if len(args) == 1 {
				q.Text = args[0]
			}

			papers, err := searchPapers(cmd, cfg, q)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, papers)
			}

			out := cmd.OutOrStdout()
			if len(papers) == 0 {
				fmt.Fprintln(out, "No matching papers")
				return nil
			}
			fmt.Fprintln(out, renderPaperTable(papers))
			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Only match papers with this subject")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of results (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func searchPapers(cmd *cobra.Command, cfg *config.Config, q catalog.Query) (catalog.Catalog, error) {
	if indexAvailable(cfg) {
		store, err := index.Open(cmd.Context(), cfg.Paths.Index)
		if err != nil {
			return nil, fmt.Errorf("open search index: %w", err)
		}
		defer store.Close()
		return store.Search(cmd.Context(), q)
	}

	papers, err := readManifest(cfg.Paths.Output, cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return papers.Search(q), nil
}

// indexAvailable reports whether a configured index has been built. Opening
// a missing path would create an empty database.
func indexAvailable(cfg *config.Config) bool {
	if !cfg.IndexEnabled() {
		return false
	}
	info, err := os.Stat(strings.TrimSpace(cfg.Paths.Index))
	if err != nil {
		return !errors.Is(err, fs.ErrNotExist)
	}
	return info.Mode().IsRegular()
}
