package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hara/internal/catalog"
	"hara/internal/manifest"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var (
		jsonOutput bool
		subject    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the records of the written manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			papers, err := readManifest(cfg.Paths.Output, cfg.Output.Format)
			if err != nil {
				return err
			}
			if subject != "" {
				papers = papers.Search(catalog.Query{Subject: subject})
			}
			if jsonOutput {
				return writeJSON(cmd, papers)
			}

			out := cmd.OutOrStdout()
			if len(papers) == 0 {
				fmt.Fprintln(out, "No papers in manifest")
				return nil
			}
			fmt.Fprintln(out, renderPaperTable(papers))
			fmt.Fprintf(out, "%d papers in %d subjects\n", len(papers), len(papers.Subjects()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Only list papers with this subject")
	return cmd
}

func readManifest(path, format string) (catalog.Catalog, error) {
	parsed, err := manifest.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	papers, err := manifest.ReadFormat(path, parsed)
	if err != nil {
		return nil, fmt.Errorf("%w (run `hara build` first)", err)
	}
	return papers, nil
}
