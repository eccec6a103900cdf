package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hara/internal/manifest"
)

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "schema",
		Short:       "Print the JSON Schema of the manifest",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), manifest.Schema())
			return err
		},
	}
}
