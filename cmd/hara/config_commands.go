package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"hara/internal/config"
	"hara/internal/index"
	"hara/internal/preflight"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file (default ~/.config/hara/config.toml)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Validate the configuration and check the archive directories",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, exists, err := config.Load(ctx.configPath())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintf(out, "Config path: %s\n", path)
			if !exists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			fmt.Fprintf(out, "Search index enabled: %s\n", yesNo(cfg.IndexEnabled()))
			if indexAvailable(cfg) {
				fmt.Fprintf(out, "Search index last build: %s\n", describeLastBuild(cmd, cfg))
			}

			results := preflight.RunAll(cfg)
			for _, r := range results {
				kind := statusOK
				switch {
				case r.Failed():
					kind = statusError
				case !r.Passed:
					kind = statusWarn
				}
				fmt.Fprintln(out, renderStatusLine(r.Name, kind, r.Detail, colorize))
			}
			if blocking := preflight.Blocking(results); len(blocking) > 0 {
				return fmt.Errorf("%d directory check(s) failed", len(blocking))
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

// describeLastBuild summarizes the most recent index rebuild. Read errors are
// reported inline since validate only inspects the index.
func describeLastBuild(cmd *cobra.Command, cfg *config.Config) string {
	store, err := index.Open(cmd.Context(), cfg.Paths.Index)
	if err != nil {
		return fmt.Sprintf("unreadable (%v)", err)
	}
	defer store.Close()
	build, ok, err := store.LastBuild(cmd.Context())
	switch {
	case err != nil:
		return fmt.Sprintf("unreadable (%v)", err)
	case !ok:
		return "never"
	}
	return fmt.Sprintf("%s, %s records (run %s)",
		humanize.Time(build.BuiltAt), humanize.Comma(int64(build.Records)), build.RunID)
}
