package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/symptrack/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration: defaults, then ~/.symptrack/config.json,
then SYMPTRACK_* environment variables, then command-line flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.MarshalIndent(a.cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}

			out := a.deps.Stdout
			if path, err := config.GetConfigPath(); err == nil {
				fmt.Fprintf(out, "Config file:  %s\n", path)
			}
			if path, err := config.GetPrefsPath(); err == nil {
				fmt.Fprintf(out, "Preferences:  %s\n", path)
			}
			if path, err := config.GetLogPath(a.cfg); err == nil {
				fmt.Fprintf(out, "Log file:     %s\n", path)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, string(data))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			force, _ := cmd.Flags().GetBool("force")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.SaveConfig(a.cfg); err != nil {
				return err
			}
			fmt.Fprintf(a.deps.Stdout, "Wrote %s\n", path)
			return nil
		},
	})
	cmd.Commands()[0].Flags().Bool("force", false, "Overwrite an existing config file")
	return cmd
}
