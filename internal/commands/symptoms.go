package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/symptrack/internal/render"
)

func newSymptomsCmd(a *app) *cobra.Command {
	var (
		searchFlag string
		rawFlag    bool
	)

	cmd := &cobra.Command{
		Use:   "symptoms",
		Short: "List the symptoms the prediction server knows",
		Long: `List the symptom catalog, sorted. --search filters by a
case-insensitive substring of the display name, the same way the chat
sidebar does. --raw prints the snake_case tokens instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.deps.NewClient(a.cfg, a.logger)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}
			defer client.Close()

			catalog, err := client.FetchSymptoms(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load symptoms: %w", err)
			}

			visible := catalog.Filter(searchFlag)
			for _, s := range visible {
				if rawFlag {
					fmt.Fprintln(a.deps.Stdout, render.SanitizeLine(string(s)))
				} else {
					fmt.Fprintln(a.deps.Stdout, render.SanitizeLine(s.DisplayName()))
				}
			}

			if a.deps.IsTTY() {
				fmt.Fprintf(a.deps.Stderr, "%d of %d symptoms\n", len(visible), len(catalog))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&searchFlag, "search", "s", "", "Only list symptoms containing this text")
	cmd.Flags().BoolVar(&rawFlag, "raw", false, "Print tokens instead of display names")
	return cmd
}
