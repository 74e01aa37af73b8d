package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func exportCmd(a *app) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Выгрузить данные в JSON или YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, data, err := a.tracker.Export(format, a.today)
			if err != nil {
				return err
			}

			if output == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if output == "" {
				output = filename
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "💾 Saved %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Export format: json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default tracker_backup_DATE.FORMAT, - for stdout)")

	return cmd
}
