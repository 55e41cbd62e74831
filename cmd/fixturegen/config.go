package main

import (
	"github.com/mmrzaf/fixturegen/internal/domain"
	"github.com/mmrzaf/fixturegen/internal/infra/sidecar"
	"github.com/spf13/cobra"
)

func configCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the fixture configuration",
	}

	var format string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the table configuration without writing files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := sidecar.Encode(domain.SampleTableConfig(), format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	showCmd.Flags().StringVar(&format, "format", sidecar.FormatJSON, "Output format (json|yaml)")

	cmd.AddCommand(showCmd)
	return cmd
}
