package main

import (
	"encoding/json"
	"fmt"

	"github.com/mmrzaf/fixturegen/internal/infra/parquetio"
	"github.com/mmrzaf/fixturegen/internal/layout"
	"github.com/mmrzaf/fixturegen/internal/report"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func inspectCmd(opts *options) *cobra.Command {
	var (
		format     string
		showSchema bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [path]",
		Short: "Read back a parquet fixture",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.load(cmd)
			if err != nil {
				return err
			}

			path := layout.New(cfg.Root).ParquetPath
			if len(args) == 1 {
				path = args[0]
			}
			if format != "table" && format != "json" {
				return fmt.Errorf("unsupported format: %s", format)
			}
			out := cmd.OutOrStdout()

			if showSchema {
				infos, err := parquetio.ExtractSchemaInfo(path)
				if err != nil {
					return err
				}
				if format == "json" {
					data, err := json.MarshalIndent(infos, "", "  ")
					if err != nil {
						return err
					}
					fmt.Fprintln(out, string(data))
					return nil
				}

				tw := tablewriter.NewWriter(out)
				tw.SetHeader([]string{"Name", "Physical", "Logical", "Required"})
				for _, info := range infos {
					tw.Append([]string{info.Name, info.PhysicalType, info.LogicalType, fmt.Sprint(info.Required)})
				}
				tw.Render()
				return nil
			}

			table, err := parquetio.ReadTable(path)
			if err != nil {
				return err
			}
			if format == "json" {
				data, err := json.MarshalIndent(table.Records, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			report.RenderTable(out, table.Records)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")
	cmd.Flags().BoolVar(&showSchema, "schema", false, "Print column types instead of rows")

	return cmd
}
