package main

import (
	"encoding/json"
	"fmt"

	"github.com/mmrzaf/fixturegen/internal/app"
	"github.com/mmrzaf/fixturegen/internal/registry"
	"github.com/spf13/cobra"
)

func exportCmd(opts *options) *cobra.Command {
	var (
		kind     string
		dsn      string
		schema   string
		database string
		table    string
		mode     string
		check    bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Load the sample table into a SQL database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("kind") {
				cfg.Export.Kind = kind
			}
			if flags.Changed("dsn") {
				cfg.Export.DSN = dsn
			}
			if flags.Changed("schema") {
				cfg.Export.Schema = schema
			}
			if flags.Changed("database") {
				cfg.Export.Database = database
			}
			if flags.Changed("table") {
				cfg.Export.Table = table
			}
			if flags.Changed("mode") {
				cfg.Export.Mode = mode
			}
			target := cfg.Export.Target()
			out := cmd.OutOrStdout()

			if check {
				result, err := app.CheckTarget(target)
				data, _ := json.MarshalIndent(result, "", "  ")
				fmt.Fprintln(out, string(data))
				return err
			}

			svc := app.NewFixtureService(registry.DefaultGeneratorRegistry(), nil, logger)
			n, err := svc.Export(target)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Exported %d rows to %s table %s\n", n, target.Kind, target.Table)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Target kind (sqlite|postgres)")
	cmd.Flags().StringVar(&dsn, "dsn", "", "Target DSN (sqlite file path or postgres URL)")
	cmd.Flags().StringVar(&schema, "schema", "", "Postgres schema (default public)")
	cmd.Flags().StringVar(&database, "database", "", "Postgres database override")
	cmd.Flags().StringVar(&table, "table", "", "Target table (default sample_data)")
	cmd.Flags().StringVar(&mode, "mode", "", "Table mode (create_if_missing|truncate_then_insert|append_only)")
	cmd.Flags().BoolVar(&check, "check", false, "Only test connectivity to the target")

	return cmd
}
