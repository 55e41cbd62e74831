package main

import (
	"io"
	"os"

	"github.com/mmrzaf/fixturegen/internal/app"
	"github.com/mmrzaf/fixturegen/internal/config"
	"github.com/mmrzaf/fixturegen/internal/logging"
	"github.com/mmrzaf/fixturegen/internal/registry"
	"github.com/mmrzaf/fixturegen/internal/report"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every command.
type options struct {
	root       string
	logLevel   string
	configPath string
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "fixturegen",
		Short: "Generate the sample_data regression fixture",
		Long: "Writes a deterministic 10-row sample table to data/test_sample/parquet/sample.parquet\n" +
			"and its description to data/test_sample/config/sample.json.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			svc := app.NewFixtureService(registry.DefaultGeneratorRegistry(), out, logger)
			res, err := svc.Create(cfg.Root)
			if err != nil {
				logger.Errorw("fixture_failed", map[string]any{"root": cfg.Root, "error": err})
				return err
			}

			rep := report.NewReporter(out)
			rep.Preview(res.Table)
			return rep.Configuration(res.Config)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&opts.root, "root", ".", "Output root directory")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Optional YAML settings file")

	rootCmd.AddCommand(inspectCmd(opts))
	rootCmd.AddCommand(configCmd(opts))
	rootCmd.AddCommand(exportCmd(opts))

	return rootCmd
}

// load reads the settings file and applies flags the user set explicitly.
func (o *options) load(cmd *cobra.Command) (*config.Config, *logging.Logger, error) {
	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("root") || o.configPath == "" {
		cfg.Root = o.root
	}
	if flags.Changed("log-level") || o.configPath == "" {
		cfg.LogLevel = o.logLevel
	}

	logger := logging.NewLoggerWithWriter(cfg.LogLevel, cmd.ErrOrStderr()).WithComponent("cli")
	return cfg, logger, nil
}
