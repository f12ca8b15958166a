package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/leengari/sheetplot/internal/config"
	"github.com/leengari/sheetplot/internal/datasource"
	"github.com/leengari/sheetplot/internal/logging"
)

// app carries state shared by all subcommands once flags are parsed
type app struct {
	configFile string
	v          *viper.Viper
	cfg        *config.Config
	logger     *slog.Logger
	closeLog   func()
}

// flagKeys maps command line flags to configuration keys
var flagKeys = map[string]string{
	"source":    "source",
	"output":    "output",
	"log-level": "log.level",
	"seq-url":   "log.seq_url",
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheetplot",
		Short: "Plot spreadsheet tables",
		Long: `Render a violin plot of sepal width by species from the "iris" table
of an Excel workbook or a table directory.

Examples:
  sheetplot plot --source iris.xlsx
  sheetplot plot --source iris.xlsx --output - --format svg > violin.svg
  sheetplot describe --source ./tables
  sheetplot tables --source iris.xlsx`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.Flags())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file (yaml, json or toml)")
	flags.String("source", "", "Workbook (.xlsx) or table directory holding the iris table")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("seq-url", "", "Seq server URL for log shipping")

	cmd.AddCommand(newPlotCommand(a))
	cmd.AddCommand(newDescribeCommand(a))
	cmd.AddCommand(newTablesCommand(a))

	return cmd
}

func (a *app) init(flags *pflag.FlagSet) error {
	v, err := config.New(a.configFile)
	if err != nil {
		return err
	}
	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	a.v, a.cfg = v, cfg
	a.logger, a.closeLog = logging.SetupLogger(logging.Options{
		Level:  level,
		SeqURL: cfg.Log.SeqURL,
	})
	slog.SetDefault(a.logger)
	return nil
}

// openSource opens the configured data source
func (a *app) openSource() (datasource.DataSource, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}
	return datasource.Open(a.cfg.Source, a.logger)
}

func (a *app) log() *slog.Logger {
	if a.logger == nil {
		return slog.Default()
	}
	return a.logger
}

func (a *app) close() {
	if a.closeLog != nil {
		a.closeLog()
	}
}
