package main

import (
	"fmt"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/config"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/ingest"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/interactive"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/query"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/store"
)

const (
	flagOutputDir          = "output-dir"
	flagReferenceDate      = "reference-date"
	configKeyOutputDir     = "output_dir"
	configKeyReferenceDate = "reference_date"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "voyagedb: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := &config.Config{}
	cmd := &cobra.Command{
		Use:   "voyagedb [dataset-dir query-script]",
		Short: "Travel dataset ingestion and query engine",
		Long: "voyagedb ingests a CSV travel dataset and answers queries over it.\n" +
			"With no arguments it opens an interactive prompt; with a dataset\n" +
			"directory and a query script it runs in batch mode.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.RangeArgs(0, 2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("logger init: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			switch len(args) {
			case 0:
				session, err := interactive.New(cfg, logger)
				if err != nil {
					return err
				}
				return session.Run()
			case 2:
				return runBatch(cfg, logger, args[0], args[1])
			}
			return fmt.Errorf("want no arguments or a dataset dir and a query script")
		},
	}

	cmd.Flags().String(flagOutputDir, "", "directory for query output and reject files")
	cmd.Flags().String(flagReferenceDate, "", "date ages are computed against (YYYY/MM/DD)")

	return cmd
}

func loadConfig(cmd *cobra.Command, cfg *config.Config) error {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindEnv(configKeyOutputDir, "VOYAGEDB_OUTPUT_DIR"); err != nil {
		return err
	}
	if err := viper.BindEnv(configKeyReferenceDate, "VOYAGEDB_REFERENCE_DATE"); err != nil {
		return err
	}

	if err := viper.BindPFlag(configKeyOutputDir, cmd.Flags().Lookup(flagOutputDir)); err != nil {
		return err
	}
	if err := viper.BindPFlag(configKeyReferenceDate, cmd.Flags().Lookup(flagReferenceDate)); err != nil {
		return err
	}

	cfg.OutputDir = viper.GetString(configKeyOutputDir)
	cfg.ReferenceDate = viper.GetString(configKeyReferenceDate)
	return cfg.Validate()
}

func runBatch(cfg *config.Config, logger *zap.Logger, datasetDir, scriptPath string) error {
	script, err := os.Open(scriptPath)
	if err != nil {
		return fmt.Errorf("open query script: %w", err)
	}
	defer script.Close()

	instances, err := query.ParseScript(script)
	if err != nil {
		return fmt.Errorf("parse query script: %w", err)
	}

	db := store.New(logger)
	result, err := ingest.Run(db, datasetDir, cfg.OutputDir, logger)
	if err != nil {
		return err
	}
	logger.Info("dataset loaded",
		zap.Int("users", result.Users.Read-result.Users.Rejected),
		zap.Int("flights", result.Flights.Read-result.Flights.Rejected),
		zap.Int("passengers", result.Passengers.Read-result.Passengers.Rejected),
		zap.Int("reservations", result.Reservations.Read-result.Reservations.Rejected))

	env := &query.Env{DB: db, ReferenceDate: cfg.ReferenceDateValue()}
	if err := query.RunScript(env, instances, cfg.OutputDir); err != nil {
		return err
	}
	logger.Info("query script done", zap.Int("queries", len(instances)))
	return nil
}
