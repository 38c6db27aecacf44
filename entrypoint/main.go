package main

import (
	"vitalscope.com/vra/apiclient"
	"vitalscope.com/vra/logger"
	"vitalscope.com/vra/scoring"
	"vitalscope.com/vra/worker"
	"context"
	"github.com/kelseyhightower/envconfig"
	"os"
)

type Config struct {
	RulesPath string `envconfig:"VRA_RULES_PATH" default:""`
}

func main() {
	logger.SetupLogging()
	vraLogger := logger.NewLogger("Main")
	fatalErrLogger := vraLogger.Fatal().Caller()

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		fatalErrLogger.Err(err).Msg("Failed to read environment")
		os.Exit(1)
	}

	rules := scoring.DefaultRules()
	if config.RulesPath != "" {
		loaded, err := scoring.LoadRules(config.RulesPath)
		if err != nil {
			fatalErrLogger.Err(err).Msg("Failed to load scoring rules")
			os.Exit(1)
		}
		rules = loaded
		vraLogger.Info().Str("path", config.RulesPath).Msg("Loaded scoring rule overrides")
	}

	client, err := apiclient.New()
	if err != nil {
		fatalErrLogger.Err(err).Msg("Could not initialize API client")
		os.Exit(1)
	}

	if err := worker.New(client, rules).Run(context.Background()); err != nil {
		fatalErrLogger.Err(err).Msg("Assessment run failed")
		os.Exit(1)
	}
	vraLogger.Info().Msg("Assessment run complete")
}
