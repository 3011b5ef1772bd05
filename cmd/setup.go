package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/lex-job-assistant/internal/assistant"
	"github.com/spigell/lex-job-assistant/internal/jobs"
	"github.com/spigell/lex-job-assistant/internal/logger"
)

// setup builds the logger and reads the configuration shared by all commands.
func setup() (*zap.Logger, *Config) {
	// CloudWatch indexes JSON entries, so the Lambda runtime always gets them.
	logger, err := logger.New(viper.GetBool("json") || inLambda(), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig(viper.GetViper())
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	return logger, config
}

func newRouter(config *Config, logger *zap.Logger) (*assistant.Router, error) {
	routerCfg, err := config.RouterConfig()
	if err != nil {
		return nil, err
	}

	client := jobs.New(logger.Named("jobs"), config.API.Timeout)
	client.APIURL = config.API.URL
	if config.API.UserAgent != "" {
		client.UserAgent = config.API.UserAgent
	}

	return assistant.New(routerCfg, client, logger), nil
}
