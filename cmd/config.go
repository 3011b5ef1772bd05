package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/spigell/lex-job-assistant/internal/assistant"
	"github.com/spigell/lex-job-assistant/internal/bot"
	"github.com/spigell/lex-job-assistant/internal/jobs"
)

type Config struct {
	API             *APIConfig             `mapstructure:"api"`
	Recommendations *RecommendationsConfig `mapstructure:"recommendations"`
	Details         []DetailConfig         `mapstructure:"details"`
	Bot             *BotConfig             `mapstructure:"bot"`
}

type APIConfig struct {
	URL       string        `mapstructure:"url"`
	UserAgent string        `mapstructure:"user-agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type RecommendationsConfig struct {
	Limit int `mapstructure:"limit"`
}

type DetailConfig struct {
	Number  int    `mapstructure:"number"`
	Summary string `mapstructure:"summary"`
}

type BotConfig struct {
	ID       string `mapstructure:"id"`
	AliasID  string `mapstructure:"alias-id"`
	LocaleID string `mapstructure:"locale-id"`
	Region   string `mapstructure:"region"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.url", jobs.DefaultAPIURL)
	v.SetDefault("api.user-agent", app)
	v.SetDefault("api.timeout", time.Duration(0))

	v.SetDefault("recommendations.limit", assistant.DefaultLimit)

	defaults := assistant.DefaultDetails()
	details := make([]map[string]any, 0, len(defaults))
	for _, number := range slices.Sorted(maps.Keys(defaults)) {
		details = append(details, map[string]any{"number": number, "summary": defaults[number]})
	}
	v.SetDefault("details", details)

	v.SetDefault("bot.id", bot.DefaultBotID)
	v.SetDefault("bot.alias-id", bot.DefaultAliasID)
	v.SetDefault("bot.locale-id", bot.DefaultLocaleID)
	v.SetDefault("bot.region", "")

	v.SetDefault("debug", false)
	v.SetDefault("json", false)
}

func getConfig(v *viper.Viper) (*Config, error) {
	var config *Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config == nil || config.API == nil || strings.TrimSpace(config.API.URL) == "" {
		return nil, fmt.Errorf("api.url is required")
	}

	return config, nil
}

// RouterConfig converts the detail list into the router table.
func (c *Config) RouterConfig() (assistant.Config, error) {
	details := make(map[int]string, len(c.Details))
	for _, d := range c.Details {
		if strings.TrimSpace(d.Summary) == "" {
			return assistant.Config{}, fmt.Errorf("details: job %d has an empty summary", d.Number)
		}
		if _, ok := details[d.Number]; ok {
			return assistant.Config{}, fmt.Errorf("details: job %d is defined twice", d.Number)
		}
		details[d.Number] = d.Summary
	}

	cfg := assistant.Config{Details: details}
	if c.Recommendations != nil {
		cfg.Limit = c.Recommendations.Limit
	}

	return cfg, nil
}

func (c *Config) BotConfig() bot.Config {
	if c.Bot == nil {
		return bot.Config{}
	}
	return bot.Config{
		BotID:    c.Bot.ID,
		AliasID:  c.Bot.AliasID,
		LocaleID: c.Bot.LocaleID,
		Region:   c.Bot.Region,
	}
}
