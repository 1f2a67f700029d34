package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/riverfjs/mrkdwnify-go/internal/types"
)

// TokenEnv is consulted when slack.bot_token is empty.
const TokenEnv = "SLACK_BOT_TOKEN"

type Config struct {
	Slack  SlackConfig  `toml:"slack"`
	Render RenderConfig `toml:"render"`
	Log    LogConfig    `toml:"log"`
}

type SlackConfig struct {
	BotToken        string `toml:"bot_token"`
	Channel         string `toml:"channel"`
	ConvertMarkdown bool   `toml:"convert_markdown"`
}

type RenderConfig struct {
	Bullet           string `toml:"bullet"`
	WordBoundary     bool   `toml:"word_boundary"`
	NormalizeUnicode bool   `toml:"normalize_unicode"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Slack:  SlackConfig{ConvertMarkdown: true},
		Render: RenderConfig{Bullet: types.DefaultBullet, WordBoundary: true},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := Parse(data, cfg); err != nil {
			return nil, err
		}
	}
	if cfg.Slack.BotToken == "" {
		cfg.Slack.BotToken = os.Getenv(TokenEnv)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML data into cfg, keeping fields the data does not set.
func Parse(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("config: log.level %q: %w", c.Log.Level, err)
	}
	if c.Render.Bullet == "" {
		return fmt.Errorf("config: render.bullet must not be empty")
	}
	return nil
}

// LogLevel returns the parsed log level; validate has already checked it.
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// RenderOptions converts the [render] section for the converter.
func (c *Config) RenderOptions() *types.RenderConfig {
	return &types.RenderConfig{
		Bullet:           c.Render.Bullet,
		WordBoundary:     c.Render.WordBoundary,
		NormalizeUnicode: c.Render.NormalizeUnicode,
	}
}
