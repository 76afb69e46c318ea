package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

type Config struct {
	LogLevel       string `yaml:"log-level" env:"UTTT_LOG_LEVEL" env-default:"info"`
	StartingPlayer string `yaml:"starting-player" env:"UTTT_STARTING_PLAYER" env-default:""`
	HideBoard      bool   `yaml:"hide-board" env:"UTTT_HIDE_BOARD"`
	Prompt         string `yaml:"prompt" env:"UTTT_PROMPT" env-default:"> "`
}

// Load reads the yaml file at path when it exists, otherwise only the
// environment. Environment variables win over the file in both cases.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if _, err = config.Player(); err != nil {
		return nil, fmt.Errorf("invalid starting-player: %w", err)
	}

	if _, err = config.Level(); err != nil {
		return nil, fmt.Errorf("invalid log-level: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations, panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Player returns the configured starting player, NoPlayer for random.
func (that *Config) Player() (entity.Player, error) {
	return entity.ParsePlayer(that.StartingPlayer)
}

// Level maps LogLevel to a slog level.
func (that *Config) Level() (slog.Level, error) {
	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}
}
