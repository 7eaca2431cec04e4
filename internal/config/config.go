package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/gridtactoe/internal/apperror"
	"github.com/rocketscienceinc/gridtactoe/internal/tictactoe"
	"gopkg.in/yaml.v3"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

var ErrUnknownBackend = errors.New("unknown scoreboard backend")

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	Board      Board      `yaml:"board"`
	Scoreboard Scoreboard `yaml:"scoreboard"`
	Redis      Redis      `yaml:"redis"`
}

// Board holds the defaults offered by the start prompt.
type Board struct {
	Rows      int `yaml:"rows" env:"BOARD_ROWS" env-default:"3"`
	Cols      int `yaml:"cols" env:"BOARD_COLS" env-default:"3"`
	WinLength int `yaml:"win-length" env:"BOARD_WIN_LENGTH" env-default:"3"`
}

type Scoreboard struct {
	Backend string `yaml:"backend" env:"SCOREBOARD_BACKEND" env-default:"memory"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	DB   int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads path when it exists, otherwise only the environment and defaults are used.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}

		if err = checkFileBoard(path); err != nil {
			return nil, err
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if err := that.Board.Engine().Validate(); err != nil {
		return fmt.Errorf("board defaults: %w", err)
	}

	switch that.Scoreboard.Backend {
	case BackendMemory, BackendRedis:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, that.Scoreboard.Backend)
	}
}

// fileBoard mirrors Board with pointers, so a value written in the file can be told apart
// from a missing one.
type fileBoard struct {
	Board struct {
		Rows      *int `yaml:"rows"`
		Cols      *int `yaml:"cols"`
		WinLength *int `yaml:"win-length"`
	} `yaml:"board"`
}

// checkFileBoard - rejects non positive board values written in a yaml file. cleanenv replaces
// zero values with env-default, which would hide a "rows: 0" in the file.
// A value overridden through the environment is left to the environment.
func checkFileBoard(path string) error {
	switch filepath.Ext(path) {
	case ".yml", ".yaml":
	default:
		return nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var raw fileBoard
	if err = yaml.Unmarshal(content, &raw); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	fields := []struct {
		name  string
		env   string
		value *int
	}{
		{"rows", "BOARD_ROWS", raw.Board.Rows},
		{"cols", "BOARD_COLS", raw.Board.Cols},
		{"win-length", "BOARD_WIN_LENGTH", raw.Board.WinLength},
	}

	for _, field := range fields {
		if field.value == nil || *field.value > 0 {
			continue
		}

		if os.Getenv(field.env) != "" {
			continue
		}

		return fmt.Errorf("board defaults: %w: %s=%d in %s", apperror.ErrInvalidConfig, field.name, *field.value, path)
	}

	return nil
}

func (that Board) Engine() tictactoe.Config {
	return tictactoe.Config{
		Rows:      that.Rows,
		Cols:      that.Cols,
		WinLength: that.WinLength,
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
