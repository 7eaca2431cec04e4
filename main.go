package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	app "github.com/rocketscienceinc/gridtactoe/internal"
	"github.com/rocketscienceinc/gridtactoe/internal/config"
)

// main - is the entry point of the application. It builds the command line, loads the configuration
// and the logger, and runs the selected command.
func main() {
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:  "gridtactoe",
		Usage: "tic-tac-toe on a configurable grid for two players on one terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "./config.yml",
				Usage: "path to the config file",
			},
			&cli.IntFlag{
				Name:  "rows",
				Usage: "default number of rows",
			},
			&cli.IntFlag{
				Name:  "cols",
				Usage: "default number of columns",
			},
			&cli.IntFlag{
				Name:  "win-length",
				Usage: "default number of marks in a row needed to win",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			conf, err := initConfig(cmd)
			if err != nil {
				return err
			}

			return app.RunApp(ctx, initLogger(conf), conf, os.Stdin, os.Stdout)
		},
		Commands: []*cli.Command{
			{
				Name:  "scores",
				Usage: "print the scoreboard kept in redis (scoreboard.backend: redis)",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "reset",
						Usage: "clear the scoreboard first",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					conf, err := initConfig(cmd)
					if err != nil {
						return err
					}

					return app.ShowScores(ctx, initLogger(conf), conf, cmd.Bool("reset"), os.Stdout)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "app run failed: %v\n", err)
		os.Exit(1)
	}
}

// initialize config, command line flags take precedence over the file and the environment.
func initConfig(cmd *cli.Command) (*config.Config, error) {
	conf, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("rows") {
		conf.Board.Rows = cmd.Int("rows")
	}

	if cmd.IsSet("cols") {
		conf.Board.Cols = cmd.Int("cols")
	}

	if cmd.IsSet("win-length") {
		conf.Board.WinLength = cmd.Int("win-length")
	}

	if cmd.IsSet("log-level") {
		conf.LogLevel = cmd.String("log-level")
	}

	if err = conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	return conf, nil
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
