package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	app "github.com/readme-games/omok-engine/internal"
	"github.com/readme-games/omok-engine/internal/config"
)

// main - is the entry point of the application. It initializes the
// configuration, logger, and runs one engine invocation.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	opts := parseFlags()

	// a local .env is optional; the workflow environment sets everything
	_ = godotenv.Load()

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf, opts); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

func parseFlags() app.Options {
	opts := app.Options{}

	flag.BoolVar(&opts.Reset, "reset", false, "reset the game to its initial state")
	flag.StringVar(&opts.Move, "move", "", "process a move from an issue title")
	flag.IntVar(&opts.IssueNumber, "issue-number", 0, "issue number for reference")
	flag.BoolVar(&opts.Status, "status", false, "show the current game status")
	flag.Parse()

	return opts
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
