package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/glanceapp/github-activity/pkg/cli"
	"github.com/glanceapp/github-activity/pkg/config"
	"github.com/glanceapp/github-activity/pkg/github"
	"github.com/glanceapp/github-activity/pkg/lib/log"
)

const version = "0.1.1"

func main() {
	os.Exit(run())
}

func run() int {
	// A .env file is a convenience, not a requirement.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: load config: %v\n", err)
		return 1
	}

	logger, err := log.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: create logger: %v\n", err)
		return 1
	}

	client, err := github.NewClient(&cfg.GitHub, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: create GitHub client: %v\n", err)
		return 1
	}

	app := cli.NewApp(client, logger, version)
	return app.Run(context.Background(), os.Args)
}
