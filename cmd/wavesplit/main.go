package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"wavesplit/internal/cli/commands"
	"wavesplit/internal/config"
)

var version = "dev"

func main() {
	// Defaults, then .env, then WAVESPLIT_* variables; flags are applied later
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	rootCmd := commands.NewRootCommand(version, cfg, log)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
