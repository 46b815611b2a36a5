package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-bitlife/model"
	"github.com/sheikhrachel/go-bitlife/utils"
)

const defaultConfigPath = "config.json"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		log.Printf("Using default configuration (%s not found)", configPath)
		config = utils.DefaultConfig()
	}

	log.Printf("Board: %dx%d | Seed: %d | Iterations: %d | Workers: %d",
		model.Size, model.Size, config.Seed, config.Iterations, config.Workers)

	renderer := model.NewTerminalRenderer()
	if config.Animate {
		renderer.Clear()
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	initializeGame(config, renderer).run(sigChan)
}
