package main

import (
	"fmt"
	"os"

	"todo-list/internal/api"
	"todo-list/internal/cli"
	"todo-list/internal/config"
	"todo-list/internal/validation"
)

func main() {
	// Load configuration: defaults, then environment overrides
	cfg := config.NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Create repository factory based on environment
	env := config.GetEnvironment()
	factory := config.NewRepositoryFactory(env, cfg)

	repo, err := factory.CreateRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	// Create controller with configured validation bounds
	taskValidator := validation.NewTaskValidatorWithConfig(cfg)
	controller := api.NewWithValidator(repo, taskValidator)

	// Create app and run the CLI
	app := cli.NewApp(controller, repo, cfg)
	root := cli.NewRootCommand(app)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
