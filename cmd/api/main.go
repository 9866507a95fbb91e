package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/cognitiveflux/core/cmd/api/commands"
)

// @title Cognitive Flux API
// @version 1.0
// @description Publishing platform for articles on technology, finance and cognitive science

// @contact.name Cognitive Flux Support
// @contact.url https://github.com/cognitiveflux/core

// @license.name MIT
// @license.url https://github.com/cognitiveflux/core/blob/main/LICENSE

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	rootCmd := &cobra.Command{
		Use:   "cognitiveflux",
		Short: "Cognitive Flux API Server",
		Long:  `Cognitive Flux is a publishing platform serving a curated article library with an admin dashboard for authoring, import/export and draft autosave.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
