package commands

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/cognitiveflux/core/internal/adapters/repository"
	"github.com/cognitiveflux/core/internal/application/services"
	"github.com/cognitiveflux/core/internal/infrastructure/config"
	"github.com/cognitiveflux/core/internal/infrastructure/logger"
	"github.com/cognitiveflux/core/internal/infrastructure/server"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Cognitive Flux API server",
		Long:  "Start the Cognitive Flux API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewExportCommand creates the export command. It writes the built-in
// article library as a JSON backup without starting the server.
func NewExportCommand() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the seeded article library as JSON",
		Run: func(cmd *cobra.Command, args []string) {
			output, _ := cmd.Flags().GetString("output")
			exportLibrary(output)
		},
	}

	exportCmd.Flags().String("output", "", "Output file path (defaults to the export's own filename)")

	return exportCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print Cognitive Flux version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Cognitive Flux Core v1.0.0")
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	srv, err := server.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize server", "error", err)
	}

	appLogger.Info("Starting Cognitive Flux API server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
	)

	if err := srv.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		appLogger.Fatal("Server failed to start", "error", err)
	}
}

func exportLibrary(output string) {
	articleRepo := repository.NewSeededArticleRepository(repository.DefaultArticles())
	articleService := services.NewArticleService(articleRepo, logger.NewNop())

	doc, err := articleService.ExportAll(context.Background())
	if err != nil {
		log.Fatalf("Failed to export articles: %v", err)
	}

	if output == "" {
		output = doc.Filename
	}

	if err := os.WriteFile(output, doc.Body, 0o644); err != nil {
		log.Fatalf("Failed to write export: %v", err)
	}

	fmt.Printf("Exported article library to %s\n", output)
}
