package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/stakeforge/stakeforge/internal/config"
	"github.com/stakeforge/stakeforge/internal/http_api"
	"github.com/stakeforge/stakeforge/internal/models"
	"github.com/stakeforge/stakeforge/internal/notifier"
	"github.com/stakeforge/stakeforge/internal/repository"
	"github.com/stakeforge/stakeforge/internal/stakeforge"
	"github.com/stakeforge/stakeforge/internal/status"
	"github.com/stakeforge/stakeforge/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "stakeforge",
		Usage: "StakeForge is the backend for the StakeForge infrastructure site",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "api-port", Aliases: []string{"a"}, Usage: "API port"},
			&cli.StringFlag{Name: "storage-backend", Aliases: []string{"s"}, Usage: "Storage backend (memory or postgres)"},
			&cli.StringFlag{Name: "postgres-user", Aliases: []string{"u"}, Usage: "Postgres user"},
			&cli.StringFlag{Name: "postgres-password", Aliases: []string{"p"}, Usage: "Postgres password"},
			&cli.StringFlag{Name: "postgres-host", Aliases: []string{"t"}, Usage: "Postgres host"},
			&cli.IntFlag{Name: "postgres-port", Aliases: []string{"P"}, Usage: "Postgres port"},
			&cli.StringFlag{Name: "postgres-db", Aliases: []string{"d"}, Usage: "Postgres database name"},
			&cli.BoolFlag{Name: "development", Aliases: []string{"D"}, Usage: "Development mode"},
		},
		Action: func(c *cli.Context) error {
			return run(c)
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	// Load configuration from environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	// Override with flags if set
	if c.IsSet("api-port") {
		cfg.APIPort = c.Int("api-port")
	}
	if c.IsSet("storage-backend") {
		cfg.StorageBackend = c.String("storage-backend")
	}
	if c.IsSet("postgres-user") {
		cfg.PostgresUser = c.String("postgres-user")
	}
	if c.IsSet("postgres-password") {
		cfg.PostgresPassword = c.String("postgres-password")
	}
	if c.IsSet("postgres-host") {
		cfg.PostgresHost = c.String("postgres-host")
	}
	if c.IsSet("postgres-port") {
		cfg.PostgresPort = c.Int("postgres-port")
	}
	if c.IsSet("postgres-db") {
		cfg.PostgresDB = c.String("postgres-db")
	}
	if c.IsSet("development") {
		cfg.Development = c.Bool("development")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %v", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Development)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %v", err)
	}

	// Initialize repository
	var repo models.Repository
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		repo, err = repository.NewPostgresRepository(cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresDB, cfg.PostgresHost, cfg.PostgresPort, log)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}
	default:
		repo = repository.NewMemoryRepository(log)
	}
	defer repo.Close()

	// Initialize notification channels
	var telegram *notifier.TelegramNotifier
	if cfg.TelegramEnabled() {
		telegram, err = notifier.NewTelegramNotifier(log, cfg.TelegramBotToken, cfg.TelegramOpsChatID)
		if err != nil {
			return fmt.Errorf("failed to initialize telegram notifier: %v", err)
		}
	}
	var email *notifier.EmailNotifier
	if cfg.EmailEnabled() {
		email = notifier.NewEmailNotifier(log, cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPSender, cfg.OpsEmail)
	}
	opsNotifier := notifier.NewNotifier(log, telegram, email)

	// Create the platform service layer and supporting services
	platform := stakeforge.NewStakeForge(repo, opsNotifier, log)
	statusService := status.NewService(log)

	// Initialize API server
	apiServer := http_api.NewHTTPServer(platform, statusService, cfg.APIPort, log)
	go apiServer.Start()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := apiServer.Shutdown(); err != nil {
		log.Error("Failed to shut down API server", "error", err)
	}

	return nil
}
