package main

import (
	"fmt"
	"log"
	"os"

	"salesdesk/internal/auth"
	"salesdesk/internal/cache"
	"salesdesk/internal/chat"
	"salesdesk/internal/config"
	"salesdesk/internal/exporter"
	"salesdesk/internal/handler"
	"salesdesk/internal/port"
	"salesdesk/internal/repository/postgres"
	"salesdesk/internal/router"
	"salesdesk/internal/service"
	localstorage "salesdesk/internal/storage/local"
	s3storage "salesdesk/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	ledgerRepo := postgres.NewLedgerRepo(db)
	profileRepo := postgres.NewProfileRepo(db)

	// Initialize document storage
	signer := auth.NewSigner(cfg.Download.Secret, cfg.Download.Expiry)

	var storage port.ObjectStorage
	var documentH *handler.DocumentHandler
	switch cfg.Storage.Provider {
	case "s3":
		storage, err = s3storage.NewS3Client(&cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	case "local":
		storage, err = localstorage.NewLocalStorage(cfg.Storage.Dir, cfg.Download.BaseURL, signer)
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
		documentH = handler.NewDocumentHandler(signer, storage)
	default:
		return fmt.Errorf("unknown storage provider %q", cfg.Storage.Provider)
	}

	// Initialize services
	queryCache := cache.New()
	ledgerSvc := service.NewLedgerService(ledgerRepo, queryCache)
	profileSvc := service.NewProfileService(profileRepo)
	documentSvc := service.NewDocumentService(exporter.NewExcelGenerator(), storage, cfg.Storage.PresignExpiry)

	// Initialize the conversation engine
	engine := chat.NewEngine(
		chat.NewSessionStore(),
		ledgerSvc,
		profileSvc,
		documentSvc,
		cfg.Bot,
		log.New(os.Stderr, "", log.LstdFlags),
	)

	// Initialize handlers
	eventH := handler.NewEventHandler(engine)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(eventH, documentH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
