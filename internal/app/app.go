package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Antonellome/riso-server/internal/config"
	"github.com/Antonellome/riso-server/internal/database"
	"github.com/Antonellome/riso-server/internal/storage"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, storage, router, and server lifecycle.
type Application struct {
	cfg    config.Application
	router *mux.Router
	srv    *http.Server
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	// Build dependencies (services, handlers...)
	deps := BuildDependencies(store, cfg)

	// Warm the report collection so a corrupt store fails startup, not the
	// first request.
	if err := deps.ReportRepo.Load(context.Background()); err != nil {
		return nil, err
	}

	// Middleware chain
	SetupMiddleware(r, cfg)

	// Routes
	RegisterRoutes(r, deps)

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.Addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, router: r, srv: srv}, nil
}

// openStore builds the persistence collaborator selected by configuration.
func openStore(cfg config.Application) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "file":
		log.Infof("Using file storage in %s", cfg.Storage.Dir)
		return storage.NewFileStore(cfg.Storage.Dir)
	case "database":
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, err
		}
		// db stays open for the process lifetime.
		if err := database.Migrate(db, cfg.Database); err != nil {
			return nil, err
		}
		log.Infof("Using %s document storage", cfg.Database.Driver)
		return storage.NewDocumentStore(db, cfg.Database.Driver), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// Run starts the HTTP server and blocks.
func (a *Application) Run() error {
	log.Infof("Starting server on %s", a.srv.Addr)
	return a.srv.ListenAndServe()
}
