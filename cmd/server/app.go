package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/taskhive/taskhive-api/internal/config"
	"github.com/taskhive/taskhive-api/internal/platform/postgres"
	"github.com/taskhive/taskhive-api/internal/service"
	"github.com/taskhive/taskhive-api/internal/service/auth"
	"github.com/taskhive/taskhive-api/internal/store"
)

// application holds the wired dependencies shared by the router and the
// HTTP server lifecycle.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore     store.UserStore
	taskStore     store.TaskStore
	categoryStore store.CategoryStore

	jwtService    auth.JWTService
	bcryptService *auth.BcryptService

	taskService     *service.TaskService
	categoryService *service.CategoryService
	taskExporter    *service.TaskExporter
}

// newApplication connects to the database, runs migrations, and constructs
// every store, service, and handler dependency.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := postgres.RunMigrations(db); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			logger.Error("failed to close database after migration failure", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			logger.Error("failed to close database after auth setup failure", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	categoryStore := postgres.NewPostgresCategoryStore(db, logger)
	taskStore := postgres.NewPostgresTaskStore(db, logger)

	app := &application{
		config:          cfg,
		logger:          logger,
		db:              db,
		userStore:       userStore,
		taskStore:       taskStore,
		categoryStore:   categoryStore,
		jwtService:      jwtService,
		bcryptService:   auth.NewBcryptService(),
		taskService:     service.NewTaskService(taskStore, categoryStore, logger),
		categoryService: service.NewCategoryService(categoryStore, taskStore, logger),
		taskExporter:    service.NewTaskExporter(taskStore, logger),
	}

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
