package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/taskhive/taskhive-api/internal/api"
	apiMiddleware "github.com/taskhive/taskhive-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.bcryptService,
		app.bcryptService,
		app.logger,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	taskHandler := api.NewTaskHandler(app.taskService, app.taskExporter, app.logger)
	categoryHandler := api.NewCategoryHandler(app.categoryService, app.logger)

	// Authentication endpoints (public)
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		// Task endpoints
		r.Get("/", taskHandler.ListTasks)
		r.Get("/tasks/json/", taskHandler.ListTasksJSON)
		r.Get("/tasks/export/", taskHandler.ExportTasks)
		r.Get("/task/create", taskHandler.GetTaskFormOptions)
		r.Post("/task/create", taskHandler.CreateTask)
		r.Get("/task/{id}/detail/", taskHandler.GetTaskDetail)
		r.Get("/task/{id}/edit/", taskHandler.GetTaskEditForm)
		r.Post("/task/{id}/edit/", taskHandler.UpdateTask)
		r.Post("/task/{id}/delete/", taskHandler.DeleteTask)

		// Category endpoints
		r.Get("/categories/", categoryHandler.ListCategories)
		r.Get("/categories/create/", categoryHandler.GetCategoryCreateForm)
		r.Post("/categories/create/", categoryHandler.CreateCategory)
		r.Get("/category/{id}/edit/", categoryHandler.GetCategory)
		r.Post("/category/{id}/edit/", categoryHandler.RenameCategory)
		r.Get("/{id}/detail/", categoryHandler.GetCategoryDetail)
		r.Post("/{id}/delete/", categoryHandler.DeleteCategory)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
