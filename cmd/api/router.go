package main

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/crucial707/folio-api/internal/assets"
	"github.com/crucial707/folio-api/internal/config"
	"github.com/crucial707/folio-api/internal/handlers"
	"github.com/crucial707/folio-api/internal/middleware"
	"github.com/crucial707/folio-api/internal/repo"
	"github.com/crucial707/folio-api/internal/service"
	"github.com/crucial707/folio-api/internal/token"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// newRouter wires repositories, services and handlers onto a chi mux.
func newRouter(db *sql.DB, cfg config.Config, uploader assets.Uploader, log *zap.Logger) http.Handler {
	projectRepo := repo.NewProjectRepo(db)
	userRepo := repo.NewUserRepo(db)
	tokens := token.NewService([]byte(cfg.JWTSecret), cfg.JWTTTL)

	authHandler := &handlers.AuthHandler{
		Auth: service.NewAuthService(userRepo, tokens),
		Log:  log,
	}
	projectHandler := &handlers.ProjectHandler{
		Projects: service.NewProjectService(projectRepo, uploader),
		Log:      log,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer(log))
	r.Use(middleware.Prometheus)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.SecurityHeaders(cfg.TLSCertFile != ""))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(chimw.Timeout(60 * time.Second))

	r.Get("/", handlers.Alive)
	r.Get("/health", handlers.Health)
	r.Get("/ready", handlers.Ready(projectRepo, log))
	r.Handle("/metrics", promhttp.Handler())

	r.With(middleware.MaxBytes(middleware.DefaultMaxBodyBytes)).Post("/login", authHandler.Login)
	r.Get("/projects", projectHandler.ListProjects)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens, log))

		r.Get("/projects/{id}", projectHandler.GetProject)
		r.With(middleware.MaxBytes(middleware.DefaultMaxBodyBytes)).Post("/projects", projectHandler.CreateProject)
		r.With(middleware.MaxBytes(middleware.DefaultMaxBodyBytes)).Put("/projects/{id}", projectHandler.UpdateProject)
		r.Delete("/projects/{id}", projectHandler.DeleteProject)
		r.With(middleware.MaxBytes(cfg.MaxUploadBytes)).Post("/projects/{id}/image", projectHandler.UploadImage)
	})

	return r
}
