package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/focuspoint-lab/focuspoint/pkg/usecase"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

type Options func(*Server)

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		if uc.Auth != nil {
			r.Post("/auth/login", s.handleLogin)
		}

		r.Group(func(r chi.Router) {
			if uc.Auth != nil {
				r.Use(authMiddleware(uc.Auth))
				r.Post("/auth/logout", s.handleLogout)
			}

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", s.handleListCategories)
				r.Post("/", s.handleCreateCategory)
				r.Get("/{id}", s.handleGetCategory)
				r.Put("/{id}", s.handleUpdateCategory)
				r.Delete("/{id}", s.handleDeleteCategory)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", s.handleListProjects)
				r.Post("/", s.handleCreateProject)
				r.Get("/{id}", s.handleGetProject)
				r.Put("/{id}", s.handleUpdateProject)
				r.Delete("/{id}", s.handleDeleteProject)
				r.Get("/{id}/milestones", s.handleListMilestones)
				r.Get("/{id}/graph", s.handleMilestoneGraph)
				r.Get("/{id}/dependencies", s.handleListDependencies)
				r.Post("/{id}/dependencies", s.handleAddDependency)
			})

			r.Route("/milestones", func(r chi.Router) {
				r.Post("/", s.handleUpsertMilestone)
				r.Get("/{id}", s.handleGetMilestone)
				r.Delete("/{id}", s.handleDeleteMilestone)
				r.Post("/{id}/percent", s.handleSetMilestonePercent)
				r.Post("/{id}/note", s.handleSetMilestoneNote)
			})

			r.Delete("/dependencies/{id}", s.handleRemoveDependency)

			r.Route("/actions", func(r chi.Router) {
				r.Get("/", s.handleListActions)
				r.Post("/", s.handleLogAction)
				r.Delete("/{id}", s.handleDeleteAction)
			})

			r.Get("/review/{period}", s.handleReview)

			r.Route("/reports", func(r chi.Router) {
				r.Get("/", s.handleListReports)
				r.Post("/{period}", s.handleGenerateReport)
				r.Get("/{id}/download", s.handleDownloadReport)
			})
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
