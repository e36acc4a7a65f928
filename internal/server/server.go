// Package server exposes the import, query, and categorization operations
// over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rappen-dev/rappen/internal/importer"
	"github.com/rappen-dev/rappen/internal/rules"
	"github.com/rappen-dev/rappen/internal/service"
)

// Server wires the HTTP routes to the import/categorization core.
type Server struct {
	store       service.Store
	categorizer *rules.Categorizer
	importer    *importer.Importer
}

// New creates a server over the given collaborators.
func New(store service.Store, categorizer *rules.Categorizer, imp *importer.Importer) *Server {
	return &Server{
		store:       store,
		categorizer: categorizer,
		importer:    imp,
	}
}

// Router builds the chi route tree.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Post("/upload", s.handleUpload)
			r.Get("/", s.handleListTransactions)
			r.Get("/summary/yearly", s.handleYearlySummary)
			r.Get("/summary/{year}/{month}", s.handleMonthlySummary)
			r.Get("/summary/{year}/{month}/{day}", s.handleDailySummary)
			r.Get("/export", s.handleExport)
			r.Delete("/batch/{batchID}", s.handleDeleteBatch)
			r.Delete("/", s.handleDeleteAll)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", s.handleListCategories)
			r.Get("/rules", s.handleListRules)
			r.Get("/summary/{year}/{month}", s.handleCategorySummary)
			r.Patch("/transaction/{id}", s.handleUpdateCategory)
			r.Post("/recategorize", s.handleRecategorize)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", s.handleGetSettings)
			r.Put("/", s.handleUpdateSettings)
		})
	})

	return r
}

// Serve runs the server on addr until the context is canceled, then shuts
// down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
