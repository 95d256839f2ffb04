// internal/wire/wire.go
package wire

import (
	"net/http"

	"seat-board/internal/adaptor"
	"seat-board/internal/data/repository"
	"seat-board/internal/usecase"
	"seat-board/pkg/middleware"
	"seat-board/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services dan handlers
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireSeat(r, handler.Seat)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Static web client (board UI)
	if config.App.StaticDir != "" {
		fs := http.FileServer(http.Dir(config.App.StaticDir))
		r.Handle("/*", fs)
	}

	return r
}
