// Creating notes, reading them through the access rules and checking the
// paired tracking record are the three public operations.
//
// POST /api/notes            # Create note (public)
// POST /api/notes/{id}/read  # Read attempt (public)
// GET  /api/track/{id}       # Tracking status (public)
// GET  /api/v1/health        # Liveness

package api

import (
	healthAPI "vanishnote/internal/app/server/api/http/health"
	"vanishnote/internal/app/server/api/http/middleware"
	"vanishnote/internal/app/server/api/http/middleware/logger"
	noteAPI "vanishnote/internal/app/server/api/http/note"
	trackAPI "vanishnote/internal/app/server/api/http/track"
	"vanishnote/internal/domain/note"
	"vanishnote/internal/domain/track"
	redisstorage "vanishnote/internal/infrastructure/storage/redis"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	Note   *noteAPI.Handler
	Track  *trackAPI.Handler
}

// New creates a *chi.Mux with all operations registered through huma.Register.
func New(storage *redisstorage.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("VanishNote API", "1.0.0")

	API := humachi.New(mux, config)

	h := handlers(storage, log)
	h.Health.SetupRoutes(API)
	h.Note.SetupRoutes(API)
	h.Track.SetupRoutes(API)

	return mux
}

func handlers(storage *redisstorage.Storage, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	noteRepo := redisstorage.NewNoteRepository(storage, log)
	trackRepo := redisstorage.NewTrackRepository(storage, log)
	statsRepo := redisstorage.NewStatsRepository(storage, log)

	noteService := note.NewService(noteRepo, trackRepo, statsRepo, log)
	middlewares.Add(loggerMW.Middleware())
	noteHandler := noteAPI.NewHandler(noteService, log, middlewares.GetAllAndClear())

	trackService := track.NewService(trackRepo, log)
	middlewares.Add(loggerMW.Middleware())
	trackHandler := trackAPI.NewHandler(trackService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Note:   noteHandler,
		Track:  trackHandler,
	}
}
