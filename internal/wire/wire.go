package wire

import (
	"context"
	"net/http"
	"time"

	"turf-booking/internal/adaptor"
	"turf-booking/internal/data/repository"
	"turf-booking/internal/usecase"
	"turf-booking/pkg/database"
	"turf-booking/pkg/middleware"
	"turf-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired router and the repositories background jobs need.
type App struct {
	Router *chi.Mux
	Repo   *repository.Repository
}

// Wiring builds repositories, services and handlers on top of db.
func Wiring(db database.PgxIface, config *utils.Config, logger *zap.Logger) (*App, error) {
	repo := repository.NewRepository(db, logger)
	tokens := utils.NewTokenManager(config.JWT)

	service, err := usecase.NewService(repo, config, tokens, logger)
	if err != nil {
		return nil, err
	}
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, service, db, config, logger)

	return &App{
		Router: router,
		Repo:   repo,
	}, nil
}

func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	db database.PgxIface,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigins...))
	r.Use(chimw.Timeout(config.App.RequestTimeout))

	requireAuth := middleware.AuthToken(service.Auth, logger)

	wireAuth(r, handler.Auth, requireAuth)
	wireUser(r, handler.User, requireAuth)
	wireGame(r, handler.Game, requireAuth, logger)
	wireTurf(r, handler.Turf, requireAuth, logger)
	wireBooking(r, handler.Booking, requireAuth)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Warn("Health check failed", zap.Error(err))
			utils.ResponseError(w, http.StatusServiceUnavailable, "unavailable", "Database unreachable", nil)
			return
		}
		utils.ResponseSuccess(w, "OK", nil)
	})

	return r
}
