package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "gestao_plataformas/docs" // registers the swagger document
	"gestao_plataformas/internal/adapter/http/handlers"
	"gestao_plataformas/internal/adapter/http/middleware"
	"gestao_plataformas/internal/config"
	"gestao_plataformas/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Users        *handlers.UserHandler
	Platforms    *handlers.PlatformHandler
	Parts        *handlers.PartHandler
	Schedules    *handlers.ScheduleHandler
	Maintenances *handlers.MaintenanceHandler
	Dashboard    *handlers.DashboardHandler
}

// NewRouter builds the engine. users backs the session middleware guarding
// every private route.
func NewRouter(log *zap.Logger, users usecase.IUserUseCase, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")

	// Rotas publicas
	addPingRoutes(v1)
	addAuthRoutes(v1, h.Users)

	private := v1.Group("", middleware.RequireSession(users))
	addSessionRoutes(private, h.Users)
	addDashboardRoutes(private, h.Dashboard)
	addPlatformRoutes(private, h.Platforms)
	addPartRoutes(private, h.Parts)
	addScheduleRoutes(private, h.Schedules)
	addMaintenanceRoutes(private, h.Maintenances)

	return router
}

// Run serves router until ctx is canceled, then drains in-flight requests
// for at most cfg.ShutdownTimeout.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger, router http.Handler) error {
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting http server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		log.Info("server stopped")
		return nil
	})

	return g.Wait()
}
