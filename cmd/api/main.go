package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gestao_plataformas/internal/adapter/auth"
	"gestao_plataformas/internal/adapter/http/handlers"
	"gestao_plataformas/internal/adapter/http/routes"
	"gestao_plataformas/internal/adapter/persistence/repository"
	"gestao_plataformas/internal/config"
	"gestao_plataformas/internal/infrastructure/idgen"
	"gestao_plataformas/internal/infrastructure/logger"
	"gestao_plataformas/internal/usecase"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Gestão de Plataformas API
// @version         1.0
// @description     Platform maintenance management: platforms, parts inventory, schedules and executed maintenances.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	zl, err := logger.New(cfg.LogLevel, cfg.GinMode)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ids := idgen.New()
	backend, err := repository.NewStorageBackend(ctx, cfg, ids, zl)
	if err != nil {
		zl.Fatal("storage backend", zap.Error(err))
	}

	state := usecase.NewState()
	platforms := usecase.NewPlatformUseCase(state, backend, ids, zl)
	parts := usecase.NewPartUseCase(state, backend, ids, zl)
	schedules := usecase.NewScheduleUseCase(state, backend, ids, platforms, zl)
	maintenances := usecase.NewMaintenanceUseCase(state, backend, ids, zl)
	users := usecase.NewUserUseCase(state, backend, auth.NewCredentialAuthenticator(backend), zl)
	dashboard := usecase.NewDashboardUseCase(state, backend, zl)

	if err := dashboard.Bootstrap(ctx); err != nil {
		zl.Fatal("bootstrap failed", zap.Error(err))
	}

	router := routes.NewRouter(zl, users, routes.Handlers{
		Users:        handlers.NewUserHandler(users),
		Platforms:    handlers.NewPlatformHandler(platforms, maintenances),
		Parts:        handlers.NewPartHandler(parts),
		Schedules:    handlers.NewScheduleHandler(schedules),
		Maintenances: handlers.NewMaintenanceHandler(maintenances),
		Dashboard:    handlers.NewDashboardHandler(dashboard),
	})

	if err := routes.Run(ctx, cfg, zl, router); err != nil {
		zl.Fatal("application terminated with error", zap.Error(err))
	}
}
