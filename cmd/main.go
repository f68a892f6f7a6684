package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/condor-cl/users-api/internal/api/http/handler"
	"github.com/condor-cl/users-api/internal/api/http/router"
	"github.com/condor-cl/users-api/internal/config"
	"github.com/condor-cl/users-api/internal/hasher"
	"github.com/condor-cl/users-api/internal/logger"
	"github.com/condor-cl/users-api/internal/model"
	"github.com/condor-cl/users-api/internal/repository/postgres"
	"github.com/condor-cl/users-api/internal/seed"
	"github.com/condor-cl/users-api/internal/service"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	_ = godotenv.Load(".env")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	regionRepo := postgres.NewRegionRepository(db)
	statusRepo := postgres.NewStatusRepository(db)
	passwordHasher := hasher.NewBcrypt(cfg.Bcrypt.Cost)

	userService := service.NewUser(userRepo, roleRepo, regionRepo, statusRepo, passwordHasher, logger)
	roleService := service.NewReference(model.KindRole, roleRepo, logger)
	regionService := service.NewReference(model.KindRegion, regionRepo, logger)
	statusService := service.NewReference(model.KindStatus, statusRepo, logger)

	if cfg.Seed.Enable {
		err := seed.Run(ctx,
			seed.Services{
				Users:    userService,
				Roles:    roleService,
				Regions:  regionService,
				Statuses: statusService,
			},
			seed.Config{
				Users: cfg.Seed.Users,
				Rand:  rand.New(rand.NewSource(cfg.Seed.Source)),
			},
			logger)
		if err != nil {
			logger.Fatal("failed to seed dev data", "error", err)
		}
	}

	r := router.New(
		handler.NewUser(userService, logger),
		handler.NewReference(roleService, logger),
		handler.NewReference(regionService, logger),
		handler.NewReference(statusService, logger),
		logger,
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTP.Port),
		Handler: r.Register(),
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting server on", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", err)
		}
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownTimeout)*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Addr)
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
