package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kcimports/inventory-api/internal/api"
	"github.com/kcimports/inventory-api/internal/api/handler"
	"github.com/kcimports/inventory-api/internal/core/service"
	mongodb "github.com/kcimports/inventory-api/internal/infrastructure/db/mongo"
	redisdb "github.com/kcimports/inventory-api/internal/infrastructure/db/redis"
	"github.com/kcimports/inventory-api/internal/infrastructure/queue"
	"github.com/kcimports/inventory-api/internal/infrastructure/upload"
	"github.com/kcimports/inventory-api/internal/pkg/config"
	"github.com/kcimports/inventory-api/pkg/logger"
)

// @title        Inventory API
// @version      1.0
// @description  Inventory management API: containers, products, bulk imports and user administration.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Dependencies ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Repositories ---
	containerRepo := mongodb.NewContainerRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	accountRepo := mongodb.NewAccountRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	// --- Async audit trail ---
	auditDispatcher := queue.NewDispatcher(0, auditRepo, log)
	auditDispatcher.Start(ctx)

	// --- Services ---
	identity := service.NewIdentityService(accountRepo, cfg.JWTSecret, 24*time.Hour)
	containerService := service.NewContainerService(containerRepo, productRepo, auditDispatcher, log)
	productService := service.NewProductService(productRepo, containerRepo, redisdb.NewImportGuard(rdb), auditDispatcher, log)
	userService := service.NewUserService(identity, userRepo, auditDispatcher, log)

	signer := upload.NewSigner(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)

	e := api.NewRouter(api.Deps{
		Identity:   identity,
		Users:      userRepo,
		Containers: containerService,
		Products:   productService,
		UserAdmin:  userService,
		Upload:     handler.NewUploadHandler(signer),
		Mongo:      db,
		Redis:      rdb,
		Logger:     log,
	})

	// --- Serve ---
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("inventory api listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
