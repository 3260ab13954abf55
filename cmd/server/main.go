package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "pennywise/docs" // swagger docs

	"pennywise/internal/ai"
	"pennywise/internal/auth"
	"pennywise/internal/cache"
	"pennywise/internal/config"
	"pennywise/internal/db"
	"pennywise/internal/handler"
	"pennywise/internal/logger"
	"pennywise/internal/model"
	"pennywise/internal/repository"
	"pennywise/internal/router"
	"pennywise/internal/service"
)

// @title PennyWise API
// @version 1.0
// @description Personal finance tracking API with JWT authentication, expense CRUD and AI-narrated spending insights.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name token
// @description Signed token issued by /auth/signin.
func main() {
	cfg := config.Load()

	log, err := logger.New(!cfg.IsDevelopment())
	if err != nil {
		panic("init logger: " + err.Error())
	}
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal("database init", zap.Error(err))
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			log.Warn("close database", zap.Error(err))
		}
	}()

	// Run migrations for all models. The insights table is part of the
	// persisted layout even though the API computes insights on demand.
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Expense{},
		&model.Insight{},
	); err != nil {
		log.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	expenseRepo := repository.NewExpenseRepository(gormDB)

	// Initialize the text-generation capability
	var generator ai.TextGenerator
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal("gemini init", zap.Error(err))
		}
		defer gemini.Close() //nolint:errcheck
		generator = gemini
	} else {
		log.Warn("GEMINI_API_KEY not set, AI analysis will fail until configured")
		generator = ai.Disabled{}
	}

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	expenseService := service.NewExpenseService(expenseRepo, cacheClient)
	insightService := service.NewInsightService(expenseRepo, generator, cacheClient, log)

	// Initialize handlers
	debug := cfg.IsDevelopment()
	authHandler := handler.NewAuthHandler(authService, debug)
	expenseHandler := handler.NewExpenseHandler(expenseService, debug)
	insightHandler := handler.NewInsightHandler(insightService, debug)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	router.Register(e, jwtService, authHandler, expenseHandler, insightHandler)

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("server listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal("server start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
}
