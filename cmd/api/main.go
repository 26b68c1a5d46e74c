package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/GNaves/Tasks-API/internal/adapter/db"
	httpadapter "github.com/GNaves/Tasks-API/internal/adapter/http"
	"github.com/GNaves/Tasks-API/internal/adapter/http/handlers"
	httpmiddleware "github.com/GNaves/Tasks-API/internal/adapter/http/middleware"
	"github.com/GNaves/Tasks-API/internal/app/service"
	"github.com/GNaves/Tasks-API/internal/auth"
	"github.com/GNaves/Tasks-API/internal/config"
	"github.com/GNaves/Tasks-API/internal/ratelimit"
	"github.com/GNaves/Tasks-API/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguagePt},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	if err := dbadapter.RunMigrations(db, cfg.MigrationsPath); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Rate limiting is opt-in: no REDIS_URL means a nil limiter and
	// pass-through middleware.
	var limiter *ratelimit.RateLimiter
	if cfg.RedisURL != "" {
		limiter, err = ratelimit.NewRateLimiter(cfg.RedisURL)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer func() {
			if err := limiter.Close(); err != nil {
				logger.Warn("failed to close redis connection", zap.Error(err))
			}
		}()
	}

	tokens := auth.NewTokenManager(cfg.JwtSecret, cfg.JwtTTL)

	userRepository := dbadapter.NewUserRepository(db)
	teamRepository := dbadapter.NewTeamRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)

	userService := service.NewUserService(userRepository, cfg.BcryptCost)
	sessionService := service.NewSessionService(userRepository, tokens)
	teamService := service.NewTeamService(teamRepository, userRepository)
	taskService := service.NewTaskService(taskRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, httpadapter.RouterDeps{
		Health:   handlers.NewHealthHandler(db),
		Users:    handlers.NewUserHandler(userService),
		Sessions: handlers.NewSessionHandler(sessionService),
		Teams:    handlers.NewTeamHandler(teamService),
		Tasks:    handlers.NewTaskHandler(taskService),
		Tokens:   tokens,
		Limiter:  limiter,
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
