package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	dbadapter "eventboard-backend/internal/adapter/db"
	httpadapter "eventboard-backend/internal/adapter/http"
	"eventboard-backend/internal/adapter/http/handlers"
	"eventboard-backend/internal/adapter/http/mapper"
	httpmiddleware "eventboard-backend/internal/adapter/http/middleware"
	"eventboard-backend/internal/app/service"
	"eventboard-backend/internal/auth"
	"eventboard-backend/internal/config"
	"eventboard-backend/internal/realtime"
	"eventboard-backend/pkg/translator"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logCfg := zap.NewProductionConfig()
	logger, err := logCfg.Build()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)

	runErr := run(logger, logCfg.Level)
	if runErr != nil {
		logger.Error("server stopped", zap.Error(runErr))
	}
	if err := logger.Sync(); err != nil {
		zap.L().Debug("failed to sync logger", zap.Error(err))
	}
	if runErr != nil {
		os.Exit(1)
	}
}

// run owns every resource of the process; its deferred closers always run
// before main decides the exit code.
func run(logger *zap.Logger, level zap.AtomicLevel) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if parsed, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		level.SetLevel(parsed)
	} else {
		logger.Warn("unknown LOG_LEVEL, keeping info", zap.String("level", cfg.LogLevel))
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := translator.InitTranslator(translator.Config{TranslationFolder: cfg.TranslationFolder}); err != nil {
		logger.Warn("translations not loaded, falling back to english messages", zap.Error(err))
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", cfg.DbDriver, err)
	}
	defer func() {
		if err := dbadapter.Close(db); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var eventService *service.EventService
	hub := realtime.NewHub(
		realtime.WithEncoder(mapper.RealtimePayload),
		realtime.WithMetrics(realtime.NewMetrics(reg)),
		realtime.WithAllowedOrigins(cfg.CorsAllowedOrigins),
		realtime.WithAuthorizer(func(ctx context.Context, eventID, userID string) (bool, error) {
			return eventService.IsMember(ctx, eventID, userID)
		}),
	)

	users := dbadapter.NewUserRepository(db)
	events := dbadapter.NewEventRepository(db)
	messages := dbadapter.NewMessageRepository(db)

	authService := service.NewAuthService(users, auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL))
	eventService = service.NewEventService(events, users, hub)
	taskService := service.NewTaskService(events, hub)
	chatService := service.NewChatService(events, users, messages, hub)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		httpmiddleware.GinZapMiddleware(logger),
		httpmiddleware.NewHTTPMetrics(reg).Middleware(),
	)
	httpadapter.RegisterRoutes(r, authService, httpadapter.Handlers{
		Auth:     handlers.NewAuthHandler(authService),
		Events:   handlers.NewEventHandler(eventService),
		Tasks:    handlers.NewTaskHandler(taskService),
		Chat:     handlers.NewChatHandler(chatService),
		Health:   handlers.NewHealthHandler(db),
		Realtime: handlers.NewRealtimeHandler(hub),
		Metrics:  promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Accept-Language"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           c.Handler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-serveErr:
		hub.Close()
		return fmt.Errorf("could not start server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
	}
	hub.Close()
	return nil
}
