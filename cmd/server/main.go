package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"nextplay/internal/auth"
	"nextplay/internal/cache"
	"nextplay/internal/client/freetogame"
	"nextplay/internal/client/gnews"
	"nextplay/internal/config"
	cronrunner "nextplay/internal/cron"
	"nextplay/internal/db"
	"nextplay/internal/handler"
	"nextplay/internal/logger"
	gormrepository "nextplay/internal/repository/gorm"
	"nextplay/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("NP_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("NP_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	store := gormrepository.New(dbConn.Gorm)

	var responseCache cache.Store
	if cfg.Redis.Addr != "" {
		responseCache = cache.NewRedis(cfg.Redis)
		logger.Info("using redis response cache", zap.String("addr", cfg.Redis.Addr))
	} else {
		responseCache = cache.NewMemory()
	}

	catalogHTTP := &http.Client{Timeout: cfg.Catalog.Timeout}
	catalogService := &service.CatalogService{
		Client:   freetogame.NewClient(catalogHTTP, cfg.Catalog.BaseURL),
		Cache:    responseCache,
		Repo:     store,
		Logger:   logger,
		CacheTTL: cfg.Catalog.CacheTTL,
	}

	newsHTTP := &http.Client{Timeout: cfg.News.Timeout}
	trendingService := &service.TrendingService{
		Client:   gnews.NewClient(newsHTTP, cfg.News.BaseURL, cfg.News.APIKey),
		Cache:    responseCache,
		Repo:     store,
		Logger:   logger,
		APIKey:   cfg.News.APIKey,
		Topics:   cfg.News.Topics,
		PageSize: cfg.News.PageSize,
		CacheTTL: cfg.News.CacheTTL,
	}
	communityService := &service.CommunityService{Repo: store}
	favoritesService := &service.FavoritesService{Repo: store}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())
	engine.Use(auth.Middleware(cfg.Auth))

	(&handler.HealthHandler{DB: dbConn.Gorm}).Register(engine)
	(&handler.GamesHandler{Service: catalogService, Logger: logger}).Register(engine)
	(&handler.NewsHandler{Trending: trendingService, Community: communityService, Logger: logger}).Register(engine)
	(&handler.FavoritesHandler{Service: favoritesService, Logger: logger}).Register(engine)
	(&handler.SourcesHandler{Repo: store, Logger: logger}).Register(engine)

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cronRunner := cronrunner.New(logger, ctx)
	if err := cronrunner.RegisterJobs(cronRunner, cfg.Cron, catalogService, trendingService, logger); err != nil {
		logger.Warn("cron register failed", zap.Error(err))
	}
	cronRunner.Start()
	defer cronRunner.Stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization,X-NextPlay-User")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
