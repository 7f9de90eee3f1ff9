package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jawwad-masteee/handlix/config"
	"github.com/jawwad-masteee/handlix/handlers"
	"github.com/jawwad-masteee/handlix/middleware"
	"github.com/jawwad-masteee/handlix/routes"
	"github.com/jawwad-masteee/handlix/services/catalog"
	"github.com/jawwad-masteee/handlix/services/inquiry"
	"github.com/jawwad-masteee/handlix/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// NewRouter assembles the gin engine. cache may be nil to serve uncached.
func NewRouter(cfg config.Config, store *catalog.Store, logger *zap.Logger, cache middleware.ResponseCache) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	links := inquiry.NewBuilder(cfg.WhatsAppBaseURL, cfg.WhatsAppNumber)
	hb := handlers.NewHandlerBundle(store, links, cfg.SplashDuration)
	if cache != nil {
		hb.CacheMiddleware = middleware.CacheResponses(cache, cfg.CacheTTL)
	}

	routes.RegisterRoutes(router, hb, cfg.AllowedOrigins)
	return router
}

func runServe(cmd *cobra.Command, _ []string) error {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("serve: catalog failed validation", zap.String("path", cfg.CatalogPath), zap.Error(err))
	}
	counts := store.Counts()
	logger.Info("serve: catalog loaded",
		zap.Int("services", counts[catalog.KindServices]),
		zap.Int("pricing", counts[catalog.KindPricing]),
		zap.Int("posts", counts[catalog.KindPosts]),
	)

	var cache middleware.ResponseCache
	if cfg.CacheEnabled {
		if err := utils.InitCache(); err != nil {
			logger.Warn("serve: response cache disabled", zap.Error(err))
		} else {
			cache = middleware.NewRedisResponseCache(utils.GetCacheClient())
			defer utils.CloseCache()
		}
	}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, utils.GetCacheClient(), utils.HealthCheckInterval)

	router := NewRouter(cfg, store, logger, cache)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	serveErr := make(chan error, 1)
	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("serve: server failed to start", zap.Error(err))
			return err
		}
		return nil
	case <-quit:
	}
	logger.Info("serve: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("serve: server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("serve: server stopped gracefully")
	return nil
}
