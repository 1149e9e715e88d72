package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"cpu-scheduler-simulator/api"
	"cpu-scheduler-simulator/config"
	"cpu-scheduler-simulator/internal/cache"
	"cpu-scheduler-simulator/internal/logging"
)

func main() {
	cfg, err := config.GetSchedulerConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	defer logger.Sync()

	var resultCache *cache.ResultCache
	if cfg.CacheEnabled {
		resultCache, err = cache.NewResultCache(cfg.CacheMaxEntries)
		if err != nil {
			logger.Fatal("create result cache", zap.Error(err))
		}
		defer resultCache.Close()
		logger.Debug("result cache enabled", zap.Int64("maxEntries", cfg.CacheMaxEntries))
	}

	handler := api.NewSchedulerHandlerImpl(cfg, resultCache, logger)
	app := api.NewApp(cfg, handler, logger)

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigs
		logger.Info("shutting down", zap.String("signal", sig.String()))
		if err := app.Shutdown(); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}()

	logger.Info("scheduler server listening", zap.Int("port", cfg.Port))
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Fatal("listen", zap.Error(err))
	}
}
