package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/remedia/remedia-api/config"
	"github.com/remedia/remedia-api/consultation"
	"github.com/remedia/remedia-api/data"
	"github.com/remedia/remedia-api/handlers"
	"github.com/remedia/remedia-api/health"
	"github.com/remedia/remedia-api/llm"
	"github.com/remedia/remedia-api/logging"
	"github.com/remedia/remedia-api/scheduler"
	"github.com/remedia/remedia-api/server"
	"github.com/remedia/remedia-api/validation"
	"github.com/remedia/remedia-api/voice"
)

// maxSessionsBeforeDegraded is the active session count above which the
// health endpoint reports degraded
const maxSessionsBeforeDegraded = 5000

func main() {
	// A missing .env file is fine, the environment may be set externally
	if err := godotenv.Load(); err != nil {
		logging.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logging.InitLogger("logs", cfg.LogRetentionWeeks, cfg.MaxLogFileSize, cfg.SlogLevel())

	client, err := llm.NewClientFromEnv(cfg.LLMProvider, cfg.LLMModel)
	if err != nil {
		logging.Error("Failed to create provider client", "error", err)
		os.Exit(1)
	}
	logging.Info("Provider client ready", "provider", client.Name(), "model", client.Model())

	store := data.NewSessionContainer()
	store.SetServerStartTime(time.Now())

	service := consultation.NewService(llm.NewProvider(client), cfg.LLMTimeout())
	validator := validation.NewInputValidator()
	checker := health.NewHealthChecker(store, client.Name(), maxSessionsBeforeDegraded)
	handler := handlers.NewHTTPHandler(store, service, validator, checker, voice.NewDescriptor(cfg.VoiceInput))

	sched := scheduler.NewScheduler(store, cfg.SessionTTL())
	if err := sched.Start(); err != nil {
		logging.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(cfg, handler)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit

	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Shutdown failed", "error", err)
		os.Exit(1)
	}
}
