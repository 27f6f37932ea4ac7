// Command proxyd runs the transcription proxy: a single-endpoint HTTP
// service that forwards audio uploads from trusted clients to the OpenAI
// transcription API and normalizes the response.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/transcribe-proxy/internal/api"
	"github.com/kbukum/transcribe-proxy/internal/auth"
	"github.com/kbukum/transcribe-proxy/internal/config"
	"github.com/kbukum/transcribe-proxy/internal/logger"
	"github.com/kbukum/transcribe-proxy/internal/server"
	"github.com/kbukum/transcribe-proxy/internal/server/middleware"
	"github.com/kbukum/transcribe-proxy/internal/transcription/openai"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Log)
	log := logger.WithComponent("proxyd")

	if !cfg.HasOpenAIKey() {
		// Startup still succeeds: /health reports the missing key and
		// transcription requests fail with CONFIG_ERROR.
		log.Warn("OPENAI_API_KEY is not set, transcription requests will fail")
	}

	authn := auth.New(cfg.ClientToken)
	provider := openai.NewClient(openai.Config{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Timeout: cfg.UpstreamTimeout,
	})

	srv := server.New(server.Config{
		Host: cfg.Host,
		Port: cfg.Port,
		CORS: middleware.CORSConfig{AllowedOrigins: cfg.CORSOrigins},
	}, logger.GetGlobalLogger())
	srv.ApplyMiddleware()
	api.NewHandler(cfg, authn, provider).Register(srv.GinEngine())

	ctx := context.Background()
	if err := srv.Start(ctx); err != nil {
		log.Fatal("failed to start server", map[string]interface{}{
			"error": err.Error(),
		})
	}

	log.Info("transcribe proxy started", map[string]interface{}{
		"addr":                  srv.Addr(),
		"upstream":              cfg.OpenAIBaseURL,
		"has_openai_key":        cfg.HasOpenAIKey(),
		"client_token_required": cfg.ClientTokenRequired(),
		"cors_enabled":          cfg.CORSEnabled(),
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := srv.Stop(ctx); err != nil {
		log.Error("shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
