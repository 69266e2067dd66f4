package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/piigate/piigate/internal/audit"
	"github.com/piigate/piigate/internal/config"
	"github.com/piigate/piigate/internal/guard"
	"github.com/piigate/piigate/internal/httpapi"
	"github.com/piigate/piigate/internal/llmdetect"
	"github.com/piigate/piigate/internal/observability"
	"github.com/piigate/piigate/internal/whitelist"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the guard HTTP service",
		RunE:  runServe,
	}
	rootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	wl, err := whitelist.Load(cfg.WhitelistPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.WhitelistPath).
			Msg("whitelist unavailable, suppressing nothing")
	} else {
		log.Info().Int("entries", wl.Size()).Msg("whitelist loaded")
	}

	// The external detector is decided here, once. A failed probe leaves it
	// off for the whole process lifetime.
	var external llmdetect.Detector
	if cfg.LLMEnabled {
		ollama := llmdetect.NewOllama(cfg.LLMBaseURL, cfg.LLMModel, cfg.LLMTimeout)
		probeCtx, cancel := context.WithTimeout(cmd.Context(), cfg.LLMTimeout)
		err := ollama.Probe(probeCtx)
		cancel()
		if err != nil {
			log.Warn().Err(err).Str("url", cfg.LLMBaseURL).
				Msg("semantic detector unreachable, running pattern-only")
		} else {
			external = ollama
			log.Info().Str("model", cfg.LLMModel).Msg("semantic detector enabled")
		}
	}

	var auditLog *audit.AuditLog
	if cfg.AuditLogPath != "" {
		auditLog = audit.NewAuditLog(cfg.AuditLogPath)
		log.Info().Str("path", cfg.AuditLogPath).Msg("audit log enabled")
	}

	metrics := observability.NewMetrics(cfg.MetricsNamespace)
	svc := guard.New(wl, external)
	svc.ExternalErrs = metrics.ExternalErrors
	api := httpapi.New(cfg, svc, metrics, auditLog)

	httpServer := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: api.Router(),
	}

	go func() {
		log.Info().Str("addr", cfg.BindAddr).Msg("server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		_ = httpServer.Close()
	}

	log.Info().Msg("shutdown complete")
	return nil
}
