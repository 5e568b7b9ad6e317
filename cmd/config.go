package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/flashlingo/internal/content"
	"github.com/abhisek/flashlingo/internal/llm"
	"github.com/abhisek/flashlingo/internal/tutor"
)

// contentConfig resolves the content source: flags beat FLASHLINGO_*
// variables, which beat defaults.
func contentConfig(cmd *cobra.Command) content.Config {
	cfg := content.ConfigFromEnv()
	if v, _ := cmd.Flags().GetString("content"); v != "" {
		cfg.Dir = v
	}
	if v, _ := cmd.Flags().GetString("content-url"); v != "" {
		cfg.URL = v
	}
	if v, _ := cmd.Flags().GetString("pack"); v != "" {
		cfg.Pack = v
	}
	if v, _ := cmd.Flags().GetString("redis"); v != "" {
		cfg.RedisAddr = v
	}
	return cfg
}

// language returns --lang, then FLASHLINGO_LANG.
func language(cmd *cobra.Command) string {
	if v, _ := cmd.Flags().GetString("lang"); v != "" {
		return v
	}
	return os.Getenv("FLASHLINGO_LANG")
}

// newLogger returns a JSON logger writing to --log-file or FLASHLINGO_LOG.
// The TUI owns the terminal, so without a file logs are discarded. The
// returned close function is never nil.
func newLogger(cmd *cobra.Command) (*slog.Logger, func() error, error) {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		path = os.Getenv("FLASHLINGO_LOG")
	}
	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	level := slog.LevelInfo
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return logger.With(slog.String("version", version)), f.Close, nil
}

// llmConfig reads FLASHLINGO_* settings and falls back to probing the
// vendor API key variables.
func llmConfig() llm.Config {
	cfg := llm.ConfigFromEnv()
	if cfg.Enabled() {
		return cfg
	}
	if discovered, ok := llm.DiscoverConfig(); ok {
		return discovered
	}
	return cfg
}

// newTutor builds the explanation service. Without a usable provider it
// still serves explanations authored in the content.
func newTutor(ctx context.Context, logger *slog.Logger, warn io.Writer) *tutor.Service {
	cfg := llmConfig()
	if !cfg.Enabled() {
		return tutor.NewService(nil, tutor.DefaultConfig())
	}

	provider, err := llm.NewProvider(ctx, cfg, llm.SlogSink{Logger: logger})
	if err != nil {
		fmt.Fprintln(warn, "warning: LLM provider not configured:", err)
		fmt.Fprintln(warn, "Answer explanations will be unavailable.")
		logger.Warn("llm provider disabled", slog.Any("error", err))
		return tutor.NewService(nil, tutor.DefaultConfig())
	}
	logger.Info("llm provider ready", slog.String("provider", cfg.Provider), slog.String("model", provider.ModelID()))
	return tutor.NewService(provider, tutor.DefaultConfig())
}

// openContent opens the content source selected by the flags.
func openContent(cmd *cobra.Command, logger *slog.Logger) (*content.Source, error) {
	src, err := content.Open(cmd.Context(), contentConfig(cmd), logger)
	if err != nil {
		return nil, fmt.Errorf("open content: %w", err)
	}
	return src, nil
}
