package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/flashlingo/internal/app"
	"github.com/abhisek/flashlingo/internal/exam"
)

type runOptions struct {
	// setID opens the TUI directly on an exam.
	setID exam.SetID
}

// runApp opens the content source, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, opts runOptions) error {
	logger, closeLog, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	src, err := openContent(cmd, logger)
	if err != nil {
		return err
	}
	defer src.Close()

	lang := language(cmd)
	if lang != "" && !src.Catalog.HasLanguage(lang) {
		return fmt.Errorf("unknown language %q (have %v)", lang, src.Catalog.LanguageNames())
	}

	logger.Info("starting", slog.String("content", src.Origin), slog.String("lang", lang))
	return app.Run(app.Deps{
		Catalog:  src.Catalog,
		Loader:   src.Loader,
		Tutor:    newTutor(cmd.Context(), logger, cmd.ErrOrStderr()),
		Logger:   logger,
		Language: lang,
		SetID:    opts.setID,
	})
}
