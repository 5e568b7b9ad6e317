package content

import (
	"context"
	"log/slog"
	"time"

	"github.com/abhisek/flashlingo/internal/exam"
)

// Loader resolves set ids through a catalog and decodes what the fetcher
// returns. It implements exam.Loader.
type Loader struct {
	catalog *Catalog
	fetcher Fetcher
	logger  *slog.Logger
}

var _ exam.Loader = (*Loader)(nil)

// NewLoader creates a Loader. A nil logger discards.
func NewLoader(catalog *Catalog, fetcher Fetcher, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{catalog: catalog, fetcher: fetcher, logger: logger}
}

// Catalog returns the catalog the loader resolves against.
func (l *Loader) Catalog() *Catalog { return l.catalog }

// Load fetches and decodes the set for id. On any failure it returns a nil
// slice and the error.
func (l *Loader) Load(ctx context.Context, id exam.SetID) ([]exam.Question, error) {
	start := time.Now()

	entry, err := l.catalog.Lookup(id)
	if err != nil {
		return nil, err
	}

	data, err := l.fetcher.Fetch(ctx, entry.Path)
	if err != nil {
		l.logger.Warn("exam load failed", "set", id.String(), "path", entry.Path, "error", err)
		return nil, err
	}

	questions, err := DecodeSet(data)
	if err != nil {
		l.logger.Warn("exam decode failed", "set", id.String(), "path", entry.Path, "error", err)
		return nil, err
	}

	l.logger.Info("exam loaded",
		"set", id.String(),
		"questions", len(questions),
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return questions, nil
}
