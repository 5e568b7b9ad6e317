package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/abhisek/flashlingo/internal/store"
)

// Source bundles the fetcher chain, the catalog read through it and a loader.
// Close releases the pack and the Redis client.
type Source struct {
	Catalog *Catalog
	Fetcher Fetcher
	Loader  *Loader

	// Origin describes the backing fetcher, e.g. "dir:data".
	Origin string

	closers []func() error
}

// Open builds a Source from cfg. An unreachable Redis disables the cache with a
// warning instead of failing.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*Source, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	src := &Source{}

	var base Fetcher
	switch {
	case cfg.Pack != "":
		st, err := store.Open(cfg.Pack)
		if err != nil {
			return nil, fmt.Errorf("open pack: %w", err)
		}
		src.closers = append(src.closers, st.Close)
		pf := NewPackFetcher(st.Sets(), cfg.Pack)
		base, src.Origin = pf, pf.String()
	case cfg.URL != "":
		hf := NewHTTPFetcher(cfg.URL, cfg.HTTPTimeout)
		base, src.Origin = hf, hf.String()
	default:
		df := NewDirFetcher(cfg.Dir)
		base, src.Origin = df, df.String()
	}
	src.Fetcher = base

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unavailable, content cache disabled", "addr", cfg.RedisAddr, "error", err)
			rdb.Close()
		} else {
			src.closers = append(src.closers, rdb.Close)
			src.Fetcher = NewCachedFetcher(base, rdb, cfg.RedisTTL, logger)
		}
	}

	catalog, err := LoadCatalog(ctx, src.Fetcher)
	if err != nil {
		src.Close()
		return nil, err
	}
	src.Catalog = catalog
	src.Loader = NewLoader(catalog, src.Fetcher, logger)

	logger.Info("content source opened", "origin", src.Origin, "languages", len(catalog.Languages))
	return src, nil
}

// Close releases everything Open acquired.
func (s *Source) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	s.closers = nil
	return errors.Join(errs...)
}
