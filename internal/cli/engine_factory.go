package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DOCtorActoAntohich/fsa"
	"github.com/DOCtorActoAntohich/fsa/internal/config"
	"github.com/DOCtorActoAntohich/fsa/pkg/adapters/memory"
	"github.com/DOCtorActoAntohich/fsa/pkg/adapters/redis"
	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
	"github.com/DOCtorActoAntohich/fsa/pkg/ports"
)

// NewEngine builds an engine from cfg. The returned close function releases
// the cache connection and is never nil.
func NewEngine(ctx context.Context, cfg config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) (*fsa.Engine, func() error, error) {
	closer := func() error { return nil }

	opts := []fsa.Option{
		fsa.WithLogger(logger),
		fsa.WithMaxLength(cfg.MaxLength),
		fsa.WithLifecycleHooks(createDebugHooks(logger).Merge(hooks)),
	}

	cache, closeCache, err := newCache(ctx, cfg.Cache)
	if err != nil {
		return nil, closer, err
	}
	if cache != nil {
		opts = append(opts, fsa.WithCache(cache, cfg.Cache.TTL))
		closer = closeCache
		logger.Debug("result cache enabled", "driver", cfg.Cache.Driver, "ttl", cfg.Cache.TTL)
	}

	return fsa.New(opts...), closer, nil
}

func newCache(ctx context.Context, cfg config.CacheConfig) (ports.ResultCache, func() error, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.NewCache(), func() error { return nil }, nil
	case config.DriverRedis:
		c := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := c.Ping(ctx); err != nil {
			c.Close()
			return nil, nil, fmt.Errorf("redis cache unavailable at %s: %w", cfg.Redis.Addr, err)
		}
		return c, c.Close, nil
	default:
		return nil, nil, nil
	}
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnValidated: func(ctx context.Context, e *domain.ValidationEvent) {
			logger.Debug("Validated", "fingerprint", fmt.Sprintf("%016x", e.Fingerprint), "ok", e.Outcome.OK(), "states", e.States)
		},
		OnSynthesized: func(ctx context.Context, e *domain.SynthesisEvent) {
			if e.Err != nil {
				logger.Debug("Synthesis (Error)", "fingerprint", fmt.Sprintf("%016x", e.Fingerprint), "err", e.Err)
				return
			}
			logger.Debug("Synthesis (Success)", "fingerprint", fmt.Sprintf("%016x", e.Fingerprint), "length", e.Length, "cached", e.Cached)
		},
	}
}
