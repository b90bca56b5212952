package services

import (
	"context"
	"errors"
	"time"

	"github.com/natnat/flowershop_content_microservice/internal/core/domain"
	"github.com/natnat/flowershop_content_microservice/internal/core/ports"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultTTL = 5 * time.Minute

	tierMemory  = "memory"
	tierDurable = "durable"
)

type ContentConfig struct {
	// UseAPI is the feature flag; false forces offline mode.
	UseAPI bool
	TTL    time.Duration
	// Now overrides the clock, mostly for tests.
	Now func() time.Time
}

// ContentService resolves content keys through a memory tier, an optional
// durable tier and finally the remote source. It owns both tiers.
type ContentService struct {
	source  ports.ContentSource
	memory  ports.CachePort
	durable ports.CachePort
	logger  ports.LoggerPort
	metrics ports.MetricsPort

	useAPI bool
	ttl    time.Duration
	now    func() time.Time

	inflight singleflight.Group
}

func NewContentService(
	source ports.ContentSource,
	memory ports.CachePort,
	durable ports.CachePort,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
	cfg ContentConfig,
) *ContentService {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &ContentService{
		source:  source,
		memory:  memory,
		durable: durable,
		logger:  logger,
		metrics: metrics,
		useAPI:  cfg.UseAPI,
		ttl:     ttl,
		now:     now,
	}
}

// Enabled reports whether remote fetching is switched on and has an endpoint.
func (cs *ContentService) Enabled() bool {
	return cs.useAPI && cs.source != nil && cs.source.Configured()
}

func (cs *ContentService) TTL() time.Duration {
	return cs.ttl
}

func (cs *ContentService) Resolve(ctx context.Context, key domain.ContentKey) (domain.Resolution, error) {
	if !cs.Enabled() {
		cs.logger.Debug("Sheets API is disabled or URL not configured", map[string]interface{}{
			"key": key.String(),
		})
		return domain.Resolution{Key: key, Source: domain.SourceNone}, nil
	}

	if entry, ok := cs.lookup(ctx, cs.memory, tierMemory, key); ok {
		return resolution(key, entry, domain.SourceMemory), nil
	}

	if entry, ok := cs.lookup(ctx, cs.durable, tierDurable, key); ok {
		cs.promote(ctx, key, entry)
		return resolution(key, entry, domain.SourceDurable), nil
	}

	// Concurrent misses for one key share a single request. The shared fetch
	// must not die with whichever caller started it; the client timeout
	// still bounds it.
	shared := context.WithoutCancel(ctx)
	v, err, _ := cs.inflight.Do(key.String(), func() (interface{}, error) {
		return cs.fetch(shared, key)
	})
	if err != nil {
		return domain.Resolution{Key: key, Source: domain.SourceNone}, err
	}
	return v.(domain.Resolution), nil
}

// ClearAll empties both tiers. Durable tier errors are logged only.
func (cs *ContentService) ClearAll(ctx context.Context) {
	if err := cs.memory.Clear(ctx); err != nil {
		cs.logger.Warn("Failed to clear memory cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if cs.durable != nil {
		if err := cs.durable.Clear(ctx); err != nil {
			cs.logger.Warn("Failed to clear durable cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	cs.logger.Info("Content cache cleared", nil)
}

func (cs *ContentService) lookup(ctx context.Context, tier ports.CachePort, name string, key domain.ContentKey) (domain.CacheEntry, bool) {
	if tier == nil {
		return domain.CacheEntry{}, false
	}

	raw, err := tier.Get(ctx, key.String())
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			cs.metrics.RecordCacheLookup(name, "miss")
		} else {
			cs.metrics.RecordCacheLookup(name, "error")
			cs.logger.Warn("Failed to read from cache", map[string]interface{}{
				"tier":  name,
				"key":   key.String(),
				"error": err.Error(),
			})
		}
		return domain.CacheEntry{}, false
	}

	entry, err := domain.DecodeCacheEntry(raw)
	if err != nil {
		cs.metrics.RecordCacheLookup(name, "error")
		cs.logger.Warn("Dropping unreadable cache entry", map[string]interface{}{
			"tier":  name,
			"key":   key.String(),
			"error": err.Error(),
		})
		cs.evict(ctx, tier, name, key)
		return domain.CacheEntry{}, false
	}

	if !entry.Fresh(cs.now(), cs.ttl) {
		cs.metrics.RecordCacheLookup(name, "expired")
		cs.evict(ctx, tier, name, key)
		return domain.CacheEntry{}, false
	}

	cs.metrics.RecordCacheLookup(name, "hit")
	return entry, true
}

func (cs *ContentService) evict(ctx context.Context, tier ports.CachePort, name string, key domain.ContentKey) {
	if err := tier.Delete(ctx, key.String()); err != nil {
		cs.logger.Warn("Failed to evict cache entry", map[string]interface{}{
			"tier":  name,
			"key":   key.String(),
			"error": err.Error(),
		})
	}
}

// promote copies a durable hit into the memory tier, keeping its timestamp.
func (cs *ContentService) promote(ctx context.Context, key domain.ContentKey, entry domain.CacheEntry) {
	raw, err := entry.Encode()
	if err != nil {
		cs.logger.Warn("Failed to encode cache entry", map[string]interface{}{
			"key":   key.String(),
			"error": err.Error(),
		})
		return
	}
	if err := cs.memory.Set(ctx, key.String(), raw, entry.Remaining(cs.now(), cs.ttl)); err != nil {
		cs.logger.Warn("Failed to promote cache entry", map[string]interface{}{
			"key":   key.String(),
			"error": err.Error(),
		})
	}
}

func (cs *ContentService) fetch(ctx context.Context, key domain.ContentKey) (domain.Resolution, error) {
	data, found, err := cs.source.Fetch(ctx, key)
	if err != nil {
		cs.metrics.RecordRemoteFetch("error")
		cs.logger.Error("Failed to fetch content from Sheets API", map[string]interface{}{
			"key":   key.String(),
			"error": err.Error(),
		})
		return domain.Resolution{}, err
	}

	if !found {
		cs.metrics.RecordRemoteFetch("empty")
		cs.logger.Info("Sheets API returned no data", map[string]interface{}{
			"key": key.String(),
		})
		return domain.Resolution{Key: key, Source: domain.SourceNone}, nil
	}

	entry := domain.CacheEntry{Data: data, Timestamp: cs.now()}
	raw, err := entry.Encode()
	if err != nil {
		cs.logger.Warn("Failed to encode cache entry", map[string]interface{}{
			"key":   key.String(),
			"error": err.Error(),
		})
	} else {
		if err := cs.memory.Set(ctx, key.String(), raw, cs.ttl); err != nil {
			cs.logger.Warn("Failed to cache content in memory", map[string]interface{}{
				"key":   key.String(),
				"error": err.Error(),
			})
		}
		if cs.durable != nil {
			if err := cs.durable.Set(ctx, key.String(), raw, cs.ttl); err != nil {
				cs.logger.Warn("Failed to save content to durable cache", map[string]interface{}{
					"key":   key.String(),
					"error": err.Error(),
				})
			}
		}
	}

	cs.metrics.RecordRemoteFetch("success")
	cs.logger.Debug("Content fetched from Sheets API", map[string]interface{}{
		"key":   key.String(),
		"bytes": len(data),
	})
	return resolution(key, entry, domain.SourceRemote), nil
}

func resolution(key domain.ContentKey, entry domain.CacheEntry, source domain.Source) domain.Resolution {
	return domain.Resolution{
		Key:       key,
		Data:      entry.Data,
		Source:    source,
		FetchedAt: entry.Timestamp,
	}
}

var _ ports.ContentService = (*ContentService)(nil)
