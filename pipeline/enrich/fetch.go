package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"profile-stack/internal/models"
	"profile-stack/shared/cache"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	videoKeyPrefix    = "youtube:video:"
	categoryKeyPrefix = "youtube:categories:"

	defaultBatchSize = 50
	cacheConcurrency = 16
)

// MetadataProvider resolves video metadata and category names. The production
// implementation talks to the YouTube Data API; tests use an in-memory fake.
type MetadataProvider interface {
	VideoMetadata(ctx context.Context, ids []string) (map[string]models.VideoMetadata, error)
	CategoryNames(ctx context.Context, ids []string) (map[string]string, error)
}

// Fetcher is the cached metadata lookup used by the enrichment stage. Cache
// hits are read concurrently; misses go to the provider in bounded batches,
// and a failing batch degrades to "no data" for its ids instead of aborting
// the whole fetch.
type Fetcher struct {
	provider  MetadataProvider
	cache     cache.Cache
	log       *zap.SugaredLogger
	batchSize int
	timeout   time.Duration
}

func NewFetcher(provider MetadataProvider, c cache.Cache, log *zap.SugaredLogger, batchSize int, timeout time.Duration) *Fetcher {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if batchSize <= 0 || batchSize > defaultBatchSize {
		batchSize = defaultBatchSize
	}
	return &Fetcher{
		provider:  provider,
		cache:     c,
		log:       log,
		batchSize: batchSize,
		timeout:   timeout,
	}
}

// Metadata resolves as many of the given ids as it can. The returned map only
// contains ids that resolved; callers treat absence as "drop the video".
func (f *Fetcher) Metadata(ctx context.Context, ids []string) (map[string]models.VideoMetadata, error) {
	distinct := dedupe(ids)
	resolved := make(map[string]models.VideoMetadata, len(distinct))

	var mu sync.Mutex
	var misses []string

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cacheConcurrency)
	for _, id := range distinct {
		id := id
		g.Go(func() error {
			raw, ok, err := f.cache.Get(gctx, videoKeyPrefix+id)
			if err != nil {
				f.log.Warnw("cache lookup failed", "videoId", id, "error", err)
				ok = false
			}
			var meta models.VideoMetadata
			if ok {
				if err := json.Unmarshal([]byte(raw), &meta); err != nil {
					f.log.Warnw("discarding corrupt cache entry", "videoId", id, "error", err)
					ok = false
				}
			}

			mu.Lock()
			defer mu.Unlock()
			if ok {
				resolved[id] = meta
			} else {
				misses = append(misses, id)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("metadata cache scan: %w", err)
	}

	// Cache reads race, so pin the batch order for deterministic requests.
	sort.Strings(misses)

	for i := 0; i < len(misses); i += f.batchSize {
		end := i + f.batchSize
		if end > len(misses) {
			end = len(misses)
		}
		batch := misses[i:end]

		fetched, err := f.fetchBatch(ctx, batch)
		if err != nil {
			f.log.Warnw("metadata batch failed, ids stay unresolved",
				"batchSize", len(batch), "error", err)
			continue
		}

		wg, wctx := errgroup.WithContext(ctx)
		wg.SetLimit(cacheConcurrency)
		for id, meta := range fetched {
			id, meta := id, meta
			resolved[id] = meta
			wg.Go(func() error {
				raw, err := json.Marshal(meta)
				if err != nil {
					return nil
				}
				if err := f.cache.Set(wctx, videoKeyPrefix+id, string(raw)); err != nil {
					f.log.Warnw("cache write failed", "videoId", id, "error", err)
				}
				return nil
			})
		}
		if err := wg.Wait(); err != nil {
			return nil, fmt.Errorf("metadata cache write: %w", err)
		}
	}

	return resolved, nil
}

func (f *Fetcher) fetchBatch(ctx context.Context, ids []string) (map[string]models.VideoMetadata, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}
	return f.provider.VideoMetadata(ctx, ids)
}

// Categories resolves category ids to display names through a single cached
// lookup keyed by the sorted id set.
func (f *Fetcher) Categories(ctx context.Context, ids []string) (map[string]string, error) {
	distinct := dedupe(ids)
	if len(distinct) == 0 {
		return map[string]string{}, nil
	}
	sort.Strings(distinct)
	key := categoryKeyPrefix + strings.Join(distinct, ",")

	raw, err := f.cache.GetOrSet(ctx, key, func(ctx context.Context) (string, error) {
		if f.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, f.timeout)
			defer cancel()
		}
		names, err := f.provider.CategoryNames(ctx, distinct)
		if err != nil {
			return "", err
		}
		encoded, err := json.Marshal(names)
		if err != nil {
			return "", fmt.Errorf("encode category names: %w", err)
		}
		return string(encoded), nil
	})
	if err != nil {
		return nil, fmt.Errorf("resolve category names: %w", err)
	}

	names := make(map[string]string)
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, fmt.Errorf("decode cached category names: %w", err)
	}
	return names, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
