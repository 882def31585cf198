package enrich

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"profile-stack/internal/models"
	"profile-stack/shared/cache"
)

type fakeProvider struct {
	metadata   map[string]models.VideoMetadata
	categories map[string]string
	failOn     string
	calls      int
	batchSizes []int
}

func (f *fakeProvider) VideoMetadata(_ context.Context, ids []string) (map[string]models.VideoMetadata, error) {
	f.calls++
	f.batchSizes = append(f.batchSizes, len(ids))
	for _, id := range ids {
		if f.failOn != "" && id == f.failOn {
			return nil, errors.New("quota exceeded")
		}
	}
	out := make(map[string]models.VideoMetadata)
	for _, id := range ids {
		if m, ok := f.metadata[id]; ok {
			out[id] = m
		}
	}
	return out, nil
}

func (f *fakeProvider) CategoryNames(_ context.Context, ids []string) (map[string]string, error) {
	out := make(map[string]string)
	for _, id := range ids {
		if name, ok := f.categories[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

func meta(title, categoryID string) models.VideoMetadata {
	return models.VideoMetadata{
		Title:        title,
		Description:  "about " + title,
		CategoryID:   categoryID,
		ChannelTitle: "Chan",
		Duration:     "PT10M",
	}
}

func TestFetcherCacheHitSkipsProvider(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory()
	if err := c.Set(ctx, "youtube:video:aaaaaaaaaaa", `{"title":"cached"}`); err != nil {
		t.Fatal(err)
	}
	provider := &fakeProvider{}

	f := NewFetcher(provider, c, nil, 50, time.Second)
	got, err := f.Metadata(ctx, []string{"aaaaaaaaaaa"})
	if err != nil {
		t.Fatalf("Metadata failed: %v", err)
	}
	if got["aaaaaaaaaaa"].Title != "cached" {
		t.Errorf("metadata = %+v", got["aaaaaaaaaaa"])
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times for a full cache hit", provider.calls)
	}
}

func TestFetcherBatchesAndWritesBack(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory()
	provider := &fakeProvider{metadata: map[string]models.VideoMetadata{
		"id1": meta("one", "27"),
		"id2": meta("two", "27"),
		"id3": meta("three", "20"),
	}}

	f := NewFetcher(provider, c, nil, 2, time.Second)
	got, err := f.Metadata(ctx, []string{"id1", "id2", "id3", "id1"})
	if err != nil {
		t.Fatalf("Metadata failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("resolved %d ids, want 3", len(got))
	}
	if provider.calls != 2 {
		t.Errorf("provider calls = %d, want 2 batches of <=2", provider.calls)
	}
	for _, size := range provider.batchSizes {
		if size > 2 {
			t.Errorf("batch size %d exceeds limit", size)
		}
	}

	// Fetched entries must be readable from the cache afterwards.
	if _, ok, _ := c.Get(ctx, "youtube:video:id2"); !ok {
		t.Error("fetched metadata was not written back to cache")
	}
}

func TestFetcherBatchFailureIsPartial(t *testing.T) {
	ctx := context.Background()
	provider := &fakeProvider{
		metadata: map[string]models.VideoMetadata{
			"id1": meta("one", "27"),
			"id2": meta("two", "27"),
		},
		failOn: "id2",
	}

	// Batch size 1 isolates the failure to id2's batch.
	f := NewFetcher(provider, cache.NewMemory(), nil, 1, time.Second)
	got, err := f.Metadata(ctx, []string{"id1", "id2"})
	if err != nil {
		t.Fatalf("Metadata failed: %v", err)
	}
	if _, ok := got["id1"]; !ok {
		t.Error("healthy batch should still resolve")
	}
	if _, ok := got["id2"]; ok {
		t.Error("failed batch must leave its ids unresolved")
	}
}

func TestFetcherCategoriesCached(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory()
	provider := &fakeProvider{categories: map[string]string{"27": "Education", "20": "Gaming"}}

	f := NewFetcher(provider, c, nil, 50, time.Second)
	names, err := f.Categories(ctx, []string{"27", "20", "27"})
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if names["27"] != "Education" || names["20"] != "Gaming" {
		t.Errorf("names = %v", names)
	}

	// Key uses the sorted distinct id set.
	if _, ok, _ := c.Get(ctx, "youtube:categories:20,27"); !ok {
		t.Error("category names not cached under sorted key")
	}
}

func historyFor(ids ...string) *models.DirectStats {
	stats := &models.DirectStats{}
	for i, id := range ids {
		stats.DirectWatchHistory = append(stats.DirectWatchHistory, models.WatchRecord{
			Title:   "video " + id,
			URL:     "https://www.youtube.com/watch?v=" + id,
			VideoID: id,
			Time:    time.Date(2024, 3, 10+i, 10, 0, 0, 0, time.UTC).Format(time.RFC3339),
		})
	}
	return stats
}

func TestRunDropsUnresolvedVideos(t *testing.T) {
	provider := &fakeProvider{
		metadata:   map[string]models.VideoMetadata{"id1": meta("one", "27")},
		categories: map[string]string{"27": "Education"},
	}
	f := NewFetcher(provider, cache.NewMemory(), nil, 50, time.Second)

	payload, err := New(f, nil).Run(context.Background(), historyFor("id1", "id2"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(payload.EnrichedWatchHistory) != 1 {
		t.Fatalf("enriched = %d videos, want 1 (unresolved dropped)", len(payload.EnrichedWatchHistory))
	}
	v := payload.EnrichedWatchHistory[0]
	if v.VideoID != "id1" || v.Category != "Education" || v.Description == "" {
		t.Errorf("enriched video = %+v", v)
	}
}

func TestRunFailsWhenNothingResolves(t *testing.T) {
	provider := &fakeProvider{failOn: "id1"}
	f := NewFetcher(provider, cache.NewMemory(), nil, 50, time.Second)

	_, err := New(f, nil).Run(context.Background(), historyFor("id1"))
	if err == nil {
		t.Fatal("expected error when zero ids resolve")
	}
	if !strings.Contains(err.Error(), "enrich stage") {
		t.Errorf("error should name the stage: %v", err)
	}
}

func TestRunEmptyHistory(t *testing.T) {
	f := NewFetcher(&fakeProvider{}, cache.NewMemory(), nil, 50, time.Second)
	payload, err := New(f, nil).Run(context.Background(), &models.DirectStats{})
	if err != nil {
		t.Fatalf("Run failed on empty history: %v", err)
	}
	if len(payload.EnrichedWatchHistory) != 0 {
		t.Error("empty history should enrich to empty payload")
	}
}

func TestRunCategoryShares(t *testing.T) {
	provider := &fakeProvider{
		metadata: map[string]models.VideoMetadata{
			"id1": meta("one", "27"),
			"id2": meta("two", "27"),
			"id3": meta("three", "20"),
		},
		categories: map[string]string{"27": "Education", "20": "Gaming"},
	}
	f := NewFetcher(provider, cache.NewMemory(), nil, 50, time.Second)

	payload, err := New(f, nil).Run(context.Background(), historyFor("id1", "id2", "id3"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	top := payload.VideoCategories.TopCategories
	if len(top) != 2 {
		t.Fatalf("topCategories = %+v", top)
	}
	if top[0].Category != "Education" || top[0].Count != 2 || top[0].Percentage != 66.7 {
		t.Errorf("top category = %+v, want Education 2 @ 66.7", top[0])
	}
	if payload.VideoCategories.CategoryDistribution["Gaming"] != 1 {
		t.Errorf("distribution = %v", payload.VideoCategories.CategoryDistribution)
	}
}
