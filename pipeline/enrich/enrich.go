// Package enrich implements the second pipeline stage: the filtered watch
// projection is merged with provider metadata, then scored and segmented into
// the sentiment, engagement and preference aggregates.
package enrich

import (
	"context"
	"fmt"
	"math"
	"sort"

	"profile-stack/internal/models"

	"go.uber.org/zap"
)

// Transformer builds an EnrichedPayload from the direct stage's projection.
type Transformer struct {
	fetcher  *Fetcher
	analyzer *Analyzer
	log      *zap.SugaredLogger
}

func New(fetcher *Fetcher, log *zap.SugaredLogger) *Transformer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Transformer{
		fetcher:  fetcher,
		analyzer: NewAnalyzer(),
		log:      log,
	}
}

func (t *Transformer) Accepts(source models.Source) bool {
	return source == models.SourceYouTube
}

// Run enriches the watch projection. Videos whose metadata never resolves are
// dropped rather than kept with placeholders; the stage only fails when not a
// single id resolves.
func (t *Transformer) Run(ctx context.Context, direct *models.DirectStats) (*models.EnrichedPayload, error) {
	history := direct.DirectWatchHistory

	ids := make([]string, 0, len(history))
	for _, v := range history {
		ids = append(ids, v.VideoID)
	}

	meta, err := t.fetcher.Metadata(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("enrich stage: %w", err)
	}
	if len(meta) == 0 && len(ids) > 0 {
		return nil, fmt.Errorf("enrich stage: metadata resolved for none of %d videos", len(ids))
	}

	videos := t.merge(history, meta)

	categoryIDs := make([]string, 0, len(meta))
	for _, m := range meta {
		if m.CategoryID != "" {
			categoryIDs = append(categoryIDs, m.CategoryID)
		}
	}
	names, err := t.fetcher.Categories(ctx, categoryIDs)
	if err != nil {
		t.log.Warnw("category names unresolved, keeping raw categories", "error", err)
		names = map[string]string{}
	}
	for i := range videos {
		if name, ok := names[videos[i].CategoryID]; ok {
			videos[i].Category = name
		} else if videos[i].Category == "" {
			videos[i].Category = "Unknown"
		}
	}

	payload := &models.EnrichedPayload{
		EnrichedWatchHistory: videos,
		VideoCategories:      categoryShares(videos),
		SentimentAnalysis:    t.analyzer.AnalyzeVideos(videos),
		EngagementPatterns:   analyzeEngagement(videos),
		ContentPreferences:   analyzeContentPreferences(videos),
	}

	t.log.Infow("enrich stage complete",
		"projected", len(history),
		"resolved", len(meta),
		"enriched", len(videos))

	return payload, nil
}

// merge joins projection entries with their resolved metadata. Provider fields
// win over the takeout export's, which carries no descriptions and stale
// titles.
func (t *Transformer) merge(history []models.WatchRecord, meta map[string]models.VideoMetadata) []models.EnrichedVideo {
	out := make([]models.EnrichedVideo, 0, len(history))
	for _, rec := range history {
		m, ok := meta[rec.VideoID]
		if !ok {
			continue
		}
		v := models.EnrichedVideo{
			Title:        rec.Title,
			URL:          rec.URL,
			VideoID:      rec.VideoID,
			Time:         rec.Time,
			Duration:     rec.Duration,
			Category:     rec.Category,
			Subtitles:    rec.Subtitles,
			CategoryID:   m.CategoryID,
			Description:  m.Description,
			ChannelTitle: m.ChannelTitle,
		}
		if m.Title != "" {
			v.Title = m.Title
		}
		if m.Duration != "" {
			v.Duration = m.Duration
		}
		out = append(out, v)
	}
	return out
}

// categoryShares ranks categories over the surviving history. Percentages are
// rounded to one decimal; ties keep first-seen order.
func categoryShares(videos []models.EnrichedVideo) models.VideoCategories {
	distribution := make(map[string]int)
	var order []string
	for _, v := range videos {
		if _, seen := distribution[v.Category]; !seen {
			order = append(order, v.Category)
		}
		distribution[v.Category]++
	}

	top := make([]models.CategoryShare, 0, len(order))
	for _, c := range order {
		count := distribution[c]
		top = append(top, models.CategoryShare{
			Category:   c,
			Count:      count,
			Percentage: round1(float64(count) / float64(len(videos)) * 100),
		})
	}
	sortSharesDesc(top)

	return models.VideoCategories{
		CategoryDistribution: distribution,
		TopCategories:        top,
	}
}

func sortSharesDesc(shares []models.CategoryShare) {
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Count > shares[j].Count
	})
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
