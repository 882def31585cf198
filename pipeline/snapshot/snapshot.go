// Package snapshot implements the third pipeline stage: one enriched history
// collapses into a compact multi-timeframe summary the narrative oracle can
// reason about. Pure aggregation, no external calls.
package snapshot

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"profile-stack/internal/models"

	"go.uber.org/zap"
)

const (
	maxTopEntries   = 7
	maxHighlights   = 5
	maxTopFacts     = 10
	maxTrendAlerts  = 5
	maxExemplars    = 3
	trendThreshold  = 0.05
	highVolumeFloor = 100
)

// timeframeDays maps each non-overall timeframe to its lookback window.
var timeframeDays = map[string]int{
	models.TimeframeLast12Months: 365,
	models.TimeframeLast6Months:  183,
	models.TimeframeLast30Days:   30,
	models.TimeframeLast7Days:    7,
}

var weekdayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Builder computes snapshots. The clock is injectable so that a fixed input
// and a fixed now always produce byte-identical output.
type Builder struct {
	log *zap.SugaredLogger
	now func() time.Time
}

func New(log *zap.SugaredLogger) *Builder {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Builder{log: log, now: time.Now}
}

func (b *Builder) Accepts(source models.Source) bool {
	return source == models.SourceYouTube
}

// Run builds the five-timeframe snapshot for one enriched history.
func (b *Builder) Run(_ context.Context, enriched *models.EnrichedPayload, bio models.UserBio) (*models.Snapshot, error) {
	now := b.now().UTC()

	history := make([]models.EnrichedVideo, len(enriched.EnrichedWatchHistory))
	copy(history, enriched.EnrichedWatchHistory)
	sort.SliceStable(history, func(i, j int) bool {
		return models.ParseTime(history[i].Time).Before(models.ParseTime(history[j].Time))
	})

	// Sentiment is computed once from the title-by-category sums and reused
	// across every frame; it is a global property of the history.
	sentiment := sentimentShares(enriched.SentimentAnalysis.TitleSentiment.ByCategory)
	avgSessionMin := enriched.EngagementPatterns.CategoryEngagement.AverageSessionLength / 60

	frames := make(map[string]models.FrameStats, len(models.TimeframeKeys))
	for _, key := range models.TimeframeKeys {
		frames[key] = b.buildFrame(key, history, sentiment, avgSessionMin, now)
	}

	snap := &models.Snapshot{
		V:          1,
		UserBio:    bio,
		Timeframes: frames,
		EvidenceHints: models.EvidenceHints{
			TopFacts:       buildTopFacts(frames, history),
			TrendAlerts:    buildTrendAlerts(frames),
			ExemplarVideos: pickExemplars(history, frames[models.TimeframeOverall].TopCategories),
		},
	}

	b.log.Infow("snapshot stage complete",
		"videos", len(history),
		"timeframes", len(frames))

	return snap, nil
}

func (b *Builder) buildFrame(key string, history []models.EnrichedVideo, sentiment models.SentimentPct, avgSessionMin float64, now time.Time) models.FrameStats {
	var cutoff time.Time
	if days, ok := timeframeDays[key]; ok {
		cutoff = now.AddDate(0, 0, -days)
	}

	var frameVids, catVids []models.EnrichedVideo
	for _, v := range history {
		if !cutoff.IsZero() && models.ParseTime(v.Time).Before(cutoff) {
			continue
		}
		frameVids = append(frameVids, v)
		if v.Category != "" || v.CategoryID != "" {
			catVids = append(catVids, v)
		}
	}

	totals := models.FrameTotals{Videos: len(frameVids)}
	for _, v := range frameVids {
		totals.WatchTimeMin += models.ParseDurationMinutes(v.Duration)
	}

	topCategories := topCategoryStats(catVids)
	topChannels := topChannelStats(catVids)
	engagement := models.FrameEngagement{
		AvgSessionMin: avgSessionMin,
		PeakHour:      modeHour(catVids),
		PeakWeekday:   modeWeekday(catVids),
	}

	return models.FrameStats{
		Totals:        totals,
		TopCategories: topCategories,
		TopChannels:   topChannels,
		Sentiment:     sentiment,
		Engagement:    engagement,
		Highlights:    buildHighlights(key, totals, sentiment, topCategories, catVids, now),
	}
}

// sentimentShares folds the per-category counts into overall 0-1 shares.
func sentimentShares(byCategory map[string]*models.SentimentBucket) models.SentimentPct {
	var pos, neu, neg int
	for _, bucket := range byCategory {
		pos += bucket.Positive
		neu += bucket.Neutral
		neg += bucket.Negative
	}
	total := pos + neu + neg
	if total == 0 {
		total = 1
	}
	return models.SentimentPct{
		PosPct: round3(float64(pos) / float64(total)),
		NeuPct: round3(float64(neu) / float64(total)),
		NegPct: round3(float64(neg) / float64(total)),
	}
}

func topCategoryStats(vids []models.EnrichedVideo) []models.CategoryStat {
	pairs := countByKey(vids, func(v models.EnrichedVideo) string { return v.Category })
	out := make([]models.CategoryStat, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, models.CategoryStat{
			Category: p.key,
			Count:    p.count,
			Pct:      round3(float64(p.count) / float64(len(vids))),
		})
	}
	return out
}

func topChannelStats(vids []models.EnrichedVideo) []models.ChannelStat {
	pairs := countByKey(vids, func(v models.EnrichedVideo) string { return v.ChannelTitle })
	out := make([]models.ChannelStat, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, models.ChannelStat{
			Channel: p.key,
			Count:   p.count,
			Pct:     round3(float64(p.count) / float64(len(vids))),
		})
	}
	return out
}

type keyCount struct {
	key   string
	count int
}

// countByKey tallies, ranks descending and truncates to the top entries.
// Ties keep first-seen order.
func countByKey(vids []models.EnrichedVideo, keyOf func(models.EnrichedVideo) string) []keyCount {
	counts := make(map[string]int)
	var order []string
	for _, v := range vids {
		k := keyOf(v)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	pairs := make([]keyCount, 0, len(order))
	for _, k := range order {
		pairs = append(pairs, keyCount{key: k, count: counts[k]})
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].count > pairs[j].count })
	if len(pairs) > maxTopEntries {
		pairs = pairs[:maxTopEntries]
	}
	return pairs
}

// modeHour returns the most frequent watch hour; the smallest hour wins ties.
func modeHour(vids []models.EnrichedVideo) int {
	var counts [24]int
	for _, v := range vids {
		counts[models.ParseTime(v.Time).Hour()]++
	}
	return argmax(counts[:])
}

func modeWeekday(vids []models.EnrichedVideo) int {
	var counts [7]int
	for _, v := range vids {
		counts[int(models.ParseTime(v.Time).Weekday())]++
	}
	return argmax(counts[:])
}

func argmax(counts []int) int {
	best := 0
	for i, c := range counts {
		if c > counts[best] {
			best = i
		}
	}
	return best
}

// buildHighlights assembles up to five quotable facts for one frame, in fixed
// generation order. vids must be sorted ascending by time and already
// category-filtered.
func buildHighlights(key string, totals models.FrameTotals, sentiment models.SentimentPct, topCategories []models.CategoryStat, vids []models.EnrichedVideo, now time.Time) []string {
	if len(vids) == 0 {
		return nil
	}
	var highlights []string

	var totalMinutes float64
	for _, v := range vids {
		totalMinutes += models.ParseDurationMinutes(v.Duration)
	}
	highlights = append(highlights, fmt.Sprintf("Avg. watch time per video: %.1f min", totalMinutes/float64(len(vids))))

	if top := topChannelStats(vids); len(top) > 0 {
		highlights = append(highlights, fmt.Sprintf("Most-watched channel: %s (%.0f%% of videos)", top[0].Channel, top[0].Pct*100))
	}

	if len(topCategories) > 0 {
		highlights = append(highlights, fmt.Sprintf("Top category: %s (%.0f%%)", topCategories[0].Category, topCategories[0].Pct*100))
	}

	highlights = append(highlights, fmt.Sprintf("Sentiment: %.0f%% positive, %.0f%% neutral, %.0f%% negative",
		sentiment.PosPct*100, sentiment.NeuPct*100, sentiment.NegPct*100))

	if streak := longestDailyStreak(vids); streak > 1 {
		highlights = append(highlights, fmt.Sprintf("Longest daily streak: %d days", streak))
	}

	newest := vids[len(vids)-1]
	if len(topCategories) > 0 && newest.Category == topCategories[0].Category {
		span := now.Sub(models.ParseTime(vids[0].Time))
		if span > 0 && now.Sub(models.ParseTime(newest.Time)).Seconds() < span.Seconds()*0.1 {
			highlights = append(highlights, fmt.Sprintf("Recent interest in %s", topCategories[0].Category))
		}
	}

	if totals.Videos > highVolumeFloor {
		highlights = append(highlights, fmt.Sprintf("High activity: %d videos in %s", totals.Videos, frameLabel(key)))
	}

	if len(highlights) > maxHighlights {
		highlights = highlights[:maxHighlights]
	}
	return highlights
}

// longestDailyStreak counts consecutive calendar days with activity; days one
// second over 24h apart still chain, matching the adjacency tolerance of the
// exported timestamps.
func longestDailyStreak(vids []models.EnrichedVideo) int {
	seen := make(map[string]struct{})
	var days []string
	for _, v := range vids {
		d := models.ParseTime(v.Time).UTC().Format("2006-01-02")
		if _, ok := seen[d]; !ok {
			seen[d] = struct{}{}
			days = append(days, d)
		}
	}
	sort.Strings(days)

	maxStreak, cur := 0, 1
	for i := 1; i < len(days); i++ {
		prev, _ := time.Parse("2006-01-02", days[i-1])
		curr, _ := time.Parse("2006-01-02", days[i])
		if curr.Sub(prev) <= 24*time.Hour+time.Second {
			cur++
		} else {
			cur = 1
		}
		if cur > maxStreak {
			maxStreak = cur
		}
	}
	return maxStreak
}

// buildTrendAlerts flags categories whose share moved at least five points
// between the trailing six months and the trailing year.
func buildTrendAlerts(frames map[string]models.FrameStats) []string {
	recent := frames[models.TimeframeLast6Months].TopCategories
	earlier := frames[models.TimeframeLast12Months].TopCategories

	var alerts []string
	for _, cat := range recent {
		prev := 0.0
		for _, e := range earlier {
			if e.Category == cat.Category {
				prev = e.Pct
				break
			}
		}
		delta := round3(cat.Pct - prev)
		switch {
		case delta >= trendThreshold:
			alerts = append(alerts, fmt.Sprintf("▲ %s ↑ %.0f%% vs prior 6 mo", cat.Category, delta*100))
		case delta <= -trendThreshold:
			alerts = append(alerts, fmt.Sprintf("▼ %s ↓ %.0f%% vs prior 6 mo", cat.Category, -delta*100))
		}
	}
	if len(alerts) > maxTrendAlerts {
		alerts = alerts[:maxTrendAlerts]
	}
	return alerts
}

// buildTopFacts catalogues the overall numbers worth quoting verbatim.
func buildTopFacts(frames map[string]models.FrameStats, history []models.EnrichedVideo) []string {
	overall := frames[models.TimeframeOverall]
	last30 := frames[models.TimeframeLast30Days]

	channels := make(map[string]struct{})
	categories := make(map[string]struct{})
	for _, v := range history {
		channels[v.ChannelTitle] = struct{}{}
		if v.Category != "" {
			categories[v.Category] = struct{}{}
		}
	}

	since := ""
	if len(history) > 0 {
		since = " since " + models.ParseTime(history[0].Time).UTC().Format("2006-01-02")
	}

	videos := overall.Totals.Videos
	if videos == 0 {
		videos = 1
	}

	facts := []string{
		fmt.Sprintf("%.1f h total watch-time%s | %.1f h in last 30d",
			overall.Totals.WatchTimeMin/60, since, last30.Totals.WatchTimeMin/60),
		fmt.Sprintf("Peak viewing hour: %d:00", overall.Engagement.PeakHour),
		fmt.Sprintf("Most active day: %s", weekdayNames[overall.Engagement.PeakWeekday]),
		fmt.Sprintf("Avg session: %.1f min/video", overall.Totals.WatchTimeMin/float64(videos)),
		fmt.Sprintf("Watched %d videos from %d unique channels", overall.Totals.Videos, len(channels)),
	}
	if len(overall.TopChannels) > 0 {
		facts = append(facts, fmt.Sprintf("Most-watched channel: %s (%.0f%%)",
			overall.TopChannels[0].Channel, overall.TopChannels[0].Pct*100))
	}
	if len(overall.TopCategories) > 0 {
		facts = append(facts, fmt.Sprintf("#1 category: %s (%.0f%%)",
			overall.TopCategories[0].Category, overall.TopCategories[0].Pct*100))
	}
	facts = append(facts,
		fmt.Sprintf("Explored %d different categories", len(categories)),
		fmt.Sprintf("Sentiment: %.0f%% positive, %.0f%% negative, %.0f%% neutral",
			overall.Sentiment.PosPct*100, overall.Sentiment.NegPct*100, overall.Sentiment.NeuPct*100))
	if len(last30.TopCategories) > 0 {
		facts = append(facts, fmt.Sprintf("Last 30d #1 category: %s (%.0f%%)",
			last30.TopCategories[0].Category, last30.TopCategories[0].Pct*100))
	}

	if len(facts) > maxTopFacts {
		facts = facts[:maxTopFacts]
	}
	return facts
}

// pickExemplars walks the history latest-first once per preferred category and
// keeps the first match. Categories without a match are skipped, not retried.
func pickExemplars(history []models.EnrichedVideo, preferred []models.CategoryStat) []models.ExemplarVideo {
	var out []models.ExemplarVideo
	for _, cat := range preferred {
		for i := len(history) - 1; i >= 0; i-- {
			v := history[i]
			if v.Category == "" && v.CategoryID == "" {
				continue
			}
			if v.Category == cat.Category {
				out = append(out, models.ExemplarVideo{Title: v.Title, Category: v.Category})
				break
			}
		}
		if len(out) >= maxExemplars {
			break
		}
	}
	return out
}

func frameLabel(key string) string {
	switch key {
	case models.TimeframeOverall:
		return "overall"
	case models.TimeframeLast12Months:
		return "last 12 months"
	case models.TimeframeLast6Months:
		return "last 6 months"
	case models.TimeframeLast30Days:
		return "last 30 days"
	case models.TimeframeLast7Days:
		return "last 7 days"
	}
	return key
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
