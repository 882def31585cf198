// Package direct implements the first pipeline stage: raw watch/search
// events in, per-user behavioural counts out. No external calls.
package direct

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"profile-stack/internal/models"

	"go.uber.org/zap"
)

const (
	maxTopChannels    = 20
	maxTopQueries     = 30
	maxMostWatched    = 20
	unknownChannel    = "Unknown"
	unknownSearchTerm = "unknown"
)

// adPattern is the advertisement heuristic: exported ad impressions carry
// "ads" in the title and never resolve to a watchable video.
var adPattern = regexp.MustCompile(`(?i)ads`)

var watchedPrefix = regexp.MustCompile(`(?i)^Watched\s+`)

// Transformer builds DirectStats from a YouTube takeout digest.
type Transformer struct {
	log *zap.SugaredLogger
}

func New(log *zap.SugaredLogger) *Transformer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Transformer{log: log}
}

func (t *Transformer) Accepts(source models.Source) bool {
	return source == models.SourceYouTube
}

// Run recomputes the full DirectStats for one digest. Malformed timestamps
// and durations fall into zero buckets; nothing aborts the batch.
func (t *Transformer) Run(_ context.Context, digest *models.Digest) (*models.DirectStats, error) {
	stats := &models.DirectStats{
		VideoActivity: models.VideoActivity{
			VideosByCategory: make(map[string]int),
		},
		LikedVideos:   digest.Payload.Likes,
		Subscriptions: digest.Payload.Subs,
	}

	channelCounts := make(map[string]int)
	var channelOrder []string
	var totalContentDuration int
	var durationCount int

	for _, item := range digest.Payload.Watch {
		channel := unknownChannel
		if len(item.Subtitles) > 0 && item.Subtitles[0].Name != "" {
			channel = item.Subtitles[0].Name
		}
		if _, seen := channelCounts[channel]; !seen {
			channelOrder = append(channelOrder, channel)
		}
		channelCounts[channel]++

		ts := models.ParseTime(item.Time)
		stats.HourlyHistogram[ts.Hour()]++
		stats.ViewingPatterns.DailyDistribution[ts.Hour()]++
		stats.ViewingPatterns.WeeklyDistribution[int(ts.Weekday())]++
		stats.ViewingPatterns.MonthlyDistribution[ts.Day()-1]++

		if item.Duration != "" {
			totalContentDuration += models.ParseDurationSeconds(item.Duration)
			durationCount++
		}
		if item.Category != "" {
			stats.VideoActivity.VideosByCategory[item.Category]++
		}
		stats.VideoActivity.TotalVideos++
	}

	queryCounts := make(map[string]int)
	var queryOrder []string
	for _, q := range digest.Payload.Search {
		term := q.Query
		if term == "" {
			term = q.Search
		}
		if term == "" {
			term = q.Title
		}
		if term == "" {
			term = unknownSearchTerm
		}
		if _, seen := queryCounts[term]; !seen {
			queryOrder = append(queryOrder, term)
		}
		queryCounts[term]++

		ts := models.ParseTime(q.Time)
		stats.SearchPatterns.SearchesByTime[ts.Hour()]++
		stats.SearchPatterns.SearchesByDay[int(ts.Weekday())]++
		stats.SearchPatterns.TotalSearches++
	}

	stats.ViewingPatterns.ContentDuration.Total = totalContentDuration
	if durationCount > 0 {
		stats.ViewingPatterns.ContentDuration.Average = float64(totalContentDuration) / float64(durationCount)
	}

	stats.DirectWatchHistory = t.projectWatchHistory(digest.Payload.Watch)
	stats.VideoActivity.MostWatchedVideos = mostWatched(stats.DirectWatchHistory)

	for _, p := range topCounts(channelCounts, channelOrder, maxTopChannels) {
		stats.TopChannels = append(stats.TopChannels, models.ChannelCount{Channel: p.key, Count: p.count})
	}
	for _, p := range topCounts(queryCounts, queryOrder, maxTopQueries) {
		stats.FrequentQueries = append(stats.FrequentQueries, models.QueryCount{Term: p.key, Count: p.count})
	}

	t.log.Infow("direct stage complete",
		"watchEvents", len(digest.Payload.Watch),
		"searchEvents", len(digest.Payload.Search),
		"projectedVideos", len(stats.DirectWatchHistory))

	return stats, nil
}

// projectWatchHistory filters the watch events down to the records the
// enrichment stage can work with: a resolvable URL, an extractable video id
// and a title that doesn't look like an ad impression.
func (t *Transformer) projectWatchHistory(watch []models.WatchEvent) []models.WatchRecord {
	var out []models.WatchRecord
	for _, item := range watch {
		if item.TitleURL == "" || adPattern.MatchString(item.Title) {
			continue
		}
		videoID := models.ExtractVideoID(item.TitleURL)
		if videoID == "" {
			continue
		}
		out = append(out, models.WatchRecord{
			Title:     strings.TrimSpace(watchedPrefix.ReplaceAllString(item.Title, "")),
			URL:       item.TitleURL,
			VideoID:   videoID,
			Time:      item.Time,
			Duration:  item.Duration,
			Category:  item.Category,
			Subtitles: item.Subtitles,
		})
	}
	return out
}

// mostWatched ranks videos by repeat views within the projection.
func mostWatched(history []models.WatchRecord) []models.MostWatchedVideo {
	counts := make(map[string]int)
	var order []string
	byID := make(map[string]models.WatchRecord)
	for _, v := range history {
		if _, seen := counts[v.VideoID]; !seen {
			order = append(order, v.VideoID)
			byID[v.VideoID] = v
		}
		counts[v.VideoID]++
	}

	var out []models.MostWatchedVideo
	for _, p := range topCounts(counts, order, maxMostWatched) {
		v := byID[p.key]
		channel := unknownChannel
		if len(v.Subtitles) > 0 && v.Subtitles[0].Name != "" {
			channel = v.Subtitles[0].Name
		}
		out = append(out, models.MostWatchedVideo{
			Title:       v.Title,
			URL:         v.URL,
			VideoID:     p.key,
			Views:       p.count,
			LastWatched: v.Time,
			Channel:     channel,
		})
	}
	return out
}

type countPair struct {
	key   string
	count int
}

// topCounts sorts descending by count and truncates. Ties keep first-seen
// order, which is the documented tie-break for every top-N list here.
func topCounts(counts map[string]int, order []string, limit int) []countPair {
	pairs := make([]countPair, 0, len(order))
	for _, k := range order {
		pairs = append(pairs, countPair{key: k, count: counts[k]})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].count > pairs[j].count
	})
	if len(pairs) > limit {
		pairs = pairs[:limit]
	}
	return pairs
}
