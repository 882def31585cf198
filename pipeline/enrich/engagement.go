package enrich

import (
	"sort"

	"profile-stack/internal/models"
)

// maxSessionGap is the binge threshold: two videos watched at most an hour
// apart belong to the same session.
const maxSessionGap = 3600

const peakHourCount = 3

type timeBucket struct {
	count         int
	totalDuration int
}

// analyzeEngagement walks the history in time order and produces binge
// sessions plus the hour/weekday/week activity buckets.
func analyzeEngagement(videos []models.EnrichedVideo) models.EngagementPatterns {
	sorted := make([]models.EnrichedVideo, len(videos))
	copy(sorted, videos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return models.ParseTime(sorted[i].Time).Before(models.ParseTime(sorted[j].Time))
	})

	daily := make(map[int]*timeBucket)
	weekly := make(map[int]*timeBucket)
	monthly := make(map[int]*timeBucket)
	bump := func(m map[int]*timeBucket, k, dur int) {
		b, ok := m[k]
		if !ok {
			b = &timeBucket{}
			m[k] = b
		}
		b.count++
		b.totalDuration += dur
	}

	categoryStats := make(map[string]*models.CategoryEngagementStat)
	var categoryOrder []string
	totalWatchTime := 0

	var sessions []models.BingeSession
	var session *models.BingeSession

	for _, v := range sorted {
		dur := models.ParseDurationSeconds(v.Duration)
		ts := models.ParseTime(v.Time)
		category := v.Category
		if category == "" {
			category = "Unknown"
		}

		bump(daily, ts.Hour(), dur)
		bump(weekly, int(ts.Weekday()), dur)
		bump(monthly, ts.Day()/7, dur)
		totalWatchTime += dur

		cs, ok := categoryStats[category]
		if !ok {
			cs = &models.CategoryEngagementStat{}
			categoryStats[category] = cs
			categoryOrder = append(categoryOrder, category)
		}
		cs.WatchCount++
		cs.TotalDuration += dur

		if session == nil {
			session = newSession(v, dur, category)
		} else if ts.Sub(models.ParseTime(session.EndTime)).Seconds() <= maxSessionGap {
			session.EndTime = v.Time
			session.VideoCount++
			session.TotalDuration += dur
			session.Videos = append(session.Videos, v)
			session.CategoryDistribution[category]++
		} else {
			sessions = append(sessions, *session)
			session = newSession(v, dur, category)
		}
	}
	if session != nil {
		sessions = append(sessions, *session)
	}

	avgSession := 0.0
	if len(sorted) > 0 {
		avgSession = float64(totalWatchTime) / float64(len(sorted))
	}

	peakHours := topBuckets(daily, peakHourCount)
	for _, c := range categoryOrder {
		cs := categoryStats[c]
		cs.AverageSessionLength = avgSession
		cs.PeakHours = peakHours
	}

	return models.EngagementPatterns{
		BingeSessions: sessions,
		PeakActivity: models.PeakActivity{
			Daily:   bucketStats(daily),
			Weekly:  bucketStats(weekly),
			Monthly: bucketStats(monthly),
		},
		CategoryEngagement: models.CategoryEngagement{
			TotalWatchTime:       totalWatchTime,
			AverageSessionLength: avgSession,
			PeakHours:            peakHours,
			CategoryDistribution: categoryStats,
		},
	}
}

func newSession(v models.EnrichedVideo, dur int, category string) *models.BingeSession {
	return &models.BingeSession{
		StartTime:            v.Time,
		EndTime:              v.Time,
		VideoCount:           1,
		TotalDuration:        dur,
		Videos:               []models.EnrichedVideo{v},
		CategoryDistribution: map[string]int{category: 1},
	}
}

// bucketStats flattens the populated buckets in ascending bucket order.
func bucketStats(m map[int]*timeBucket) []models.TimeBucketStat {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]models.TimeBucketStat, 0, len(keys))
	for _, k := range keys {
		b := m[k]
		out = append(out, models.TimeBucketStat{
			Bucket:           k,
			Count:            b.count,
			AverageWatchTime: float64(b.totalDuration) / float64(b.count),
		})
	}
	return out
}

func topBuckets(m map[int]*timeBucket, limit int) []models.PeakBucket {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]models.PeakBucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.PeakBucket{Bucket: k, Count: m[k].count})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// analyzeContentPreferences accumulates watch time per category and channel
// plus count-only time distributions. The distributions overlap with
// PeakActivity; both are emitted independently.
func analyzeContentPreferences(videos []models.EnrichedVideo) models.ContentPreferences {
	type stat struct {
		time  int
		count int
	}
	categories := make(map[string]*stat)
	channels := make(map[string]*stat)
	var categoryOrder, channelOrder []string

	var daily [24]int
	var weekly [7]int
	var monthly [5]int

	for _, v := range videos {
		dur := models.ParseDurationSeconds(v.Duration)
		ts := models.ParseTime(v.Time)

		category := v.Category
		if category == "" {
			category = "Unknown"
		}
		channel := v.ChannelTitle
		if channel == "" {
			channel = "Unknown"
		}

		cs, ok := categories[category]
		if !ok {
			cs = &stat{}
			categories[category] = cs
			categoryOrder = append(categoryOrder, category)
		}
		cs.time += dur
		cs.count++

		ch, ok := channels[channel]
		if !ok {
			ch = &stat{}
			channels[channel] = ch
			channelOrder = append(channelOrder, channel)
		}
		ch.time += dur
		ch.count++

		daily[ts.Hour()]++
		weekly[int(ts.Weekday())]++
		monthly[ts.Day()/7]++
	}

	toPrefs := func(m map[string]*stat, order []string) []models.PreferenceStat {
		out := make([]models.PreferenceStat, 0, len(order))
		for _, k := range order {
			s := m[k]
			out = append(out, models.PreferenceStat{
				Key:             k,
				WatchTime:       s.time,
				VideoCount:      s.count,
				AverageDuration: float64(s.time) / float64(s.count),
			})
		}
		return out
	}
	toCounts := func(counts []int) []models.CountBucket {
		out := make([]models.CountBucket, len(counts))
		for i, c := range counts {
			out[i] = models.CountBucket{Bucket: i, Count: c}
		}
		return out
	}

	return models.ContentPreferences{
		PreferredCategories: toPrefs(categories, categoryOrder),
		ChannelPreferences:  toPrefs(channels, channelOrder),
		TimeDistribution: models.TimeDistribution{
			Daily:   toCounts(daily[:]),
			Weekly:  toCounts(weekly[:]),
			Monthly: toCounts(monthly[:]),
		},
	}
}
