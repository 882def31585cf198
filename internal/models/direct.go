package models

// ChannelCount is one entry of the top-channels ranking.
type ChannelCount struct {
	Channel string `json:"channel"`
	Count   int    `json:"count"`
}

// QueryCount is one entry of the frequent-queries ranking.
type QueryCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// MostWatchedVideo is a video watched more than once, ranked by repeat views.
type MostWatchedVideo struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	VideoID     string `json:"videoId"`
	Views       int    `json:"views"`
	LastWatched string `json:"lastWatched"`
	Channel     string `json:"channel"`
}

// WatchRecord is one entry of the filtered watch projection handed to the
// enrichment stage: resolvable URL, non-empty video id, no ad titles.
type WatchRecord struct {
	Title     string     `json:"title"`
	URL       string     `json:"url"`
	VideoID   string     `json:"videoId"`
	Time      string     `json:"time"`
	Duration  string     `json:"duration"`
	Category  string     `json:"category"`
	Subtitles []Subtitle `json:"subtitles"`
}

// ContentDuration summarises per-event durations where the export carried one.
type ContentDuration struct {
	Average float64 `json:"average"`
	Total   int     `json:"total"`
}

// ViewingPatterns are the raw time-bucket distributions of watch events.
type ViewingPatterns struct {
	DailyDistribution   [24]int         `json:"dailyDistribution"`
	WeeklyDistribution  [7]int          `json:"weeklyDistribution"`
	MonthlyDistribution [31]int         `json:"monthlyDistribution"`
	ContentDuration     ContentDuration `json:"contentDuration"`
}

// SearchPatterns summarises search-history activity.
type SearchPatterns struct {
	TotalSearches  int     `json:"totalSearches"`
	SearchesByTime [24]int `json:"searchesByTime"`
	SearchesByDay  [7]int  `json:"searchesByDay"`
}

// VideoActivity summarises per-video behaviour across the watch history.
type VideoActivity struct {
	TotalVideos       int                `json:"totalVideos"`
	VideosByCategory  map[string]int     `json:"videosByCategory"`
	MostWatchedVideos []MostWatchedVideo `json:"mostWatchedVideos"`
}

// DirectStats is the first-stage aggregation output. It is recomputed
// wholesale on every build; nothing is updated incrementally.
type DirectStats struct {
	TopChannels        []ChannelCount  `json:"topChannels"`
	FrequentQueries    []QueryCount    `json:"frequentQueries"`
	HourlyHistogram    [24]int         `json:"hourlyHistogram"`
	VideoActivity      VideoActivity   `json:"videoActivity"`
	ViewingPatterns    ViewingPatterns `json:"viewingPatterns"`
	SearchPatterns     SearchPatterns  `json:"searchPatterns"`
	LikedVideos        []LikedVideo    `json:"likedVideos,omitempty"`
	Subscriptions      []Subscription  `json:"subscriptions,omitempty"`
	DirectWatchHistory []WatchRecord   `json:"directWatchHistory"`
}
