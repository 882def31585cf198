package models

// VideoMetadata is what the metadata provider resolves for one video id.
type VideoMetadata struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	CategoryID   string `json:"categoryId"`
	ChannelTitle string `json:"channelTitle"`
	Duration     string `json:"duration"`
}

// EnrichedVideo is a watch record merged with resolved metadata. Videos whose
// metadata could not be resolved never appear as EnrichedVideo values.
type EnrichedVideo struct {
	Title        string     `json:"title"`
	URL          string     `json:"url"`
	VideoID      string     `json:"videoId"`
	Time         string     `json:"time"`
	Duration     string     `json:"duration"`
	Category     string     `json:"category"`
	CategoryID   string     `json:"categoryId"`
	Description  string     `json:"description"`
	ChannelTitle string     `json:"channelTitle"`
	Subtitles    []Subtitle `json:"subtitles"`
}

// CategoryShare is one entry of the enriched category ranking.
type CategoryShare struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// VideoCategories is the category distribution over the surviving history.
type VideoCategories struct {
	CategoryDistribution map[string]int  `json:"categoryDistribution"`
	TopCategories        []CategoryShare `json:"topCategories"`
}

// TrendPoint is one calendar date of a sentiment trend series.
type TrendPoint struct {
	Date     string `json:"date"`
	Positive int    `json:"positive"`
	Neutral  int    `json:"neutral"`
	Negative int    `json:"negative"`
}

// SentimentBucket accumulates classifications for one category or channel.
// AverageScore is a running mean over every raw score fed into the bucket.
type SentimentBucket struct {
	Positive       int          `json:"positive"`
	Neutral        int          `json:"neutral"`
	Negative       int          `json:"negative"`
	AverageScore   float64      `json:"averageScore"`
	SentimentTrend []TrendPoint `json:"sentimentTrend"`
}

// SideSentiment is the overall tally for one text side (title or description)
// plus its per-category breakdown.
type SideSentiment struct {
	Positive   int                         `json:"positive"`
	Neutral    int                         `json:"neutral"`
	Negative   int                         `json:"negative"`
	ByCategory map[string]*SentimentBucket `json:"byCategory"`
}

// TimeSentiment is one fixed time bucket. AverageScore is a summed
// accumulator, not a mean; the name is kept from the source data shape.
type TimeSentiment struct {
	Positive     int     `json:"positive"`
	Neutral      int     `json:"neutral"`
	Negative     int     `json:"negative"`
	AverageScore float64 `json:"averageScore"`
}

// TimeBasedSentiment buckets classifications by hour, weekday and week of
// month. Monthly keeps 31 slots but is indexed by dayOfMonth/7, so only the
// first five are ever populated; that quirk is part of the output contract.
type TimeBasedSentiment struct {
	Daily   [24]TimeSentiment `json:"daily"`
	Weekly  [7]TimeSentiment  `json:"weekly"`
	Monthly [31]TimeSentiment `json:"monthly"`
}

// SentimentAnalysis is the full sentiment aggregate for one enriched history.
type SentimentAnalysis struct {
	TitleSentiment       SideSentiment               `json:"titleSentiment"`
	DescriptionSentiment SideSentiment               `json:"descriptionSentiment"`
	ChannelSentiment     map[string]*SentimentBucket `json:"channelSentiment"`
	TimeBasedSentiment   TimeBasedSentiment          `json:"timeBasedSentiment"`
}

// BingeSession is a maximal run of videos with consecutive gaps of at most
// one hour.
type BingeSession struct {
	StartTime            string          `json:"startTime"`
	EndTime              string          `json:"endTime"`
	VideoCount           int             `json:"videoCount"`
	TotalDuration        int             `json:"totalDuration"`
	Videos               []EnrichedVideo `json:"videos"`
	CategoryDistribution map[string]int  `json:"categoryDistribution"`
}

// TimeBucketStat is one populated time bucket of the engagement aggregate.
type TimeBucketStat struct {
	Bucket           int     `json:"bucket"`
	Count            int     `json:"count"`
	AverageWatchTime float64 `json:"averageWatchTime"`
}

// PeakBucket is one entry of a busiest-buckets ranking.
type PeakBucket struct {
	Bucket int `json:"bucket"`
	Count  int `json:"count"`
}

// CategoryEngagementStat describes engagement within one category.
type CategoryEngagementStat struct {
	WatchCount           int          `json:"watchCount"`
	TotalDuration        int          `json:"totalDuration"`
	AverageSessionLength float64      `json:"averageSessionLength"`
	PeakHours            []PeakBucket `json:"peakHours"`
}

// CategoryEngagement is the cross-category engagement summary.
type CategoryEngagement struct {
	TotalWatchTime       int                                `json:"totalWatchTime"`
	AverageSessionLength float64                            `json:"averageSessionLength"`
	PeakHours            []PeakBucket                       `json:"peakHours"`
	CategoryDistribution map[string]*CategoryEngagementStat `json:"categoryDistribution"`
}

// PeakActivity holds the populated hour/weekday/week buckets.
type PeakActivity struct {
	Daily   []TimeBucketStat `json:"daily"`
	Weekly  []TimeBucketStat `json:"weekly"`
	Monthly []TimeBucketStat `json:"monthly"`
}

// EngagementPatterns is the binge/peak aggregate for one enriched history.
type EngagementPatterns struct {
	BingeSessions      []BingeSession     `json:"bingeSessions"`
	PeakActivity       PeakActivity       `json:"peakActivity"`
	CategoryEngagement CategoryEngagement `json:"categoryEngagement"`
}

// PreferenceStat summarises watch time spent on one category or channel.
type PreferenceStat struct {
	Key             string  `json:"key"`
	WatchTime       int     `json:"watchTime"`
	VideoCount      int     `json:"videoCount"`
	AverageDuration float64 `json:"averageDuration"`
}

// CountBucket is one count-only time bucket of the preference distributions.
type CountBucket struct {
	Bucket int `json:"bucket"`
	Count  int `json:"count"`
}

// TimeDistribution repeats the count-only hour/weekday/week distributions.
// It overlaps with PeakActivity on purpose; both are emitted independently.
type TimeDistribution struct {
	Daily   []CountBucket `json:"daily"`
	Weekly  []CountBucket `json:"weekly"`
	Monthly []CountBucket `json:"monthly"`
}

// ContentPreferences is the watch-time preference aggregate.
type ContentPreferences struct {
	PreferredCategories []PreferenceStat `json:"preferredCategories"`
	ChannelPreferences  []PreferenceStat `json:"channelPreferences"`
	TimeDistribution    TimeDistribution `json:"timeDistribution"`
}

// EnrichedPayload is the second-stage output.
type EnrichedPayload struct {
	EnrichedWatchHistory []EnrichedVideo    `json:"enrichedWatchHistory"`
	VideoCategories      VideoCategories    `json:"videoCategories"`
	SentimentAnalysis    SentimentAnalysis  `json:"sentimentAnalysis"`
	EngagementPatterns   EngagementPatterns `json:"engagementPatterns"`
	ContentPreferences   ContentPreferences `json:"contentPreferences"`
}
