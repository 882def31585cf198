package models

// Timeframe keys of a snapshot, in their canonical order.
const (
	TimeframeOverall      = "overall"
	TimeframeLast12Months = "last12Months"
	TimeframeLast6Months  = "last6Months"
	TimeframeLast30Days   = "last30Days"
	TimeframeLast7Days    = "last7Days"
)

// TimeframeKeys lists every timeframe a snapshot must carry.
var TimeframeKeys = []string{
	TimeframeOverall,
	TimeframeLast12Months,
	TimeframeLast6Months,
	TimeframeLast30Days,
	TimeframeLast7Days,
}

// FrameTotals are the raw totals of one timeframe.
type FrameTotals struct {
	Videos       int     `json:"videos"`
	WatchTimeMin float64 `json:"watchTimeMin"`
}

// CategoryStat is one top-category entry; Pct is a 0–1 share rounded to three
// decimals.
type CategoryStat struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Pct      float64 `json:"pct"`
}

// ChannelStat is one top-channel entry.
type ChannelStat struct {
	Channel string  `json:"channel"`
	Count   int     `json:"count"`
	Pct     float64 `json:"pct"`
}

// SentimentPct is the positive/neutral/negative split as 0–1 shares.
type SentimentPct struct {
	PosPct float64 `json:"posPct"`
	NeuPct float64 `json:"neuPct"`
	NegPct float64 `json:"negPct"`
}

// FrameEngagement summarises when and how long the user watches in a frame.
type FrameEngagement struct {
	AvgSessionMin float64 `json:"avgSessionMin"`
	PeakHour      int     `json:"peakHour"`
	PeakWeekday   int     `json:"peakWeekday"` // 0=Sunday … 6=Saturday
}

// FrameStats is the statistical summary of one timeframe.
type FrameStats struct {
	Totals        FrameTotals    `json:"totals"`
	TopCategories []CategoryStat `json:"topCategories"`
	TopChannels   []ChannelStat  `json:"topChannels"`
	Sentiment     SentimentPct   `json:"sentiment"`
	Engagement    FrameEngagement `json:"engagement"`
	Highlights    []string       `json:"highlights"`
}

// ExemplarVideo is a quotable representative video for one top category.
type ExemplarVideo struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

// EvidenceHints are short verbatim facts for grounding generated narrative.
type EvidenceHints struct {
	TopFacts       []string        `json:"topFacts"`
	TrendAlerts    []string        `json:"trendAlerts"`
	ExemplarVideos []ExemplarVideo `json:"exemplarVideos"`
}

// Snapshot is the third-stage output: a compact multi-timeframe statistical
// summary of one enriched history. It carries no raw watch events.
type Snapshot struct {
	V             int                   `json:"v"`
	UserBio       UserBio               `json:"userBio"`
	Timeframes    map[string]FrameStats `json:"timeframes"`
	EvidenceHints EvidenceHints         `json:"evidenceHints"`
}
