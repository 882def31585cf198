package enrich

import (
	"strings"
	"unicode"

	"profile-stack/internal/models"
)

type sentimentClass int

const (
	classNeutral sentimentClass = iota
	classPositive
	classNegative
)

// Score sums the valence of every lexicon word in text. Tokens are lowercased
// and split on anything that is not a letter, digit or apostrophe.
func Score(text string) int {
	score := 0
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	for _, w := range fields {
		score += valence[strings.Trim(w, "'")]
	}
	return score
}

// Classify maps a raw score onto the three-way classification.
func Classify(score int) sentimentClass {
	switch {
	case score > 0:
		return classPositive
	case score < 0:
		return classNegative
	default:
		return classNeutral
	}
}

// Analyzer accumulates sentiment aggregates over one enriched history. It is
// stateless between AnalyzeVideos calls.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// AnalyzeVideos scans the history once and builds the full sentiment
// aggregate. Titles and descriptions are scored independently; the channel
// aggregate is fed by both classifications. Bucket means use the incremental
// update avg' = (avg*(n-1)+score)/n; the fixed time buckets keep a summed
// score accumulator instead.
func (a *Analyzer) AnalyzeVideos(videos []models.EnrichedVideo) models.SentimentAnalysis {
	out := models.SentimentAnalysis{
		TitleSentiment:       models.SideSentiment{ByCategory: make(map[string]*models.SentimentBucket)},
		DescriptionSentiment: models.SideSentiment{ByCategory: make(map[string]*models.SentimentBucket)},
		ChannelSentiment:     make(map[string]*models.SentimentBucket),
	}
	trendIdx := make(map[*models.SentimentBucket]map[string]int)

	for _, v := range videos {
		titleScore := Score(v.Title)
		descScore := Score(v.Description)
		titleClass := Classify(titleScore)
		descClass := Classify(descScore)

		addSide(&out.TitleSentiment, titleClass)
		addSide(&out.DescriptionSentiment, descClass)

		category := v.Category
		if category == "" {
			category = "Unknown"
		}
		channel := "Unknown"
		if len(v.Subtitles) > 0 && v.Subtitles[0].Name != "" {
			channel = v.Subtitles[0].Name
		}

		ts := models.ParseTime(v.Time)
		date := ts.UTC().Format("2006-01-02")

		updateBucket(out.TitleSentiment.ByCategory, trendIdx, category, titleClass, float64(titleScore), date)
		updateBucket(out.DescriptionSentiment.ByCategory, trendIdx, category, descClass, float64(descScore), date)
		updateBucket(out.ChannelSentiment, trendIdx, channel, titleClass, float64(titleScore), date)
		updateBucket(out.ChannelSentiment, trendIdx, channel, descClass, float64(descScore), date)

		hour := ts.Hour()
		day := int(ts.Weekday())
		week := ts.Day() / 7
		half := (float64(titleScore) + float64(descScore)) / 2

		addTime(&out.TimeBasedSentiment.Daily[hour], titleClass, descClass, half)
		addTime(&out.TimeBasedSentiment.Weekly[day], titleClass, descClass, half)
		addTime(&out.TimeBasedSentiment.Monthly[week], titleClass, descClass, half)
	}

	return out
}

func addSide(side *models.SideSentiment, class sentimentClass) {
	switch class {
	case classPositive:
		side.Positive++
	case classNegative:
		side.Negative++
	default:
		side.Neutral++
	}
}

// updateBucket bumps one classification in the keyed aggregate, folds the raw
// score into the running mean and increments the per-date trend entry.
func updateBucket(
	target map[string]*models.SentimentBucket,
	trendIdx map[*models.SentimentBucket]map[string]int,
	key string,
	class sentimentClass,
	score float64,
	date string,
) {
	b, ok := target[key]
	if !ok {
		b = &models.SentimentBucket{}
		target[key] = b
		trendIdx[b] = make(map[string]int)
	}

	switch class {
	case classPositive:
		b.Positive++
	case classNegative:
		b.Negative++
	default:
		b.Neutral++
	}

	total := b.Positive + b.Neutral + b.Negative
	b.AverageScore = (b.AverageScore*float64(total-1) + score) / float64(total)

	dates := trendIdx[b]
	i, ok := dates[date]
	if !ok {
		i = len(b.SentimentTrend)
		b.SentimentTrend = append(b.SentimentTrend, models.TrendPoint{Date: date})
		dates[date] = i
	}
	switch class {
	case classPositive:
		b.SentimentTrend[i].Positive++
	case classNegative:
		b.SentimentTrend[i].Negative++
	default:
		b.SentimentTrend[i].Neutral++
	}
}

func addTime(t *models.TimeSentiment, titleClass, descClass sentimentClass, halfScore float64) {
	for _, class := range []sentimentClass{titleClass, descClass} {
		switch class {
		case classPositive:
			t.Positive++
		case classNegative:
			t.Negative++
		default:
			t.Neutral++
		}
	}
	t.AverageScore += halfScore
}
