package enrich

import (
	"testing"

	"profile-stack/internal/models"
)

func TestBingeSegmentation(t *testing.T) {
	// Gaps of 30 minutes and 90 minutes: the second gap breaks the session.
	videos := []models.EnrichedVideo{
		{Title: "a", Category: "Gaming", Time: "2024-03-15T10:00:00Z", Duration: "PT10M"},
		{Title: "b", Category: "Gaming", Time: "2024-03-15T10:30:00Z", Duration: "PT20M"},
		{Title: "c", Category: "Music", Time: "2024-03-15T12:00:00Z", Duration: "PT5M"},
	}

	patterns := analyzeEngagement(videos)
	if len(patterns.BingeSessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(patterns.BingeSessions))
	}

	first := patterns.BingeSessions[0]
	if first.VideoCount != 2 || first.TotalDuration != 30*60 {
		t.Errorf("first session count=%d duration=%d, want 2 videos 1800s", first.VideoCount, first.TotalDuration)
	}
	if first.CategoryDistribution["Gaming"] != 2 {
		t.Errorf("first session categories = %v", first.CategoryDistribution)
	}
	if first.StartTime != "2024-03-15T10:00:00Z" || first.EndTime != "2024-03-15T10:30:00Z" {
		t.Errorf("first session span = %s..%s", first.StartTime, first.EndTime)
	}

	second := patterns.BingeSessions[1]
	if second.VideoCount != 1 || second.TotalDuration != 5*60 {
		t.Errorf("second session count=%d duration=%d", second.VideoCount, second.TotalDuration)
	}
}

func TestBingeUnsortedInput(t *testing.T) {
	// Same events out of order; segmentation sorts before walking.
	videos := []models.EnrichedVideo{
		{Title: "c", Category: "Music", Time: "2024-03-15T12:00:00Z", Duration: "PT5M"},
		{Title: "a", Category: "Gaming", Time: "2024-03-15T10:00:00Z", Duration: "PT10M"},
		{Title: "b", Category: "Gaming", Time: "2024-03-15T10:30:00Z", Duration: "PT20M"},
	}

	patterns := analyzeEngagement(videos)
	if len(patterns.BingeSessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(patterns.BingeSessions))
	}
	if patterns.BingeSessions[0].VideoCount != 2 {
		t.Errorf("first session videos = %d, want 2", patterns.BingeSessions[0].VideoCount)
	}
}

func TestPeakActivityBuckets(t *testing.T) {
	videos := []models.EnrichedVideo{
		{Category: "Gaming", Time: "2024-03-15T10:00:00Z", Duration: "PT10M"},
		{Category: "Gaming", Time: "2024-03-16T10:00:00Z", Duration: "PT30M"},
		{Category: "Gaming", Time: "2024-03-16T23:00:00Z", Duration: "PT10M"},
	}

	patterns := analyzeEngagement(videos)

	if len(patterns.PeakActivity.Daily) != 2 {
		t.Fatalf("daily buckets = %d, want 2 populated", len(patterns.PeakActivity.Daily))
	}
	ten := patterns.PeakActivity.Daily[0]
	if ten.Bucket != 10 || ten.Count != 2 || ten.AverageWatchTime != 20*60 {
		t.Errorf("hour-10 bucket = %+v", ten)
	}

	if patterns.CategoryEngagement.TotalWatchTime != 50*60 {
		t.Errorf("totalWatchTime = %d, want 3000", patterns.CategoryEngagement.TotalWatchTime)
	}
	if len(patterns.CategoryEngagement.PeakHours) != 2 {
		t.Fatalf("peakHours = %v", patterns.CategoryEngagement.PeakHours)
	}
	if patterns.CategoryEngagement.PeakHours[0].Bucket != 10 {
		t.Errorf("busiest hour = %d, want 10", patterns.CategoryEngagement.PeakHours[0].Bucket)
	}

	gaming := patterns.CategoryEngagement.CategoryDistribution["Gaming"]
	if gaming == nil || gaming.WatchCount != 3 || gaming.TotalDuration != 50*60 {
		t.Errorf("gaming stats = %+v", gaming)
	}
}

func TestContentPreferences(t *testing.T) {
	videos := []models.EnrichedVideo{
		{Category: "Gaming", ChannelTitle: "Chan A", Time: "2024-03-15T10:00:00Z", Duration: "PT10M"},
		{Category: "Gaming", ChannelTitle: "Chan A", Time: "2024-03-15T11:00:00Z", Duration: "PT20M"},
		{Category: "Music", ChannelTitle: "", Time: "2024-03-15T11:30:00Z", Duration: "PT5M"},
	}

	prefs := analyzeContentPreferences(videos)

	if len(prefs.PreferredCategories) != 2 {
		t.Fatalf("categories = %d, want 2", len(prefs.PreferredCategories))
	}
	gaming := prefs.PreferredCategories[0]
	if gaming.Key != "Gaming" || gaming.WatchTime != 30*60 || gaming.VideoCount != 2 || gaming.AverageDuration != 15*60 {
		t.Errorf("gaming preference = %+v", gaming)
	}

	var unknown *models.PreferenceStat
	for i := range prefs.ChannelPreferences {
		if prefs.ChannelPreferences[i].Key == "Unknown" {
			unknown = &prefs.ChannelPreferences[i]
		}
	}
	if unknown == nil || unknown.VideoCount != 1 {
		t.Error("missing channel should fall back to Unknown")
	}

	if len(prefs.TimeDistribution.Daily) != 24 {
		t.Errorf("daily distribution = %d buckets, want 24", len(prefs.TimeDistribution.Daily))
	}
	if prefs.TimeDistribution.Daily[10].Count != 1 || prefs.TimeDistribution.Daily[11].Count != 2 {
		t.Errorf("hour counts = %+v", prefs.TimeDistribution.Daily[10:12])
	}
	if len(prefs.TimeDistribution.Monthly) != 5 {
		t.Errorf("monthly distribution = %d buckets, want 5", len(prefs.TimeDistribution.Monthly))
	}
}
