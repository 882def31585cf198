package models

import (
	"testing"
	"time"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"Watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"Short URL", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"Embed URL", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"Legacy v path", "https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"Watch URL with params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"Channel URL", "https://www.youtube.com/channel/UC123", ""},
		{"Empty", "", ""},
		{"Short id", "https://www.youtube.com/watch?v=short", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractVideoID(tt.url); got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestParseDurationSeconds(t *testing.T) {
	tests := []struct {
		duration string
		want     int
	}{
		{"PT1M30S", 90},
		{"PT45S", 45},
		{"PT2H15M30S", 8130},
		{"PT1H", 3600},
		{"PT0S", 0},
		{"", 0},
		{"garbage", 0},
	}

	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			if got := ParseDurationSeconds(tt.duration); got != tt.want {
				t.Errorf("ParseDurationSeconds(%q) = %d, want %d", tt.duration, got, tt.want)
			}
		})
	}
}

func TestParseDurationMinutes(t *testing.T) {
	if got := ParseDurationMinutes("PT14M8S"); got < 14.13 || got > 14.14 {
		t.Errorf("ParseDurationMinutes(PT14M8S) = %f, want ~14.133", got)
	}
}

func TestParseTime(t *testing.T) {
	t.Run("RFC3339", func(t *testing.T) {
		got := ParseTime("2024-03-15T10:30:00Z")
		if got.Hour() != 10 || got.Day() != 15 {
			t.Errorf("unexpected parse result: %v", got)
		}
	})

	t.Run("Malformed falls back to zero time", func(t *testing.T) {
		got := ParseTime("not-a-timestamp")
		if !got.Equal(time.Time{}) {
			t.Errorf("expected zero time, got %v", got)
		}
		if got.Hour() != 0 {
			t.Errorf("zero time should bucket to hour 0, got %d", got.Hour())
		}
	})
}
