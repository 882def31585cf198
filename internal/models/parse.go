package models

import (
	"regexp"
	"strconv"
	"time"
)

// videoIDPattern matches the URL shapes a takeout export links videos with:
// youtu.be/ID, watch?v=ID, embed/ID and v/ID.
var videoIDPattern = regexp.MustCompile(`(?:youtu\.be/|watch\?v=|embed/|v/)([0-9A-Za-z_-]{11})`)

// ExtractVideoID pulls the 11-character video id out of a watch URL.
// Returns "" when no known URL shape matches.
func ExtractVideoID(url string) string {
	if url == "" {
		return ""
	}
	m := videoIDPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

var durationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseDurationSeconds parses an ISO 8601 duration ("PT1H2M3S") into seconds.
// Unparseable input counts as zero rather than failing the batch.
func ParseDurationSeconds(duration string) int {
	if duration == "" {
		return 0
	}
	m := durationPattern.FindStringSubmatch(duration)
	if m == nil {
		return 0
	}

	var total int
	if m[1] != "" {
		if hours, err := strconv.Atoi(m[1]); err == nil {
			total += hours * 3600
		}
	}
	if m[2] != "" {
		if minutes, err := strconv.Atoi(m[2]); err == nil {
			total += minutes * 60
		}
	}
	if m[3] != "" {
		if seconds, err := strconv.Atoi(m[3]); err == nil {
			total += seconds
		}
	}
	return total
}

// ParseDurationMinutes is ParseDurationSeconds in fractional minutes.
func ParseDurationMinutes(duration string) float64 {
	return float64(ParseDurationSeconds(duration)) / 60
}

// timeLayouts covers the timestamp shapes seen in takeout exports.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses an exported timestamp. Malformed values return the zero
// time, which lands in hour/day bucket zero instead of aborting aggregation.
func ParseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
