package models

import "time"

// Source identifies which platform export a digest was normalised from.
type Source string

const (
	SourceYouTube Source = "youtube"
)

// Subtitle is the channel attribution attached to a takeout watch event.
type Subtitle struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// WatchEvent is one normalised watch-history record. Timestamps stay in their
// exported string form; ParseTime handles malformed values downstream.
type WatchEvent struct {
	Title     string     `json:"title"`
	TitleURL  string     `json:"titleUrl,omitempty"`
	Time      string     `json:"time"`
	Duration  string     `json:"duration,omitempty"`
	Category  string     `json:"category,omitempty"`
	Subtitles []Subtitle `json:"subtitles,omitempty"`
}

// SearchEvent is one normalised search-history record. Exports are
// inconsistent about which field carries the term, so all three are kept.
type SearchEvent struct {
	Query  string `json:"query,omitempty"`
	Search string `json:"search,omitempty"`
	Title  string `json:"title,omitempty"`
	Time   string `json:"time,omitempty"`
}

// LikedVideo is a liked-videos export record.
type LikedVideo struct {
	Title     string `json:"title"`
	URL       string `json:"url,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Subscription is a channel subscription export record.
type Subscription struct {
	Channel          string `json:"channel"`
	SubscriptionDate string `json:"subscriptionDate,omitempty"`
}

// DigestPayload is the normalised record set produced by the ingestion
// boundary. The pipeline treats it as read-only input.
type DigestPayload struct {
	Watch  []WatchEvent   `json:"watch"`
	Search []SearchEvent  `json:"search"`
	Likes  []LikedVideo   `json:"likes,omitempty"`
	Subs   []Subscription `json:"subs,omitempty"`
}

// Digest is one user's normalised export from one source platform.
type Digest struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	Source    Source        `json:"source"`
	Payload   DigestPayload `json:"payload"`
	CreatedAt time.Time     `json:"createdAt"`
}

// UserBio carries the caller-supplied demographics forwarded to the snapshot
// and narrative stages. Nothing here is derived from watch data.
type UserBio struct {
	Age        string   `json:"age" yaml:"age"`
	Country    string   `json:"country" yaml:"country"`
	Languages  []string `json:"languages" yaml:"languages"`
	Occupation string   `json:"occupation" yaml:"occupation"`
	Hobbies    []string `json:"hobbies" yaml:"hobbies"`
}
