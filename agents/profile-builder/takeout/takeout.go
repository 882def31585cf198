// Package takeout loads a watch-history export directory into a digest. Only
// the JSON export format is supported; the HTML variant carries the same data
// but is not worth parsing.
package takeout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"profile-stack/internal/models"
)

const (
	watchFile  = "watch-history.json"
	searchFile = "search-history.json"
	likesFile  = "liked-videos.json"
	subsFile   = "subscriptions.json"
)

// Load reads an export directory into a Digest. watch-history.json is
// required; the other files are optional and missing ones load as empty.
func Load(dir, userID string) (*models.Digest, error) {
	var watch []models.WatchEvent
	if err := readJSON(filepath.Join(dir, watchFile), &watch); err != nil {
		return nil, fmt.Errorf("failed to load watch history: %w", err)
	}

	var search []models.SearchEvent
	if err := readOptional(filepath.Join(dir, searchFile), &search); err != nil {
		return nil, fmt.Errorf("failed to load search history: %w", err)
	}
	var likes []models.LikedVideo
	if err := readOptional(filepath.Join(dir, likesFile), &likes); err != nil {
		return nil, fmt.Errorf("failed to load liked videos: %w", err)
	}
	var subs []models.Subscription
	if err := readOptional(filepath.Join(dir, subsFile), &subs); err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}

	return &models.Digest{
		ID:     fmt.Sprintf("takeout-%d", time.Now().Unix()),
		UserID: userID,
		Source: models.SourceYouTube,
		Payload: models.DigestPayload{
			Watch:  watch,
			Search: search,
			Likes:  likes,
			Subs:   subs,
		},
		CreatedAt: time.Now(),
	}, nil
}

func readJSON(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readOptional(path string, out any) error {
	err := readJSON(path, out)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
