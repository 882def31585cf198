package takeout

import (
	"os"
	"path/filepath"
	"testing"

	"profile-stack/internal/models"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFullExport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "watch-history.json", `[
		{"title":"Watched A","titleUrl":"https://www.youtube.com/watch?v=aaaaaaaaaaa","time":"2024-03-15T10:00:00Z","subtitles":[{"name":"Chan"}]}
	]`)
	writeFile(t, dir, "search-history.json", `[{"title":"Searched for go"}]`)
	writeFile(t, dir, "liked-videos.json", `[{"title":"Liked"}]`)
	writeFile(t, dir, "subscriptions.json", `[{"channel":"Chan"}]`)

	digest, err := Load(dir, "user-1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if digest.Source != models.SourceYouTube || digest.UserID != "user-1" {
		t.Errorf("digest = %+v", digest)
	}
	if len(digest.Payload.Watch) != 1 || digest.Payload.Watch[0].Subtitles[0].Name != "Chan" {
		t.Errorf("watch = %+v", digest.Payload.Watch)
	}
	if len(digest.Payload.Search) != 1 || len(digest.Payload.Likes) != 1 || len(digest.Payload.Subs) != 1 {
		t.Errorf("payload = %+v", digest.Payload)
	}
}

func TestLoadWatchHistoryRequired(t *testing.T) {
	if _, err := Load(t.TempDir(), "user-1"); err == nil {
		t.Fatal("expected error without watch-history.json")
	}
}

func TestLoadOptionalFilesMissing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "watch-history.json", `[]`)

	digest, err := Load(dir, "user-1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(digest.Payload.Search) != 0 || len(digest.Payload.Likes) != 0 {
		t.Errorf("payload = %+v", digest.Payload)
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "watch-history.json", `{not json`)

	if _, err := Load(dir, "user-1"); err == nil {
		t.Fatal("expected decode error")
	}
}
