package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// File is a JSON-file backed Cache used when no Redis address is configured.
// The whole store lives in memory and is rewritten on every Set; fine for
// the tens of thousands of entries a single user's history produces.
type File struct {
	filePath string
	mu       sync.RWMutex
	entries  map[string]fileEntry
	maxAge   time.Duration
}

type fileEntry struct {
	Value   string    `json:"value"`
	StoredAt time.Time `json:"stored_at"`
}

// NewFile creates a file cache under dataDir. Entries older than maxAge are
// dropped at load time; a zero maxAge keeps everything.
func NewFile(dataDir string, maxAge time.Duration) (*File, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	f := &File{
		filePath: filepath.Join(dataDir, "metadata_cache.json"),
		entries:  make(map[string]fileEntry),
		maxAge:   maxAge,
	}

	if err := f.load(); err != nil {
		return nil, fmt.Errorf("failed to load cache file: %w", err)
	}
	f.cleanup()

	return f, nil
}

func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	e, ok := f.entries[key]
	if !ok {
		return "", false, nil
	}
	if f.maxAge > 0 && time.Since(e.StoredAt) >= f.maxAge {
		return "", false, nil
	}
	return e.Value, true, nil
}

func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries[key] = fileEntry{Value: value, StoredAt: time.Now()}
	return f.save()
}

func (f *File) GetOrSet(ctx context.Context, key string, produce func(context.Context) (string, error)) (string, error) {
	return getOrSet(ctx, f, key, produce)
}

// Len reports the number of stored entries.
func (f *File) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.entries)
}

func (f *File) cleanup() {
	if f.maxAge <= 0 {
		return
	}
	cutoff := time.Now().Add(-f.maxAge)
	for key, e := range f.entries {
		if e.StoredAt.Before(cutoff) {
			delete(f.entries, key)
		}
	}
}

func (f *File) load() error {
	file, err := os.Open(f.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No cache yet, start empty
			return nil
		}
		return fmt.Errorf("failed to open cache file: %w", err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&f.entries); err != nil {
		return fmt.Errorf("failed to decode cache data: %w", err)
	}
	return nil
}

func (f *File) save() error {
	file, err := os.Create(f.filePath)
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(f.entries)
}
