// Package youtube implements the metadata provider on top of the YouTube
// Data API v3. Callers batch ids; one call here is one API request.
package youtube

import (
	"context"
	"fmt"
	"strings"

	"profile-stack/internal/models"
	"profile-stack/shared/config"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

type Client struct {
	service *youtube.Service
}

// NewClient builds an API-key authenticated client. The key only needs
// read access to public video and category metadata.
func NewClient(ctx context.Context, cfg *config.YouTubeConfig) (*Client, error) {
	service, err := youtube.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &Client{service: service}, nil
}

// VideoMetadata resolves up to 50 video ids in one videos.list request. Ids
// the API does not return (deleted or private videos) are absent from the
// result, not errors.
func (c *Client) VideoMetadata(ctx context.Context, ids []string) (map[string]models.VideoMetadata, error) {
	if len(ids) == 0 {
		return map[string]models.VideoMetadata{}, nil
	}

	call := c.service.Videos.List([]string{"snippet", "contentDetails"}).
		Id(strings.Join(ids, ",")).
		MaxResults(int64(len(ids))).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("videos.list failed for %d ids: %w", len(ids), err)
	}

	out := make(map[string]models.VideoMetadata, len(resp.Items))
	for _, item := range resp.Items {
		meta := models.VideoMetadata{}
		if item.Snippet != nil {
			meta.Title = item.Snippet.Title
			meta.Description = item.Snippet.Description
			meta.CategoryID = item.Snippet.CategoryId
			meta.ChannelTitle = item.Snippet.ChannelTitle
		}
		if item.ContentDetails != nil {
			meta.Duration = item.ContentDetails.Duration
		}
		out[item.Id] = meta
	}
	return out, nil
}

// CategoryNames resolves category ids to their display titles.
func (c *Client) CategoryNames(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	call := c.service.VideoCategories.List([]string{"snippet"}).
		Id(strings.Join(ids, ",")).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("videoCategories.list failed: %w", err)
	}

	out := make(map[string]string, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet != nil {
			out[item.Id] = item.Snippet.Title
		}
	}
	return out, nil
}
