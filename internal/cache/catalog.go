package cache

import (
	"context"
	"encoding/json"
	"time"

	"foodgram/internal/models"
)

const (
	tagsKey = "catalog:tags"

	// Tags change only through admin action, so a longer TTL is fine.
	tagsTTL = 10 * time.Minute
)

// GetTags returns the cached tag list, or (nil, false) on miss or when
// caching is disabled.
func GetTags(ctx context.Context) ([]models.Tag, bool) {
	if client == nil {
		return nil, false
	}

	raw, err := client.Get(ctx, tagsKey).Bytes()
	if err != nil {
		return nil, false
	}

	var tags []models.Tag
	if err := json.Unmarshal(raw, &tags); err != nil {
		// A corrupt entry is dropped rather than served.
		client.Del(ctx, tagsKey)
		return nil, false
	}
	return tags, true
}

// SetTags stores the tag list. Errors are ignored; the cache is best-effort.
func SetTags(ctx context.Context, tags []models.Tag) {
	if client == nil {
		return
	}

	raw, err := json.Marshal(tags)
	if err != nil {
		return
	}
	client.Set(ctx, tagsKey, raw, tagsTTL)
}

// InvalidateTags drops the cached tag list after an admin write.
func InvalidateTags(ctx context.Context) {
	if client != nil {
		client.Del(ctx, tagsKey)
	}
}
