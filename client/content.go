package client

import (
	"context"
	"sync"

	"solaya-landing-server/models"
)

type ContentSnapshot struct {
	GlobalCopy    *models.GlobalCopy
	ToolkitImages []models.ToolkitImage
	Loading       bool
	Err           string
}

// ContentProvider holds the site copy and toolkit images for the lifetime of
// the process. Authored-content changes are only observed through an explicit
// Refresh.
type ContentProvider struct {
	client *Client

	mu   sync.Mutex
	snap ContentSnapshot
}

func NewContentProvider(c *Client) *ContentProvider {
	return &ContentProvider{
		client: c,
		snap:   ContentSnapshot{Loading: true},
	}
}

// Refresh fetches the global copy and toolkit images in one call. A failure
// records the error message with the underlying detail and leaves loading
// false; there is no retry.
func (p *ContentProvider) Refresh(ctx context.Context) {
	var payload struct {
		GlobalCopy    models.GlobalCopy     `json:"global_copy"`
		ToolkitImages []models.ToolkitImage `json:"toolkit_images"`
	}

	err := p.client.doJSON(ctx, "GET", "/content", nil, &payload)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.snap.Loading = false
	if err != nil {
		p.snap.Err = "Failed to load content. Please try again later. Details: " + err.Error()
		return
	}
	p.snap.Err = ""
	p.snap.GlobalCopy = &payload.GlobalCopy
	p.snap.ToolkitImages = payload.ToolkitImages
}

func (p *ContentProvider) Snapshot() ContentSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap
}
