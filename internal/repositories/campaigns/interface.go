package campaigns

//go:generate mockgen -destination=mock/mock.go -package=mockcampaigns -source=interface.go

import (
	"context"
	"encoding/json"
	"time"
)

// Document is a packaged campaign snapshot stashed by the authoring tools:
// the manifest fields the tools browse by, plus the packaged content payload.
type Document struct {
	// ID is the storage identifier, assigned on create when empty.
	ID string `json:"id"`

	// CampaignID is the campaign.json id this snapshot was packaged from.
	CampaignID string `json:"campaign_id"`

	Name    string `json:"name"`
	Version string `json:"version"`
	Author  string `json:"author,omitempty"`

	// Payload is the packaged campaign content, opaque to the store.
	Payload json.RawMessage `json:"payload"`

	// Draft snapshots expire; published ones persist until deleted.
	Draft bool `json:"draft"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Repository persists packaged campaign documents.
type Repository interface {
	// Create stores a new document, assigning an ID when the document
	// has none. Returns the stored document.
	Create(ctx context.Context, doc *Document) (*Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*Document, error)

	// GetByCampaign retrieves every snapshot of one campaign.
	GetByCampaign(ctx context.Context, campaignID string) ([]*Document, error)

	// Update overwrites an existing document.
	Update(ctx context.Context, doc *Document) error

	// Delete removes a document.
	Delete(ctx context.Context, id string) error
}
