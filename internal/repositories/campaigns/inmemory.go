package campaigns

import (
	"context"
	"sync"
	"time"

	apperr "github.com/antaresengine/antares/internal/errors"
	"github.com/antaresengine/antares/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of the campaign document
// repository. Useful for tests and offline tooling.
type InMemoryRepository struct {
	mu            sync.RWMutex
	documents     map[string]*Document
	uuidGenerator uuid.Generator
}

// NewInMemoryRepository creates a new in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		documents:     make(map[string]*Document),
		uuidGenerator: uuid.NewV4Generator(),
	}
}

// Create stores a new document, assigning an ID when the document has none.
func (r *InMemoryRepository) Create(ctx context.Context, doc *Document) (*Document, error) {
	if doc == nil {
		return nil, apperr.InvalidArgument("document cannot be nil")
	}
	if doc.CampaignID == "" {
		return nil, apperr.InvalidArgument("document campaign ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *doc
	if stored.ID == "" {
		stored.ID = r.uuidGenerator.New()
	}
	if _, exists := r.documents[stored.ID]; exists {
		return nil, apperr.AlreadyExistsf("campaign document '%s' already exists", stored.ID).
			WithMeta("document_id", stored.ID)
	}

	stored.CreatedAt = time.Now().UTC()
	stored.UpdatedAt = stored.CreatedAt
	r.documents[stored.ID] = &stored

	result := stored
	return &result, nil
}

// Get retrieves a document by ID.
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Document, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("document ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, exists := r.documents[id]
	if !exists {
		return nil, apperr.NotFoundf("campaign document '%s' not found", id).
			WithMeta("document_id", id)
	}

	docCopy := *doc
	return &docCopy, nil
}

// GetByCampaign retrieves every snapshot of one campaign.
func (r *InMemoryRepository) GetByCampaign(ctx context.Context, campaignID string) ([]*Document, error) {
	if campaignID == "" {
		return nil, apperr.InvalidArgument("campaign ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Document
	for _, doc := range r.documents {
		if doc.CampaignID == campaignID {
			docCopy := *doc
			result = append(result, &docCopy)
		}
	}
	return result, nil
}

// Update overwrites an existing document.
func (r *InMemoryRepository) Update(ctx context.Context, doc *Document) error {
	if doc == nil {
		return apperr.InvalidArgument("document cannot be nil")
	}
	if doc.ID == "" {
		return apperr.InvalidArgument("document ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.documents[doc.ID]
	if !exists {
		return apperr.NotFoundf("campaign document '%s' not found", doc.ID).
			WithMeta("document_id", doc.ID)
	}

	updated := *doc
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	r.documents[doc.ID] = &updated
	return nil
}

// Delete removes a document.
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("document ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.documents[id]; !exists {
		return apperr.NotFoundf("campaign document '%s' not found", id).
			WithMeta("document_id", id)
	}
	delete(r.documents, id)
	return nil
}
