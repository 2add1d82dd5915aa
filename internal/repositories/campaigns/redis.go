package campaigns

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperr "github.com/antaresengine/antares/internal/errors"
	"github.com/antaresengine/antares/internal/uuid"
)

// redisRepo implements Repository on Redis. Documents are stored as JSON
// under per-document keys with a set per campaign indexing its snapshots.
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	draftTTL      time.Duration
}

// RedisRepoConfig holds configuration for the Redis repository.
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator

	// DraftTTL bounds how long draft snapshots live (default 24 hours).
	DraftTTL time.Duration
}

// NewRedisRepository creates a Redis-backed campaign document repository.
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	generator := cfg.UUIDGenerator
	if generator == nil {
		generator = uuid.NewV4Generator()
	}
	ttl := cfg.DraftTTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: generator,
		draftTTL:      ttl,
	}
}

// NewRedis creates a repository with default config.
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("campaign_doc:%s", id)
}

func (r *redisRepo) campaignDocsKey(campaignID string) string {
	return fmt.Sprintf("campaign:%s:docs", campaignID)
}

func (r *redisRepo) ttlFor(doc *Document) time.Duration {
	if doc.Draft {
		return r.draftTTL
	}
	return 0
}

// Create stores a new document, assigning an ID when the document has none.
func (r *redisRepo) Create(ctx context.Context, doc *Document) (*Document, error) {
	if doc == nil {
		return nil, apperr.InvalidArgument("document cannot be nil")
	}
	if doc.CampaignID == "" {
		return nil, apperr.InvalidArgument("document campaign ID is required")
	}

	stored := *doc
	if stored.ID == "" {
		stored.ID = r.uuidGenerator.New()
	}

	exists, err := r.client.Exists(ctx, r.key(stored.ID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check document existence: %w", err)
	}
	if exists > 0 {
		return nil, apperr.AlreadyExistsf("campaign document '%s' already exists", stored.ID).
			WithMeta("document_id", stored.ID)
	}

	stored.CreatedAt = time.Now().UTC()
	stored.UpdatedAt = stored.CreatedAt

	jsonData, err := json.Marshal(&stored)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(stored.ID), string(jsonData), r.ttlFor(&stored))
	pipe.SAdd(ctx, r.campaignDocsKey(stored.CampaignID), stored.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	return &stored, nil
}

// Get retrieves a document by ID.
func (r *redisRepo) Get(ctx context.Context, id string) (*Document, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("document ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("campaign document '%s' not found", id).
			WithMeta("document_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal([]byte(jsonData), &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return &doc, nil
}

// GetByCampaign retrieves every snapshot of one campaign. Index entries
// whose document expired are skipped.
func (r *redisRepo) GetByCampaign(ctx context.Context, campaignID string) ([]*Document, error) {
	if campaignID == "" {
		return nil, apperr.InvalidArgument("campaign ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.campaignDocsKey(campaignID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list document IDs: %w", err)
	}

	docs := make([]*Document, 0, len(ids))
	for _, id := range ids {
		doc, err := r.Get(ctx, id)
		if err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Update overwrites an existing document.
func (r *redisRepo) Update(ctx context.Context, doc *Document) error {
	if doc == nil {
		return apperr.InvalidArgument("document cannot be nil")
	}
	if doc.ID == "" {
		return apperr.InvalidArgument("document ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(doc.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check document existence: %w", err)
	}
	if exists == 0 {
		return apperr.NotFoundf("campaign document '%s' not found", doc.ID).
			WithMeta("document_id", doc.ID)
	}

	updated := *doc
	updated.UpdatedAt = time.Now().UTC()

	jsonData, err := json.Marshal(&updated)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := r.client.Set(ctx, r.key(updated.ID), string(jsonData), r.ttlFor(&updated)).Err(); err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	return nil
}

// Delete removes a document and its index entry.
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("document ID is required")
	}

	doc, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.campaignDocsKey(doc.CampaignID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
