// Package authoring backs the campaign editing tools: validation reports,
// name lookups over the loaded content, and packaged campaign snapshots.
package authoring

//go:generate mockgen -destination=mock/mock_service.go -package=mockauthoring -source=service.go

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/antaresengine/antares/internal/domain/content"
	apperr "github.com/antaresengine/antares/internal/errors"
	"github.com/antaresengine/antares/internal/repositories/campaigns"
)

// Kind names one content category for browsing and suggestions.
type Kind string

const (
	KindRace      Kind = "race"
	KindClass     Kind = "class"
	KindItem      Kind = "item"
	KindSpell     Kind = "spell"
	KindMonster   Kind = "monster"
	KindMap       Kind = "map"
	KindQuest     Kind = "quest"
	KindDialogue  Kind = "dialogue"
	KindCharacter Kind = "character"
	KindCreature  Kind = "creature"
)

// AllKinds lists every browsable content category.
var AllKinds = []Kind{
	KindRace, KindClass, KindItem, KindSpell, KindMonster,
	KindMap, KindQuest, KindDialogue, KindCharacter, KindCreature,
}

// Suggestion is one entry an editor can offer for an ID field.
type Suggestion struct {
	Kind Kind
	ID   string
	Name string
}

// Service defines the authoring service interface
type Service interface {
	// Validate runs every cross-reference check over the loaded content.
	Validate() *content.Report

	// Stats returns entity counts per database.
	Stats() content.Stats

	// Browse lists every entry of one kind, sorted by name.
	Browse(kind Kind) ([]Suggestion, error)

	// Suggest returns entries whose name contains the query,
	// case-insensitively, across the given kinds (all kinds when empty).
	Suggest(query string, kinds ...Kind) []Suggestion

	// PackageCampaign snapshots the loaded campaign into the document
	// store. Published snapshots must validate cleanly; drafts may not.
	PackageCampaign(ctx context.Context, draft bool) (*campaigns.Document, error)

	// Snapshots lists the stored snapshots of one campaign.
	Snapshots(ctx context.Context, campaignID string) ([]*campaigns.Document, error)

	// PublishSnapshot clears the draft flag on a stored snapshot.
	PublishSnapshot(ctx context.Context, id string) error

	// DeleteSnapshot removes a stored snapshot.
	DeleteSnapshot(ctx context.Context, id string) error
}

type service struct {
	db        *content.ContentDatabase
	documents campaigns.Repository
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Content   *content.ContentDatabase // Required
	Documents campaigns.Repository     // Required
}

// NewService creates a new authoring service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.Content == nil {
		panic("content database is required")
	}
	if cfg.Documents == nil {
		panic("document repository is required")
	}

	return &service{
		db:        cfg.Content,
		documents: cfg.Documents,
	}
}

func (s *service) Validate() *content.Report {
	return s.db.Validate()
}

func (s *service) Stats() content.Stats {
	return s.db.Stats()
}

func (s *service) Browse(kind Kind) ([]Suggestion, error) {
	entries := s.collect(kind)
	if entries == nil {
		return nil, apperr.InvalidArgumentf("unknown content kind %q", kind)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

func (s *service) Suggest(query string, kinds ...Kind) []Suggestion {
	if len(kinds) == 0 {
		kinds = AllKinds
	}
	needle := strings.ToLower(query)

	var matches []Suggestion
	for _, kind := range kinds {
		for _, entry := range s.collect(kind) {
			if strings.Contains(strings.ToLower(entry.Name), needle) {
				matches = append(matches, entry)
			}
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Kind != matches[j].Kind {
			return matches[i].Kind < matches[j].Kind
		}
		if matches[i].Name != matches[j].Name {
			return matches[i].Name < matches[j].Name
		}
		return matches[i].ID < matches[j].ID
	})
	return matches
}

// collect returns the entries of one kind, nil for an unknown kind. An
// empty database yields a non-nil empty slice so callers can tell the
// two apart.
func (s *service) collect(kind Kind) []Suggestion {
	entries := []Suggestion{}

	switch kind {
	case KindRace:
		for _, def := range s.db.Races.All() {
			entries = append(entries, Suggestion{Kind: kind, ID: string(def.ID), Name: def.Name})
		}
	case KindClass:
		for _, def := range s.db.Classes.All() {
			entries = append(entries, Suggestion{Kind: kind, ID: string(def.ID), Name: def.Name})
		}
	case KindItem:
		for _, def := range s.db.Items.All() {
			entries = append(entries, Suggestion{Kind: kind, ID: fmt.Sprintf("%d", def.ID), Name: def.Name})
		}
	case KindSpell:
		for _, def := range s.db.Spells.All() {
			entries = append(entries, Suggestion{Kind: kind, ID: fmt.Sprintf("%d", def.ID), Name: def.Name})
		}
	case KindMonster:
		for _, def := range s.db.Monsters.All() {
			entries = append(entries, Suggestion{Kind: kind, ID: fmt.Sprintf("%d", def.ID), Name: def.Name})
		}
	case KindMap:
		for _, def := range s.db.Maps.All() {
			entries = append(entries, Suggestion{Kind: kind, ID: fmt.Sprintf("%d", def.ID), Name: def.Name})
		}
	case KindQuest:
		for _, q := range s.db.Quests.All() {
			entries = append(entries, Suggestion{Kind: kind, ID: fmt.Sprintf("%d", q.ID), Name: q.Name})
		}
	case KindDialogue:
		for _, tree := range s.db.Dialogues.All() {
			entries = append(entries, Suggestion{Kind: kind, ID: fmt.Sprintf("%d", tree.ID), Name: tree.Name})
		}
	case KindCharacter:
		for _, def := range s.db.Characters.All() {
			entries = append(entries, Suggestion{Kind: kind, ID: string(def.ID), Name: def.Name})
		}
	case KindCreature:
		for _, def := range s.db.Creatures.All() {
			entries = append(entries, Suggestion{Kind: kind, ID: fmt.Sprintf("%d", def.ID), Name: def.Name})
		}
	default:
		return nil
	}

	return entries
}

// packagePayload is the document payload written by PackageCampaign.
type packagePayload struct {
	Campaign *content.Campaign `json:"campaign"`
	Stats    content.Stats     `json:"stats"`
}

func (s *service) PackageCampaign(ctx context.Context, draft bool) (*campaigns.Document, error) {
	manifest := s.db.Campaign
	if manifest == nil {
		return nil, apperr.InvalidArgument("no campaign manifest is loaded")
	}

	if !draft {
		if report := s.db.Validate(); !report.IsEmpty() {
			return nil, apperr.Validationf("campaign %s has %d validation issues; package as draft or fix them", manifest.ID, report.Len()).
				WithMeta("campaign_id", manifest.ID).
				WithMeta("issue_count", report.Len())
		}
	}

	payload, err := json.Marshal(packagePayload{
		Campaign: manifest,
		Stats:    s.db.Stats(),
	})
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to package campaign %s", manifest.ID)
	}

	doc := &campaigns.Document{
		CampaignID: manifest.ID,
		Name:       manifest.Name,
		Version:    manifest.Version,
		Author:     manifest.Author,
		Payload:    payload,
		Draft:      draft,
	}

	stored, err := s.documents.Create(ctx, doc)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to store campaign snapshot for %s", manifest.ID)
	}
	return stored, nil
}

func (s *service) Snapshots(ctx context.Context, campaignID string) ([]*campaigns.Document, error) {
	if campaignID == "" {
		return nil, apperr.InvalidArgument("campaign ID is required")
	}
	return s.documents.GetByCampaign(ctx, campaignID)
}

func (s *service) PublishSnapshot(ctx context.Context, id string) error {
	doc, err := s.documents.Get(ctx, id)
	if err != nil {
		return err
	}
	if !doc.Draft {
		return nil
	}

	doc.Draft = false
	return s.documents.Update(ctx, doc)
}

func (s *service) DeleteSnapshot(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("snapshot ID is required")
	}
	return s.documents.Delete(ctx, id)
}
