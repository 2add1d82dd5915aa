// Package content assembles the per-kind databases into the campaign-wide
// content graph: core data, campaign overrides, and cross-reference checks.
package content

import (
	"github.com/antaresengine/antares/internal/domain/chardef"
	"github.com/antaresengine/antares/internal/domain/class"
	"github.com/antaresengine/antares/internal/domain/dialogue"
	"github.com/antaresengine/antares/internal/domain/item"
	"github.com/antaresengine/antares/internal/domain/monster"
	"github.com/antaresengine/antares/internal/domain/proficiency"
	"github.com/antaresengine/antares/internal/domain/quest"
	"github.com/antaresengine/antares/internal/domain/race"
	"github.com/antaresengine/antares/internal/domain/spell"
	"github.com/antaresengine/antares/internal/domain/visual"
	"github.com/antaresengine/antares/internal/domain/worldmap"
)

// ContentDatabase composes every per-kind database. It is built at load
// time, validated once, and treated as immutable for the session.
type ContentDatabase struct {
	Races         *race.Database
	Classes       *class.Database
	Proficiencies *proficiency.Database
	Items         *item.Database
	Spells        *spell.Database
	Monsters      *monster.Database
	Maps          *worldmap.Database
	Quests        *quest.Database
	Dialogues     *dialogue.Database
	Characters    *chardef.Database
	Creatures     *visual.Database

	// Campaign is the manifest of the loaded campaign, nil for core-only
	Campaign *Campaign
}

// NewContentDatabase creates an empty database with the built-in
// proficiency set.
func NewContentDatabase() *ContentDatabase {
	return &ContentDatabase{
		Races:         race.NewDatabase(),
		Classes:       class.NewDatabase(),
		Proficiencies: proficiency.DefaultDatabase(),
		Items:         item.NewDatabase(),
		Spells:        spell.NewDatabase(),
		Monsters:      monster.NewDatabase(),
		Maps:          worldmap.NewDatabase(),
		Quests:        quest.NewDatabase(),
		Dialogues:     dialogue.NewDatabase(),
		Characters:    chardef.NewDatabase(),
		Creatures:     visual.NewDatabase(),
	}
}

// Stats summarizes database sizes for tool output.
type Stats struct {
	RaceCount      int
	ClassCount     int
	ItemCount      int
	SpellCount     int
	MonsterCount   int
	MapCount       int
	QuestCount     int
	DialogueCount  int
	CharacterCount int
	CreatureCount  int
}

// Stats returns entity counts across all databases.
func (db *ContentDatabase) Stats() Stats {
	return Stats{
		RaceCount:      db.Races.Len(),
		ClassCount:     db.Classes.Len(),
		ItemCount:      db.Items.Len(),
		SpellCount:     db.Spells.Len(),
		MonsterCount:   db.Monsters.Len(),
		MapCount:       db.Maps.Len(),
		QuestCount:     db.Quests.Len(),
		DialogueCount:  db.Dialogues.Len(),
		CharacterCount: db.Characters.Len(),
		CreatureCount:  db.Creatures.Len(),
	}
}
