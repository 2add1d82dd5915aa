// Package race defines playable race templates and their keyed database.
package race

import (
	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// Stat names the seven character attributes.
type Stat string

const (
	StatMight       Stat = "might"
	StatIntellect   Stat = "intellect"
	StatPersonality Stat = "personality"
	StatEndurance   Stat = "endurance"
	StatSpeed       Stat = "speed"
	StatAccuracy    Stat = "accuracy"
	StatLuck        Stat = "luck"
)

// Stats lists the attributes in canonical order.
var Stats = []Stat{
	StatMight, StatIntellect, StatPersonality, StatEndurance,
	StatSpeed, StatAccuracy, StatLuck,
}

// StatModifiers carries the signed per-stat adjustments a race applies at
// character instantiation.
type StatModifiers struct {
	Might       int8 `json:"might"`
	Intellect   int8 `json:"intellect"`
	Personality int8 `json:"personality"`
	Endurance   int8 `json:"endurance"`
	Speed       int8 `json:"speed"`
	Accuracy    int8 `json:"accuracy"`
	Luck        int8 `json:"luck"`
}

// Get returns the modifier for a stat.
func (m StatModifiers) Get(s Stat) int8 {
	switch s {
	case StatMight:
		return m.Might
	case StatIntellect:
		return m.Intellect
	case StatPersonality:
		return m.Personality
	case StatEndurance:
		return m.Endurance
	case StatSpeed:
		return m.Speed
	case StatAccuracy:
		return m.Accuracy
	case StatLuck:
		return m.Luck
	}
	return 0
}

// Resistances carries the innate racial resistance values.
type Resistances struct {
	Magic       uint8 `json:"magic"`
	Fire        uint8 `json:"fire"`
	Cold        uint8 `json:"cold"`
	Electricity uint8 `json:"electricity"`
	Acid        uint8 `json:"acid"`
	Fear        uint8 `json:"fear"`
	Poison      uint8 `json:"poison"`
	Psychic     uint8 `json:"psychic"`
}

// SizeCategory is the physical size class of a race.
type SizeCategory string

const (
	SizeSmall  SizeCategory = "small"
	SizeMedium SizeCategory = "medium"
	SizeLarge  SizeCategory = "large"
)

// Definition is a race template loaded from content files.
type Definition struct {
	ID          types.RaceID `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`

	// StatModifiers are applied to base stats at instantiation
	StatModifiers StatModifiers `json:"stat_modifiers"`

	// Resistances are projected onto the character as base=current pairs
	Resistances Resistances `json:"resistances"`

	SpecialAbilities []string     `json:"special_abilities,omitempty"`
	Size             SizeCategory `json:"size"`

	// Proficiencies granted by the race, unioned with class proficiencies
	Proficiencies []types.ProficiencyID `json:"proficiencies,omitempty"`

	// IncompatibleItemTags lists item tags this race can never equip
	IncompatibleItemTags []string `json:"incompatible_item_tags,omitempty"`
}

// Validate checks the definition's internal invariants.
func (d *Definition) Validate() error {
	if d.ID == "" {
		return apperr.Validation("race ID cannot be empty")
	}
	if d.Name == "" {
		return apperr.Validationf("race %q has an empty name", d.ID)
	}
	switch d.Size {
	case SizeSmall, SizeMedium, SizeLarge:
	default:
		return apperr.Validationf("race %q has invalid size %q", d.ID, d.Size)
	}
	return nil
}

// CanUseItem reports whether an item with the given tags is compatible with
// this race.
func (d *Definition) CanUseItem(itemTags []string) bool {
	for _, tag := range itemTags {
		for _, bad := range d.IncompatibleItemTags {
			if tag == bad {
				return false
			}
		}
	}
	return true
}
