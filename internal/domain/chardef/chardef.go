// Package chardef defines authored character templates, the definitions that
// character instantiation turns into runtime party members.
package chardef

import (
	"encoding/json"

	"github.com/antaresengine/antares/internal/domain/race"
	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// BaseStats holds the seven authored attribute pairs before race modifiers
// apply.
type BaseStats struct {
	Might       types.AttributePair `json:"might"`
	Intellect   types.AttributePair `json:"intellect"`
	Personality types.AttributePair `json:"personality"`
	Endurance   types.AttributePair `json:"endurance"`
	Speed       types.AttributePair `json:"speed"`
	Accuracy    types.AttributePair `json:"accuracy"`
	Luck        types.AttributePair `json:"luck"`
}

// Get returns the pair for a stat.
func (b BaseStats) Get(s race.Stat) types.AttributePair {
	switch s {
	case race.StatMight:
		return b.Might
	case race.StatIntellect:
		return b.Intellect
	case race.StatPersonality:
		return b.Personality
	case race.StatEndurance:
		return b.Endurance
	case race.StatSpeed:
		return b.Speed
	case race.StatAccuracy:
		return b.Accuracy
	case race.StatLuck:
		return b.Luck
	}
	return types.AttributePair{}
}

// Set stores the pair for a stat.
func (b *BaseStats) Set(s race.Stat, p types.AttributePair) {
	switch s {
	case race.StatMight:
		b.Might = p
	case race.StatIntellect:
		b.Intellect = p
	case race.StatPersonality:
		b.Personality = p
	case race.StatEndurance:
		b.Endurance = p
	case race.StatSpeed:
		b.Speed = p
	case race.StatAccuracy:
		b.Accuracy = p
	case race.StatLuck:
		b.Luck = p
	}
}

// StartingEquipment holds the seven optional equipment slots a character may
// start with. All references are item IDs resolved at instantiation.
type StartingEquipment struct {
	Weapon     *types.ItemID `json:"weapon,omitempty"`
	Armor      *types.ItemID `json:"armor,omitempty"`
	Shield     *types.ItemID `json:"shield,omitempty"`
	Helmet     *types.ItemID `json:"helmet,omitempty"`
	Boots      *types.ItemID `json:"boots,omitempty"`
	Accessory1 *types.ItemID `json:"accessory1,omitempty"`
	Accessory2 *types.ItemID `json:"accessory2,omitempty"`
}

// AllItemIDs returns the equipped item IDs in slot order, skipping empty
// slots.
func (e StartingEquipment) AllItemIDs() []types.ItemID {
	slots := []*types.ItemID{
		e.Weapon, e.Armor, e.Shield, e.Helmet, e.Boots, e.Accessory1, e.Accessory2,
	}
	var out []types.ItemID
	for _, slot := range slots {
		if slot != nil {
			out = append(out, *slot)
		}
	}
	return out
}

// CharacterDefinition is an authored character template loaded from content
// files.
type CharacterDefinition struct {
	ID   types.CharacterDefID `json:"id"`
	Name string               `json:"name"`

	RaceID  types.RaceID  `json:"race_id"`
	ClassID types.ClassID `json:"class_id"`

	Sex       types.Sex       `json:"sex"`
	Alignment types.Alignment `json:"alignment"`

	BaseStats BaseStats `json:"base_stats"`

	// HPOverride pins hit points instead of deriving them from the class die
	HPOverride *types.AttributePair16 `json:"hp_override,omitempty"`

	PortraitID types.PortraitID `json:"portrait_id"`

	StartingGold uint32 `json:"starting_gold"`
	StartingGems uint32 `json:"starting_gems"`
	StartingFood uint32 `json:"starting_food"`

	StartingItems     []types.ItemID    `json:"starting_items,omitempty"`
	StartingEquipment StartingEquipment `json:"starting_equipment"`

	Description string `json:"description,omitempty"`

	IsPremade     bool `json:"is_premade"`
	StartsInParty bool `json:"starts_in_party"`
}

// AllItemIDs returns every item the definition references: starting inventory
// followed by equipped slots.
func (d *CharacterDefinition) AllItemIDs() []types.ItemID {
	out := make([]types.ItemID, 0, len(d.StartingItems)+7)
	out = append(out, d.StartingItems...)
	out = append(out, d.StartingEquipment.AllItemIDs()...)
	return out
}

// legacyDefinition is the file-format adapter. Old content carried flat
// hp_base/hp_current fields; they are folded into HPOverride on load and
// never written back.
type legacyDefinition struct {
	definitionAlias
	HPBase    *uint16 `json:"hp_base,omitempty"`
	HPCurrent *uint16 `json:"hp_current,omitempty"`
}

type definitionAlias CharacterDefinition

// UnmarshalJSON migrates legacy hp_base/hp_current fields into HPOverride.
// When hp_override is present the legacy fields are ignored; hp_current alone
// sets both halves; current is clamped to base.
func (d *CharacterDefinition) UnmarshalJSON(data []byte) error {
	var legacy legacyDefinition
	if err := json.Unmarshal(data, &legacy); err != nil {
		return err
	}

	*d = CharacterDefinition(legacy.definitionAlias)
	if d.HPOverride != nil {
		return nil
	}

	switch {
	case legacy.HPBase != nil:
		base := *legacy.HPBase
		current := base
		if legacy.HPCurrent != nil && *legacy.HPCurrent < base {
			current = *legacy.HPCurrent
		}
		d.HPOverride = &types.AttributePair16{Base: base, Current: current}
	case legacy.HPCurrent != nil:
		d.HPOverride = &types.AttributePair16{Base: *legacy.HPCurrent, Current: *legacy.HPCurrent}
	}
	return nil
}

// ValidPortraitID reports whether an ID is lowercase ASCII alphanumeric plus
// underscore and hyphen.
func ValidPortraitID(id types.PortraitID) bool {
	if id == "" {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-':
		default:
			return false
		}
	}
	return true
}

// Validate checks the definition's internal invariants. Race, class, and
// item references are resolved at instantiation and by content validation.
func (d *CharacterDefinition) Validate() error {
	if d.ID == "" {
		return apperr.Validation("character definition ID cannot be empty")
	}
	if d.Name == "" {
		return apperr.Validationf("character %q has an empty name", d.ID)
	}
	if d.RaceID == "" {
		return apperr.Validationf("character %q has an empty race", d.ID)
	}
	if d.ClassID == "" {
		return apperr.Validationf("character %q has an empty class", d.ID)
	}
	if d.PortraitID != "" && !ValidPortraitID(d.PortraitID) {
		return apperr.Validationf("character %q has invalid portrait ID %q", d.ID, d.PortraitID)
	}
	return nil
}
