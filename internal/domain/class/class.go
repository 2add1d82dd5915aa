// Package class defines character class templates and their keyed database.
package class

import (
	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// SpellSchool names the magic tradition a casting class draws from.
type SpellSchool string

const (
	// SchoolCleric is divine magic
	SchoolCleric SpellSchool = "cleric"
	// SchoolSorcerer is arcane magic
	SchoolSorcerer SpellSchool = "sorcerer"
)

// SpellStat names the attribute that drives spell point calculation.
type SpellStat string

const (
	SpellStatIntellect   SpellStat = "intellect"
	SpellStatPersonality SpellStat = "personality"
)

// Definition is a class template loaded from content files.
type Definition struct {
	ID          types.ClassID `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`

	// HPDie determines level-1 hit points; the maximum roll is taken so
	// pre-made characters are deterministic.
	HPDie types.DiceRoll `json:"hp_die"`

	// SpellSchool is set for casting classes only
	SpellSchool *SpellSchool `json:"spell_school,omitempty"`

	// IsPureCaster distinguishes full casters from hybrids
	IsPureCaster bool `json:"is_pure_caster"`

	// SpellStat drives spell point derivation; nil for non-casters
	SpellStat *SpellStat `json:"spell_stat,omitempty"`

	SpecialAbilities []string `json:"special_abilities,omitempty"`

	// Starting gear dealt to new characters of this class
	StartingWeapon *types.ItemID  `json:"starting_weapon,omitempty"`
	StartingArmor  *types.ItemID  `json:"starting_armor,omitempty"`
	StartingItems  []types.ItemID `json:"starting_items,omitempty"`

	// Proficiencies granted by the class, unioned with race proficiencies
	Proficiencies []types.ProficiencyID `json:"proficiencies,omitempty"`
}

// CanCastSpells reports whether the class has a spell school.
func (d *Definition) CanCastSpells() bool {
	return d.SpellSchool != nil
}

// HasAbility reports whether the class grants a special ability.
func (d *Definition) HasAbility(ability string) bool {
	for _, a := range d.SpecialAbilities {
		if a == ability {
			return true
		}
	}
	return false
}

// HasProficiency reports whether the class grants a proficiency.
func (d *Definition) HasProficiency(id types.ProficiencyID) bool {
	for _, p := range d.Proficiencies {
		if p == id {
			return true
		}
	}
	return false
}

// Validate checks the definition's internal invariants.
func (d *Definition) Validate() error {
	if d.ID == "" {
		return apperr.Validation("class ID cannot be empty")
	}
	if d.Name == "" {
		return apperr.Validationf("class %q has an empty name", d.ID)
	}
	if d.HPDie.Count < 1 || d.HPDie.Sides < 1 {
		return apperr.Validationf("class %q has an invalid hp die", d.ID)
	}
	if d.SpellSchool != nil && d.SpellStat == nil {
		return apperr.Validationf("casting class %q is missing a spell stat", d.ID)
	}
	return nil
}
