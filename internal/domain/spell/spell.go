// Package spell defines spell content and its keyed database.
package spell

import (
	"github.com/antaresengine/antares/internal/domain/class"
	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// Context restricts when a spell can be cast.
type Context string

const (
	ContextAnywhere   Context = "anywhere"
	ContextCombatOnly Context = "combat_only"
	ContextOutdoor    Context = "outdoor"
	ContextNonCombat  Context = "non_combat"
)

// Target names who or what a spell affects.
type Target string

const (
	TargetSelf         Target = "self"
	TargetAlly         Target = "ally"
	TargetParty        Target = "party"
	TargetMonster      Target = "monster"
	TargetMonsterGroup Target = "monster_group"
	TargetAllMonsters  Target = "all_monsters"
)

// Definition is a single spell loaded from content files.
type Definition struct {
	// ID encodes school in the high byte and spell number in the low byte
	ID     types.SpellID     `json:"id"`
	Name   string            `json:"name"`
	School class.SpellSchool `json:"school"`

	// Level is 1-7
	Level uint8 `json:"level"`

	SPCost  uint16 `json:"sp_cost"`
	GemCost uint16 `json:"gem_cost"`

	Context Context `json:"context"`
	Target  Target  `json:"target"`

	Description string          `json:"description"`
	Damage      *types.DiceRoll `json:"damage,omitempty"`

	// Duration in rounds, 0 for instant
	Duration uint16 `json:"duration"`

	SavingThrow bool `json:"saving_throw"`
}

// Validate checks the definition's internal invariants.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return apperr.Validationf("spell %d has an empty name", d.ID)
	}
	if d.Level < 1 || d.Level > 7 {
		return apperr.Validationf("spell %d has invalid level %d", d.ID, d.Level)
	}
	return nil
}
