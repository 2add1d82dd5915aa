// Package monster defines monster content and its keyed database.
package monster

import (
	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// Attack is one attack pattern a monster may use.
type Attack struct {
	Name   string         `json:"name"`
	Damage types.DiceRoll `json:"damage"`

	// IsSpecial attacks fire based on the special attack threshold
	IsSpecial bool `json:"is_special,omitempty"`
}

// Resistances carries per-element damage resistance percentages (0-100).
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

// Loot describes what a monster drops when defeated.
type Loot struct {
	GoldMin uint16         `json:"gold_min"`
	GoldMax uint16         `json:"gold_max"`
	Items   []types.ItemID `json:"items,omitempty"`
}

// Definition is a monster template loaded from content files.
type Definition struct {
	ID   types.MonsterID `json:"id"`
	Name string          `json:"name"`

	HP types.AttributePair16 `json:"hp"`
	AC types.AttributePair   `json:"ac"`

	Attacks []Attack `json:"attacks"`

	// FleeThreshold is the HP percentage below which the monster tries to flee
	FleeThreshold uint8 `json:"flee_threshold"`

	// SpecialAttackThreshold is the percentage chance of a special attack
	SpecialAttackThreshold uint8 `json:"special_attack_threshold"`

	Resistances Resistances `json:"resistances"`

	CanRegenerate bool `json:"can_regenerate"`
	CanAdvance    bool `json:"can_advance"`
	IsUndead      bool `json:"is_undead"`

	// MagicResistance is the chance (0-100) to shrug off a spell entirely
	MagicResistance uint8 `json:"magic_resistance"`

	Loot Loot `json:"loot"`

	// CreatureID links to the visual definition used to render the monster
	CreatureID *types.CreatureID `json:"creature_id,omitempty"`
}

// Validate checks the definition's internal invariants.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return apperr.Validationf("monster %d has an empty name", d.ID)
	}
	if d.HP.Base == 0 {
		return apperr.Validationf("monster %d has zero hit points", d.ID)
	}
	if d.MagicResistance > 100 {
		return apperr.Validationf("monster %d has magic resistance above 100", d.ID)
	}
	if d.Loot.GoldMin > d.Loot.GoldMax {
		return apperr.Validationf("monster %d has inverted gold loot range", d.ID)
	}
	return nil
}
