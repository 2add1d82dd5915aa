package character

import (
	"fmt"

	"github.com/antaresengine/antares/internal/domain/chardef"
	"github.com/antaresengine/antares/internal/domain/class"
	"github.com/antaresengine/antares/internal/domain/item"
	"github.com/antaresengine/antares/internal/domain/race"
	"github.com/antaresengine/antares/internal/domain/types"
)

// InstantiationReason identifies why instantiation failed.
type InstantiationReason string

const (
	// InstantiationInvalidRaceID means the definition's race did not resolve
	InstantiationInvalidRaceID InstantiationReason = "invalid_race_id"

	// InstantiationInvalidClassID means the definition's class did not resolve
	InstantiationInvalidClassID InstantiationReason = "invalid_class_id"

	// InstantiationInvalidItemID means a starting item did not resolve
	InstantiationInvalidItemID InstantiationReason = "invalid_item_id"

	// InstantiationInventoryFull means starting items exceed the backpack cap
	InstantiationInventoryFull InstantiationReason = "inventory_full"
)

// InstantiationError reports a failed definition-to-character conversion.
type InstantiationError struct {
	Reason      InstantiationReason
	CharacterID types.CharacterDefID
	ItemID      types.ItemID
	Detail      string
}

// Error renders the failure for display.
func (e *InstantiationError) Error() string {
	switch e.Reason {
	case InstantiationInvalidRaceID:
		return fmt.Sprintf("character %q: unknown race %q", e.CharacterID, e.Detail)
	case InstantiationInvalidClassID:
		return fmt.Sprintf("character %q: unknown class %q", e.CharacterID, e.Detail)
	case InstantiationInvalidItemID:
		return fmt.Sprintf("character %q: unknown item %d", e.CharacterID, e.ItemID)
	case InstantiationInventoryFull:
		return fmt.Sprintf("character %q: inventory full adding item %d", e.CharacterID, e.ItemID)
	}
	return fmt.Sprintf("character %q: instantiation failed", e.CharacterID)
}

// Instantiate builds a level-one runtime character from an authored
// definition. References are resolved first so a definition either converts
// completely or not at all; derived numbers are deterministic, pre-made
// characters always take the maximum class hit die.
func Instantiate(
	def *chardef.CharacterDefinition,
	races *race.Database,
	classes *class.Database,
	items *item.Database,
) (*Character, error) {
	raceDef, ok := races.Get(def.RaceID)
	if !ok {
		return nil, &InstantiationError{
			Reason:      InstantiationInvalidRaceID,
			CharacterID: def.ID,
			Detail:      def.RaceID,
		}
	}

	classDef, ok := classes.Get(def.ClassID)
	if !ok {
		return nil, &InstantiationError{
			Reason:      InstantiationInvalidClassID,
			CharacterID: def.ID,
			Detail:      def.ClassID,
		}
	}

	for _, id := range def.AllItemIDs() {
		if !items.Has(id) {
			return nil, &InstantiationError{
				Reason:      InstantiationInvalidItemID,
				CharacterID: def.ID,
				ItemID:      id,
			}
		}
	}

	stats := applyRaceModifiers(def.BaseStats, raceDef.StatModifiers)
	hp := deriveHP(def.HPOverride, &classDef, stats.Endurance.Base)
	sp, spellLevel := deriveSP(&classDef, stats)

	inventory := Inventory{}
	for _, id := range def.StartingItems {
		if err := inventory.AddItem(id, 0); err != nil {
			return nil, &InstantiationError{
				Reason:      InstantiationInventoryFull,
				CharacterID: def.ID,
				ItemID:      id,
			}
		}
	}

	food := def.StartingFood
	if food > FoodMax {
		food = FoodMax
	}

	return &Character{
		Name:             def.Name,
		RaceID:           def.RaceID,
		ClassID:          def.ClassID,
		Sex:              def.Sex,
		Alignment:        def.Alignment,
		AlignmentInitial: def.Alignment,
		Level:            1,
		Experience:       0,
		Age:              AgeMin,
		Stats:            stats,
		HP:               hp,
		SP:               sp,
		SpellLevel:       types.AttributePair{Base: spellLevel, Current: spellLevel},
		Inventory:        inventory,
		Equipment: Equipment{
			Weapon:     def.StartingEquipment.Weapon,
			Armor:      def.StartingEquipment.Armor,
			Shield:     def.StartingEquipment.Shield,
			Helmet:     def.StartingEquipment.Helmet,
			Boots:      def.StartingEquipment.Boots,
			Accessory1: def.StartingEquipment.Accessory1,
			Accessory2: def.StartingEquipment.Accessory2,
		},
		Resistances: ResistancesFromRace(raceDef.Resistances),
		PortraitID:  def.PortraitID,
		Gold:        def.StartingGold,
		Gems:        def.StartingGems,
		Food:        uint8(food),
	}, nil
}

// applyRaceModifiers adds racial adjustments to each authored base stat and
// clamps the result into gameplay bounds. Current always starts at base.
func applyRaceModifiers(base chardef.BaseStats, mods race.StatModifiers) Stats {
	var out Stats
	for _, stat := range race.Stats {
		value := int(base.Get(stat).Base) + int(mods.Get(stat))
		if value < StatMin {
			value = StatMin
		}
		if value > StatMax {
			value = StatMax
		}
		out.Set(stat, types.AttributePair{Base: uint8(value), Current: uint8(value)})
	}
	return out
}

// deriveHP uses the authored override when present, otherwise the maximum
// class hit die plus the endurance modifier, floored at one.
func deriveHP(override *types.AttributePair16, classDef *class.Definition, endurance uint8) types.AttributePair16 {
	if override != nil {
		hp := *override
		if hp.Current > hp.Base {
			hp.Current = hp.Base
		}
		return hp
	}

	// Integer division truncates toward zero; the modifier floors instead,
	// so an odd negative difference needs one more step down.
	diff := int(endurance) - 10
	enduranceMod := diff / 2
	if diff < 0 && diff%2 != 0 {
		enduranceMod--
	}

	hp := int(classDef.HPDie.Sides) + enduranceMod
	if hp < 1 {
		hp = 1
	}
	return types.AttributePair16{Base: uint16(hp), Current: uint16(hp)}
}

// deriveSP computes spell points and the starting castable spell level. Pure
// casters use the full spell stat surplus over ten; hybrids use half and
// start unable to cast until level two.
func deriveSP(classDef *class.Definition, stats Stats) (types.AttributePair16, uint8) {
	if !classDef.CanCastSpells() || classDef.SpellStat == nil {
		return types.AttributePair16{}, 0
	}

	var statBase int
	switch *classDef.SpellStat {
	case class.SpellStatIntellect:
		statBase = int(stats.Intellect.Base)
	case class.SpellStatPersonality:
		statBase = int(stats.Personality.Base)
	}

	surplus := statBase - 10
	if surplus < 0 {
		surplus = 0
	}

	if classDef.IsPureCaster {
		return types.AttributePair16{Base: uint16(surplus), Current: uint16(surplus)}, 1
	}
	return types.AttributePair16{Base: uint16(surplus / 2), Current: uint16(surplus / 2)}, 0
}

// CanEquip checks whether the character may wear or wield an item, applying
// alignment, proficiency, and race restrictions.
func (c *Character) CanEquip(
	itemID types.ItemID,
	items *item.Database,
	classes *class.Database,
	races *race.Database,
) error {
	return item.CanEquip(c.Alignment, c.RaceID, c.ClassID, itemID, items, classes, races)
}
