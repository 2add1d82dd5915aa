// Package proficiency implements the item-usage proficiency system.
//
// Proficiencies are granted by classes and races and required by items based
// on their classification. Two rules govern every check:
//
//  1. No inheritance: each proficiency is independent, "martial_melee" does
//     not imply "simple_weapon".
//  2. UNION logic: a character can use an item if either their class or their
//     race grants the required proficiency.
package proficiency

import (
	"github.com/antaresengine/antares/internal/domain/types"
)

// WeaponClassification categorizes weapons for proficiency lookup.
type WeaponClassification string

const (
	WeaponSimple        WeaponClassification = "simple"
	WeaponMartialMelee  WeaponClassification = "martial_melee"
	WeaponMartialRanged WeaponClassification = "martial_ranged"
	WeaponBlunt         WeaponClassification = "blunt"
	WeaponUnarmed       WeaponClassification = "unarmed"
)

// ArmorClassification categorizes armor for proficiency lookup.
type ArmorClassification string

const (
	ArmorLight  ArmorClassification = "light"
	ArmorMedium ArmorClassification = "medium"
	ArmorHeavy  ArmorClassification = "heavy"
	ArmorShield ArmorClassification = "shield"
)

// MagicItemClassification categorizes magic accessories for proficiency lookup.
type MagicItemClassification string

const (
	MagicItemArcane    MagicItemClassification = "arcane"
	MagicItemDivine    MagicItemClassification = "divine"
	MagicItemUniversal MagicItemClassification = "universal"
)

// Well-known proficiency IDs, matching classification variants one to one.
const (
	IDSimpleWeapon  types.ProficiencyID = "simple_weapon"
	IDMartialMelee  types.ProficiencyID = "martial_melee"
	IDMartialRanged types.ProficiencyID = "martial_ranged"
	IDBluntWeapon   types.ProficiencyID = "blunt_weapon"
	IDUnarmed       types.ProficiencyID = "unarmed"
	IDLightArmor    types.ProficiencyID = "light_armor"
	IDMediumArmor   types.ProficiencyID = "medium_armor"
	IDHeavyArmor    types.ProficiencyID = "heavy_armor"
	IDShield        types.ProficiencyID = "shield"
	IDArcaneItem    types.ProficiencyID = "arcane_item"
	IDDivineItem    types.ProficiencyID = "divine_item"
)

// Category groups proficiencies for editor filtering and display.
type Category string

const (
	CategoryWeapon    Category = "weapon"
	CategoryArmor     Category = "armor"
	CategoryShield    Category = "shield"
	CategoryMagicItem Category = "magic_item"
)

// Definition is a proficiency definition loaded from content files.
type Definition struct {
	// ID is the unique identifier (e.g. "martial_melee")
	ID types.ProficiencyID `json:"id"`

	// Name is the display name (e.g. "Martial Melee Weapons")
	Name string `json:"name"`

	// Category groups the proficiency for editor display
	Category Category `json:"category"`

	// Description is shown in tooltips
	Description string `json:"description,omitempty"`
}

// ForWeapon returns the proficiency required by a weapon classification.
func ForWeapon(c WeaponClassification) types.ProficiencyID {
	switch c {
	case WeaponMartialMelee:
		return IDMartialMelee
	case WeaponMartialRanged:
		return IDMartialRanged
	case WeaponBlunt:
		return IDBluntWeapon
	case WeaponUnarmed:
		return IDUnarmed
	default:
		return IDSimpleWeapon
	}
}

// ForArmor returns the proficiency required by an armor classification.
func ForArmor(c ArmorClassification) types.ProficiencyID {
	switch c {
	case ArmorMedium:
		return IDMediumArmor
	case ArmorHeavy:
		return IDHeavyArmor
	case ArmorShield:
		return IDShield
	default:
		return IDLightArmor
	}
}

// ForMagicItem returns the proficiency required by a magic item
// classification, or empty for universal items anyone can use.
func ForMagicItem(c MagicItemClassification) types.ProficiencyID {
	switch c {
	case MagicItemArcane:
		return IDArcaneItem
	case MagicItemDivine:
		return IDDivineItem
	default:
		return ""
	}
}

// HasUnion reports whether the required proficiency is satisfied by the union
// of class and race proficiency lists. An empty requirement always passes.
func HasUnion(required types.ProficiencyID, classProfs, raceProfs []types.ProficiencyID) bool {
	if required == "" {
		return true
	}
	return contains(classProfs, required) || contains(raceProfs, required)
}

// CompatibleTags reports whether none of the item's tags appear in the race's
// incompatible tag list.
func CompatibleTags(itemTags, incompatible []string) bool {
	for _, tag := range itemTags {
		for _, bad := range incompatible {
			if tag == bad {
				return false
			}
		}
	}
	return true
}

func contains(profs []types.ProficiencyID, id types.ProficiencyID) bool {
	for _, p := range profs {
		if p == id {
			return true
		}
	}
	return false
}
