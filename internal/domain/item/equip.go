package item

import (
	"fmt"

	"github.com/antaresengine/antares/internal/domain/class"
	"github.com/antaresengine/antares/internal/domain/proficiency"
	"github.com/antaresengine/antares/internal/domain/race"
	"github.com/antaresengine/antares/internal/domain/types"
)

// EquipReason identifies why an equip check failed.
type EquipReason string

const (
	// EquipItemNotFound means the item ID is not in the database
	EquipItemNotFound EquipReason = "item_not_found"

	// EquipAlignmentRestriction means the character's alignment is gated out
	EquipAlignmentRestriction EquipReason = "alignment_restriction"

	// EquipInvalidClass means the character's class ID did not resolve
	EquipInvalidClass EquipReason = "invalid_class"

	// EquipInvalidRace means the character's race ID did not resolve
	EquipInvalidRace EquipReason = "invalid_race"

	// EquipClassRestriction means neither class nor race grants the required proficiency
	EquipClassRestriction EquipReason = "class_restriction"

	// EquipRaceRestriction means an item tag is incompatible with the race
	EquipRaceRestriction EquipReason = "race_restriction"

	// EquipNoSlotAvailable means the item type has no equipment slot
	EquipNoSlotAvailable EquipReason = "no_slot_available"
)

// EquipError reports a failed equip compatibility check.
type EquipError struct {
	Reason EquipReason
	ItemID types.ItemID
	Detail string
}

// Error renders the failure for display.
func (e *EquipError) Error() string {
	switch e.Reason {
	case EquipItemNotFound:
		return fmt.Sprintf("item %d not found in database", e.ItemID)
	case EquipAlignmentRestriction:
		return fmt.Sprintf("item %d: character's alignment cannot use this item", e.ItemID)
	case EquipInvalidClass:
		return fmt.Sprintf("item %d: invalid class definition: %s", e.ItemID, e.Detail)
	case EquipInvalidRace:
		return fmt.Sprintf("item %d: invalid race definition: %s", e.ItemID, e.Detail)
	case EquipClassRestriction:
		return fmt.Sprintf("item %d: character lacks the required proficiency", e.ItemID)
	case EquipRaceRestriction:
		return fmt.Sprintf("item %d: character's race cannot use this item", e.ItemID)
	case EquipNoSlotAvailable:
		return fmt.Sprintf("item %d: no equipment slot exists for this item type", e.ItemID)
	}
	return fmt.Sprintf("item %d: equip check failed", e.ItemID)
}

// CanEquip validates every equip restriction for a character described by its
// alignment, race, and class. Checks run in a fixed order: item lookup,
// alignment gate, class and race resolution, the proficiency UNION rule, race
// tag compatibility, then slot availability.
func CanEquip(
	alignment types.Alignment,
	raceID types.RaceID,
	classID types.ClassID,
	itemID types.ItemID,
	items *Database,
	classes *class.Database,
	races *race.Database,
) error {
	def, ok := items.Get(itemID)
	if !ok {
		return &EquipError{Reason: EquipItemNotFound, ItemID: itemID}
	}

	if !def.CanUseAlignment(alignment) {
		return &EquipError{Reason: EquipAlignmentRestriction, ItemID: itemID}
	}

	classDef, ok := classes.Get(classID)
	if !ok {
		return &EquipError{Reason: EquipInvalidClass, ItemID: itemID, Detail: classID}
	}

	raceDef, ok := races.Get(raceID)
	if !ok {
		return &EquipError{Reason: EquipInvalidRace, ItemID: itemID, Detail: raceID}
	}

	// Consumables, ammo, and quest items never occupy an equipment slot.
	if !def.IsEquippable() {
		return &EquipError{Reason: EquipNoSlotAvailable, ItemID: itemID}
	}

	required := def.RequiredProficiency()
	if !proficiency.HasUnion(required, classDef.Proficiencies, raceDef.Proficiencies) {
		return &EquipError{Reason: EquipClassRestriction, ItemID: itemID}
	}

	if !raceDef.CanUseItem(def.Tags) {
		return &EquipError{Reason: EquipRaceRestriction, ItemID: itemID}
	}

	return nil
}
