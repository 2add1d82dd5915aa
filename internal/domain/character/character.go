// Package character holds runtime party member state and the instantiation
// logic that turns authored definitions into playable characters.
package character

import (
	"github.com/antaresengine/antares/internal/domain/race"
	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// Gameplay bounds. Content may not push characters outside these.
const (
	StatMin = 3
	StatMax = 25

	AgeMin = 18
	AgeMax = 200

	FoodMax     = 40
	FoodDefault = 10

	// InventoryMaxSlots caps the backpack
	InventoryMaxSlots = 6

	// SpellLevelMax is the highest castable spell tier
	SpellLevelMax = 7
)

// Stats holds the seven attributes as base/current pairs.
type Stats struct {
	Might       types.AttributePair `json:"might"`
	Intellect   types.AttributePair `json:"intellect"`
	Personality types.AttributePair `json:"personality"`
	Endurance   types.AttributePair `json:"endurance"`
	Speed       types.AttributePair `json:"speed"`
	Accuracy    types.AttributePair `json:"accuracy"`
	Luck        types.AttributePair `json:"luck"`
}

// Get returns the pair for a stat.
func (s Stats) Get(stat race.Stat) types.AttributePair {
	switch stat {
	case race.StatMight:
		return s.Might
	case race.StatIntellect:
		return s.Intellect
	case race.StatPersonality:
		return s.Personality
	case race.StatEndurance:
		return s.Endurance
	case race.StatSpeed:
		return s.Speed
	case race.StatAccuracy:
		return s.Accuracy
	case race.StatLuck:
		return s.Luck
	}
	return types.AttributePair{}
}

// Set stores the pair for a stat.
func (s *Stats) Set(stat race.Stat, p types.AttributePair) {
	switch stat {
	case race.StatMight:
		s.Might = p
	case race.StatIntellect:
		s.Intellect = p
	case race.StatPersonality:
		s.Personality = p
	case race.StatEndurance:
		s.Endurance = p
	case race.StatSpeed:
		s.Speed = p
	case race.StatAccuracy:
		s.Accuracy = p
	case race.StatLuck:
		s.Luck = p
	}
}

// ResetAll restores every stat's current value to its base.
func (s *Stats) ResetAll() {
	for _, stat := range race.Stats {
		p := s.Get(stat)
		p.Current = p.Base
		s.Set(stat, p)
	}
}

// Resistances holds the eight damage resistances as base/current pairs.
type Resistances struct {
	Magic       types.AttributePair `json:"magic"`
	Fire        types.AttributePair `json:"fire"`
	Cold        types.AttributePair `json:"cold"`
	Electricity types.AttributePair `json:"electricity"`
	Acid        types.AttributePair `json:"acid"`
	Fear        types.AttributePair `json:"fear"`
	Poison      types.AttributePair `json:"poison"`
	Psychic     types.AttributePair `json:"psychic"`
}

// ResistancesFromRace projects innate racial values into base=current pairs.
func ResistancesFromRace(r race.Resistances) Resistances {
	pair := func(v uint8) types.AttributePair {
		return types.AttributePair{Base: v, Current: v}
	}
	return Resistances{
		Magic:       pair(r.Magic),
		Fire:        pair(r.Fire),
		Cold:        pair(r.Cold),
		Electricity: pair(r.Electricity),
		Acid:        pair(r.Acid),
		Fear:        pair(r.Fear),
		Poison:      pair(r.Poison),
		Psychic:     pair(r.Psychic),
	}
}

// Condition is a bitmask of status ailments. Higher values are worse; the
// ordering is load-bearing for IsBad and IsFatal.
type Condition uint8

const (
	ConditionFine        Condition = 0
	ConditionAsleep      Condition = 1
	ConditionBlinded     Condition = 2
	ConditionSilenced    Condition = 4
	ConditionDiseased    Condition = 8
	ConditionPoisoned    Condition = 16
	ConditionParalyzed   Condition = 32
	ConditionUnconscious Condition = 64
	ConditionDead        Condition = 128

	// ConditionStone is dead plus petrified
	ConditionStone Condition = 160

	// ConditionEradicated is permanent death
	ConditionEradicated Condition = 255
)

// Add sets a condition flag.
func (c *Condition) Add(flag Condition) { *c |= flag }

// Remove clears a condition flag.
func (c *Condition) Remove(flag Condition) { *c &^= flag }

// Has reports whether a flag is set.
func (c Condition) Has(flag Condition) bool { return c&flag != 0 }

// IsFine reports no active conditions.
func (c Condition) IsFine() bool { return c == ConditionFine }

// IsBad reports paralysis or worse.
func (c Condition) IsBad() bool { return c >= ConditionParalyzed }

// IsFatal reports death or worse.
func (c Condition) IsFatal() bool { return c >= ConditionDead }

// Clear removes every condition.
func (c *Condition) Clear() { *c = ConditionFine }

// InventorySlot is one backpack entry. Charges apply to magical consumables;
// zero means spent.
type InventorySlot struct {
	ItemID  types.ItemID `json:"item_id"`
	Charges uint8        `json:"charges"`
}

// Inventory is a character's backpack, capped at InventoryMaxSlots.
type Inventory struct {
	Items []InventorySlot `json:"items"`
}

// IsFull reports whether no slots remain.
func (inv *Inventory) IsFull() bool {
	return len(inv.Items) >= InventoryMaxSlots
}

// HasSpace reports whether at least one slot remains.
func (inv *Inventory) HasSpace() bool {
	return len(inv.Items) < InventoryMaxSlots
}

// AddItem appends an item, failing when the backpack is full.
func (inv *Inventory) AddItem(id types.ItemID, charges uint8) error {
	if inv.IsFull() {
		return apperr.InvalidArgumentf("inventory is full (%d slots)", InventoryMaxSlots)
	}
	inv.Items = append(inv.Items, InventorySlot{ItemID: id, Charges: charges})
	return nil
}

// RemoveItem removes and returns the slot at an index.
func (inv *Inventory) RemoveItem(index int) (InventorySlot, bool) {
	if index < 0 || index >= len(inv.Items) {
		return InventorySlot{}, false
	}
	slot := inv.Items[index]
	inv.Items = append(inv.Items[:index], inv.Items[index+1:]...)
	return slot, true
}

// Equipment holds the seven worn-item slots.
type Equipment struct {
	Weapon     *types.ItemID `json:"weapon,omitempty"`
	Armor      *types.ItemID `json:"armor,omitempty"`
	Shield     *types.ItemID `json:"shield,omitempty"`
	Helmet     *types.ItemID `json:"helmet,omitempty"`
	Boots      *types.ItemID `json:"boots,omitempty"`
	Accessory1 *types.ItemID `json:"accessory1,omitempty"`
	Accessory2 *types.ItemID `json:"accessory2,omitempty"`
}

// EquippedCount returns the number of occupied slots.
func (e Equipment) EquippedCount() int {
	count := 0
	for _, slot := range []*types.ItemID{
		e.Weapon, e.Armor, e.Shield, e.Helmet, e.Boots, e.Accessory1, e.Accessory2,
	} {
		if slot != nil {
			count++
		}
	}
	return count
}

// SpellBook holds known spells by school and level. The outer index is spell
// level minus one.
type SpellBook struct {
	ClericSpells   [SpellLevelMax][]types.SpellID `json:"cleric_spells"`
	SorcererSpells [SpellLevelMax][]types.SpellID `json:"sorcerer_spells"`
}

// QuestFlags is per-character event tracking, indexed by campaign-defined
// flag numbers.
type QuestFlags struct {
	Flags []bool `json:"flags"`
}

// Set marks a flag, growing the list as needed.
func (q *QuestFlags) Set(index int) {
	if index < 0 {
		return
	}
	for len(q.Flags) <= index {
		q.Flags = append(q.Flags, false)
	}
	q.Flags[index] = true
}

// Get reads a flag; unset indexes read false.
func (q *QuestFlags) Get(index int) bool {
	if index < 0 || index >= len(q.Flags) {
		return false
	}
	return q.Flags[index]
}

// Character is a runtime party member or roster character. Item references
// are weak: they index into the item database, which outlives the character.
type Character struct {
	Name string `json:"name"`

	RaceID  types.RaceID  `json:"race_id"`
	ClassID types.ClassID `json:"class_id"`

	Sex types.Sex `json:"sex"`

	// Alignment may drift during play; AlignmentInitial records creation
	Alignment        types.Alignment `json:"alignment"`
	AlignmentInitial types.Alignment `json:"alignment_initial"`

	Level      uint32 `json:"level"`
	Experience uint64 `json:"experience"`

	Age     uint16 `json:"age"`
	AgeDays uint32 `json:"age_days"`

	Stats Stats `json:"stats"`

	HP types.AttributePair16 `json:"hp"`
	SP types.AttributePair16 `json:"sp"`

	AC         types.AttributePair `json:"ac"`
	SpellLevel types.AttributePair `json:"spell_level"`

	Inventory Inventory `json:"inventory"`
	Equipment Equipment `json:"equipment"`

	Spells SpellBook `json:"spells"`

	Conditions Condition `json:"conditions"`

	Resistances Resistances `json:"resistances"`

	QuestFlags QuestFlags `json:"quest_flags"`

	PortraitID types.PortraitID `json:"portrait_id"`

	Gold uint32 `json:"gold"`
	Gems uint32 `json:"gems"`
	Food uint8  `json:"food"`
}

// IsAlive reports whether the character is not dead, stoned, or eradicated.
func (c *Character) IsAlive() bool {
	return !c.Conditions.IsFatal()
}

// CanAct reports whether the character can take combat actions.
func (c *Character) CanAct() bool {
	return c.IsAlive() && !c.Conditions.IsBad()
}
