// Package item defines the item content model, its keyed database, and the
// equipment compatibility rules.
package item

import (
	"encoding/json"

	"github.com/antaresengine/antares/internal/domain/proficiency"
	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// Kind discriminates the item type envelope in content files.
type Kind string

const (
	KindWeapon     Kind = "weapon"
	KindArmor      Kind = "armor"
	KindAccessory  Kind = "accessory"
	KindConsumable Kind = "consumable"
	KindAmmo       Kind = "ammo"
	KindQuest      Kind = "quest"
)

// WeaponData is the payload for weapon items.
type WeaponData struct {
	Damage         types.DiceRoll                   `json:"damage"`
	Bonus          int8                             `json:"bonus"`
	HandsRequired  uint8                            `json:"hands_required"`
	Classification proficiency.WeaponClassification `json:"classification"`
}

// ArmorData is the payload for armor items.
type ArmorData struct {
	ACBonus        uint8                           `json:"ac_bonus"`
	Weight         uint8                           `json:"weight"`
	Classification proficiency.ArmorClassification `json:"classification"`
}

// AccessorySlot names the body slot an accessory occupies.
type AccessorySlot string

const (
	SlotRing   AccessorySlot = "ring"
	SlotAmulet AccessorySlot = "amulet"
	SlotBelt   AccessorySlot = "belt"
	SlotCloak  AccessorySlot = "cloak"
)

// AccessoryData is the payload for accessory items.
type AccessoryData struct {
	Slot           AccessorySlot                        `json:"slot"`
	Classification *proficiency.MagicItemClassification `json:"classification,omitempty"`
}

// EffectKind discriminates consumable effects.
type EffectKind string

const (
	EffectHealHP         EffectKind = "heal_hp"
	EffectRestoreSP      EffectKind = "restore_sp"
	EffectCureCondition  EffectKind = "cure_condition"
	EffectBoostAttribute EffectKind = "boost_attribute"
)

// ConsumableEffect is what a consumable does when used.
type ConsumableEffect struct {
	Kind EffectKind `json:"kind"`

	// Amount for heal_hp / restore_sp
	Amount uint16 `json:"amount,omitempty"`

	// ConditionMask for cure_condition (condition flags to clear)
	ConditionMask uint8 `json:"condition_mask,omitempty"`

	// Attribute and Value for boost_attribute
	Attribute string `json:"attribute,omitempty"`
	Value     int8   `json:"value,omitempty"`
}

// ConsumableData is the payload for consumable items.
type ConsumableData struct {
	Effect         ConsumableEffect `json:"effect"`
	IsCombatUsable bool             `json:"is_combat_usable"`
}

// AmmoType names ammunition categories.
type AmmoType string

const (
	AmmoArrow AmmoType = "arrow"
	AmmoBolt  AmmoType = "bolt"
	AmmoStone AmmoType = "stone"
)

// AmmoData is the payload for ammunition bundles.
type AmmoData struct {
	AmmoType AmmoType `json:"ammo_type"`
	Quantity uint16   `json:"quantity"`
}

// QuestData is the payload for quest items.
type QuestData struct {
	QuestID types.QuestID `json:"quest_id"`

	// IsKeyItem marks items that cannot be sold or dropped
	IsKeyItem bool `json:"is_key_item"`
}

// ItemType is the tagged variant describing what an item is. Exactly one of
// the payload pointers is set, matching Kind.
type ItemType struct {
	Kind       Kind            `json:"-"`
	Weapon     *WeaponData     `json:"-"`
	Armor      *ArmorData      `json:"-"`
	Accessory  *AccessoryData  `json:"-"`
	Consumable *ConsumableData `json:"-"`
	Ammo       *AmmoData       `json:"-"`
	Quest      *QuestData      `json:"-"`
}

// typeEnvelope is the on-disk form: {"type": "weapon", "data": {...}}.
type typeEnvelope struct {
	Type Kind            `json:"type"`
	Data json.RawMessage `json:"data"`
}

// MarshalJSON emits the type/data envelope.
func (t ItemType) MarshalJSON() ([]byte, error) {
	var payload any
	switch t.Kind {
	case KindWeapon:
		payload = t.Weapon
	case KindArmor:
		payload = t.Armor
	case KindAccessory:
		payload = t.Accessory
	case KindConsumable:
		payload = t.Consumable
	case KindAmmo:
		payload = t.Ammo
	case KindQuest:
		payload = t.Quest
	default:
		return nil, apperr.Validationf("unknown item kind %q", t.Kind)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(typeEnvelope{Type: t.Kind, Data: data})
}

// UnmarshalJSON parses the type/data envelope into the matching payload.
func (t *ItemType) UnmarshalJSON(data []byte) error {
	var env typeEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	*t = ItemType{Kind: env.Type}
	switch env.Type {
	case KindWeapon:
		t.Weapon = &WeaponData{}
		return json.Unmarshal(env.Data, t.Weapon)
	case KindArmor:
		t.Armor = &ArmorData{}
		return json.Unmarshal(env.Data, t.Armor)
	case KindAccessory:
		t.Accessory = &AccessoryData{}
		return json.Unmarshal(env.Data, t.Accessory)
	case KindConsumable:
		t.Consumable = &ConsumableData{}
		return json.Unmarshal(env.Data, t.Consumable)
	case KindAmmo:
		t.Ammo = &AmmoData{}
		return json.Unmarshal(env.Data, t.Ammo)
	case KindQuest:
		t.Quest = &QuestData{}
		return json.Unmarshal(env.Data, t.Quest)
	default:
		return apperr.ParseErrorf("unknown item kind %q", env.Type)
	}
}

// AlignmentRestriction limits an item to characters of one alignment.
type AlignmentRestriction string

const (
	GoodOnly    AlignmentRestriction = "good_only"
	EvilOnly    AlignmentRestriction = "evil_only"
	NeutralOnly AlignmentRestriction = "neutral_only"
)

// Bonus is a stat or resistance adjustment carried by an item.
type Bonus struct {
	// Attribute names a stat, resistance, or "armor_class"
	Attribute string `json:"attribute"`

	// Value may be negative for cursed items
	Value int8 `json:"value"`
}

// Item is a single item definition.
type Item struct {
	ID       types.ItemID `json:"id"`
	Name     string       `json:"name"`
	ItemType ItemType     `json:"item_type"`

	BaseCost uint32 `json:"base_cost"`
	SellCost uint32 `json:"sell_cost"`

	// AlignmentRestriction gates equipping by character alignment
	AlignmentRestriction *AlignmentRestriction `json:"alignment_restriction,omitempty"`

	// ConstantBonus applies while the item is equipped
	ConstantBonus *Bonus `json:"constant_bonus,omitempty"`

	// TemporaryBonus applies when the item is used, consuming a charge
	TemporaryBonus *Bonus `json:"temporary_bonus,omitempty"`

	// SpellEffect is cast when the item is used, consuming a charge
	SpellEffect *types.SpellID `json:"spell_effect,omitempty"`

	// MaxCharges is 0 for non-magical items
	MaxCharges uint16 `json:"max_charges"`

	// IsCursed items cannot be unequipped
	IsCursed bool `json:"is_cursed"`

	// Tags drive race incompatibility checks (e.g. "heavy_armor", "large_weapon")
	Tags []string `json:"tags,omitempty"`

	// IconPath points at the item's icon asset
	IconPath *string `json:"icon,omitempty"`
}

// IsEquippable reports whether the item occupies an equipment slot. Only
// weapons, armor, and accessories are equippable.
func (i *Item) IsEquippable() bool {
	switch i.ItemType.Kind {
	case KindWeapon, KindArmor, KindAccessory:
		return true
	}
	return false
}

// IsMagical reports whether the item has charges or magical effects.
func (i *Item) IsMagical() bool {
	return i.MaxCharges > 0 || i.ConstantBonus != nil || i.TemporaryBonus != nil || i.SpellEffect != nil
}

// CanUseAlignment reports whether a character of the given alignment passes
// the item's alignment gate.
func (i *Item) CanUseAlignment(a types.Alignment) bool {
	if i.AlignmentRestriction == nil {
		return true
	}
	switch *i.AlignmentRestriction {
	case GoodOnly:
		return a == types.AlignmentGood
	case EvilOnly:
		return a == types.AlignmentEvil
	case NeutralOnly:
		return a == types.AlignmentNeutral
	}
	return true
}

// RequiredProficiency resolves the proficiency an item demands from its
// classification, or empty when anyone can use it.
func (i *Item) RequiredProficiency() types.ProficiencyID {
	switch i.ItemType.Kind {
	case KindWeapon:
		return proficiency.ForWeapon(i.ItemType.Weapon.Classification)
	case KindArmor:
		return proficiency.ForArmor(i.ItemType.Armor.Classification)
	case KindAccessory:
		if i.ItemType.Accessory.Classification == nil {
			return ""
		}
		return proficiency.ForMagicItem(*i.ItemType.Accessory.Classification)
	}
	return ""
}

// Validate checks the definition's internal invariants.
func (i *Item) Validate() error {
	if i.Name == "" {
		return apperr.Validationf("item %d has an empty name", i.ID)
	}
	switch i.ItemType.Kind {
	case KindWeapon:
		if i.ItemType.Weapon == nil {
			return apperr.Validationf("item %d: weapon payload missing", i.ID)
		}
	case KindArmor:
		if i.ItemType.Armor == nil {
			return apperr.Validationf("item %d: armor payload missing", i.ID)
		}
	case KindAccessory:
		if i.ItemType.Accessory == nil {
			return apperr.Validationf("item %d: accessory payload missing", i.ID)
		}
	case KindConsumable:
		if i.ItemType.Consumable == nil {
			return apperr.Validationf("item %d: consumable payload missing", i.ID)
		}
	case KindAmmo:
		if i.ItemType.Ammo == nil {
			return apperr.Validationf("item %d: ammo payload missing", i.ID)
		}
	case KindQuest:
		if i.ItemType.Quest == nil {
			return apperr.Validationf("item %d: quest payload missing", i.ID)
		}
	default:
		return apperr.Validationf("item %d has unknown kind %q", i.ID, i.ItemType.Kind)
	}
	return nil
}
