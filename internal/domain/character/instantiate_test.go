package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antaresengine/antares/internal/domain/character"
	"github.com/antaresengine/antares/internal/domain/chardef"
	"github.com/antaresengine/antares/internal/domain/class"
	"github.com/antaresengine/antares/internal/domain/item"
	"github.com/antaresengine/antares/internal/domain/proficiency"
	"github.com/antaresengine/antares/internal/domain/race"
	"github.com/antaresengine/antares/internal/domain/types"
)

func ptr[T any](v T) *T { return &v }

func fixtureRaces(t *testing.T) *race.Database {
	t.Helper()
	db := race.NewDatabase()
	require.NoError(t, db.Add(race.Definition{
		ID: "human", Name: "Human", Size: race.SizeMedium,
	}))
	require.NoError(t, db.Add(race.Definition{
		ID: "gnome", Name: "Gnome", Size: race.SizeSmall,
		StatModifiers: race.StatModifiers{Intellect: 2, Might: -2},
		Resistances:   race.Resistances{Magic: 10, Poison: 5},
	}))
	return db
}

func fixtureClasses(t *testing.T) *class.Database {
	t.Helper()
	db := class.NewDatabase()
	require.NoError(t, db.Add(class.Definition{
		ID: "knight", Name: "Knight",
		HPDie: types.DiceRoll{Count: 1, Sides: 10},
	}))
	require.NoError(t, db.Add(class.Definition{
		ID: "sorcerer", Name: "Sorcerer",
		HPDie:        types.DiceRoll{Count: 1, Sides: 4},
		SpellSchool:  ptr(class.SchoolSorcerer),
		IsPureCaster: true,
		SpellStat:    ptr(class.SpellStatIntellect),
	}))
	require.NoError(t, db.Add(class.Definition{
		ID: "paladin", Name: "Paladin",
		HPDie:       types.DiceRoll{Count: 1, Sides: 8},
		SpellSchool: ptr(class.SchoolCleric),
		SpellStat:   ptr(class.SpellStatPersonality),
	}))
	return db
}

func fixtureItems(t *testing.T) *item.Database {
	t.Helper()
	db := item.NewDatabase()
	require.NoError(t, db.Add(item.Item{
		ID: 1, Name: "Long Sword",
		ItemType: item.ItemType{Kind: item.KindWeapon, Weapon: &item.WeaponData{
			Damage:         types.DiceRoll{Count: 1, Sides: 8},
			HandsRequired:  1,
			Classification: proficiency.WeaponMartialMelee,
		}},
	}))
	require.NoError(t, db.Add(item.Item{
		ID: 20, Name: "Chain Mail",
		ItemType: item.ItemType{Kind: item.KindArmor, Armor: &item.ArmorData{
			ACBonus: 5, Weight: 40, Classification: proficiency.ArmorMedium,
		}},
	}))
	require.NoError(t, db.Add(item.Item{
		ID: 50, Name: "Healing Potion",
		ItemType: item.ItemType{Kind: item.KindConsumable, Consumable: &item.ConsumableData{}},
	}))
	return db
}

func pair(v uint8) types.AttributePair {
	return types.AttributePair{Base: v, Current: v}
}

func knightDefinition() chardef.CharacterDefinition {
	return chardef.CharacterDefinition{
		ID: "sir_kent", Name: "Sir Kent",
		RaceID: "human", ClassID: "knight",
		Sex: types.SexMale, Alignment: types.AlignmentGood,
		BaseStats: chardef.BaseStats{
			Might: pair(16), Intellect: pair(8), Personality: pair(10),
			Endurance: pair(14), Speed: pair(12), Accuracy: pair(13), Luck: pair(9),
		},
		StartingItems: []types.ItemID{50},
		StartingEquipment: chardef.StartingEquipment{
			Weapon: ptr(types.ItemID(1)),
			Armor:  ptr(types.ItemID(20)),
		},
		StartingGold: 200, StartingGems: 5, StartingFood: 10,
		IsPremade: true,
	}
}

func TestInstantiate_PremadeKnight(t *testing.T) {
	races, classes, items := fixtureRaces(t), fixtureClasses(t), fixtureItems(t)
	def := knightDefinition()

	hero, err := character.Instantiate(&def, races, classes, items)
	require.NoError(t, err)

	// max hit die (10) plus endurance modifier (+2 at 14)
	assert.Equal(t, types.AttributePair16{Base: 12, Current: 12}, hero.HP)
	assert.Equal(t, types.AttributePair16{}, hero.SP)
	assert.Equal(t, types.AttributePair{}, hero.SpellLevel)

	assert.Equal(t, uint32(1), hero.Level)
	assert.Equal(t, uint64(0), hero.Experience)
	assert.Equal(t, uint16(18), hero.Age)
	assert.Equal(t, types.AlignmentGood, hero.AlignmentInitial)

	require.Len(t, hero.Inventory.Items, 1)
	assert.Equal(t, types.ItemID(50), hero.Inventory.Items[0].ItemID)
	require.NotNil(t, hero.Equipment.Weapon)
	assert.Equal(t, types.ItemID(1), *hero.Equipment.Weapon)
	require.NotNil(t, hero.Equipment.Armor)
	assert.Equal(t, types.ItemID(20), *hero.Equipment.Armor)

	assert.Equal(t, uint32(200), hero.Gold)
	assert.Equal(t, uint8(10), hero.Food)
}

func TestInstantiate_PureCasterSpellPoints(t *testing.T) {
	races, classes, items := fixtureRaces(t), fixtureClasses(t), fixtureItems(t)
	def := chardef.CharacterDefinition{
		ID: "zara", Name: "Zara",
		RaceID: "gnome", ClassID: "sorcerer",
		Alignment: types.AlignmentNeutral,
		BaseStats: chardef.BaseStats{
			Might: pair(8), Intellect: pair(16), Personality: pair(10),
			Endurance: pair(10), Speed: pair(12), Accuracy: pair(10), Luck: pair(12),
		},
	}

	hero, err := character.Instantiate(&def, races, classes, items)
	require.NoError(t, err)

	// gnome +2 takes intellect to 18; pure caster sp = 18 - 10
	assert.Equal(t, uint8(18), hero.Stats.Intellect.Base)
	assert.Equal(t, types.AttributePair16{Base: 8, Current: 8}, hero.SP)
	assert.Equal(t, types.AttributePair{Base: 1, Current: 1}, hero.SpellLevel)
}

func TestInstantiate_HybridCasterSpellPoints(t *testing.T) {
	races, classes, items := fixtureRaces(t), fixtureClasses(t), fixtureItems(t)
	def := knightDefinition()
	def.ClassID = "paladin"
	def.BaseStats.Personality = pair(16)

	hero, err := character.Instantiate(&def, races, classes, items)
	require.NoError(t, err)

	// hybrid halves the surplus and starts unable to cast
	assert.Equal(t, types.AttributePair16{Base: 3, Current: 3}, hero.SP)
	assert.Equal(t, types.AttributePair{}, hero.SpellLevel)
}

func TestInstantiate_HPOverrideClamp(t *testing.T) {
	races, classes, items := fixtureRaces(t), fixtureClasses(t), fixtureItems(t)
	def := knightDefinition()
	def.HPOverride = &types.AttributePair16{Base: 30, Current: 50}

	hero, err := character.Instantiate(&def, races, classes, items)
	require.NoError(t, err)

	assert.Equal(t, types.AttributePair16{Base: 30, Current: 30}, hero.HP)
}

func TestInstantiate_HPFloorsAtOne(t *testing.T) {
	races, classes, items := fixtureRaces(t), fixtureClasses(t), fixtureItems(t)
	require.NoError(t, classes.Add(class.Definition{
		ID: "wretch", Name: "Wretch",
		HPDie: types.DiceRoll{Count: 1, Sides: 4},
	}))

	def := knightDefinition()
	def.ClassID = "wretch"
	def.BaseStats.Endurance = pair(3)

	hero, err := character.Instantiate(&def, races, classes, items)
	require.NoError(t, err)

	// die 4 plus floor((3-10)/2) = -4 would be zero; floors at one
	assert.Equal(t, types.AttributePair16{Base: 1, Current: 1}, hero.HP)
}

func TestInstantiate_StatClamping(t *testing.T) {
	races, classes, items := fixtureRaces(t), fixtureClasses(t), fixtureItems(t)
	def := knightDefinition()
	def.RaceID = "gnome"
	def.BaseStats.Might = pair(4)
	def.BaseStats.Intellect = pair(24)

	hero, err := character.Instantiate(&def, races, classes, items)
	require.NoError(t, err)

	// 4 - 2 would be 2; clamps to the stat floor
	assert.Equal(t, uint8(3), hero.Stats.Might.Base)
	// 24 + 2 would be 26; clamps to the stat ceiling
	assert.Equal(t, uint8(25), hero.Stats.Intellect.Base)
}

func TestInstantiate_RacialResistances(t *testing.T) {
	races, classes, items := fixtureRaces(t), fixtureClasses(t), fixtureItems(t)
	def := knightDefinition()
	def.RaceID = "gnome"

	hero, err := character.Instantiate(&def, races, classes, items)
	require.NoError(t, err)

	assert.Equal(t, pair(10), hero.Resistances.Magic)
	assert.Equal(t, pair(5), hero.Resistances.Poison)
	assert.Equal(t, pair(0), hero.Resistances.Fire)
}

func TestInstantiate_Failures(t *testing.T) {
	races, classes, items := fixtureRaces(t), fixtureClasses(t), fixtureItems(t)

	tests := []struct {
		name   string
		mutate func(*chardef.CharacterDefinition)
		reason character.InstantiationReason
	}{
		{
			name:   "unknown race",
			mutate: func(d *chardef.CharacterDefinition) { d.RaceID = "lizardfolk" },
			reason: character.InstantiationInvalidRaceID,
		},
		{
			name:   "unknown class",
			mutate: func(d *chardef.CharacterDefinition) { d.ClassID = "ninja" },
			reason: character.InstantiationInvalidClassID,
		},
		{
			name:   "unknown starting item",
			mutate: func(d *chardef.CharacterDefinition) { d.StartingItems = []types.ItemID{404} },
			reason: character.InstantiationInvalidItemID,
		},
		{
			name: "unknown equipped item",
			mutate: func(d *chardef.CharacterDefinition) {
				d.StartingEquipment.Boots = ptr(types.ItemID(404))
			},
			reason: character.InstantiationInvalidItemID,
		},
		{
			name: "inventory overflow",
			mutate: func(d *chardef.CharacterDefinition) {
				d.StartingItems = []types.ItemID{50, 50, 50, 50, 50, 50, 50}
			},
			reason: character.InstantiationInventoryFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := knightDefinition()
			tt.mutate(&def)

			_, err := character.Instantiate(&def, races, classes, items)
			require.Error(t, err)

			var instErr *character.InstantiationError
			require.ErrorAs(t, err, &instErr)
			assert.Equal(t, tt.reason, instErr.Reason)
		})
	}
}

func TestInstantiate_Deterministic(t *testing.T) {
	races, classes, items := fixtureRaces(t), fixtureClasses(t), fixtureItems(t)
	def := knightDefinition()

	first, err := character.Instantiate(&def, races, classes, items)
	require.NoError(t, err)
	second, err := character.Instantiate(&def, races, classes, items)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCondition_Bitmask(t *testing.T) {
	var cond character.Condition
	assert.True(t, cond.IsFine())

	cond.Add(character.ConditionPoisoned)
	assert.True(t, cond.Has(character.ConditionPoisoned))
	assert.False(t, cond.IsFine())
	assert.False(t, cond.IsBad())

	cond.Add(character.ConditionParalyzed)
	assert.True(t, cond.IsBad())
	assert.False(t, cond.IsFatal())

	cond = character.ConditionDead
	assert.True(t, cond.IsFatal())

	cond.Clear()
	assert.True(t, cond.IsFine())
}

func TestInventory_Bounds(t *testing.T) {
	var inv character.Inventory
	for i := 0; i < character.InventoryMaxSlots; i++ {
		require.NoError(t, inv.AddItem(types.ItemID(i+1), 0))
	}
	assert.True(t, inv.IsFull())
	assert.Error(t, inv.AddItem(99, 0))

	slot, ok := inv.RemoveItem(0)
	require.True(t, ok)
	assert.Equal(t, types.ItemID(1), slot.ItemID)
	assert.True(t, inv.HasSpace())

	_, ok = inv.RemoveItem(42)
	assert.False(t, ok)
}

func TestQuestFlags(t *testing.T) {
	var flags character.QuestFlags
	assert.False(t, flags.Get(3))

	flags.Set(3)
	assert.True(t, flags.Get(3))
	assert.False(t, flags.Get(2))
	assert.Len(t, flags.Flags, 4)
}
