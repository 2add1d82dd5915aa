package proficiency_test

import (
	"testing"

	"github.com/antaresengine/antares/internal/domain/proficiency"
	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForWeapon(t *testing.T) {
	tests := []struct {
		classification proficiency.WeaponClassification
		expected       types.ProficiencyID
	}{
		{proficiency.WeaponSimple, "simple_weapon"},
		{proficiency.WeaponMartialMelee, "martial_melee"},
		{proficiency.WeaponMartialRanged, "martial_ranged"},
		{proficiency.WeaponBlunt, "blunt_weapon"},
		{proficiency.WeaponUnarmed, "unarmed"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, proficiency.ForWeapon(tt.classification))
	}
}

func TestForArmor(t *testing.T) {
	assert.Equal(t, "light_armor", proficiency.ForArmor(proficiency.ArmorLight))
	assert.Equal(t, "medium_armor", proficiency.ForArmor(proficiency.ArmorMedium))
	assert.Equal(t, "heavy_armor", proficiency.ForArmor(proficiency.ArmorHeavy))
	assert.Equal(t, "shield", proficiency.ForArmor(proficiency.ArmorShield))
}

func TestForMagicItem(t *testing.T) {
	assert.Equal(t, "arcane_item", proficiency.ForMagicItem(proficiency.MagicItemArcane))
	assert.Equal(t, "divine_item", proficiency.ForMagicItem(proficiency.MagicItemDivine))
	assert.Empty(t, proficiency.ForMagicItem(proficiency.MagicItemUniversal))
}

func TestHasUnion(t *testing.T) {
	tests := []struct {
		name       string
		required   types.ProficiencyID
		classProfs []types.ProficiencyID
		raceProfs  []types.ProficiencyID
		expected   bool
	}{
		{
			name:     "no requirement always passes",
			required: "",
			expected: true,
		},
		{
			name:       "class grants it",
			required:   "martial_melee",
			classProfs: []types.ProficiencyID{"martial_melee"},
			expected:   true,
		},
		{
			name:      "race grants it",
			required:  "martial_melee",
			raceProfs: []types.ProficiencyID{"martial_melee"},
			expected:  true,
		},
		{
			name:       "neither grants it",
			required:   "martial_melee",
			classProfs: []types.ProficiencyID{"simple_weapon"},
			raceProfs:  []types.ProficiencyID{"light_armor"},
			expected:   false,
		},
		{
			name:       "no inheritance from martial to simple",
			required:   "simple_weapon",
			classProfs: []types.ProficiencyID{"martial_melee"},
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, proficiency.HasUnion(tt.required, tt.classProfs, tt.raceProfs))
		})
	}
}

func TestCompatibleTags(t *testing.T) {
	assert.True(t, proficiency.CompatibleTags([]string{"heavy_armor"}, nil))
	assert.True(t, proficiency.CompatibleTags(nil, []string{"heavy_armor"}))
	assert.False(t, proficiency.CompatibleTags([]string{"heavy_armor"}, []string{"heavy_armor"}))
	assert.True(t, proficiency.CompatibleTags([]string{"metal"}, []string{"heavy_armor"}))
}

func TestDatabase_AddAndDuplicates(t *testing.T) {
	db := proficiency.NewDatabase()

	require.NoError(t, db.Add(proficiency.Definition{
		ID:       "simple_weapon",
		Name:     "Simple Weapons",
		Category: proficiency.CategoryWeapon,
	}))
	assert.Equal(t, 1, db.Len())

	err := db.Add(proficiency.Definition{
		ID:       "simple_weapon",
		Name:     "Simple Weapons Again",
		Category: proficiency.CategoryWeapon,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsDuplicateID(err))

	err = db.Add(proficiency.Definition{Name: "missing id"})
	assert.True(t, apperr.IsValidation(err))
}

func TestDatabase_LoadFromString(t *testing.T) {
	data := `[
		{"id": "simple_weapon", "name": "Simple Weapons", "category": "weapon"},
		{"id": "light_armor", "name": "Light Armor", "category": "armor"}
	]`

	db, err := proficiency.LoadFromString(data)
	require.NoError(t, err)
	assert.Equal(t, 2, db.Len())

	def, ok := db.Get("light_armor")
	require.True(t, ok)
	assert.Equal(t, proficiency.CategoryArmor, def.Category)
}

func TestDatabase_LoadFromString_DuplicateAborts(t *testing.T) {
	data := `[
		{"id": "shield", "name": "Shields", "category": "shield"},
		{"id": "shield", "name": "Shields Again", "category": "shield"}
	]`

	_, err := proficiency.LoadFromString(data)
	require.Error(t, err)
	assert.True(t, apperr.IsDuplicateID(err))
}

func TestDatabase_LoadFromString_ParseError(t *testing.T) {
	_, err := proficiency.LoadFromString("not json")
	require.Error(t, err)
	assert.True(t, apperr.IsParseError(err))
}

func TestDatabase_Merge(t *testing.T) {
	a := proficiency.NewDatabase()
	require.NoError(t, a.Add(proficiency.Definition{ID: "shield", Name: "Shields", Category: proficiency.CategoryShield}))

	b := proficiency.NewDatabase()
	require.NoError(t, b.Add(proficiency.Definition{ID: "unarmed", Name: "Unarmed", Category: proficiency.CategoryWeapon}))

	require.NoError(t, a.Merge(b))
	assert.Equal(t, 2, a.Len())

	require.Error(t, a.Merge(b))
}

func TestDefaultDatabase(t *testing.T) {
	db := proficiency.DefaultDatabase()
	assert.Equal(t, 11, db.Len())

	for _, id := range []types.ProficiencyID{
		proficiency.IDSimpleWeapon, proficiency.IDMartialMelee, proficiency.IDHeavyArmor,
		proficiency.IDShield, proficiency.IDArcaneItem,
	} {
		_, ok := db.Get(id)
		assert.True(t, ok, "missing default proficiency %s", id)
	}
}
