package class_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antaresengine/antares/internal/domain/class"
	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

func knight() class.Definition {
	weapon := types.ItemID(10)
	return class.Definition{
		ID:               "knight",
		Name:             "Knight",
		HPDie:            types.DiceRoll{Count: 1, Sides: 10},
		SpecialAbilities: []string{"shield_wall"},
		StartingWeapon:   &weapon,
		Proficiencies:    []types.ProficiencyID{"long_blades", "plate_armor"},
	}
}

func sorcerer() class.Definition {
	school := class.SchoolSorcerer
	stat := class.SpellStatIntellect
	return class.Definition{
		ID:           "sorcerer",
		Name:         "Sorcerer",
		HPDie:        types.DiceRoll{Count: 1, Sides: 4},
		SpellSchool:  &school,
		SpellStat:    &stat,
		IsPureCaster: true,
	}
}

func TestDefinition_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*class.Definition)
		wantErr string
	}{
		{
			name:   "valid non-caster",
			mutate: func(d *class.Definition) {},
		},
		{
			name:    "empty ID",
			mutate:  func(d *class.Definition) { d.ID = "" },
			wantErr: "class ID cannot be empty",
		},
		{
			name:    "empty name",
			mutate:  func(d *class.Definition) { d.Name = "" },
			wantErr: "empty name",
		},
		{
			name:    "zero hp die count",
			mutate:  func(d *class.Definition) { d.HPDie = types.DiceRoll{Count: 0, Sides: 10} },
			wantErr: "invalid hp die",
		},
		{
			name:    "zero hp die sides",
			mutate:  func(d *class.Definition) { d.HPDie = types.DiceRoll{Count: 1, Sides: 0} },
			wantErr: "invalid hp die",
		},
		{
			name: "caster without spell stat",
			mutate: func(d *class.Definition) {
				school := class.SchoolCleric
				d.SpellSchool = &school
				d.SpellStat = nil
			},
			wantErr: "missing a spell stat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := knight()
			tt.mutate(&def)

			err := def.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("valid caster", func(t *testing.T) {
		def := sorcerer()
		require.NoError(t, def.Validate())
	})
}

func TestDefinition_Queries(t *testing.T) {
	k := knight()
	s := sorcerer()

	assert.False(t, k.CanCastSpells())
	assert.True(t, s.CanCastSpells())

	assert.True(t, k.HasAbility("shield_wall"))
	assert.False(t, k.HasAbility("fireball"))

	assert.True(t, k.HasProficiency("long_blades"))
	assert.False(t, k.HasProficiency("bows"))
	assert.False(t, s.HasProficiency("long_blades"))
}

func TestDatabase_CRUD(t *testing.T) {
	db := class.NewDatabase()
	require.True(t, db.IsEmpty())

	require.NoError(t, db.Add(knight()))
	require.NoError(t, db.Add(sorcerer()))
	assert.Equal(t, 2, db.Len())

	got, ok := db.Get("knight")
	require.True(t, ok)
	assert.Equal(t, "Knight", got.Name)
	assert.True(t, db.Has("sorcerer"))
	assert.False(t, db.Has("paladin"))

	t.Run("duplicate rejected", func(t *testing.T) {
		err := db.Add(knight())
		require.Error(t, err)
		assert.True(t, apperr.IsDuplicateID(err))
	})

	t.Run("all sorted by ID", func(t *testing.T) {
		all := db.All()
		require.Len(t, all, 2)
		assert.Equal(t, types.ClassID("knight"), all[0].ID)
		assert.Equal(t, types.ClassID("sorcerer"), all[1].ID)
	})

	t.Run("replace overwrites", func(t *testing.T) {
		patched := knight()
		patched.Name = "Cavalier"
		require.NoError(t, db.Replace(patched))

		got, ok := db.Get("knight")
		require.True(t, ok)
		assert.Equal(t, "Cavalier", got.Name)
		assert.Equal(t, 2, db.Len())
	})

	t.Run("remove", func(t *testing.T) {
		assert.True(t, db.Remove("sorcerer"))
		assert.False(t, db.Remove("sorcerer"))
		assert.Equal(t, 1, db.Len())
	})
}

func TestLoadFromString(t *testing.T) {
	t.Run("loads definitions", func(t *testing.T) {
		db, err := class.LoadFromString(`[
			{"id": "knight", "name": "Knight", "hp_die": "1d10"},
			{"id": "cleric", "name": "Cleric", "hp_die": "1d6",
			 "spell_school": "cleric", "spell_stat": "personality", "is_pure_caster": true}
		]`)
		require.NoError(t, err)
		assert.Equal(t, 2, db.Len())

		cleric, ok := db.Get("cleric")
		require.True(t, ok)
		require.NotNil(t, cleric.SpellSchool)
		assert.Equal(t, class.SchoolCleric, *cleric.SpellSchool)
		assert.True(t, cleric.IsPureCaster)
	})

	t.Run("invalid definition aborts", func(t *testing.T) {
		_, err := class.LoadFromString(`[
			{"id": "knight", "name": "Knight", "hp_die": "1d10"},
			{"id": "broken", "name": "", "hp_die": "1d6"}
		]`)
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := class.LoadFromString(`[{`)
		require.Error(t, err)
		assert.True(t, apperr.IsParseError(err))
	})
}
