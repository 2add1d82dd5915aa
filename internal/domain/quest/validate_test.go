package quest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antaresengine/antares/internal/domain/item"
	"github.com/antaresengine/antares/internal/domain/monster"
	"github.com/antaresengine/antares/internal/domain/quest"
	"github.com/antaresengine/antares/internal/domain/types"
	"github.com/antaresengine/antares/internal/domain/worldmap"
	apperr "github.com/antaresengine/antares/internal/errors"
)

func fixtureMonsters(t *testing.T) *monster.Database {
	t.Helper()
	db := monster.NewDatabase()
	require.NoError(t, db.Add(monster.Definition{
		ID:   1,
		Name: "Goblin",
		HP:   types.AttributePair16{Base: 8, Current: 8},
	}))
	return db
}

func fixtureItems(t *testing.T) *item.Database {
	t.Helper()
	db := item.NewDatabase()
	require.NoError(t, db.Add(item.Item{
		ID:   10,
		Name: "Healing Potion",
		ItemType: item.ItemType{
			Kind:       item.KindConsumable,
			Consumable: &item.ConsumableData{},
		},
	}))
	return db
}

func fixtureMaps(t *testing.T) *worldmap.Database {
	t.Helper()
	db := worldmap.NewDatabase()
	require.NoError(t, db.Add(worldmap.Definition{
		ID:     3,
		Name:   "Sorpigal",
		Width:  1,
		Height: 1,
		Tiles:  []worldmap.Tile{{Terrain: worldmap.TerrainGrass}},
	}))
	return db
}

func validQuest(id types.QuestID) quest.Quest {
	return quest.Quest{
		ID:   id,
		Name: "Clear the Cellar",
		Stages: []quest.Stage{
			{
				StageNumber: 1,
				Description: "Deal with the goblins",
				Objectives: []quest.Objective{
					{Kind: quest.ObjectiveKillMonsters, MonsterID: ptr(types.MonsterID(1)), Quantity: 3},
				},
			},
		},
	}
}

func ptr[T any](v T) *T { return &v }

func TestValidate(t *testing.T) {
	monsters := fixtureMonsters(t)
	items := fixtureItems(t)
	maps := fixtureMaps(t)

	tests := []struct {
		name     string
		mutate   func(*quest.Quest)
		expected []quest.IssueCode
	}{
		{
			name:     "valid quest has no issues",
			mutate:   func(q *quest.Quest) {},
			expected: nil,
		},
		{
			name:     "no stages short circuits",
			mutate:   func(q *quest.Quest) { q.Stages = nil },
			expected: []quest.IssueCode{quest.IssueNoStages},
		},
		{
			name: "stage without objectives",
			mutate: func(q *quest.Quest) {
				q.Stages[0].Objectives = nil
			},
			expected: []quest.IssueCode{quest.IssueStageNoObjectives},
		},
		{
			name: "duplicate stage number",
			mutate: func(q *quest.Quest) {
				q.Stages = append(q.Stages, q.Stages[0])
			},
			expected: []quest.IssueCode{quest.IssueDuplicateStage},
		},
		{
			name: "non sequential stages",
			mutate: func(q *quest.Quest) {
				q.Stages[0].StageNumber = 2
			},
			expected: []quest.IssueCode{quest.IssueNonSequentialStages},
		},
		{
			name: "inverted level window",
			mutate: func(q *quest.Quest) {
				q.MinLevel = ptr(uint8(10))
				q.MaxLevel = ptr(uint8(5))
			},
			expected: []quest.IssueCode{quest.IssueInvalidLevels},
		},
		{
			name: "unknown monster reference",
			mutate: func(q *quest.Quest) {
				q.Stages[0].Objectives[0].MonsterID = ptr(types.MonsterID(99))
			},
			expected: []quest.IssueCode{quest.IssueInvalidMonsterRef},
		},
		{
			name: "unknown item reference",
			mutate: func(q *quest.Quest) {
				q.Stages[0].Objectives = []quest.Objective{
					{Kind: quest.ObjectiveCollectItems, ItemID: ptr(types.ItemID(404)), Quantity: 1},
				}
			},
			expected: []quest.IssueCode{quest.IssueInvalidItemRef},
		},
		{
			name: "unknown map reference",
			mutate: func(q *quest.Quest) {
				q.Stages[0].Objectives = []quest.Objective{
					{Kind: quest.ObjectiveReachLocation, MapID: ptr(types.MapID(404))},
				}
			},
			expected: []quest.IssueCode{quest.IssueInvalidMapRef},
		},
		{
			name: "self prerequisite",
			mutate: func(q *quest.Quest) {
				q.RequiredQuests = []types.QuestID{q.ID}
			},
			expected: []quest.IssueCode{quest.IssueCircularDependency},
		},
		{
			name: "unknown prerequisite",
			mutate: func(q *quest.Quest) {
				q.RequiredQuests = []types.QuestID{999}
			},
			expected: []quest.IssueCode{quest.IssueInvalidPrereq},
		},
		{
			name: "reward references unknown item",
			mutate: func(q *quest.Quest) {
				q.Rewards = []quest.Reward{
					{Kind: quest.RewardItems, Items: []quest.ItemGrant{{ItemID: 404, Quantity: 1}}},
				}
			},
			expected: []quest.IssueCode{quest.IssueInvalidItemRef},
		},
		{
			name: "reward unlocks unknown quest",
			mutate: func(q *quest.Quest) {
				q.Rewards = []quest.Reward{
					{Kind: quest.RewardUnlockQuest, QuestID: ptr(types.QuestID(999))},
				}
			},
			expected: []quest.IssueCode{quest.IssueInvalidRewardQuest},
		},
		{
			name: "multiple issues accumulate",
			mutate: func(q *quest.Quest) {
				q.Stages[0].Objectives = nil
				q.MinLevel = ptr(uint8(10))
				q.MaxLevel = ptr(uint8(5))
			},
			expected: []quest.IssueCode{quest.IssueInvalidLevels, quest.IssueStageNoObjectives},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quests := quest.NewDatabase()
			q := validQuest(1)
			tt.mutate(&q)
			require.NoError(t, quests.Add(q))

			issues := quest.Validate(&q, monsters, items, maps, quests)

			codes := make([]quest.IssueCode, 0, len(issues))
			for _, issue := range issues {
				codes = append(codes, issue.Code)
			}
			assert.ElementsMatch(t, tt.expected, codes)
		})
	}
}

func TestValidate_PrerequisiteChain(t *testing.T) {
	monsters := fixtureMonsters(t)
	items := fixtureItems(t)
	maps := fixtureMaps(t)
	quests := quest.NewDatabase()

	first := validQuest(1)
	second := validQuest(2)
	second.RequiredQuests = []types.QuestID{1}
	require.NoError(t, quests.Add(first))
	require.NoError(t, quests.Add(second))

	assert.Empty(t, quest.Validate(&second, monsters, items, maps, quests))
}

func TestDependencies(t *testing.T) {
	t.Run("linear chain resolves in depth-first order", func(t *testing.T) {
		db := quest.NewDatabase()
		a := validQuest(1)
		b := validQuest(2)
		b.RequiredQuests = []types.QuestID{1}
		c := validQuest(3)
		c.RequiredQuests = []types.QuestID{2}
		require.NoError(t, db.Add(a))
		require.NoError(t, db.Add(b))
		require.NoError(t, db.Add(c))

		deps, err := quest.Dependencies(3, db)
		require.NoError(t, err)
		assert.Equal(t, []types.QuestID{1, 2}, deps)
	})

	t.Run("diamond graph lists shared prerequisite once", func(t *testing.T) {
		db := quest.NewDatabase()
		base := validQuest(1)
		left := validQuest(2)
		left.RequiredQuests = []types.QuestID{1}
		right := validQuest(3)
		right.RequiredQuests = []types.QuestID{1}
		top := validQuest(4)
		top.RequiredQuests = []types.QuestID{2, 3}
		for _, q := range []quest.Quest{base, left, right, top} {
			require.NoError(t, db.Add(q))
		}

		deps, err := quest.Dependencies(4, db)
		require.NoError(t, err)
		assert.Equal(t, []types.QuestID{1, 2, 3}, deps)
	})

	t.Run("cycle is rejected", func(t *testing.T) {
		db := quest.NewDatabase()
		a := validQuest(1)
		a.RequiredQuests = []types.QuestID{2}
		b := validQuest(2)
		b.RequiredQuests = []types.QuestID{1}
		require.NoError(t, db.Add(a))
		require.NoError(t, db.Add(b))

		_, err := quest.Dependencies(1, db)
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("unknown quest", func(t *testing.T) {
		_, err := quest.Dependencies(42, quest.NewDatabase())
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestDatabase_ForLevel(t *testing.T) {
	db := quest.NewDatabase()

	open := validQuest(1)
	gated := validQuest(2)
	gated.MinLevel = ptr(uint8(5))
	capped := validQuest(3)
	capped.MaxLevel = ptr(uint8(3))
	for _, q := range []quest.Quest{open, gated, capped} {
		require.NoError(t, db.Add(q))
	}

	ids := func(quests []quest.Quest) []types.QuestID {
		out := make([]types.QuestID, 0, len(quests))
		for _, q := range quests {
			out = append(out, q.ID)
		}
		return out
	}

	assert.Equal(t, []types.QuestID{1, 3}, ids(db.ForLevel(1)))
	assert.Equal(t, []types.QuestID{1, 2}, ids(db.ForLevel(5)))
}

func TestDatabase_MainQuests(t *testing.T) {
	db := quest.NewDatabase()
	side := validQuest(1)
	main := validQuest(2)
	main.IsMainQuest = true
	require.NoError(t, db.Add(side))
	require.NoError(t, db.Add(main))

	mains := db.MainQuests()
	require.Len(t, mains, 1)
	assert.Equal(t, types.QuestID(2), mains[0].ID)
}
