package quest

import (
	"fmt"
	"sort"

	"github.com/antaresengine/antares/internal/domain/item"
	"github.com/antaresengine/antares/internal/domain/monster"
	"github.com/antaresengine/antares/internal/domain/types"
	"github.com/antaresengine/antares/internal/domain/worldmap"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// IssueCode identifies a class of quest validation problem.
type IssueCode string

const (
	IssueNoStages            IssueCode = "no_stages"
	IssueStageNoObjectives   IssueCode = "stage_has_no_objectives"
	IssueInvalidLevels       IssueCode = "invalid_level_requirements"
	IssueDuplicateStage      IssueCode = "duplicate_stage_number"
	IssueNonSequentialStages IssueCode = "non_sequential_stages"
	IssueInvalidMonsterRef   IssueCode = "invalid_monster_reference"
	IssueInvalidItemRef      IssueCode = "invalid_item_reference"
	IssueInvalidMapRef       IssueCode = "invalid_map_reference"
	IssueCircularDependency  IssueCode = "circular_dependency"
	IssueInvalidPrereq       IssueCode = "invalid_prerequisite"
	IssueInvalidRewardQuest  IssueCode = "invalid_reward_quest"
)

// Issue is one validation finding. Validators accumulate issues so authoring
// tools can show everything at once.
type Issue struct {
	QuestID types.QuestID
	Code    IssueCode
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("quest %d: %s", i.QuestID, i.Message)
}

// Validate checks a quest against the content databases and returns every
// issue found. An empty result means the quest is valid. Only a stage-less
// quest short-circuits, since nothing else is checkable without stages.
func Validate(
	q *Quest,
	monsters *monster.Database,
	items *item.Database,
	maps *worldmap.Database,
	quests *Database,
) []Issue {
	var issues []Issue
	report := func(code IssueCode, format string, args ...any) {
		issues = append(issues, Issue{
			QuestID: q.ID,
			Code:    code,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if len(q.Stages) == 0 {
		report(IssueNoStages, "quest has no stages")
		return issues
	}

	if q.MinLevel != nil && q.MaxLevel != nil && *q.MinLevel > *q.MaxLevel {
		report(IssueInvalidLevels, "min level %d exceeds max level %d", *q.MinLevel, *q.MaxLevel)
	}

	// Stage numbers must be exactly 1..N, checked in numeric order so tool
	// output is deterministic.
	stages := make([]Stage, len(q.Stages))
	copy(stages, q.Stages)
	sort.Slice(stages, func(i, j int) bool { return stages[i].StageNumber < stages[j].StageNumber })

	seen := make(map[uint8]bool)
	for i, stage := range stages {
		if seen[stage.StageNumber] {
			report(IssueDuplicateStage, "duplicate stage number %d", stage.StageNumber)
			continue
		}
		seen[stage.StageNumber] = true

		if stage.StageNumber != uint8(i+1) {
			report(IssueNonSequentialStages, "expected stage %d, found %d", i+1, stage.StageNumber)
		}

		if len(stage.Objectives) == 0 {
			report(IssueStageNoObjectives, "stage %d has no objectives", stage.StageNumber)
		}

		for _, obj := range stage.Objectives {
			validateObjectiveRefs(q.ID, stage.StageNumber, obj, monsters, items, maps, report)
		}
	}

	for _, prereq := range q.RequiredQuests {
		if prereq == q.ID {
			report(IssueCircularDependency, "quest lists itself as a prerequisite")
			continue
		}
		if !quests.Has(prereq) {
			report(IssueInvalidPrereq, "prerequisite quest %d does not exist", prereq)
		}
	}

	for _, reward := range q.Rewards {
		switch reward.Kind {
		case RewardItems:
			for _, grant := range reward.Items {
				if !items.Has(grant.ItemID) {
					report(IssueInvalidItemRef, "reward references unknown item %d", grant.ItemID)
				}
			}
		case RewardUnlockQuest:
			if reward.QuestID == nil || !quests.Has(*reward.QuestID) {
				report(IssueInvalidRewardQuest, "reward unlocks an unknown quest")
			}
		}
	}

	return issues
}

func validateObjectiveRefs(
	questID types.QuestID,
	stageNumber uint8,
	obj Objective,
	monsters *monster.Database,
	items *item.Database,
	maps *worldmap.Database,
	report func(IssueCode, string, ...any),
) {
	if obj.MonsterID != nil && !monsters.Has(*obj.MonsterID) {
		report(IssueInvalidMonsterRef, "stage %d references unknown monster %d", stageNumber, *obj.MonsterID)
	}
	if obj.ItemID != nil && !items.Has(*obj.ItemID) {
		report(IssueInvalidItemRef, "stage %d references unknown item %d", stageNumber, *obj.ItemID)
	}
	if obj.MapID != nil && !maps.Has(*obj.MapID) {
		report(IssueInvalidMapRef, "stage %d references unknown map %d", stageNumber, *obj.MapID)
	}
}

// Dependencies collects the transitive prerequisites of a quest in
// depth-first order. Any revisited quest during traversal is treated as a
// cycle and rejected.
func Dependencies(id types.QuestID, db *Database) ([]types.QuestID, error) {
	if !db.Has(id) {
		return nil, apperr.NotFoundf("quest %d not found", id)
	}

	var order []types.QuestID
	visiting := make(map[types.QuestID]bool)
	done := make(map[types.QuestID]bool)

	var visit func(current types.QuestID) error
	visit = func(current types.QuestID) error {
		if visiting[current] {
			return apperr.Validationf("circular quest dependency involving quest %d", current)
		}
		if done[current] {
			return nil
		}
		visiting[current] = true

		q, ok := db.Get(current)
		if !ok {
			return apperr.MissingDependencyf("quest %d references unknown prerequisite %d", id, current)
		}
		for _, prereq := range q.RequiredQuests {
			if err := visit(prereq); err != nil {
				return err
			}
			if !done[prereq] {
				order = append(order, prereq)
				done[prereq] = true
			}
		}
		visiting[current] = false
		return nil
	}

	if err := visit(id); err != nil {
		return nil, err
	}
	return order, nil
}
