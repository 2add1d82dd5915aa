// Package quest defines quest content, its keyed database, and the quest
// validators used by authoring tools.
package quest

import (
	"fmt"

	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// ObjectiveKind discriminates quest objectives.
type ObjectiveKind string

const (
	ObjectiveKillMonsters  ObjectiveKind = "kill_monsters"
	ObjectiveCollectItems  ObjectiveKind = "collect_items"
	ObjectiveReachLocation ObjectiveKind = "reach_location"
	ObjectiveTalkToNPC     ObjectiveKind = "talk_to_npc"
	ObjectiveDeliverItem   ObjectiveKind = "deliver_item"
	ObjectiveEscortNPC     ObjectiveKind = "escort_npc"
	ObjectiveCustomFlag    ObjectiveKind = "custom_flag"
)

// Objective is one goal within a quest stage. The set fields depend on Kind.
type Objective struct {
	Kind ObjectiveKind `json:"kind"`

	MonsterID *types.MonsterID `json:"monster_id,omitempty"`
	ItemID    *types.ItemID    `json:"item_id,omitempty"`
	MapID     *types.MapID     `json:"map_id,omitempty"`
	NPCID     *uint16          `json:"npc_id,omitempty"`

	Quantity uint16          `json:"quantity,omitempty"`
	Position *types.Position `json:"position,omitempty"`
	Radius   uint8           `json:"radius,omitempty"`

	FlagName      string `json:"flag_name,omitempty"`
	RequiredValue bool   `json:"required_value,omitempty"`
}

// Description renders the objective for quest log display.
func (o Objective) Description() string {
	switch o.Kind {
	case ObjectiveKillMonsters:
		return fmt.Sprintf("Defeat %d monsters", o.Quantity)
	case ObjectiveCollectItems:
		return fmt.Sprintf("Collect %d items", o.Quantity)
	case ObjectiveReachLocation:
		return "Reach the marked location"
	case ObjectiveTalkToNPC:
		return "Speak with the marked character"
	case ObjectiveDeliverItem:
		return fmt.Sprintf("Deliver %d items", o.Quantity)
	case ObjectiveEscortNPC:
		return "Escort the character to safety"
	case ObjectiveCustomFlag:
		return "Complete the special objective"
	}
	return "Unknown objective"
}

// RewardKind discriminates quest rewards.
type RewardKind string

const (
	RewardExperience  RewardKind = "experience"
	RewardGold        RewardKind = "gold"
	RewardItems       RewardKind = "items"
	RewardUnlockQuest RewardKind = "unlock_quest"
	RewardSetFlag     RewardKind = "set_flag"
)

// ItemGrant pairs an item with a quantity for item rewards.
type ItemGrant struct {
	ItemID   types.ItemID `json:"item_id"`
	Quantity uint16       `json:"quantity"`
}

// Reward is granted when a quest completes. The set fields depend on Kind.
type Reward struct {
	Kind RewardKind `json:"kind"`

	Amount  uint32         `json:"amount,omitempty"`
	Items   []ItemGrant    `json:"items,omitempty"`
	QuestID *types.QuestID `json:"quest_id,omitempty"`

	FlagName  string `json:"flag_name,omitempty"`
	FlagValue bool   `json:"flag_value,omitempty"`
}

// Stage is one sequential step of a quest. Stage numbers start at 1 and must
// be contiguous.
type Stage struct {
	StageNumber uint8       `json:"stage_number"`
	Description string      `json:"description"`
	Objectives  []Objective `json:"objectives"`
}

// Quest is a quest definition loaded from content files.
type Quest struct {
	ID          types.QuestID `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`

	Stages  []Stage  `json:"stages"`
	Rewards []Reward `json:"rewards,omitempty"`

	MinLevel *uint8 `json:"min_level,omitempty"`
	MaxLevel *uint8 `json:"max_level,omitempty"`

	// RequiredQuests must be completed before this quest unlocks
	RequiredQuests []types.QuestID `json:"prerequisites,omitempty"`

	Repeatable  bool `json:"repeatable"`
	IsMainQuest bool `json:"is_main_quest"`

	QuestGiverNPC      *uint16         `json:"quest_giver_npc,omitempty"`
	QuestGiverMap      *types.MapID    `json:"quest_giver_map,omitempty"`
	QuestGiverPosition *types.Position `json:"quest_giver_position,omitempty"`
}

// Validate checks the invariants a quest needs before it can be added to a
// database. Structural and cross-database checks live in the package-level
// Validate function.
func (q *Quest) Validate() error {
	if q.Name == "" {
		return apperr.Validationf("quest %d has an empty name", q.ID)
	}
	return nil
}
