package dialogue

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// ConditionKind discriminates dialogue conditions.
type ConditionKind string

const (
	CondHasQuest       ConditionKind = "has_quest"
	CondCompletedQuest ConditionKind = "completed_quest"
	CondQuestStage     ConditionKind = "quest_stage"
	CondHasItem        ConditionKind = "has_item"
	CondHasGold        ConditionKind = "has_gold"
	CondMinLevel       ConditionKind = "min_level"
	CondFlagSet        ConditionKind = "flag_set"
	CondReputation     ConditionKind = "reputation_threshold"
	CondAnd            ConditionKind = "and"
	CondOr             ConditionKind = "or"
	CondNot            ConditionKind = "not"
)

// QuestCondition references a quest, with an optional stage for quest_stage.
type QuestCondition struct {
	QuestID     types.QuestID `json:"quest_id"`
	StageNumber uint8         `json:"stage_number,omitempty"`
}

// ItemCondition requires the party to carry a quantity of an item.
type ItemCondition struct {
	ItemID   types.ItemID `json:"item_id"`
	Quantity uint16       `json:"quantity"`
}

// GoldCondition requires a minimum party gold balance.
type GoldCondition struct {
	Amount uint32 `json:"amount"`
}

// LevelCondition requires a minimum character level.
type LevelCondition struct {
	Level uint8 `json:"level"`
}

// FlagCondition requires a campaign flag to hold a value.
type FlagCondition struct {
	FlagName string `json:"flag_name"`
	Value    bool   `json:"value"`
}

// ReputationCondition requires faction standing at or above a threshold.
type ReputationCondition struct {
	Faction   string `json:"faction"`
	Threshold int16  `json:"threshold"`
}

// Condition gates a node or choice on game state. Exactly one of the payload
// fields is set, matching Kind. And/Or/Not nest arbitrarily.
type Condition struct {
	Kind ConditionKind `json:"-"`

	Quest      *QuestCondition      `json:"-"`
	Item       *ItemCondition       `json:"-"`
	Gold       *GoldCondition       `json:"-"`
	Level      *LevelCondition      `json:"-"`
	Flag       *FlagCondition       `json:"-"`
	Reputation *ReputationCondition `json:"-"`

	// Children holds the operands of And/Or
	Children []Condition `json:"-"`

	// Negated holds the operand of Not
	Negated *Condition `json:"-"`
}

// condEnvelope is the on-disk form: {"type": "has_quest", "data": {...}}.
type condEnvelope struct {
	Type ConditionKind   `json:"type"`
	Data json.RawMessage `json:"data"`
}

// MarshalJSON emits the type/data envelope.
func (c Condition) MarshalJSON() ([]byte, error) {
	var payload any
	switch c.Kind {
	case CondHasQuest, CondCompletedQuest, CondQuestStage:
		payload = c.Quest
	case CondHasItem:
		payload = c.Item
	case CondHasGold:
		payload = c.Gold
	case CondMinLevel:
		payload = c.Level
	case CondFlagSet:
		payload = c.Flag
	case CondReputation:
		payload = c.Reputation
	case CondAnd, CondOr:
		payload = c.Children
	case CondNot:
		payload = c.Negated
	default:
		return nil, apperr.Validationf("unknown condition kind %q", c.Kind)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(condEnvelope{Type: c.Kind, Data: data})
}

// UnmarshalJSON parses the type/data envelope into the matching payload.
func (c *Condition) UnmarshalJSON(data []byte) error {
	var env condEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	*c = Condition{Kind: env.Type}
	switch env.Type {
	case CondHasQuest, CondCompletedQuest, CondQuestStage:
		c.Quest = &QuestCondition{}
		return json.Unmarshal(env.Data, c.Quest)
	case CondHasItem:
		c.Item = &ItemCondition{}
		return json.Unmarshal(env.Data, c.Item)
	case CondHasGold:
		c.Gold = &GoldCondition{}
		return json.Unmarshal(env.Data, c.Gold)
	case CondMinLevel:
		c.Level = &LevelCondition{}
		return json.Unmarshal(env.Data, c.Level)
	case CondFlagSet:
		c.Flag = &FlagCondition{}
		return json.Unmarshal(env.Data, c.Flag)
	case CondReputation:
		c.Reputation = &ReputationCondition{}
		return json.Unmarshal(env.Data, c.Reputation)
	case CondAnd, CondOr:
		return json.Unmarshal(env.Data, &c.Children)
	case CondNot:
		c.Negated = &Condition{}
		return json.Unmarshal(env.Data, c.Negated)
	default:
		return apperr.ParseErrorf("unknown condition kind %q", env.Type)
	}
}

// Description renders the condition for editor display.
func (c Condition) Description() string {
	switch c.Kind {
	case CondHasQuest:
		return fmt.Sprintf("Has quest %d", c.Quest.QuestID)
	case CondCompletedQuest:
		return fmt.Sprintf("Completed quest %d", c.Quest.QuestID)
	case CondQuestStage:
		return fmt.Sprintf("Quest %d at stage %d", c.Quest.QuestID, c.Quest.StageNumber)
	case CondHasItem:
		return fmt.Sprintf("Has %dx item %d", c.Item.Quantity, c.Item.ItemID)
	case CondHasGold:
		return fmt.Sprintf("Has %d gold", c.Gold.Amount)
	case CondMinLevel:
		return fmt.Sprintf("Min level %d", c.Level.Level)
	case CondFlagSet:
		return fmt.Sprintf("Flag %s is %t", c.Flag.FlagName, c.Flag.Value)
	case CondReputation:
		return fmt.Sprintf("%s reputation at least %d", c.Reputation.Faction, c.Reputation.Threshold)
	case CondAnd, CondOr:
		parts := make([]string, len(c.Children))
		for i, child := range c.Children {
			parts[i] = child.Description()
		}
		sep := " and "
		if c.Kind == CondOr {
			sep = " or "
		}
		return "(" + strings.Join(parts, sep) + ")"
	case CondNot:
		return "not " + c.Negated.Description()
	}
	return "Unknown condition"
}
