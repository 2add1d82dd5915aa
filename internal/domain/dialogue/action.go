package dialogue

import (
	"encoding/json"
	"fmt"

	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// ActionKind discriminates dialogue actions.
type ActionKind string

const (
	ActStartQuest         ActionKind = "start_quest"
	ActCompleteQuestStage ActionKind = "complete_quest_stage"
	ActGiveItems          ActionKind = "give_items"
	ActTakeItems          ActionKind = "take_items"
	ActGiveGold           ActionKind = "give_gold"
	ActTakeGold           ActionKind = "take_gold"
	ActSetFlag            ActionKind = "set_flag"
	ActChangeReputation   ActionKind = "change_reputation"
	ActTriggerEvent       ActionKind = "trigger_event"
	ActGrantExperience    ActionKind = "grant_experience"
	ActRecruitToParty     ActionKind = "recruit_to_party"
	ActRecruitToInn       ActionKind = "recruit_to_inn"
)

// QuestAction references a quest, with a stage for complete_quest_stage.
type QuestAction struct {
	QuestID     types.QuestID `json:"quest_id"`
	StageNumber uint8         `json:"stage_number,omitempty"`
}

// ItemsAction gives or takes a batch of item stacks.
type ItemsAction struct {
	Items []ItemStack `json:"items"`
}

// GoldAction moves gold into or out of the party purse.
type GoldAction struct {
	Amount uint32 `json:"amount"`
}

// FlagAction sets a campaign flag.
type FlagAction struct {
	FlagName string `json:"flag_name"`
	Value    bool   `json:"value"`
}

// ReputationAction shifts faction standing by a signed amount.
type ReputationAction struct {
	Faction string `json:"faction"`
	Change  int16  `json:"change"`
}

// EventAction fires a named scripted event.
type EventAction struct {
	EventName string `json:"event_name"`
}

// ExperienceAction grants experience to the party.
type ExperienceAction struct {
	Amount uint32 `json:"amount"`
}

// RecruitAction moves a character into the party or parks them at an inn.
type RecruitAction struct {
	CharacterID types.CharacterDefID `json:"character_id"`
	InnkeeperID string               `json:"innkeeper_id,omitempty"`
}

// Action is a side effect performed when a node displays or a choice is
// selected. Exactly one of the payload fields is set, matching Kind.
type Action struct {
	Kind ActionKind `json:"-"`

	Quest      *QuestAction      `json:"-"`
	Items      *ItemsAction      `json:"-"`
	Gold       *GoldAction       `json:"-"`
	Flag       *FlagAction       `json:"-"`
	Reputation *ReputationAction `json:"-"`
	Event      *EventAction      `json:"-"`
	Experience *ExperienceAction `json:"-"`
	Recruit    *RecruitAction    `json:"-"`
}

// actionEnvelope is the on-disk form: {"type": "give_gold", "data": {...}}.
type actionEnvelope struct {
	Type ActionKind      `json:"type"`
	Data json.RawMessage `json:"data"`
}

// MarshalJSON emits the type/data envelope.
func (a Action) MarshalJSON() ([]byte, error) {
	var payload any
	switch a.Kind {
	case ActStartQuest, ActCompleteQuestStage:
		payload = a.Quest
	case ActGiveItems, ActTakeItems:
		payload = a.Items
	case ActGiveGold, ActTakeGold:
		payload = a.Gold
	case ActSetFlag:
		payload = a.Flag
	case ActChangeReputation:
		payload = a.Reputation
	case ActTriggerEvent:
		payload = a.Event
	case ActGrantExperience:
		payload = a.Experience
	case ActRecruitToParty, ActRecruitToInn:
		payload = a.Recruit
	default:
		return nil, apperr.Validationf("unknown action kind %q", a.Kind)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(actionEnvelope{Type: a.Kind, Data: data})
}

// UnmarshalJSON parses the type/data envelope into the matching payload.
func (a *Action) UnmarshalJSON(data []byte) error {
	var env actionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	*a = Action{Kind: env.Type}
	switch env.Type {
	case ActStartQuest, ActCompleteQuestStage:
		a.Quest = &QuestAction{}
		return json.Unmarshal(env.Data, a.Quest)
	case ActGiveItems, ActTakeItems:
		a.Items = &ItemsAction{}
		return json.Unmarshal(env.Data, a.Items)
	case ActGiveGold, ActTakeGold:
		a.Gold = &GoldAction{}
		return json.Unmarshal(env.Data, a.Gold)
	case ActSetFlag:
		a.Flag = &FlagAction{}
		return json.Unmarshal(env.Data, a.Flag)
	case ActChangeReputation:
		a.Reputation = &ReputationAction{}
		return json.Unmarshal(env.Data, a.Reputation)
	case ActTriggerEvent:
		a.Event = &EventAction{}
		return json.Unmarshal(env.Data, a.Event)
	case ActGrantExperience:
		a.Experience = &ExperienceAction{}
		return json.Unmarshal(env.Data, a.Experience)
	case ActRecruitToParty, ActRecruitToInn:
		a.Recruit = &RecruitAction{}
		return json.Unmarshal(env.Data, a.Recruit)
	default:
		return apperr.ParseErrorf("unknown action kind %q", env.Type)
	}
}

// Description renders the action for editor display.
func (a Action) Description() string {
	switch a.Kind {
	case ActStartQuest:
		return fmt.Sprintf("Start quest %d", a.Quest.QuestID)
	case ActCompleteQuestStage:
		return fmt.Sprintf("Complete quest %d stage %d", a.Quest.QuestID, a.Quest.StageNumber)
	case ActGiveItems:
		return fmt.Sprintf("Give %d item stacks", len(a.Items.Items))
	case ActTakeItems:
		return fmt.Sprintf("Take %d item stacks", len(a.Items.Items))
	case ActGiveGold:
		return fmt.Sprintf("Give %d gold", a.Gold.Amount)
	case ActTakeGold:
		return fmt.Sprintf("Take %d gold", a.Gold.Amount)
	case ActSetFlag:
		return fmt.Sprintf("Set flag %s to %t", a.Flag.FlagName, a.Flag.Value)
	case ActChangeReputation:
		return fmt.Sprintf("Change %s reputation by %d", a.Reputation.Faction, a.Reputation.Change)
	case ActTriggerEvent:
		return fmt.Sprintf("Trigger event %s", a.Event.EventName)
	case ActGrantExperience:
		return fmt.Sprintf("Grant %d experience", a.Experience.Amount)
	case ActRecruitToParty:
		return fmt.Sprintf("Recruit %s to party", a.Recruit.CharacterID)
	case ActRecruitToInn:
		return fmt.Sprintf("Send %s to the inn", a.Recruit.CharacterID)
	}
	return "Unknown action"
}
