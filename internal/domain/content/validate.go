package content

import (
	"fmt"

	"github.com/antaresengine/antares/internal/domain/dialogue"
	"github.com/antaresengine/antares/internal/domain/quest"
	"github.com/antaresengine/antares/internal/domain/types"
)

// CharacterIssueCode identifies a class of character reference problem.
type CharacterIssueCode string

const (
	CharIssueUnknownRace  CharacterIssueCode = "unknown_race"
	CharIssueUnknownClass CharacterIssueCode = "unknown_class"
	CharIssueUnknownItem  CharacterIssueCode = "unknown_item"
)

// CharacterIssue is one dangling reference in a character definition.
type CharacterIssue struct {
	CharacterID types.CharacterDefID
	Code        CharacterIssueCode
	Message     string
}

func (i CharacterIssue) String() string {
	return fmt.Sprintf("character %s: %s", i.CharacterID, i.Message)
}

// Report accumulates every cross-reference problem in the content graph.
// Validators run to completion; tools display the full list.
type Report struct {
	CharacterIssues []CharacterIssue
	QuestIssues     []quest.Issue
	DialogueIssues  []dialogue.Issue
}

// IsEmpty reports whether validation found nothing.
func (r *Report) IsEmpty() bool {
	return len(r.CharacterIssues) == 0 && len(r.QuestIssues) == 0 && len(r.DialogueIssues) == 0
}

// Len returns the total issue count.
func (r *Report) Len() int {
	return len(r.CharacterIssues) + len(r.QuestIssues) + len(r.DialogueIssues)
}

// Validate checks every cross-database reference after loading: character
// race/class/item links, quest structure and references, dialogue graphs,
// and dialogue quest associations.
func (db *ContentDatabase) Validate() *Report {
	report := &Report{}

	for _, def := range db.Characters.All() {
		if !db.Races.Has(def.RaceID) {
			report.CharacterIssues = append(report.CharacterIssues, CharacterIssue{
				CharacterID: def.ID,
				Code:        CharIssueUnknownRace,
				Message:     fmt.Sprintf("references unknown race %q", def.RaceID),
			})
		}
		if !db.Classes.Has(def.ClassID) {
			report.CharacterIssues = append(report.CharacterIssues, CharacterIssue{
				CharacterID: def.ID,
				Code:        CharIssueUnknownClass,
				Message:     fmt.Sprintf("references unknown class %q", def.ClassID),
			})
		}
		for _, itemID := range def.AllItemIDs() {
			if !db.Items.Has(itemID) {
				report.CharacterIssues = append(report.CharacterIssues, CharacterIssue{
					CharacterID: def.ID,
					Code:        CharIssueUnknownItem,
					Message:     fmt.Sprintf("references unknown item %d", itemID),
				})
			}
		}
	}

	for _, q := range db.Quests.All() {
		report.QuestIssues = append(report.QuestIssues,
			quest.Validate(&q, db.Monsters, db.Items, db.Maps, db.Quests)...)
	}

	for _, tree := range db.Dialogues.All() {
		report.DialogueIssues = append(report.DialogueIssues,
			dialogue.Validate(&tree, db.Quests, db.Items)...)

		if tree.AssociatedQuest != nil && !db.Quests.Has(*tree.AssociatedQuest) {
			report.DialogueIssues = append(report.DialogueIssues, dialogue.Issue{
				DialogueID: tree.ID,
				Code:       dialogue.IssueInvalidQuestRef,
				Message:    fmt.Sprintf("dialogue %d is associated with unknown quest %d", tree.ID, *tree.AssociatedQuest),
			})
		}
	}

	return report
}
