package dialogue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antaresengine/antares/internal/domain/dialogue"
	"github.com/antaresengine/antares/internal/domain/item"
	"github.com/antaresengine/antares/internal/domain/quest"
	"github.com/antaresengine/antares/internal/domain/types"
)

func ptr[T any](v T) *T { return &v }

func fixtureQuests(t *testing.T) *quest.Database {
	t.Helper()
	db := quest.NewDatabase()
	require.NoError(t, db.Add(quest.Quest{
		ID:   1,
		Name: "Clear the Cellar",
		Stages: []quest.Stage{
			{StageNumber: 1, Objectives: []quest.Objective{{Kind: quest.ObjectiveCustomFlag, FlagName: "done"}}},
		},
	}))
	return db
}

func fixtureItems(t *testing.T) *item.Database {
	t.Helper()
	db := item.NewDatabase()
	require.NoError(t, db.Add(item.Item{
		ID:   10,
		Name: "Rusty Key",
		ItemType: item.ItemType{
			Kind:  item.KindQuest,
			Quest: &item.QuestData{QuestID: 1, IsKeyItem: true},
		},
	}))
	return db
}

// greetingTree is a minimal valid tree: root offers one choice into a
// terminal farewell node.
func greetingTree() *dialogue.Tree {
	tree := dialogue.NewTree(1, "Innkeeper", 1)
	tree.AddNode(dialogue.Node{
		ID:   1,
		Text: "Welcome, traveler!",
		Choices: []dialogue.Choice{
			{Text: "Farewell.", TargetNode: ptr(types.NodeID(2))},
		},
	})
	tree.AddNode(dialogue.Node{ID: 2, Text: "Safe travels.", IsTerminal: true})
	return tree
}

func codes(issues []dialogue.Issue) []dialogue.IssueCode {
	out := make([]dialogue.IssueCode, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issue.Code)
	}
	return out
}

func TestValidate(t *testing.T) {
	quests := fixtureQuests(t)
	items := fixtureItems(t)

	tests := []struct {
		name     string
		build    func() *dialogue.Tree
		expected []dialogue.IssueCode
	}{
		{
			name:     "valid tree has no issues",
			build:    greetingTree,
			expected: nil,
		},
		{
			name: "empty tree short circuits",
			build: func() *dialogue.Tree {
				return dialogue.NewTree(1, "Empty", 1)
			},
			expected: []dialogue.IssueCode{dialogue.IssueNoNodes},
		},
		{
			name: "missing root short circuits",
			build: func() *dialogue.Tree {
				tree := dialogue.NewTree(1, "Lost", 99)
				tree.AddNode(dialogue.Node{ID: 1, Text: "Hello", IsTerminal: true})
				return tree
			},
			expected: []dialogue.IssueCode{dialogue.IssueRootNodeMissing},
		},
		{
			name: "whitespace only node text",
			build: func() *dialogue.Tree {
				tree := greetingTree()
				node := tree.Nodes[2]
				node.Text = "   "
				tree.AddNode(node)
				return tree
			},
			expected: []dialogue.IssueCode{dialogue.IssueEmptyNodeText},
		},
		{
			name: "terminal node with choices",
			build: func() *dialogue.Tree {
				tree := greetingTree()
				node := tree.Nodes[2]
				node.Choices = []dialogue.Choice{{Text: "More?", TargetNode: ptr(types.NodeID(1))}}
				tree.AddNode(node)
				return tree
			},
			expected: []dialogue.IssueCode{dialogue.IssueTerminalWithChoices},
		},
		{
			name: "non terminal node without choices",
			build: func() *dialogue.Tree {
				tree := greetingTree()
				node := tree.Nodes[2]
				node.IsTerminal = false
				tree.AddNode(node)
				return tree
			},
			expected: []dialogue.IssueCode{dialogue.IssueNonTerminalNoChoices},
		},
		{
			name: "choice targets missing node",
			build: func() *dialogue.Tree {
				tree := greetingTree()
				node := tree.Nodes[1]
				node.Choices[0].TargetNode = ptr(types.NodeID(99))
				tree.AddNode(node)
				return tree
			},
			// node 2 becomes unreachable once the choice points elsewhere
			expected: []dialogue.IssueCode{dialogue.IssueInvalidChoiceTarget, dialogue.IssueOrphanedNode},
		},
		{
			name: "empty choice text",
			build: func() *dialogue.Tree {
				tree := greetingTree()
				node := tree.Nodes[1]
				node.Choices[0].Text = ""
				tree.AddNode(node)
				return tree
			},
			expected: []dialogue.IssueCode{dialogue.IssueEmptyChoiceText},
		},
		{
			name: "orphaned node",
			build: func() *dialogue.Tree {
				tree := greetingTree()
				tree.AddNode(dialogue.Node{ID: 7, Text: "Nobody visits me.", IsTerminal: true})
				return tree
			},
			expected: []dialogue.IssueCode{dialogue.IssueOrphanedNode},
		},
		{
			name: "condition references unknown quest",
			build: func() *dialogue.Tree {
				tree := greetingTree()
				node := tree.Nodes[1]
				node.Conditions = []dialogue.Condition{
					{Kind: dialogue.CondHasQuest, Quest: &dialogue.QuestCondition{QuestID: 404}},
				}
				tree.AddNode(node)
				return tree
			},
			expected: []dialogue.IssueCode{dialogue.IssueInvalidQuestRef},
		},
		{
			name: "nested condition references unknown item",
			build: func() *dialogue.Tree {
				tree := greetingTree()
				node := tree.Nodes[1]
				node.Choices[0].Conditions = []dialogue.Condition{
					{Kind: dialogue.CondNot, Negated: &dialogue.Condition{
						Kind: dialogue.CondAnd,
						Children: []dialogue.Condition{
							{Kind: dialogue.CondHasItem, Item: &dialogue.ItemCondition{ItemID: 404, Quantity: 1}},
						},
					}},
				}
				tree.AddNode(node)
				return tree
			},
			expected: []dialogue.IssueCode{dialogue.IssueInvalidItemRef},
		},
		{
			name: "action references unknown quest and item",
			build: func() *dialogue.Tree {
				tree := greetingTree()
				node := tree.Nodes[2]
				node.Actions = []dialogue.Action{
					{Kind: dialogue.ActStartQuest, Quest: &dialogue.QuestAction{QuestID: 404}},
					{Kind: dialogue.ActGiveItems, Items: &dialogue.ItemsAction{
						Items: []dialogue.ItemStack{{ItemID: 404, Quantity: 1}},
					}},
				}
				tree.AddNode(node)
				return tree
			},
			expected: []dialogue.IssueCode{dialogue.IssueInvalidQuestRef, dialogue.IssueInvalidItemRef},
		},
		{
			name: "known references pass",
			build: func() *dialogue.Tree {
				tree := greetingTree()
				node := tree.Nodes[1]
				node.Conditions = []dialogue.Condition{
					{Kind: dialogue.CondQuestStage, Quest: &dialogue.QuestCondition{QuestID: 1, StageNumber: 1}},
					{Kind: dialogue.CondHasItem, Item: &dialogue.ItemCondition{ItemID: 10, Quantity: 1}},
				}
				tree.AddNode(node)
				return tree
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := dialogue.Validate(tt.build(), quests, items)
			assert.ElementsMatch(t, tt.expected, codes(issues))
		})
	}
}

// Two nodes looping back and forth are fine as long as one of them offers a
// way out; removing the ending choice turns the loop into an error.
func TestValidate_CycleEscape(t *testing.T) {
	quests := fixtureQuests(t)
	items := fixtureItems(t)

	loopTree := func(withEscape bool) *dialogue.Tree {
		tree := dialogue.NewTree(1, "Sage", 1)
		first := dialogue.Node{
			ID:   1,
			Text: "Ask me anything.",
			Choices: []dialogue.Choice{
				{Text: "Tell me more.", TargetNode: ptr(types.NodeID(2))},
			},
		}
		if withEscape {
			first.Choices = append(first.Choices, dialogue.Choice{
				Text:         "Enough for today.",
				EndsDialogue: true,
			})
		}
		tree.AddNode(first)
		tree.AddNode(dialogue.Node{
			ID:   2,
			Text: "The stars say much.",
			Choices: []dialogue.Choice{
				{Text: "Go on.", TargetNode: ptr(types.NodeID(1))},
			},
		})
		return tree
	}

	t.Run("escapable cycle is legal", func(t *testing.T) {
		issues := dialogue.Validate(loopTree(true), quests, items)
		assert.NotContains(t, codes(issues), dialogue.IssueCircularReference)
	})

	t.Run("inescapable cycle is reported", func(t *testing.T) {
		issues := dialogue.Validate(loopTree(false), quests, items)
		assert.Contains(t, codes(issues), dialogue.IssueCircularReference)
	})
}

func TestNode_IsTerminating(t *testing.T) {
	tests := []struct {
		name     string
		node     dialogue.Node
		expected bool
	}{
		{
			name:     "terminal flag",
			node:     dialogue.Node{IsTerminal: true},
			expected: true,
		},
		{
			name: "choice that ends dialogue",
			node: dialogue.Node{Choices: []dialogue.Choice{
				{Text: "Bye", EndsDialogue: true, TargetNode: ptr(types.NodeID(2))},
			}},
			expected: true,
		},
		{
			name: "choice with no target ends implicitly",
			node: dialogue.Node{Choices: []dialogue.Choice{
				{Text: "Bye"},
			}},
			expected: true,
		},
		{
			name: "all choices continue",
			node: dialogue.Node{Choices: []dialogue.Choice{
				{Text: "More", TargetNode: ptr(types.NodeID(2))},
			}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.node.IsTerminating())
		})
	}
}
