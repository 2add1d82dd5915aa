package dialogue

import (
	"fmt"
	"sort"
	"strings"

	"github.com/antaresengine/antares/internal/domain/item"
	"github.com/antaresengine/antares/internal/domain/quest"
	"github.com/antaresengine/antares/internal/domain/types"
)

// IssueCode identifies a class of dialogue validation problem.
type IssueCode string

const (
	IssueNoNodes              IssueCode = "no_nodes"
	IssueRootNodeMissing      IssueCode = "root_node_missing"
	IssueEmptyNodeText        IssueCode = "empty_node_text"
	IssueTerminalWithChoices  IssueCode = "terminal_node_with_choices"
	IssueNonTerminalNoChoices IssueCode = "non_terminal_node_without_choices"
	IssueInvalidChoiceTarget  IssueCode = "invalid_choice_target"
	IssueEmptyChoiceText      IssueCode = "empty_choice_text"
	IssueInvalidQuestRef      IssueCode = "invalid_quest_reference"
	IssueInvalidItemRef       IssueCode = "invalid_item_reference"
	IssueOrphanedNode         IssueCode = "orphaned_node"
	IssueCircularReference    IssueCode = "circular_reference"
)

// Issue is one validation finding. OrphanedNode is a warning in practice but
// is still returned so tools can surface it.
type Issue struct {
	DialogueID types.DialogueID
	NodeID     types.NodeID
	Code       IssueCode
	Message    string
}

func (i Issue) String() string {
	return fmt.Sprintf("dialogue %d: %s", i.DialogueID, i.Message)
}

// Validate checks a dialogue tree against the content databases and returns
// every issue found. Only an empty tree or a missing root short-circuits,
// since graph checks are meaningless without them. Nodes are visited in ID
// order so tool output is deterministic.
func Validate(tree *Tree, quests *quest.Database, items *item.Database) []Issue {
	var issues []Issue
	report := func(node types.NodeID, code IssueCode, format string, args ...any) {
		issues = append(issues, Issue{
			DialogueID: tree.ID,
			NodeID:     node,
			Code:       code,
			Message:    fmt.Sprintf(format, args...),
		})
	}

	if len(tree.Nodes) == 0 {
		report(0, IssueNoNodes, "dialogue has no nodes")
		return issues
	}
	if _, ok := tree.Nodes[tree.RootNode]; !ok {
		report(tree.RootNode, IssueRootNodeMissing, "root node %d does not exist", tree.RootNode)
		return issues
	}

	for _, id := range sortedNodeIDs(tree) {
		node := tree.Nodes[id]

		if strings.TrimSpace(node.Text) == "" {
			report(id, IssueEmptyNodeText, "node %d has empty text", id)
		}
		if node.IsTerminal && len(node.Choices) > 0 {
			report(id, IssueTerminalWithChoices, "node %d is terminal but has choices", id)
		}
		if !node.IsTerminal && len(node.Choices) == 0 {
			report(id, IssueNonTerminalNoChoices, "node %d has no choices and is not terminal", id)
		}

		for idx, choice := range node.Choices {
			if strings.TrimSpace(choice.Text) == "" {
				report(id, IssueEmptyChoiceText, "node %d choice %d has empty text", id, idx)
			}
			if choice.TargetNode != nil {
				if _, ok := tree.Nodes[*choice.TargetNode]; !ok {
					report(id, IssueInvalidChoiceTarget,
						"node %d choice %d targets missing node %d", id, idx, *choice.TargetNode)
				}
			}
			validateConditions(id, choice.Conditions, quests, items, report)
			validateActions(id, choice.Actions, quests, items, report)
		}

		validateConditions(id, node.Conditions, quests, items, report)
		validateActions(id, node.Actions, quests, items, report)
	}

	reachable := reachableNodes(tree)
	for _, id := range sortedNodeIDs(tree) {
		if !reachable[id] {
			report(id, IssueOrphanedNode, "node %d is unreachable from the root", id)
		}
	}

	for _, id := range inescapableCycles(tree) {
		report(id, IssueCircularReference, "node %d starts a cycle with no path to an ending", id)
	}

	return issues
}

func validateConditions(
	node types.NodeID,
	conditions []Condition,
	quests *quest.Database,
	items *item.Database,
	report func(types.NodeID, IssueCode, string, ...any),
) {
	for _, cond := range conditions {
		switch cond.Kind {
		case CondHasQuest, CondCompletedQuest, CondQuestStage:
			if cond.Quest != nil && !quests.Has(cond.Quest.QuestID) {
				report(node, IssueInvalidQuestRef,
					"node %d condition references unknown quest %d", node, cond.Quest.QuestID)
			}
		case CondHasItem:
			if cond.Item != nil && !items.Has(cond.Item.ItemID) {
				report(node, IssueInvalidItemRef,
					"node %d condition references unknown item %d", node, cond.Item.ItemID)
			}
		case CondAnd, CondOr:
			validateConditions(node, cond.Children, quests, items, report)
		case CondNot:
			if cond.Negated != nil {
				validateConditions(node, []Condition{*cond.Negated}, quests, items, report)
			}
		}
	}
}

func validateActions(
	node types.NodeID,
	actions []Action,
	quests *quest.Database,
	items *item.Database,
	report func(types.NodeID, IssueCode, string, ...any),
) {
	for _, act := range actions {
		switch act.Kind {
		case ActStartQuest, ActCompleteQuestStage:
			if act.Quest != nil && !quests.Has(act.Quest.QuestID) {
				report(node, IssueInvalidQuestRef,
					"node %d action references unknown quest %d", node, act.Quest.QuestID)
			}
		case ActGiveItems, ActTakeItems:
			if act.Items == nil {
				continue
			}
			for _, stack := range act.Items.Items {
				if !items.Has(stack.ItemID) {
					report(node, IssueInvalidItemRef,
						"node %d action references unknown item %d", node, stack.ItemID)
				}
			}
		}
	}
}

// reachableNodes walks choice targets breadth-first from the root.
func reachableNodes(tree *Tree) map[types.NodeID]bool {
	reachable := make(map[types.NodeID]bool, len(tree.Nodes))
	queue := []types.NodeID{tree.RootNode}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if reachable[id] {
			continue
		}
		reachable[id] = true

		node, ok := tree.Nodes[id]
		if !ok {
			continue
		}
		for _, choice := range node.Choices {
			if choice.TargetNode != nil && !reachable[*choice.TargetNode] {
				queue = append(queue, *choice.TargetNode)
			}
		}
	}
	return reachable
}

// inescapableCycles finds back edges by DFS and keeps only cycle entry nodes
// from which no ending is reachable. Loops the player can leave ("Tell me
// more" and back) are legal, so a cycle alone is not an error.
func inescapableCycles(tree *Tree) []types.NodeID {
	visited := make(map[types.NodeID]bool)
	onStack := make(map[types.NodeID]bool)
	flagged := make(map[types.NodeID]bool)

	var visit func(id types.NodeID)
	visit = func(id types.NodeID) {
		visited[id] = true
		onStack[id] = true

		node := tree.Nodes[id]
		for _, choice := range node.Choices {
			if choice.TargetNode == nil {
				continue
			}
			target := *choice.TargetNode
			if _, ok := tree.Nodes[target]; !ok {
				continue
			}
			if !visited[target] {
				visit(target)
			} else if onStack[target] && !flagged[target] && !canReachEnding(tree, target) {
				flagged[target] = true
			}
		}
		onStack[id] = false
	}

	for _, id := range sortedNodeIDs(tree) {
		if !visited[id] {
			visit(id)
		}
	}

	out := make([]types.NodeID, 0, len(flagged))
	for id := range flagged {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// canReachEnding walks breadth-first from a node and reports whether any
// reachable node can end the dialogue.
func canReachEnding(tree *Tree, start types.NodeID) bool {
	seen := make(map[types.NodeID]bool)
	queue := []types.NodeID{start}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if seen[id] {
			continue
		}
		seen[id] = true

		node, ok := tree.Nodes[id]
		if !ok {
			continue
		}
		if node.IsTerminating() {
			return true
		}
		for _, choice := range node.Choices {
			if choice.TargetNode != nil && !seen[*choice.TargetNode] {
				queue = append(queue, *choice.TargetNode)
			}
		}
	}
	return false
}

func sortedNodeIDs(tree *Tree) []types.NodeID {
	ids := make([]types.NodeID, 0, len(tree.Nodes))
	for id := range tree.Nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
