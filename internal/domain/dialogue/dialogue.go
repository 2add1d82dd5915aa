// Package dialogue defines NPC dialogue trees, their keyed database, and the
// validator used by authoring tools.
package dialogue

import (
	"fmt"

	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// ItemStack pairs an item with a quantity for give/take actions.
type ItemStack struct {
	ItemID   types.ItemID `json:"item_id"`
	Quantity uint16       `json:"quantity"`
}

// Choice is one player option offered by a node. A nil TargetNode ends the
// dialogue when selected.
type Choice struct {
	Text       string        `json:"text"`
	TargetNode *types.NodeID `json:"target_node,omitempty"`
	Conditions []Condition   `json:"conditions,omitempty"`
	Actions    []Action      `json:"actions,omitempty"`

	EndsDialogue bool `json:"ends_dialogue"`
}

// Ends reports whether selecting this choice closes the dialogue.
func (c *Choice) Ends() bool {
	return c.EndsDialogue || c.TargetNode == nil
}

// Node is one NPC line plus the choices offered to the player.
type Node struct {
	ID   types.NodeID `json:"id"`
	Text string       `json:"text"`

	// SpeakerOverride replaces the tree's default speaker for this node
	SpeakerOverride *string `json:"speaker_override,omitempty"`

	Choices    []Choice    `json:"choices,omitempty"`
	Conditions []Condition `json:"conditions,omitempty"`
	Actions    []Action    `json:"actions,omitempty"`

	IsTerminal bool `json:"is_terminal"`
}

// IsTerminating reports whether the dialogue can end at this node: either the
// node is terminal or one of its choices closes the dialogue.
func (n *Node) IsTerminating() bool {
	if n.IsTerminal {
		return true
	}
	for i := range n.Choices {
		if n.Choices[i].Ends() {
			return true
		}
	}
	return false
}

// Tree is a dialogue loaded from content files. Nodes form a directed graph
// that may contain cycles as long as the player can always reach an ending.
type Tree struct {
	ID   types.DialogueID `json:"id"`
	Name string           `json:"name"`

	RootNode types.NodeID          `json:"root_node"`
	Nodes    map[types.NodeID]Node `json:"nodes"`

	SpeakerName *string `json:"speaker_name,omitempty"`
	Repeatable  bool    `json:"repeatable"`

	AssociatedQuest *types.QuestID `json:"associated_quest,omitempty"`
}

// NewTree creates an empty repeatable dialogue rooted at the given node.
func NewTree(id types.DialogueID, name string, rootNode types.NodeID) *Tree {
	return &Tree{
		ID:         id,
		Name:       name,
		RootNode:   rootNode,
		Nodes:      make(map[types.NodeID]Node),
		Repeatable: true,
	}
}

// AddNode inserts or overwrites a node.
func (t *Tree) AddNode(n Node) {
	if t.Nodes == nil {
		t.Nodes = make(map[types.NodeID]Node)
	}
	t.Nodes[n.ID] = n
}

// Node returns the node with the given ID.
func (t *Tree) Node(id types.NodeID) (Node, bool) {
	n, ok := t.Nodes[id]
	return n, ok
}

// Validate checks the invariants a tree needs before it can be added to a
// database. Graph structure is checked by the package-level Validate.
func (t *Tree) Validate() error {
	if t.Name == "" {
		return apperr.Validationf("dialogue %d has an empty name", t.ID)
	}
	return nil
}

func (t *Tree) String() string {
	return fmt.Sprintf("dialogue %d (%s, %d nodes)", t.ID, t.Name, len(t.Nodes))
}
