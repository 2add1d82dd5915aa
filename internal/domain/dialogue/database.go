package dialogue

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// Database is the keyed store of dialogue trees.
type Database struct {
	trees map[types.DialogueID]Tree
}

// NewDatabase creates an empty dialogue database.
func NewDatabase() *Database {
	return &Database{trees: make(map[types.DialogueID]Tree)}
}

// LoadFromFile loads dialogue trees from a JSON file.
func LoadFromFile(path string) (*Database, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeReadError, "failed to read dialogue file")
	}
	return LoadFromString(string(contents))
}

// LoadFromString loads dialogue trees from a JSON string.
func LoadFromString(contents string) (*Database, error) {
	var definitions []Tree
	if err := json.Unmarshal([]byte(contents), &definitions); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeParseError, "failed to parse dialogue data")
	}

	db := NewDatabase()
	for _, def := range definitions {
		if err := db.Add(def); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Add inserts a tree, validating it and rejecting duplicate IDs.
func (db *Database) Add(t Tree) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, exists := db.trees[t.ID]; exists {
		return apperr.DuplicateIDf("duplicate dialogue ID: %d", t.ID)
	}
	db.trees[t.ID] = t
	return nil
}

// Remove deletes a tree and reports whether it existed.
func (db *Database) Remove(id types.DialogueID) bool {
	if _, exists := db.trees[id]; !exists {
		return false
	}
	delete(db.trees, id)
	return true
}

// Get returns the tree for an ID.
func (db *Database) Get(id types.DialogueID) (Tree, bool) {
	t, ok := db.trees[id]
	return t, ok
}

// Has reports whether an ID resolves.
func (db *Database) Has(id types.DialogueID) bool {
	_, ok := db.trees[id]
	return ok
}

// All returns every tree sorted by ID.
func (db *Database) All() []Tree {
	out := make([]Tree, 0, len(db.trees))
	for _, t := range db.trees {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ForQuest returns trees associated with a quest, sorted by ID. Editor
// browsing helper.
func (db *Database) ForQuest(id types.QuestID) []Tree {
	var out []Tree
	for _, t := range db.trees {
		if t.AssociatedQuest != nil && *t.AssociatedQuest == id {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of trees.
func (db *Database) Len() int {
	return len(db.trees)
}

// IsEmpty reports whether the database holds no trees.
func (db *Database) IsEmpty() bool {
	return len(db.trees) == 0
}

// Merge inserts every tree from other, failing on duplicate IDs.
func (db *Database) Merge(other *Database) error {
	for _, t := range other.All() {
		if err := db.Add(t); err != nil {
			return err
		}
	}
	return nil
}

// Replace inserts or overwrites a tree. Used by campaign overrides.
func (db *Database) Replace(t Tree) error {
	if err := t.Validate(); err != nil {
		return err
	}
	db.trees[t.ID] = t
	return nil
}
