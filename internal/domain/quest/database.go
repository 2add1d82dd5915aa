package quest

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// Database is the keyed store of quest definitions.
type Database struct {
	quests map[types.QuestID]Quest
}

// NewDatabase creates an empty quest database.
func NewDatabase() *Database {
	return &Database{quests: make(map[types.QuestID]Quest)}
}

// LoadFromFile loads quest definitions from a JSON file.
func LoadFromFile(path string) (*Database, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeReadError, "failed to read quest file")
	}
	return LoadFromString(string(contents))
}

// LoadFromString loads quest definitions from a JSON string.
func LoadFromString(contents string) (*Database, error) {
	var definitions []Quest
	if err := json.Unmarshal([]byte(contents), &definitions); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeParseError, "failed to parse quest data")
	}

	db := NewDatabase()
	for _, def := range definitions {
		if err := db.Add(def); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Add inserts a definition, validating it and rejecting duplicate IDs.
func (db *Database) Add(q Quest) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if _, exists := db.quests[q.ID]; exists {
		return apperr.DuplicateIDf("duplicate quest ID: %d", q.ID)
	}
	db.quests[q.ID] = q
	return nil
}

// Remove deletes a definition and reports whether it existed.
func (db *Database) Remove(id types.QuestID) bool {
	if _, exists := db.quests[id]; !exists {
		return false
	}
	delete(db.quests, id)
	return true
}

// Get returns the definition for an ID.
func (db *Database) Get(id types.QuestID) (Quest, bool) {
	q, ok := db.quests[id]
	return q, ok
}

// Has reports whether an ID resolves.
func (db *Database) Has(id types.QuestID) bool {
	_, ok := db.quests[id]
	return ok
}

// All returns every definition sorted by ID.
func (db *Database) All() []Quest {
	out := make([]Quest, 0, len(db.quests))
	for _, q := range db.quests {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// MainQuests returns every main-storyline quest sorted by ID.
func (db *Database) MainQuests() []Quest {
	var out []Quest
	for _, q := range db.quests {
		if q.IsMainQuest {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ForLevel returns quests available to a character of the given level,
// sorted by ID. Editor browsing helper.
func (db *Database) ForLevel(level uint8) []Quest {
	var out []Quest
	for _, q := range db.quests {
		if q.MinLevel != nil && level < *q.MinLevel {
			continue
		}
		if q.MaxLevel != nil && level > *q.MaxLevel {
			continue
		}
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of definitions.
func (db *Database) Len() int {
	return len(db.quests)
}

// IsEmpty reports whether the database holds no definitions.
func (db *Database) IsEmpty() bool {
	return len(db.quests) == 0
}

// Merge inserts every definition from other, failing on duplicate IDs.
func (db *Database) Merge(other *Database) error {
	for _, q := range other.All() {
		if err := db.Add(q); err != nil {
			return err
		}
	}
	return nil
}

// Replace inserts or overwrites a definition. Used by campaign overrides.
func (db *Database) Replace(q Quest) error {
	if err := q.Validate(); err != nil {
		return err
	}
	db.quests[q.ID] = q
	return nil
}
