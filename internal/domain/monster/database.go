package monster

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// Database is the keyed store of monster definitions.
type Database struct {
	monsters map[types.MonsterID]Definition
}

// NewDatabase creates an empty monster database.
func NewDatabase() *Database {
	return &Database{monsters: make(map[types.MonsterID]Definition)}
}

// LoadFromFile loads monster definitions from a JSON file.
func LoadFromFile(path string) (*Database, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeReadError, "failed to read monster file")
	}
	return LoadFromString(string(contents))
}

// LoadFromString loads monster definitions from a JSON string.
func LoadFromString(contents string) (*Database, error) {
	var definitions []Definition
	if err := json.Unmarshal([]byte(contents), &definitions); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeParseError, "failed to parse monster data")
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
func (db *Database) Add(def Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	if _, exists := db.monsters[def.ID]; exists {
		return apperr.DuplicateIDf("duplicate monster ID: %d", def.ID)
	}
	db.monsters[def.ID] = def
	return nil
}

// Remove deletes a definition and reports whether it existed.
func (db *Database) Remove(id types.MonsterID) bool {
	if _, exists := db.monsters[id]; !exists {
		return false
	}
	delete(db.monsters, id)
	return true
}

// Get returns the definition for an ID.
func (db *Database) Get(id types.MonsterID) (Definition, bool) {
	def, ok := db.monsters[id]
	return def, ok
}

// Has reports whether an ID resolves.
func (db *Database) Has(id types.MonsterID) bool {
	_, ok := db.monsters[id]
	return ok
}

// All returns every definition sorted by ID.
func (db *Database) All() []Definition {
	out := make([]Definition, 0, len(db.monsters))
	for _, def := range db.monsters {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ByHPRange returns monsters whose base HP falls inside [min, max]. Editor
// browsing helper for encounter balancing.
func (db *Database) ByHPRange(min, max uint16) []Definition {
	var out []Definition
	for _, def := range db.monsters {
		if def.HP.Base >= min && def.HP.Base <= max {
			out = append(out, def)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of definitions.
func (db *Database) Len() int {
	return len(db.monsters)
}

// IsEmpty reports whether the database holds no definitions.
func (db *Database) IsEmpty() bool {
	return len(db.monsters) == 0
}

// Merge inserts every definition from other, failing on duplicate IDs.
func (db *Database) Merge(other *Database) error {
	for _, def := range other.All() {
		if err := db.Add(def); err != nil {
			return err
		}
	}
	return nil
}

// Replace inserts or overwrites a definition. Used by campaign overrides.
func (db *Database) Replace(def Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	db.monsters[def.ID] = def
	return nil
}
