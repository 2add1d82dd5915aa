package race

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// Database is the keyed store of race definitions.
type Database struct {
	races map[types.RaceID]Definition
}

// NewDatabase creates an empty race database.
func NewDatabase() *Database {
	return &Database{races: make(map[types.RaceID]Definition)}
}

// LoadFromFile loads race definitions from a JSON file.
func LoadFromFile(path string) (*Database, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeReadError, "failed to read race file")
	}
	return LoadFromString(string(contents))
}

// LoadFromString loads race definitions from a JSON string.
func LoadFromString(contents string) (*Database, error) {
	var definitions []Definition
	if err := json.Unmarshal([]byte(contents), &definitions); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeParseError, "failed to parse race data")
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
	if _, exists := db.races[def.ID]; exists {
		return apperr.DuplicateIDf("duplicate race ID: %s", def.ID)
	}
	db.races[def.ID] = def
	return nil
}

// Remove deletes a definition and reports whether it existed.
func (db *Database) Remove(id types.RaceID) bool {
	if _, exists := db.races[id]; !exists {
		return false
	}
	delete(db.races, id)
	return true
}

// Get returns the definition for an ID.
func (db *Database) Get(id types.RaceID) (Definition, bool) {
	def, ok := db.races[id]
	return def, ok
}

// Has reports whether an ID resolves.
func (db *Database) Has(id types.RaceID) bool {
	_, ok := db.races[id]
	return ok
}

// All returns every definition sorted by ID.
func (db *Database) All() []Definition {
	out := make([]Definition, 0, len(db.races))
	for _, def := range db.races {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of definitions.
func (db *Database) Len() int {
	return len(db.races)
}

// IsEmpty reports whether the database holds no definitions.
func (db *Database) IsEmpty() bool {
	return len(db.races) == 0
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
	db.races[def.ID] = def
	return nil
}
