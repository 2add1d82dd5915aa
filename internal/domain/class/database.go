package class

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// Database is the keyed store of class definitions.
type Database struct {
	classes map[types.ClassID]Definition
}

// NewDatabase creates an empty class database.
func NewDatabase() *Database {
	return &Database{classes: make(map[types.ClassID]Definition)}
}

// LoadFromFile loads class definitions from a JSON file.
func LoadFromFile(path string) (*Database, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeReadError, "failed to read class file")
	}
	return LoadFromString(string(contents))
}

// LoadFromString loads class definitions from a JSON string.
func LoadFromString(contents string) (*Database, error) {
	var definitions []Definition
	if err := json.Unmarshal([]byte(contents), &definitions); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeParseError, "failed to parse class data")
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
	if _, exists := db.classes[def.ID]; exists {
		return apperr.DuplicateIDf("duplicate class ID: %s", def.ID)
	}
	db.classes[def.ID] = def
	return nil
}

// Remove deletes a definition and reports whether it existed.
func (db *Database) Remove(id types.ClassID) bool {
	if _, exists := db.classes[id]; !exists {
		return false
	}
	delete(db.classes, id)
	return true
}

// Get returns the definition for an ID.
func (db *Database) Get(id types.ClassID) (Definition, bool) {
	def, ok := db.classes[id]
	return def, ok
}

// Has reports whether an ID resolves.
func (db *Database) Has(id types.ClassID) bool {
	_, ok := db.classes[id]
	return ok
}

// All returns every definition sorted by ID.
func (db *Database) All() []Definition {
	out := make([]Definition, 0, len(db.classes))
	for _, def := range db.classes {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of definitions.
func (db *Database) Len() int {
	return len(db.classes)
}

// IsEmpty reports whether the database holds no definitions.
func (db *Database) IsEmpty() bool {
	return len(db.classes) == 0
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
	db.classes[def.ID] = def
	return nil
}
