package spell

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/antaresengine/antares/internal/domain/class"
	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// Database is the keyed store of spell definitions.
type Database struct {
	spells map[types.SpellID]Definition
}

// NewDatabase creates an empty spell database.
func NewDatabase() *Database {
	return &Database{spells: make(map[types.SpellID]Definition)}
}

// LoadFromFile loads spell definitions from a JSON file.
func LoadFromFile(path string) (*Database, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeReadError, "failed to read spell file")
	}
	return LoadFromString(string(contents))
}

// LoadFromString loads spell definitions from a JSON string.
func LoadFromString(contents string) (*Database, error) {
	var definitions []Definition
	if err := json.Unmarshal([]byte(contents), &definitions); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeParseError, "failed to parse spell data")
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
	if _, exists := db.spells[def.ID]; exists {
		return apperr.DuplicateIDf("duplicate spell ID: %d", def.ID)
	}
	db.spells[def.ID] = def
	return nil
}

// Remove deletes a definition and reports whether it existed.
func (db *Database) Remove(id types.SpellID) bool {
	if _, exists := db.spells[id]; !exists {
		return false
	}
	delete(db.spells, id)
	return true
}

// Get returns the definition for an ID.
func (db *Database) Get(id types.SpellID) (Definition, bool) {
	def, ok := db.spells[id]
	return def, ok
}

// Has reports whether an ID resolves.
func (db *Database) Has(id types.SpellID) bool {
	_, ok := db.spells[id]
	return ok
}

// All returns every definition sorted by ID.
func (db *Database) All() []Definition {
	out := make([]Definition, 0, len(db.spells))
	for _, def := range db.spells {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// BySchool returns spells of one school sorted by ID. Editor browsing helper.
func (db *Database) BySchool(school class.SpellSchool) []Definition {
	var out []Definition
	for _, def := range db.spells {
		if def.School == school {
			out = append(out, def)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ByLevel returns spells of one level sorted by ID. Editor browsing helper.
func (db *Database) ByLevel(level uint8) []Definition {
	var out []Definition
	for _, def := range db.spells {
		if def.Level == level {
			out = append(out, def)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of definitions.
func (db *Database) Len() int {
	return len(db.spells)
}

// IsEmpty reports whether the database holds no definitions.
func (db *Database) IsEmpty() bool {
	return len(db.spells) == 0
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
	db.spells[def.ID] = def
	return nil
}
