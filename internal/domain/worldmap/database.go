package worldmap

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// Database is the keyed store of map definitions.
type Database struct {
	maps map[types.MapID]Definition
}

// NewDatabase creates an empty map database.
func NewDatabase() *Database {
	return &Database{maps: make(map[types.MapID]Definition)}
}

// LoadFromFile loads map definitions from a JSON file.
func LoadFromFile(path string) (*Database, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeReadError, "failed to read map file")
	}
	return LoadFromString(string(contents))
}

// LoadFromString loads map definitions from a JSON string.
func LoadFromString(contents string) (*Database, error) {
	var definitions []Definition
	if err := json.Unmarshal([]byte(contents), &definitions); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeParseError, "failed to parse map data")
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
	if _, exists := db.maps[def.ID]; exists {
		return apperr.DuplicateIDf("duplicate map ID: %d", def.ID)
	}
	db.maps[def.ID] = def
	return nil
}

// Remove deletes a definition and reports whether it existed.
func (db *Database) Remove(id types.MapID) bool {
	if _, exists := db.maps[id]; !exists {
		return false
	}
	delete(db.maps, id)
	return true
}

// Get returns the definition for an ID.
func (db *Database) Get(id types.MapID) (Definition, bool) {
	def, ok := db.maps[id]
	return def, ok
}

// Has reports whether an ID resolves.
func (db *Database) Has(id types.MapID) bool {
	_, ok := db.maps[id]
	return ok
}

// All returns every definition sorted by ID.
func (db *Database) All() []Definition {
	out := make([]Definition, 0, len(db.maps))
	for _, def := range db.maps {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of definitions.
func (db *Database) Len() int {
	return len(db.maps)
}

// IsEmpty reports whether the database holds no definitions.
func (db *Database) IsEmpty() bool {
	return len(db.maps) == 0
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
	db.maps[def.ID] = def
	return nil
}
