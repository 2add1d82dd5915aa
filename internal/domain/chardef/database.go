package chardef

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// Database is the keyed store of character definitions.
type Database struct {
	definitions map[types.CharacterDefID]CharacterDefinition
}

// NewDatabase creates an empty character definition database.
func NewDatabase() *Database {
	return &Database{definitions: make(map[types.CharacterDefID]CharacterDefinition)}
}

// LoadFromFile loads character definitions from a JSON file.
func LoadFromFile(path string) (*Database, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeReadError, "failed to read character file")
	}
	return LoadFromString(string(contents))
}

// LoadFromString loads character definitions from a JSON string.
func LoadFromString(contents string) (*Database, error) {
	var definitions []CharacterDefinition
	if err := json.Unmarshal([]byte(contents), &definitions); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeParseError, "failed to parse character data")
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
func (db *Database) Add(def CharacterDefinition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	if _, exists := db.definitions[def.ID]; exists {
		return apperr.DuplicateIDf("duplicate character ID: %s", def.ID)
	}
	db.definitions[def.ID] = def
	return nil
}

// Remove deletes a definition and reports whether it existed.
func (db *Database) Remove(id types.CharacterDefID) bool {
	if _, exists := db.definitions[id]; !exists {
		return false
	}
	delete(db.definitions, id)
	return true
}

// Get returns the definition for an ID.
func (db *Database) Get(id types.CharacterDefID) (CharacterDefinition, bool) {
	def, ok := db.definitions[id]
	return def, ok
}

// Has reports whether an ID resolves.
func (db *Database) Has(id types.CharacterDefID) bool {
	_, ok := db.definitions[id]
	return ok
}

// All returns every definition sorted by ID.
func (db *Database) All() []CharacterDefinition {
	out := make([]CharacterDefinition, 0, len(db.definitions))
	for _, def := range db.definitions {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PremadeCharacters returns the definitions players can pick at party
// creation, sorted by ID.
func (db *Database) PremadeCharacters() []CharacterDefinition {
	var out []CharacterDefinition
	for _, def := range db.definitions {
		if def.IsPremade {
			out = append(out, def)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// TemplateCharacters returns the non-premade definitions used as NPC and
// recruit templates, sorted by ID.
func (db *Database) TemplateCharacters() []CharacterDefinition {
	var out []CharacterDefinition
	for _, def := range db.definitions {
		if !def.IsPremade {
			out = append(out, def)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of definitions.
func (db *Database) Len() int {
	return len(db.definitions)
}

// IsEmpty reports whether the database holds no definitions.
func (db *Database) IsEmpty() bool {
	return len(db.definitions) == 0
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
func (db *Database) Replace(def CharacterDefinition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	db.definitions[def.ID] = def
	return nil
}
