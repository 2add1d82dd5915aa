package visual

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// Database is the keyed store of creature visual definitions.
type Database struct {
	creatures map[types.CreatureID]CreatureDefinition
}

// NewDatabase creates an empty creature database.
func NewDatabase() *Database {
	return &Database{creatures: make(map[types.CreatureID]CreatureDefinition)}
}

// CreatureReference points a registry entry at its per-creature file.
// Filepath is relative to the content base directory.
type CreatureReference struct {
	ID       types.CreatureID `json:"id"`
	Name     string           `json:"name"`
	Filepath string           `json:"filepath"`
}

// LoadFromFile loads creatures from a JSON file. The file may be either a
// registry of per-creature file references or a flat list of definitions;
// the registry form is tried first. basePath resolves registry file paths.
func LoadFromFile(path, basePath string) (*Database, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeReadError, "failed to read creature file")
	}

	if db, err := loadFromRegistry(contents, basePath); err == nil {
		return db, nil
	}
	return LoadFromString(string(contents))
}

// LoadFromString loads a flat list of creature definitions from JSON.
func LoadFromString(contents string) (*Database, error) {
	var definitions []CreatureDefinition
	if err := json.Unmarshal([]byte(contents), &definitions); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeParseError, "failed to parse creature data")
	}

	db := NewDatabase()
	for i := range definitions {
		if err := db.Add(definitions[i]); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func loadFromRegistry(contents []byte, basePath string) (*Database, error) {
	var refs []CreatureReference
	if err := json.Unmarshal(contents, &refs); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeParseError, "failed to parse creature registry")
	}
	for _, ref := range refs {
		// A flat definition list also parses as references with empty
		// filepaths; reject so the caller falls back.
		if ref.Filepath == "" {
			return nil, apperr.ParseErrorf("registry entry missing filepath")
		}
	}

	db := NewDatabase()
	for _, ref := range refs {
		data, err := os.ReadFile(filepath.Join(basePath, ref.Filepath))
		if err != nil {
			return nil, apperr.WrapWithCode(err, apperr.CodeReadError, "failed to read creature "+ref.Filepath)
		}
		var def CreatureDefinition
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, apperr.WrapWithCode(err, apperr.CodeParseError, "failed to parse creature "+ref.Filepath)
		}
		if err := db.Add(def); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Add inserts a definition, validating it and rejecting duplicate IDs.
func (db *Database) Add(def CreatureDefinition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	if _, exists := db.creatures[def.ID]; exists {
		return apperr.DuplicateIDf("duplicate creature ID: %d", def.ID)
	}
	db.creatures[def.ID] = def
	return nil
}

// Remove deletes a definition and reports whether it existed.
func (db *Database) Remove(id types.CreatureID) bool {
	if _, exists := db.creatures[id]; !exists {
		return false
	}
	delete(db.creatures, id)
	return true
}

// Get returns the definition for an ID.
func (db *Database) Get(id types.CreatureID) (CreatureDefinition, bool) {
	def, ok := db.creatures[id]
	return def, ok
}

// Has reports whether an ID resolves.
func (db *Database) Has(id types.CreatureID) bool {
	_, ok := db.creatures[id]
	return ok
}

// ByName returns the first creature with the given display name.
func (db *Database) ByName(name string) (CreatureDefinition, bool) {
	for _, def := range db.All() {
		if def.Name == name {
			return def, true
		}
	}
	return CreatureDefinition{}, false
}

// All returns every definition sorted by ID.
func (db *Database) All() []CreatureDefinition {
	out := make([]CreatureDefinition, 0, len(db.creatures))
	for _, def := range db.creatures {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of definitions.
func (db *Database) Len() int {
	return len(db.creatures)
}

// IsEmpty reports whether the database holds no definitions.
func (db *Database) IsEmpty() bool {
	return len(db.creatures) == 0
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

// Replace upserts a definition, overwriting any existing ID.
func (db *Database) Replace(def CreatureDefinition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	db.creatures[def.ID] = def
	return nil
}

// Validate re-checks every stored definition.
func (db *Database) Validate() error {
	for _, def := range db.All() {
		if err := def.Validate(); err != nil {
			return err
		}
	}
	return nil
}
