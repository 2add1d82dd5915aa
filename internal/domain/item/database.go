package item

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// Database is the keyed store of item definitions.
type Database struct {
	items map[types.ItemID]Item
}

// NewDatabase creates an empty item database.
func NewDatabase() *Database {
	return &Database{items: make(map[types.ItemID]Item)}
}

// LoadFromFile loads item definitions from a JSON file.
func LoadFromFile(path string) (*Database, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeReadError, "failed to read item file")
	}
	return LoadFromString(string(contents))
}

// LoadFromString loads item definitions from a JSON string.
func LoadFromString(contents string) (*Database, error) {
	var definitions []Item
	if err := json.Unmarshal([]byte(contents), &definitions); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeParseError, "failed to parse item data")
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
func (db *Database) Add(def Item) error {
	if err := def.Validate(); err != nil {
		return err
	}
	if _, exists := db.items[def.ID]; exists {
		return apperr.DuplicateIDf("duplicate item ID: %d", def.ID)
	}
	db.items[def.ID] = def
	return nil
}

// Remove deletes a definition and reports whether it existed.
func (db *Database) Remove(id types.ItemID) bool {
	if _, exists := db.items[id]; !exists {
		return false
	}
	delete(db.items, id)
	return true
}

// Get returns the definition for an ID.
func (db *Database) Get(id types.ItemID) (Item, bool) {
	def, ok := db.items[id]
	return def, ok
}

// Has reports whether an ID resolves.
func (db *Database) Has(id types.ItemID) bool {
	_, ok := db.items[id]
	return ok
}

// All returns every definition sorted by ID.
func (db *Database) All() []Item {
	out := make([]Item, 0, len(db.items))
	for _, def := range db.items {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ByKind returns every definition of one kind sorted by ID.
func (db *Database) ByKind(kind Kind) []Item {
	var out []Item
	for _, def := range db.items {
		if def.ItemType.Kind == kind {
			out = append(out, def)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// FindByName returns items whose name contains the given substring,
// case-insensitively, sorted by ID. Editor suggestion helper.
func (db *Database) FindByName(substring string) []Item {
	needle := strings.ToLower(substring)
	var out []Item
	for _, def := range db.items {
		if strings.Contains(strings.ToLower(def.Name), needle) {
			out = append(out, def)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of definitions.
func (db *Database) Len() int {
	return len(db.items)
}

// IsEmpty reports whether the database holds no definitions.
func (db *Database) IsEmpty() bool {
	return len(db.items) == 0
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
func (db *Database) Replace(def Item) error {
	if err := def.Validate(); err != nil {
		return err
	}
	db.items[def.ID] = def
	return nil
}
