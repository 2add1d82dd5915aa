package proficiency

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// Database is the keyed store of proficiency definitions.
type Database struct {
	proficiencies map[types.ProficiencyID]Definition
}

// NewDatabase creates an empty proficiency database.
func NewDatabase() *Database {
	return &Database{
		proficiencies: make(map[types.ProficiencyID]Definition),
	}
}

// LoadFromFile loads proficiency definitions from a JSON file.
func LoadFromFile(path string) (*Database, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeReadError, "failed to read proficiency file")
	}
	return LoadFromString(string(contents))
}

// LoadFromString loads proficiency definitions from a JSON string.
func LoadFromString(contents string) (*Database, error) {
	var definitions []Definition
	if err := json.Unmarshal([]byte(contents), &definitions); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeParseError, "failed to parse proficiency data")
	}

	db := NewDatabase()
	for _, def := range definitions {
		if err := db.Add(def); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Validate checks the definition's internal invariants.
func (d *Definition) Validate() error {
	if d.ID == "" {
		return apperr.Validation("proficiency ID cannot be empty")
	}
	if d.Name == "" {
		return apperr.Validationf("proficiency %q has an empty name", d.ID)
	}
	return nil
}

// Add inserts a definition, rejecting empty and duplicate IDs.
func (db *Database) Add(def Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	if _, exists := db.proficiencies[def.ID]; exists {
		return apperr.DuplicateIDf("duplicate proficiency ID: %s", def.ID)
	}
	db.proficiencies[def.ID] = def
	return nil
}

// Remove deletes a definition and reports whether it existed.
func (db *Database) Remove(id types.ProficiencyID) bool {
	if _, exists := db.proficiencies[id]; !exists {
		return false
	}
	delete(db.proficiencies, id)
	return true
}

// Get returns the definition for an ID.
func (db *Database) Get(id types.ProficiencyID) (Definition, bool) {
	def, ok := db.proficiencies[id]
	return def, ok
}

// Has reports whether an ID resolves.
func (db *Database) Has(id types.ProficiencyID) bool {
	_, ok := db.proficiencies[id]
	return ok
}

// All returns every definition sorted by ID for deterministic iteration.
func (db *Database) All() []Definition {
	out := make([]Definition, 0, len(db.proficiencies))
	for _, def := range db.proficiencies {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of definitions.
func (db *Database) Len() int {
	return len(db.proficiencies)
}

// IsEmpty reports whether the database holds no definitions.
func (db *Database) IsEmpty() bool {
	return len(db.proficiencies) == 0
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
	db.proficiencies[def.ID] = def
	return nil
}

// DefaultDatabase returns the built-in proficiency set matching the
// classification mappings. Campaigns may extend it from content files.
func DefaultDatabase() *Database {
	db := NewDatabase()
	defaults := []Definition{
		{ID: IDSimpleWeapon, Name: "Simple Weapons", Category: CategoryWeapon, Description: "Daggers, clubs, staves"},
		{ID: IDMartialMelee, Name: "Martial Melee Weapons", Category: CategoryWeapon, Description: "Swords, axes, maces"},
		{ID: IDMartialRanged, Name: "Martial Ranged Weapons", Category: CategoryWeapon, Description: "Bows, crossbows"},
		{ID: IDBluntWeapon, Name: "Blunt Weapons", Category: CategoryWeapon, Description: "Maces, hammers, flails"},
		{ID: IDUnarmed, Name: "Unarmed Combat", Category: CategoryWeapon, Description: "Fists and natural weapons"},
		{ID: IDLightArmor, Name: "Light Armor", Category: CategoryArmor, Description: "Padded and leather armor"},
		{ID: IDMediumArmor, Name: "Medium Armor", Category: CategoryArmor, Description: "Chain and scale armor"},
		{ID: IDHeavyArmor, Name: "Heavy Armor", Category: CategoryArmor, Description: "Plate armor"},
		{ID: IDShield, Name: "Shields", Category: CategoryShield, Description: "Bucklers and shields"},
		{ID: IDArcaneItem, Name: "Arcane Items", Category: CategoryMagicItem, Description: "Wands, arcane scrolls"},
		{ID: IDDivineItem, Name: "Divine Items", Category: CategoryMagicItem, Description: "Holy symbols, divine scrolls"},
	}
	for _, def := range defaults {
		// Defaults are unique by construction
		_ = db.Add(def)
	}
	return db
}
