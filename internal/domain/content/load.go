package content

import (
	"log"
	"os"
	"path/filepath"

	"github.com/antaresengine/antares/internal/domain/chardef"
	"github.com/antaresengine/antares/internal/domain/class"
	"github.com/antaresengine/antares/internal/domain/dialogue"
	"github.com/antaresengine/antares/internal/domain/item"
	"github.com/antaresengine/antares/internal/domain/monster"
	"github.com/antaresengine/antares/internal/domain/proficiency"
	"github.com/antaresengine/antares/internal/domain/quest"
	"github.com/antaresengine/antares/internal/domain/race"
	"github.com/antaresengine/antares/internal/domain/spell"
	"github.com/antaresengine/antares/internal/domain/visual"
	"github.com/antaresengine/antares/internal/domain/worldmap"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// Content file names inside a data directory.
const (
	racesFile         = "races.json"
	classesFile       = "classes.json"
	proficienciesFile = "proficiencies.json"
	itemsFile         = "items.json"
	spellsFile        = "spells.json"
	monstersFile      = "monsters.json"
	mapsFile          = "maps.json"
	questsFile        = "quests.json"
	dialoguesFile     = "dialogues.json"
	charactersFile    = "characters.json"
	creaturesFile     = "creatures.json"

	// ManifestFile sits at the campaign directory root
	ManifestFile = "campaign.json"

	// campaignDataDir holds a campaign's content files
	campaignDataDir = "data"
)

// LoadCore loads the base game content from a data directory. Every content
// file is optional; a missing file leaves that database empty and logs a
// warning so authoring tools can spot accidental omissions.
func LoadCore(basePath string) (*ContentDatabase, error) {
	if _, err := os.Stat(basePath); err != nil {
		return nil, apperr.NotFoundf("data directory %s does not exist", basePath)
	}

	db := NewContentDatabase()
	if err := loadInto(db, basePath); err != nil {
		return nil, err
	}
	return db, nil
}

// LoadCampaign loads core content and then merges a campaign's files over
// it. The campaign manifest's merge mode decides whether same-ID campaign
// entries replace core entries or whether shared IDs abort the load.
func LoadCampaign(basePath, campaignPath string) (*ContentDatabase, error) {
	db, err := LoadCore(basePath)
	if err != nil {
		return nil, err
	}

	manifest, err := LoadManifest(filepath.Join(campaignPath, ManifestFile))
	if err != nil {
		return nil, err
	}
	db.Campaign = manifest

	dataPath := filepath.Join(campaignPath, campaignDataDir)
	if _, err := os.Stat(dataPath); err != nil {
		log.Printf("campaign %s has no data directory, manifest only", manifest.ID)
		return db, nil
	}

	overlay := NewContentDatabase()
	// Campaign proficiency files stand alone, they should not collide with
	// the built-in set during the overlay load.
	overlay.Proficiencies = proficiency.NewDatabase()
	if err := loadInto(overlay, dataPath); err != nil {
		return nil, err
	}

	if err := mergeOverlay(db, overlay, manifest.MergeMode); err != nil {
		return nil, err
	}
	return db, nil
}

// loadInto fills a database from the content files under a directory.
func loadInto(db *ContentDatabase, dir string) error {
	if err := loadFile(dir, racesFile, func(path string) error {
		loaded, err := race.LoadFromFile(path)
		if err != nil {
			return err
		}
		return db.Races.Merge(loaded)
	}); err != nil {
		return err
	}

	if err := loadFile(dir, classesFile, func(path string) error {
		loaded, err := class.LoadFromFile(path)
		if err != nil {
			return err
		}
		return db.Classes.Merge(loaded)
	}); err != nil {
		return err
	}

	// Proficiencies extend the built-in set, so merge instead of replace.
	if err := loadFile(dir, proficienciesFile, func(path string) error {
		loaded, err := proficiency.LoadFromFile(path)
		if err != nil {
			return err
		}
		for _, def := range loaded.All() {
			if err := db.Proficiencies.Replace(def); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if err := loadFile(dir, itemsFile, func(path string) error {
		loaded, err := item.LoadFromFile(path)
		if err != nil {
			return err
		}
		return db.Items.Merge(loaded)
	}); err != nil {
		return err
	}

	if err := loadFile(dir, spellsFile, func(path string) error {
		loaded, err := spell.LoadFromFile(path)
		if err != nil {
			return err
		}
		return db.Spells.Merge(loaded)
	}); err != nil {
		return err
	}

	if err := loadFile(dir, monstersFile, func(path string) error {
		loaded, err := monster.LoadFromFile(path)
		if err != nil {
			return err
		}
		return db.Monsters.Merge(loaded)
	}); err != nil {
		return err
	}

	if err := loadFile(dir, mapsFile, func(path string) error {
		loaded, err := worldmap.LoadFromFile(path)
		if err != nil {
			return err
		}
		return db.Maps.Merge(loaded)
	}); err != nil {
		return err
	}

	if err := loadFile(dir, questsFile, func(path string) error {
		loaded, err := quest.LoadFromFile(path)
		if err != nil {
			return err
		}
		return db.Quests.Merge(loaded)
	}); err != nil {
		return err
	}

	if err := loadFile(dir, dialoguesFile, func(path string) error {
		loaded, err := dialogue.LoadFromFile(path)
		if err != nil {
			return err
		}
		return db.Dialogues.Merge(loaded)
	}); err != nil {
		return err
	}

	if err := loadFile(dir, charactersFile, func(path string) error {
		loaded, err := chardef.LoadFromFile(path)
		if err != nil {
			return err
		}
		return db.Characters.Merge(loaded)
	}); err != nil {
		return err
	}

	// Creature files may be a flat list or a registry of per-creature
	// files resolved against the same directory.
	return loadFile(dir, creaturesFile, func(path string) error {
		loaded, err := visual.LoadFromFile(path, dir)
		if err != nil {
			return err
		}
		return db.Creatures.Merge(loaded)
	})
}

// loadFile runs a loader when the file exists and logs a warning otherwise.
func loadFile(dir, name string, load func(path string) error) error {
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err != nil {
		log.Printf("content file %s not found, database left empty", path)
		return nil
	}
	return load(path)
}

// mergeOverlay lands campaign entries on the core database. Replace mode
// overwrites shared IDs; additive mode treats them as duplicates.
func mergeOverlay(base, overlay *ContentDatabase, mode MergeMode) error {
	if mode == MergeAdditive {
		if err := base.Races.Merge(overlay.Races); err != nil {
			return err
		}
		if err := base.Classes.Merge(overlay.Classes); err != nil {
			return err
		}
		if err := base.Items.Merge(overlay.Items); err != nil {
			return err
		}
		if err := base.Spells.Merge(overlay.Spells); err != nil {
			return err
		}
		if err := base.Monsters.Merge(overlay.Monsters); err != nil {
			return err
		}
		if err := base.Maps.Merge(overlay.Maps); err != nil {
			return err
		}
		if err := base.Quests.Merge(overlay.Quests); err != nil {
			return err
		}
		if err := base.Dialogues.Merge(overlay.Dialogues); err != nil {
			return err
		}
		if err := base.Characters.Merge(overlay.Characters); err != nil {
			return err
		}
		if err := base.Creatures.Merge(overlay.Creatures); err != nil {
			return err
		}
		return mergeProficiencies(base, overlay)
	}

	for _, def := range overlay.Races.All() {
		if err := base.Races.Replace(def); err != nil {
			return err
		}
	}
	for _, def := range overlay.Classes.All() {
		if err := base.Classes.Replace(def); err != nil {
			return err
		}
	}
	for _, def := range overlay.Items.All() {
		if err := base.Items.Replace(def); err != nil {
			return err
		}
	}
	for _, def := range overlay.Spells.All() {
		if err := base.Spells.Replace(def); err != nil {
			return err
		}
	}
	for _, def := range overlay.Monsters.All() {
		if err := base.Monsters.Replace(def); err != nil {
			return err
		}
	}
	for _, def := range overlay.Maps.All() {
		if err := base.Maps.Replace(def); err != nil {
			return err
		}
	}
	for _, q := range overlay.Quests.All() {
		if err := base.Quests.Replace(q); err != nil {
			return err
		}
	}
	for _, t := range overlay.Dialogues.All() {
		if err := base.Dialogues.Replace(t); err != nil {
			return err
		}
	}
	for _, def := range overlay.Characters.All() {
		if err := base.Characters.Replace(def); err != nil {
			return err
		}
	}
	for _, def := range overlay.Creatures.All() {
		if err := base.Creatures.Replace(def); err != nil {
			return err
		}
	}
	return mergeProficiencies(base, overlay)
}

func mergeProficiencies(base, overlay *ContentDatabase) error {
	for _, def := range overlay.Proficiencies.All() {
		if err := base.Proficiencies.Replace(def); err != nil {
			return err
		}
	}
	return nil
}
