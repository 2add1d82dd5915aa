package content

import (
	"encoding/json"
	"os"

	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// ManifestFormatVersion is the campaign.json format this build understands.
const ManifestFormatVersion = 1

// MergeMode controls how campaign entries land on top of core content.
type MergeMode string

const (
	// MergeReplace overwrites core entries that share an ID
	MergeReplace MergeMode = "replace"

	// MergeAdditive only inserts new entries; shared IDs abort the load
	MergeAdditive MergeMode = "additive"
)

// Campaign is the campaign.json manifest at a campaign directory root.
type Campaign struct {
	// FormatVersion guards against manifests from other engine generations
	FormatVersion int `json:"format_version"`

	ID          string `json:"id"`
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`

	StartingMap      types.MapID     `json:"starting_map"`
	StartingPosition types.Position  `json:"starting_position"`
	StartingFacing   types.Direction `json:"starting_facing"`

	// RequiredDataVersion pins the core data release this campaign expects
	RequiredDataVersion string `json:"required_data_version,omitempty"`

	Dependencies []string `json:"dependencies,omitempty"`

	// MergeMode defaults to replace when absent
	MergeMode MergeMode `json:"merge_mode,omitempty"`
}

// LoadManifest reads and checks a campaign.json file.
func LoadManifest(path string) (*Campaign, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeReadError, "failed to read campaign manifest")
	}

	var manifest Campaign
	if err := json.Unmarshal(contents, &manifest); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeParseError, "failed to parse campaign manifest")
	}

	if manifest.FormatVersion != ManifestFormatVersion {
		return nil, apperr.VersionMismatchf(
			"campaign manifest format %d, this build reads %d",
			manifest.FormatVersion, ManifestFormatVersion)
	}
	if manifest.ID == "" {
		return nil, apperr.Validation("campaign manifest is missing an id")
	}
	if manifest.Name == "" {
		return nil, apperr.Validationf("campaign %q is missing a name", manifest.ID)
	}

	switch manifest.MergeMode {
	case "":
		manifest.MergeMode = MergeReplace
	case MergeReplace, MergeAdditive:
	default:
		return nil, apperr.Validationf("campaign %q has unknown merge mode %q", manifest.ID, manifest.MergeMode)
	}

	return &manifest, nil
}
