package visual

import (
	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// CreatureVariation derives a new creature from a base by overriding its
// name, scale, and selected per-mesh colors and scales. Variations are value
// copies; the base definition is never touched.
type CreatureVariation struct {
	BaseCreatureID types.CreatureID `json:"base_creature_id"`
	Name           string           `json:"name"`

	// ScaleOverride replaces the base creature's global scale when set.
	ScaleOverride *float32 `json:"scale_override,omitempty"`

	// MeshColorOverrides maps mesh index to a replacement RGBA color.
	MeshColorOverrides map[int][4]float32 `json:"mesh_color_overrides,omitempty"`

	// MeshScaleOverrides maps mesh index to a replacement transform scale.
	MeshScaleOverrides map[int][3]float32 `json:"mesh_scale_overrides,omitempty"`
}

// NewVariation creates a variation that only renames the base creature.
func NewVariation(baseID types.CreatureID, name string) *CreatureVariation {
	return &CreatureVariation{
		BaseCreatureID:     baseID,
		Name:               name,
		MeshColorOverrides: make(map[int][4]float32),
		MeshScaleOverrides: make(map[int][3]float32),
	}
}

// WithScale sets the global scale override.
func (v *CreatureVariation) WithScale(scale float32) *CreatureVariation {
	v.ScaleOverride = &scale
	return v
}

// WithMeshColor overrides the color of one mesh.
func (v *CreatureVariation) WithMeshColor(meshIndex int, color [4]float32) *CreatureVariation {
	if v.MeshColorOverrides == nil {
		v.MeshColorOverrides = make(map[int][4]float32)
	}
	v.MeshColorOverrides[meshIndex] = color
	return v
}

// WithMeshScale overrides the transform scale of one mesh.
func (v *CreatureVariation) WithMeshScale(meshIndex int, scale [3]float32) *CreatureVariation {
	if v.MeshScaleOverrides == nil {
		v.MeshScaleOverrides = make(map[int][3]float32)
	}
	v.MeshScaleOverrides[meshIndex] = scale
	return v
}

// Validate checks the variation against its base: every override index must
// resolve to a mesh and every scale must be positive.
func (v *CreatureVariation) Validate(base *CreatureDefinition) error {
	meshCount := len(base.Meshes)

	for meshIndex := range v.MeshColorOverrides {
		if meshIndex < 0 || meshIndex >= meshCount {
			return apperr.Validationf("color override mesh index %d out of bounds, base has %d meshes",
				meshIndex, meshCount)
		}
	}
	for meshIndex := range v.MeshScaleOverrides {
		if meshIndex < 0 || meshIndex >= meshCount {
			return apperr.Validationf("scale override mesh index %d out of bounds, base has %d meshes",
				meshIndex, meshCount)
		}
	}

	if v.ScaleOverride != nil && *v.ScaleOverride <= 0 {
		return apperr.Validationf("scale override must be positive, got %g", *v.ScaleOverride)
	}
	for meshIndex, scale := range v.MeshScaleOverrides {
		if scale[0] <= 0 || scale[1] <= 0 || scale[2] <= 0 {
			return apperr.Validationf("mesh %d scale override must have all positive components, got [%g, %g, %g]",
				meshIndex, scale[0], scale[1], scale[2])
		}
	}

	return nil
}

// ApplyVariation produces a fresh creature definition from the base with the
// variation's overrides applied.
func ApplyVariation(base *CreatureDefinition, variation *CreatureVariation) (*CreatureDefinition, error) {
	if err := variation.Validate(base); err != nil {
		return nil, err
	}

	result := cloneCreature(base)
	result.Name = variation.Name

	if variation.ScaleOverride != nil {
		result.Scale = *variation.ScaleOverride
	}
	for meshIndex, color := range variation.MeshColorOverrides {
		result.Meshes[meshIndex].Color = color
	}
	for meshIndex, scale := range variation.MeshScaleOverrides {
		result.MeshTransforms[meshIndex].Scale = scale
	}

	return result, nil
}

func cloneCreature(base *CreatureDefinition) *CreatureDefinition {
	out := *base
	out.Meshes = make([]MeshDefinition, len(base.Meshes))
	for i := range base.Meshes {
		out.Meshes[i] = cloneMesh(&base.Meshes[i])
	}
	out.MeshTransforms = append([]MeshTransform(nil), base.MeshTransforms...)
	if base.ColorTint != nil {
		tint := *base.ColorTint
		out.ColorTint = &tint
	}
	return &out
}

func cloneMesh(m *MeshDefinition) MeshDefinition {
	out := *m
	out.Vertices = append([]Vec3(nil), m.Vertices...)
	out.Indices = append([]uint32(nil), m.Indices...)
	if m.Normals != nil {
		out.Normals = append([]Vec3(nil), m.Normals...)
	}
	if m.UVs != nil {
		out.UVs = append([][2]float32(nil), m.UVs...)
	}
	if m.Name != nil {
		name := *m.Name
		out.Name = &name
	}
	if m.TexturePath != nil {
		path := *m.TexturePath
		out.TexturePath = &path
	}
	if m.Material != nil {
		mat := *m.Material
		if m.Material.Emissive != nil {
			emissive := *m.Material.Emissive
			mat.Emissive = &emissive
		}
		out.Material = &mat
	}
	if m.LODLevels != nil {
		out.LODLevels = make([]MeshDefinition, len(m.LODLevels))
		for i := range m.LODLevels {
			out.LODLevels[i] = cloneMesh(&m.LODLevels[i])
		}
	}
	if m.LODDistances != nil {
		out.LODDistances = append([]float32(nil), m.LODDistances...)
	}
	return out
}
