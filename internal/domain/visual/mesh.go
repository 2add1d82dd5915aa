// Package visual holds the procedural mesh data model for creatures: mesh
// definitions, materials, LOD generation, skeletons, and animation.
//
// The visual layer is deliberately separate from game entities (monsters,
// NPCs) and linked by creature IDs so that many monsters can share one
// visual and variants never duplicate game data. Coordinates are
// right-handed: X right, Y up, Z forward.
package visual

import (
	"math"

	"github.com/antaresengine/antares/internal/domain/types"
	apperr "github.com/antaresengine/antares/internal/errors"
)

// MeshDefinition is a renderable triangle mesh. Indices group into triangles;
// normals and UVs are optional per-vertex attributes that must match the
// vertex count when present.
type MeshDefinition struct {
	Name     *string      `json:"name,omitempty"`
	Vertices []Vec3       `json:"vertices"`
	Indices  []uint32     `json:"indices"`
	Normals  []Vec3       `json:"normals,omitempty"`
	UVs      [][2]float32 `json:"uvs,omitempty"`

	// Color is the base RGBA color, each component in [0, 1].
	Color [4]float32 `json:"color"`

	// LODLevels holds simplified versions of this mesh, LOD1 first.
	// LODDistances gives the switch distance for each level and must
	// match LODLevels in length when both are present.
	LODLevels    []MeshDefinition `json:"lod_levels,omitempty"`
	LODDistances []float32        `json:"lod_distances,omitempty"`

	Material *MaterialDefinition `json:"material,omitempty"`

	// TexturePath is relative to the campaign directory.
	TexturePath *string `json:"texture_path,omitempty"`
}

// TriangleCount returns the number of triangles in the index list.
func (m *MeshDefinition) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks the mesh holds well-formed triangle data.
func (m *MeshDefinition) Validate() error {
	if err := validateVertices(m.Vertices); err != nil {
		return err
	}
	if err := validateIndices(m.Indices, len(m.Vertices)); err != nil {
		return err
	}
	if m.Normals != nil {
		if err := validateNormals(m.Normals, len(m.Vertices)); err != nil {
			return err
		}
	}
	if m.UVs != nil {
		if err := validateUVs(m.UVs, len(m.Vertices)); err != nil {
			return err
		}
	}
	if err := validateColor(m.Color); err != nil {
		return err
	}
	if m.LODDistances != nil && len(m.LODDistances) != len(m.LODLevels) {
		return apperr.Validationf("LOD distance count (%d) must match LOD level count (%d)",
			len(m.LODDistances), len(m.LODLevels))
	}
	return nil
}

func validateVertices(vertices []Vec3) error {
	if len(vertices) < 3 {
		return apperr.Validationf("mesh needs at least 3 vertices for a triangle, got %d", len(vertices))
	}
	for i, vertex := range vertices {
		for j, coord := range vertex {
			if !isFinite(coord) {
				return apperr.Validationf("vertex %d coordinate %d is not finite", i, j)
			}
		}
	}
	return nil
}

func validateIndices(indices []uint32, vertexCount int) error {
	if len(indices) == 0 {
		return apperr.Validation("mesh needs at least one triangle")
	}
	if len(indices)%3 != 0 {
		return apperr.Validationf("index count must be divisible by 3, got %d", len(indices))
	}
	for tri := 0; tri < len(indices); tri += 3 {
		i0, i1, i2 := indices[tri], indices[tri+1], indices[tri+2]
		for offset, idx := range []uint32{i0, i1, i2} {
			if int(idx) >= vertexCount {
				return apperr.Validationf("triangle %d index %d (%d) out of bounds, vertex count %d",
					tri/3, offset, idx, vertexCount)
			}
		}
		if i0 == i1 || i1 == i2 || i0 == i2 {
			return apperr.Validationf("triangle %d is degenerate: indices %d, %d, %d", tri/3, i0, i1, i2)
		}
	}
	return nil
}

func validateNormals(normals []Vec3, vertexCount int) error {
	if len(normals) != vertexCount {
		return apperr.Validationf("normal count (%d) must match vertex count (%d)", len(normals), vertexCount)
	}
	for i, normal := range normals {
		for j, coord := range normal {
			if !isFinite(coord) {
				return apperr.Validationf("normal %d coordinate %d is not finite", i, j)
			}
		}
	}
	return nil
}

func validateUVs(uvs [][2]float32, vertexCount int) error {
	if len(uvs) != vertexCount {
		return apperr.Validationf("UV count (%d) must match vertex count (%d)", len(uvs), vertexCount)
	}
	for i, uv := range uvs {
		for j, coord := range uv {
			if !isFinite(coord) {
				return apperr.Validationf("UV %d coordinate %d is not finite", i, j)
			}
		}
	}
	return nil
}

func validateColor(color [4]float32) error {
	names := [4]string{"red", "green", "blue", "alpha"}
	for i, value := range color {
		if !isFinite(value) || value < 0 || value > 1 {
			return apperr.Validationf("color component %s must be in [0, 1], got %g", names[i], value)
		}
	}
	return nil
}

func isFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// MeshTransform positions a mesh within a creature. Rotation is Euler
// [pitch, yaw, roll] in radians.
type MeshTransform struct {
	Translation Vec3 `json:"translation"`
	Rotation    Vec3 `json:"rotation"`
	Scale       Vec3 `json:"scale"`
}

// IdentityTransform returns a transform that leaves the mesh unchanged.
func IdentityTransform() MeshTransform {
	return MeshTransform{Scale: Vec3{1, 1, 1}}
}

// TranslationTransform returns a translation-only transform.
func TranslationTransform(x, y, z float32) MeshTransform {
	t := IdentityTransform()
	t.Translation = Vec3{x, y, z}
	return t
}

// ScaleTransform returns a scale-only transform.
func ScaleTransform(x, y, z float32) MeshTransform {
	t := IdentityTransform()
	t.Scale = Vec3{x, y, z}
	return t
}

// UniformScaleTransform returns a uniform scale-only transform.
func UniformScaleTransform(s float32) MeshTransform {
	return ScaleTransform(s, s, s)
}

// CreatureDefinition composes one or more meshes into a complete visual.
// MeshTransforms parallels Meshes index-for-index.
type CreatureDefinition struct {
	ID             types.CreatureID `json:"id"`
	Name           string           `json:"name"`
	Meshes         []MeshDefinition `json:"meshes"`
	MeshTransforms []MeshTransform  `json:"mesh_transforms"`

	// Scale multiplies the whole creature.
	Scale float32 `json:"scale"`

	// ColorTint, when set, multiplies every mesh base color.
	ColorTint *[4]float32 `json:"color_tint,omitempty"`
}

// Validate checks structural invariants and every contained mesh.
func (c *CreatureDefinition) Validate() error {
	if len(c.Meshes) == 0 {
		return apperr.Validationf("creature %d must have at least one mesh", c.ID)
	}
	if len(c.Meshes) != len(c.MeshTransforms) {
		return apperr.Validationf("creature %d mesh count (%d) must match transform count (%d)",
			c.ID, len(c.Meshes), len(c.MeshTransforms))
	}
	if c.Scale <= 0 {
		return apperr.Validationf("creature %d scale must be positive, got %g", c.ID, c.Scale)
	}
	for i := range c.Meshes {
		if err := c.Meshes[i].Validate(); err != nil {
			return apperr.Wrapf(err, "creature %d mesh %d", c.ID, i)
		}
	}
	return nil
}

// TotalVertices sums vertex counts across all meshes.
func (c *CreatureDefinition) TotalVertices() int {
	total := 0
	for i := range c.Meshes {
		total += len(c.Meshes[i].Vertices)
	}
	return total
}

// TotalTriangles sums triangle counts across all meshes.
func (c *CreatureDefinition) TotalTriangles() int {
	total := 0
	for i := range c.Meshes {
		total += c.Meshes[i].TriangleCount()
	}
	return total
}
