package visual

import apperr "github.com/antaresengine/antares/internal/errors"

// AlphaMode selects how a material's alpha channel is interpreted.
type AlphaMode string

const (
	AlphaOpaque AlphaMode = "opaque"
	AlphaBlend  AlphaMode = "blend"
	AlphaMask   AlphaMode = "mask"
)

// AlphaMaskCutoff is the threshold applied when AlphaMask is in effect.
const AlphaMaskCutoff = 0.5

// MaterialDefinition holds the authored PBR surface parameters for a mesh.
type MaterialDefinition struct {
	// BaseColor is sRGB RGBA, each component in [0, 1].
	BaseColor [4]float32 `json:"base_color"`

	// Metallic is 0 for dielectrics, 1 for metals.
	Metallic float32 `json:"metallic"`

	// Roughness is perceptual: 0 mirror-smooth, 1 fully matte.
	Roughness float32 `json:"roughness"`

	// Emissive is a linear RGB glow color. Nil means no emission.
	Emissive *[3]float32 `json:"emissive,omitempty"`

	AlphaMode AlphaMode `json:"alpha_mode,omitempty"`
}

// Validate checks the material parameters are renderable.
func (m *MaterialDefinition) Validate() error {
	if err := validateColor(m.BaseColor); err != nil {
		return err
	}
	if m.Metallic < 0 || m.Metallic > 1 {
		return apperr.Validationf("metallic must be in [0, 1], got %g", m.Metallic)
	}
	if m.Roughness < 0 || m.Roughness > 1 {
		return apperr.Validationf("roughness must be in [0, 1], got %g", m.Roughness)
	}
	switch m.AlphaMode {
	case "", AlphaOpaque, AlphaBlend, AlphaMask:
	default:
		return apperr.Validationf("unknown alpha mode %q", m.AlphaMode)
	}
	return nil
}

// RenderMaterial is the renderer-facing view of a material: resolved
// defaults, linear emissive, and the mask cutoff filled in.
type RenderMaterial struct {
	BaseColor   [4]float32
	Metallic    float32
	Roughness   float32
	Emissive    [3]float32
	AlphaMode   AlphaMode
	AlphaCutoff float32

	// TextureHandle is set by the asset pipeline once the texture
	// referenced by the mesh's TexturePath resolves.
	TextureHandle TextureHandle
}

// ToRenderMaterial maps the authored definition onto renderer parameters.
// Absent emissive renders black; Mask mode carries the fixed cutoff.
func ToRenderMaterial(def *MaterialDefinition) RenderMaterial {
	out := RenderMaterial{
		BaseColor: def.BaseColor,
		Metallic:  def.Metallic,
		Roughness: def.Roughness,
		AlphaMode: def.AlphaMode,
	}
	if out.AlphaMode == "" {
		out.AlphaMode = AlphaOpaque
	}
	if def.Emissive != nil {
		out.Emissive = *def.Emissive
	}
	if out.AlphaMode == AlphaMask {
		out.AlphaCutoff = AlphaMaskCutoff
	}
	return out
}

// DefaultRenderMaterial returns the material used for meshes without an
// authored definition: a vertex-colored matte surface.
func DefaultRenderMaterial(color [4]float32) RenderMaterial {
	return RenderMaterial{
		BaseColor: color,
		Metallic:  0,
		Roughness: 0.8,
		AlphaMode: AlphaOpaque,
	}
}

// TextureHandle is an opaque reference to a texture owned by the asset
// server. The zero value means no texture.
type TextureHandle struct {
	ID uint64
}

// IsZero reports whether the handle references nothing.
func (h TextureHandle) IsZero() bool {
	return h.ID == 0
}

// TextureState describes asset server progress on a texture load.
type TextureState int

const (
	TextureNotLoaded TextureState = iota
	TextureLoading
	TextureReady
	TextureFailed
)

// AssetServer loads textures by path. The core never blocks on it:
// Load returns immediately with a handle that may still be in a loading
// state, and State is polled until the handle becomes ready.
type AssetServer interface {
	Load(path string) TextureHandle
	State(handle TextureHandle) TextureState
}

// TextureLoaded marks an entity whose material already carries its resolved
// texture, so repeat application passes are no-ops.
type TextureLoaded struct{}

// ApplyTexture points the material at the mesh's texture once the asset
// server has it. Returns true when the material now carries a ready handle;
// calling again after that is a no-op. A mesh with no texture path is
// trivially done.
func ApplyTexture(material *RenderMaterial, mesh *MeshDefinition, assets AssetServer) bool {
	if mesh.TexturePath == nil {
		return true
	}
	if !material.TextureHandle.IsZero() && assets.State(material.TextureHandle) == TextureReady {
		return true
	}
	handle := assets.Load(*mesh.TexturePath)
	material.TextureHandle = handle
	return assets.State(handle) == TextureReady
}
