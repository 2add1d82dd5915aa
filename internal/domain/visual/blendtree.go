package visual

import (
	"encoding/json"

	apperr "github.com/antaresengine/antares/internal/errors"
)

// AnimationClip references a skeletal animation by name with a playback
// speed multiplier.
type AnimationClip struct {
	AnimationName string  `json:"animation_name"`
	Speed         float32 `json:"speed"`
}

// BlendSample anchors an animation clip at a position in a 2D blend space.
type BlendSample struct {
	Position [2]float32    `json:"position"`
	Clip     AnimationClip `json:"animation"`
}

// BlendKind discriminates blend tree nodes.
type BlendKind string

const (
	BlendClip     BlendKind = "clip"
	BlendSpace2D  BlendKind = "blend_2d"
	BlendAdditive BlendKind = "additive"
	BlendLayered  BlendKind = "layered"
)

// Blend2DNode blends samples across two parameters, typically speed and
// direction for locomotion.
type Blend2DNode struct {
	XParam  string        `json:"x_param"`
	YParam  string        `json:"y_param"`
	Samples []BlendSample `json:"samples"`
}

// AdditiveNode layers a difference animation on top of a base with a
// weight in [0, 1].
type AdditiveNode struct {
	Base     BlendNode `json:"base"`
	Additive BlendNode `json:"additive"`
	Weight   float32   `json:"weight"`
}

// BlendLayer is one layer of a layered blend with its weight.
type BlendLayer struct {
	Node   BlendNode `json:"node"`
	Weight float32   `json:"weight"`
}

// BlendNode is one node of a blend tree: a clip leaf or a combinator over
// child nodes. Exactly one payload field matches Kind.
type BlendNode struct {
	Kind BlendKind `json:"-"`

	Clip     *AnimationClip `json:"-"`
	Space    *Blend2DNode   `json:"-"`
	Additive *AdditiveNode  `json:"-"`
	Layers   []BlendLayer   `json:"-"`
}

// ClipNode builds a leaf clip node.
func ClipNode(animationName string, speed float32) BlendNode {
	return BlendNode{Kind: BlendClip, Clip: &AnimationClip{AnimationName: animationName, Speed: speed}}
}

// Blend2D builds a 2D blend space node.
func Blend2D(xParam, yParam string, samples []BlendSample) BlendNode {
	return BlendNode{Kind: BlendSpace2D, Space: &Blend2DNode{XParam: xParam, YParam: yParam, Samples: samples}}
}

// AdditiveBlend builds an additive node over a base and difference tree.
func AdditiveBlend(base, additive BlendNode, weight float32) BlendNode {
	return BlendNode{Kind: BlendAdditive, Additive: &AdditiveNode{Base: base, Additive: additive, Weight: weight}}
}

// LayeredBlend builds a layered node from weighted children.
func LayeredBlend(layers ...BlendLayer) BlendNode {
	return BlendNode{Kind: BlendLayered, Layers: layers}
}

type blendEnvelope struct {
	Type BlendKind       `json:"type"`
	Data json.RawMessage `json:"data"`
}

// MarshalJSON emits the type/data envelope.
func (n BlendNode) MarshalJSON() ([]byte, error) {
	var payload any
	switch n.Kind {
	case BlendClip:
		payload = n.Clip
	case BlendSpace2D:
		payload = n.Space
	case BlendAdditive:
		payload = n.Additive
	case BlendLayered:
		payload = n.Layers
	default:
		return nil, apperr.Validationf("unknown blend node kind %q", n.Kind)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(blendEnvelope{Type: n.Kind, Data: data})
}

// UnmarshalJSON parses the type/data envelope into the matching payload.
func (n *BlendNode) UnmarshalJSON(data []byte) error {
	var env blendEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	*n = BlendNode{Kind: env.Type}
	switch env.Type {
	case BlendClip:
		n.Clip = &AnimationClip{}
		return json.Unmarshal(env.Data, n.Clip)
	case BlendSpace2D:
		n.Space = &Blend2DNode{}
		return json.Unmarshal(env.Data, n.Space)
	case BlendAdditive:
		n.Additive = &AdditiveNode{}
		return json.Unmarshal(env.Data, n.Additive)
	case BlendLayered:
		return json.Unmarshal(env.Data, &n.Layers)
	default:
		return apperr.ParseErrorf("unknown blend node kind %q", env.Type)
	}
}

// Validate checks the tree recursively: clips need names and positive
// speeds, blend spaces need parameters and samples, weights stay in [0, 1].
func (n *BlendNode) Validate() error {
	switch n.Kind {
	case BlendClip:
		if n.Clip.AnimationName == "" {
			return apperr.Validation("animation clip has an empty name")
		}
		if n.Clip.Speed <= 0 {
			return apperr.Validationf("animation clip %q has invalid speed %g", n.Clip.AnimationName, n.Clip.Speed)
		}
	case BlendSpace2D:
		if n.Space.XParam == "" || n.Space.YParam == "" {
			return apperr.Validation("blend space needs both axis parameters")
		}
		if len(n.Space.Samples) == 0 {
			return apperr.Validation("blend space has no samples")
		}
		for _, sample := range n.Space.Samples {
			if sample.Clip.AnimationName == "" {
				return apperr.Validation("blend sample has an empty animation name")
			}
			if sample.Clip.Speed <= 0 {
				return apperr.Validationf("blend sample %q has invalid speed %g",
					sample.Clip.AnimationName, sample.Clip.Speed)
			}
		}
	case BlendAdditive:
		if n.Additive.Weight < 0 || n.Additive.Weight > 1 {
			return apperr.Validationf("additive weight out of [0, 1]: %g", n.Additive.Weight)
		}
		if err := n.Additive.Base.Validate(); err != nil {
			return err
		}
		if err := n.Additive.Additive.Validate(); err != nil {
			return err
		}
	case BlendLayered:
		if len(n.Layers) == 0 {
			return apperr.Validation("layered blend has no layers")
		}
		for i := range n.Layers {
			if n.Layers[i].Weight < 0 || n.Layers[i].Weight > 1 {
				return apperr.Validationf("layer weight out of [0, 1]: %g", n.Layers[i].Weight)
			}
			if err := n.Layers[i].Node.Validate(); err != nil {
				return err
			}
		}
	default:
		return apperr.Validationf("unknown blend node kind %q", n.Kind)
	}
	return nil
}

// WeightedClip is one clip contribution in a flattened blend tree sample.
type WeightedClip struct {
	AnimationName string
	Speed         float32
	Weight        float32
}

// Samples flattens the tree into weighted clip contributions for the given
// parameters. Blend spaces weight their samples by inverse distance to the
// parameter point, with an exact hit taking the full weight.
func (n *BlendNode) Samples(parameters map[string]float32) []WeightedClip {
	return n.samples(parameters, 1)
}

func (n *BlendNode) samples(parameters map[string]float32, weight float32) []WeightedClip {
	if weight <= 0 {
		return nil
	}

	switch n.Kind {
	case BlendClip:
		return []WeightedClip{{AnimationName: n.Clip.AnimationName, Speed: n.Clip.Speed, Weight: weight}}

	case BlendSpace2D:
		return n.Space.samples(parameters, weight)

	case BlendAdditive:
		out := n.Additive.Base.samples(parameters, weight)
		return append(out, n.Additive.Additive.samples(parameters, weight*n.Additive.Weight)...)

	case BlendLayered:
		var out []WeightedClip
		for i := range n.Layers {
			out = append(out, n.Layers[i].Node.samples(parameters, weight*n.Layers[i].Weight)...)
		}
		return out
	}

	return nil
}

func (s *Blend2DNode) samples(parameters map[string]float32, weight float32) []WeightedClip {
	if len(s.Samples) == 0 {
		return nil
	}

	point := [2]float32{parameters[s.XParam], parameters[s.YParam]}

	// Inverse distance weighting; an exact hit dominates.
	weights := make([]float32, len(s.Samples))
	var total float32
	for i, sample := range s.Samples {
		dx := sample.Position[0] - point[0]
		dy := sample.Position[1] - point[1]
		distSq := dx*dx + dy*dy
		if distSq < 1e-6 {
			return []WeightedClip{{
				AnimationName: sample.Clip.AnimationName,
				Speed:         sample.Clip.Speed,
				Weight:        weight,
			}}
		}
		weights[i] = 1 / distSq
		total += weights[i]
	}

	out := make([]WeightedClip, 0, len(s.Samples))
	for i, sample := range s.Samples {
		out = append(out, WeightedClip{
			AnimationName: sample.Clip.AnimationName,
			Speed:         sample.Clip.Speed,
			Weight:        weight * weights[i] / total,
		})
	}
	return out
}
