package visual_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antaresengine/antares/internal/domain/visual"
)

func locomotionSpace() visual.BlendNode {
	return visual.Blend2D("speed", "direction", []visual.BlendSample{
		{Position: [2]float32{0, 0}, Clip: visual.AnimationClip{AnimationName: "idle", Speed: 1}},
		{Position: [2]float32{2, 0}, Clip: visual.AnimationClip{AnimationName: "walk", Speed: 1}},
		{Position: [2]float32{5, 0}, Clip: visual.AnimationClip{AnimationName: "run", Speed: 1.2}},
	})
}

func TestBlendNode_Validate(t *testing.T) {
	tests := []struct {
		name    string
		node    visual.BlendNode
		wantErr string
	}{
		{
			name: "valid clip",
			node: visual.ClipNode("walk", 1),
		},
		{
			name:    "clip without a name",
			node:    visual.ClipNode("", 1),
			wantErr: "empty name",
		},
		{
			name:    "clip with zero speed",
			node:    visual.ClipNode("walk", 0),
			wantErr: "invalid speed",
		},
		{
			name: "valid blend space",
			node: locomotionSpace(),
		},
		{
			name:    "blend space missing axis",
			node:    visual.Blend2D("speed", "", []visual.BlendSample{{Clip: visual.AnimationClip{AnimationName: "walk", Speed: 1}}}),
			wantErr: "axis parameters",
		},
		{
			name:    "blend space without samples",
			node:    visual.Blend2D("speed", "direction", nil),
			wantErr: "no samples",
		},
		{
			name: "valid additive",
			node: visual.AdditiveBlend(visual.ClipNode("walk", 1), visual.ClipNode("wave", 1), 0.7),
		},
		{
			name:    "additive weight above one",
			node:    visual.AdditiveBlend(visual.ClipNode("walk", 1), visual.ClipNode("wave", 1), 1.5),
			wantErr: "out of [0, 1]",
		},
		{
			name:    "additive with invalid child",
			node:    visual.AdditiveBlend(visual.ClipNode("", 1), visual.ClipNode("wave", 1), 0.5),
			wantErr: "empty name",
		},
		{
			name: "valid layered",
			node: visual.LayeredBlend(
				visual.BlendLayer{Node: visual.ClipNode("walk", 1), Weight: 1},
				visual.BlendLayer{Node: visual.ClipNode("aim", 1), Weight: 0.5},
			),
		},
		{
			name:    "layered without layers",
			node:    visual.LayeredBlend(),
			wantErr: "no layers",
		},
		{
			name:    "layer weight negative",
			node:    visual.LayeredBlend(visual.BlendLayer{Node: visual.ClipNode("walk", 1), Weight: -0.1}),
			wantErr: "out of [0, 1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.node.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBlendNode_JSONRoundTrip(t *testing.T) {
	nodes := []visual.BlendNode{
		visual.ClipNode("idle", 1),
		locomotionSpace(),
		visual.AdditiveBlend(locomotionSpace(), visual.ClipNode("breathe", 0.5), 0.3),
		visual.LayeredBlend(
			visual.BlendLayer{Node: visual.ClipNode("walk", 1), Weight: 1},
			visual.BlendLayer{Node: visual.AdditiveBlend(visual.ClipNode("aim", 1), visual.ClipNode("recoil", 2), 1), Weight: 0.8},
		),
	}

	for _, original := range nodes {
		t.Run(string(original.Kind), func(t *testing.T) {
			data, err := json.Marshal(original)
			require.NoError(t, err)

			var decoded visual.BlendNode
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, original, decoded)
		})
	}
}

func TestBlendNode_Samples(t *testing.T) {
	t.Run("clip contributes full weight", func(t *testing.T) {
		node := visual.ClipNode("idle", 1.5)
		clips := node.Samples(nil)
		require.Len(t, clips, 1)
		assert.Equal(t, "idle", clips[0].AnimationName)
		assert.InDelta(t, 1.5, clips[0].Speed, 1e-6)
		assert.InDelta(t, 1.0, clips[0].Weight, 1e-6)
	})

	t.Run("exact blend space hit dominates", func(t *testing.T) {
		node := locomotionSpace()
		clips := node.Samples(map[string]float32{"speed": 2, "direction": 0})
		require.Len(t, clips, 1)
		assert.Equal(t, "walk", clips[0].AnimationName)
		assert.InDelta(t, 1.0, clips[0].Weight, 1e-6)
	})

	t.Run("blend space weights sum to one and favor the nearest", func(t *testing.T) {
		node := locomotionSpace()
		clips := node.Samples(map[string]float32{"speed": 4, "direction": 0})
		require.Len(t, clips, 3)

		var total float32
		byName := map[string]float32{}
		for _, clip := range clips {
			total += clip.Weight
			byName[clip.AnimationName] = clip.Weight
		}
		assert.InDelta(t, 1.0, total, 1e-5)
		assert.Greater(t, byName["run"], byName["walk"])
		assert.Greater(t, byName["walk"], byName["idle"])
	})

	t.Run("additive scales the difference layer", func(t *testing.T) {
		node := visual.AdditiveBlend(visual.ClipNode("walk", 1), visual.ClipNode("wave", 1), 0.4)
		clips := node.Samples(nil)
		require.Len(t, clips, 2)
		assert.Equal(t, "walk", clips[0].AnimationName)
		assert.InDelta(t, 1.0, clips[0].Weight, 1e-6)
		assert.Equal(t, "wave", clips[1].AnimationName)
		assert.InDelta(t, 0.4, clips[1].Weight, 1e-6)
	})

	t.Run("layered multiplies weights down the tree", func(t *testing.T) {
		node := visual.LayeredBlend(
			visual.BlendLayer{Node: visual.ClipNode("walk", 1), Weight: 0.5},
			visual.BlendLayer{
				Node:   visual.AdditiveBlend(visual.ClipNode("aim", 1), visual.ClipNode("sway", 1), 0.5),
				Weight: 0.8,
			},
		)

		clips := node.Samples(nil)
		require.Len(t, clips, 3)
		byName := map[string]float32{}
		for _, clip := range clips {
			byName[clip.AnimationName] = clip.Weight
		}
		assert.InDelta(t, 0.5, byName["walk"], 1e-6)
		assert.InDelta(t, 0.8, byName["aim"], 1e-6)
		assert.InDelta(t, 0.4, byName["sway"], 1e-6)
	})

	t.Run("zero weight layers drop out", func(t *testing.T) {
		node := visual.LayeredBlend(
			visual.BlendLayer{Node: visual.ClipNode("walk", 1), Weight: 1},
			visual.BlendLayer{Node: visual.ClipNode("aim", 1), Weight: 0},
		)

		clips := node.Samples(nil)
		require.Len(t, clips, 1)
		assert.Equal(t, "walk", clips[0].AnimationName)
	})
}
