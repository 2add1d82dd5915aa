package visual_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antaresengine/antares/internal/domain/visual"
)

func bounceAnimation(looping bool) *visual.AnimationDefinition {
	anim := visual.NewAnimation("bounce", 1.0).SetLooping(looping)
	anim.AddKeyframe(visual.Keyframe{Time: 0, MeshIndex: 0, Transform: visual.TranslationTransform(0, 0, 0)})
	anim.AddKeyframe(visual.Keyframe{Time: 0.5, MeshIndex: 0, Transform: visual.TranslationTransform(0, 1, 0)})
	anim.AddKeyframe(visual.Keyframe{Time: 1, MeshIndex: 0, Transform: visual.TranslationTransform(0, 0, 0)})
	return anim
}

func TestAnimationDefinition_Validate(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *visual.AnimationDefinition
		wantErr string
	}{
		{
			name:  "valid bounce",
			build: func() *visual.AnimationDefinition { return bounceAnimation(true) },
		},
		{
			name:    "negative duration",
			build:   func() *visual.AnimationDefinition { return visual.NewAnimation("bad", -1) },
			wantErr: "duration must be positive",
		},
		{
			name:    "empty name",
			build:   func() *visual.AnimationDefinition { return visual.NewAnimation("", 1) },
			wantErr: "name cannot be empty",
		},
		{
			name: "keyframe past duration",
			build: func() *visual.AnimationDefinition {
				return visual.NewAnimation("bad", 1).
					AddKeyframe(visual.Keyframe{Time: 2, MeshIndex: 0, Transform: visual.IdentityTransform()})
			},
			wantErr: "outside [0, 1]",
		},
		{
			name: "unsorted keyframes",
			build: func() *visual.AnimationDefinition {
				return visual.NewAnimation("bad", 1).
					AddKeyframe(visual.Keyframe{Time: 0.8, MeshIndex: 0, Transform: visual.IdentityTransform()}).
					AddKeyframe(visual.Keyframe{Time: 0.2, MeshIndex: 0, Transform: visual.IdentityTransform()})
			},
			wantErr: "sorted by time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAnimationDefinition_Sample(t *testing.T) {
	t.Run("interpolates between keyframes", func(t *testing.T) {
		transform, ok := bounceAnimation(false).Sample(0, 0.25)
		require.True(t, ok)
		assert.InDelta(t, 0.5, transform.Translation[1], 1e-5)
	})

	t.Run("exact keyframe hit", func(t *testing.T) {
		transform, ok := bounceAnimation(false).Sample(0, 0.5)
		require.True(t, ok)
		assert.InDelta(t, 1.0, transform.Translation[1], 1e-6)
	})

	t.Run("no keyframes for mesh", func(t *testing.T) {
		_, ok := bounceAnimation(false).Sample(3, 0.5)
		assert.False(t, ok)
	})

	t.Run("one-shot clamps past the end", func(t *testing.T) {
		transform, ok := bounceAnimation(false).Sample(0, 9)
		require.True(t, ok)
		assert.InDelta(t, 0.0, transform.Translation[1], 1e-6)
	})

	t.Run("looping wraps", func(t *testing.T) {
		transform, ok := bounceAnimation(true).Sample(0, 1.25)
		require.True(t, ok)
		assert.InDelta(t, 0.5, transform.Translation[1], 1e-5)
	})

	t.Run("meshes animate independently", func(t *testing.T) {
		anim := visual.NewAnimation("march", 1)
		anim.AddKeyframe(visual.Keyframe{Time: 0, MeshIndex: 0, Transform: visual.TranslationTransform(0, 0, 0)})
		anim.AddKeyframe(visual.Keyframe{Time: 0, MeshIndex: 1, Transform: visual.TranslationTransform(0, 0, 0)})
		anim.AddKeyframe(visual.Keyframe{Time: 1, MeshIndex: 0, Transform: visual.TranslationTransform(1, 0, 0)})
		anim.AddKeyframe(visual.Keyframe{Time: 1, MeshIndex: 1, Transform: visual.TranslationTransform(0, 2, 0)})

		leg, ok := anim.Sample(0, 0.5)
		require.True(t, ok)
		wing, ok := anim.Sample(1, 0.5)
		require.True(t, ok)

		assert.InDelta(t, 0.5, leg.Translation[0], 1e-5)
		assert.InDelta(t, 1.0, wing.Translation[1], 1e-5)
	})
}
