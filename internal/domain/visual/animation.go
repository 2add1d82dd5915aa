package visual

import apperr "github.com/antaresengine/antares/internal/errors"

// Keyframe pins one mesh's transform at a point in time.
type Keyframe struct {
	Time      float32       `json:"time"`
	MeshIndex int           `json:"mesh_index"`
	Transform MeshTransform `json:"transform"`
}

// AnimationDefinition animates a creature's meshes by transform keyframes.
// This is the lightweight per-mesh form; rigged creatures use
// SkeletalAnimation instead. Each keyframe targets one mesh, so meshes
// animate independently within the same clip.
type AnimationDefinition struct {
	Name      string     `json:"name"`
	Duration  float32    `json:"duration"`
	Keyframes []Keyframe `json:"keyframes"`
	Looping   bool       `json:"looping,omitempty"`
}

// NewAnimation creates an empty one-shot animation.
func NewAnimation(name string, duration float32) *AnimationDefinition {
	return &AnimationDefinition{Name: name, Duration: duration}
}

// AddKeyframe appends a keyframe.
func (a *AnimationDefinition) AddKeyframe(keyframe Keyframe) *AnimationDefinition {
	a.Keyframes = append(a.Keyframes, keyframe)
	return a
}

// SetLooping sets whether the animation wraps.
func (a *AnimationDefinition) SetLooping(looping bool) *AnimationDefinition {
	a.Looping = looping
	return a
}

// Validate checks the animation: positive duration, a name, and keyframe
// times sorted within [0, duration].
func (a *AnimationDefinition) Validate() error {
	if a.Duration <= 0 {
		return apperr.Validationf("animation duration must be positive, got %g", a.Duration)
	}
	if a.Name == "" {
		return apperr.Validation("animation name cannot be empty")
	}

	prevTime := float32(-1)
	for i, keyframe := range a.Keyframes {
		if keyframe.Time < 0 || keyframe.Time > a.Duration {
			return apperr.Validationf("keyframe %d time %g is outside [0, %g]", i, keyframe.Time, a.Duration)
		}
		if keyframe.Time < prevTime {
			return apperr.Validationf("keyframes must be sorted by time, keyframe %d (time %g) comes after %g",
				i, keyframe.Time, prevTime)
		}
		prevTime = keyframe.Time
	}
	return nil
}

// Sample interpolates the transform for a mesh at a time. Looping wraps the
// time, one-shot clamps to [0, duration]. Returns false when no keyframe
// targets the mesh.
func (a *AnimationDefinition) Sample(meshIndex int, time float32) (MeshTransform, bool) {
	sampleTime := time
	if a.Looping && a.Duration > 0 {
		sampleTime = modf32(time, a.Duration)
	} else {
		sampleTime = clamp32(sampleTime, 0, a.Duration)
	}

	var prev, next *Keyframe
	for i := range a.Keyframes {
		keyframe := &a.Keyframes[i]
		if keyframe.MeshIndex != meshIndex {
			continue
		}
		if keyframe.Time <= sampleTime {
			prev = keyframe
		}
		if keyframe.Time >= sampleTime && next == nil {
			next = keyframe
		}
	}

	switch {
	case prev != nil && next != nil && prev.Time != next.Time:
		alpha := (sampleTime - prev.Time) / (next.Time - prev.Time)
		return lerpTransform(prev.Transform, next.Transform, alpha), true
	case prev != nil:
		return prev.Transform, true
	case next != nil:
		return next.Transform, true
	}
	return MeshTransform{}, false
}

func lerpTransform(a, b MeshTransform, t float32) MeshTransform {
	t = clamp32(t, 0, 1)
	return MeshTransform{
		Translation: vecLerp(a.Translation, b.Translation, t),
		Rotation:    vecLerp(a.Rotation, b.Rotation, t),
		Scale:       vecLerp(a.Scale, b.Scale, t),
	}
}
