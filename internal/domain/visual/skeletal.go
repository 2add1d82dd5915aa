package visual

import apperr "github.com/antaresengine/antares/internal/errors"

// BoneKeyframe is one sampled bone pose: a time plus position, rotation,
// and scale.
type BoneKeyframe struct {
	Time     float32 `json:"time"`
	Position Vec3    `json:"position"`
	Rotation Quat    `json:"rotation"`
	Scale    Vec3    `json:"scale"`
}

// IdentityKeyframe returns a keyframe with no transform at the given time.
func IdentityKeyframe(time float32) BoneKeyframe {
	return BoneKeyframe{
		Time:     time,
		Rotation: QuatIdentity(),
		Scale:    Vec3{1, 1, 1},
	}
}

// SkeletalAnimation animates bones over time. Each bone has its own
// keyframe track, so bones without a track simply hold their rest pose.
type SkeletalAnimation struct {
	Name       string                    `json:"name"`
	Duration   float32                   `json:"duration"`
	BoneTracks map[BoneID][]BoneKeyframe `json:"bone_tracks"`
	Looping    bool                      `json:"looping"`
}

// NewSkeletalAnimation creates an animation with no tracks.
func NewSkeletalAnimation(name string, duration float32, looping bool) *SkeletalAnimation {
	return &SkeletalAnimation{
		Name:       name,
		Duration:   duration,
		BoneTracks: make(map[BoneID][]BoneKeyframe),
		Looping:    looping,
	}
}

// AddBoneTrack sets the keyframe track for a bone.
func (a *SkeletalAnimation) AddBoneTrack(boneID BoneID, keyframes []BoneKeyframe) {
	if a.BoneTracks == nil {
		a.BoneTracks = make(map[BoneID][]BoneKeyframe)
	}
	a.BoneTracks[boneID] = keyframes
}

// BoneCount returns the number of animated bones.
func (a *SkeletalAnimation) BoneCount() int {
	return len(a.BoneTracks)
}

// SampleBone evaluates the bone's pose at a time. Looping animations wrap
// the time; otherwise it clamps to the duration. Positions and scales
// interpolate linearly, rotations by SLERP. Returns false if the bone has
// no track.
func (a *SkeletalAnimation) SampleBone(boneID BoneID, time float32) (BoneKeyframe, bool) {
	track, ok := a.BoneTracks[boneID]
	if !ok || len(track) == 0 {
		return BoneKeyframe{}, false
	}

	sampleTime := time
	if a.Looping && a.Duration > 0 {
		sampleTime = modf32(time, a.Duration)
	} else if sampleTime > a.Duration {
		sampleTime = a.Duration
	}

	if len(track) == 1 {
		return track[0], true
	}

	first := track[0]
	last := track[len(track)-1]
	if sampleTime <= first.Time {
		return first, true
	}
	if sampleTime >= last.Time {
		return last, true
	}

	prev := &track[0]
	next := &track[0]
	for i := range track {
		if track[i].Time <= sampleTime {
			prev = &track[i]
		}
		if track[i].Time >= sampleTime {
			next = &track[i]
			break
		}
	}

	span := next.Time - prev.Time
	if span <= 0 {
		return *prev, true
	}

	t := (sampleTime - prev.Time) / span
	return BoneKeyframe{
		Time:     sampleTime,
		Position: vecLerp(prev.Position, next.Position, t),
		Rotation: quatSlerp(prev.Rotation, next.Rotation, t),
		Scale:    vecLerp(prev.Scale, next.Scale, t),
	}, true
}

// Validate checks the animation: positive duration, a name, and each track
// non-empty with times ascending within [0, duration].
func (a *SkeletalAnimation) Validate() error {
	if a.Duration <= 0 {
		return apperr.Validationf("animation duration must be positive, got %g", a.Duration)
	}
	if a.Name == "" {
		return apperr.Validation("animation name cannot be empty")
	}

	for boneID, keyframes := range a.BoneTracks {
		if len(keyframes) == 0 {
			return apperr.Validationf("bone %d has an empty keyframe track", boneID)
		}
		prevTime := float32(-1)
		for _, keyframe := range keyframes {
			if keyframe.Time < 0 {
				return apperr.Validationf("bone %d has a keyframe at negative time %g", boneID, keyframe.Time)
			}
			if keyframe.Time > a.Duration {
				return apperr.Validationf("bone %d has a keyframe at %g past duration %g",
					boneID, keyframe.Time, a.Duration)
			}
			if keyframe.Time < prevTime {
				return apperr.Validationf("bone %d keyframes are out of order: %g after %g",
					boneID, keyframe.Time, prevTime)
			}
			prevTime = keyframe.Time
		}
	}

	return nil
}

// modf32 wraps v into [0, m).
func modf32(v, m float32) float32 {
	r := v - float32(int(v/m))*m
	if r < 0 {
		r += m
	}
	return r
}
