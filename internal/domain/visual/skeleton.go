package visual

import apperr "github.com/antaresengine/antares/internal/errors"

// BoneID indexes a bone within its skeleton. Bone IDs equal the bone's
// position in the bones slice.
type BoneID = int

// Mat4 is a column-major 4x4 matrix.
type Mat4 [4][4]float32

// IdentityMat4 returns the identity matrix.
func IdentityMat4() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Bone is one joint in a skeleton hierarchy.
type Bone struct {
	ID   BoneID `json:"id"`
	Name string `json:"name"`

	// Parent is nil for the root bone.
	Parent *BoneID `json:"parent,omitempty"`

	// RestTransform is the bind pose relative to the parent.
	RestTransform MeshTransform `json:"rest_transform"`

	// InverseBindPose converts mesh-space vertices into this bone's
	// local space at rest, for skinning.
	InverseBindPose Mat4 `json:"inverse_bind_pose"`
}

// IsRoot reports whether the bone has no parent.
func (b *Bone) IsRoot() bool {
	return b.Parent == nil
}

// Skeleton is a bone hierarchy with a designated root.
type Skeleton struct {
	Bones    []Bone `json:"bones"`
	RootBone BoneID `json:"root_bone"`
}

// NewSkeleton creates a skeleton from bones and a root ID.
func NewSkeleton(bones []Bone, root BoneID) *Skeleton {
	return &Skeleton{Bones: bones, RootBone: root}
}

// Bone returns the bone with the given ID.
func (s *Skeleton) Bone(id BoneID) (*Bone, bool) {
	if id < 0 || id >= len(s.Bones) {
		return nil, false
	}
	return &s.Bones[id], true
}

// BoneByName returns the first bone with the given name.
func (s *Skeleton) BoneByName(name string) (*Bone, bool) {
	for i := range s.Bones {
		if s.Bones[i].Name == name {
			return &s.Bones[i], true
		}
	}
	return nil, false
}

// Children returns every bone whose parent is parentID.
func (s *Skeleton) Children(parentID BoneID) []*Bone {
	var out []*Bone
	for i := range s.Bones {
		if s.Bones[i].Parent != nil && *s.Bones[i].Parent == parentID {
			out = append(out, &s.Bones[i])
		}
	}
	return out
}

// BoneCount returns the number of bones.
func (s *Skeleton) BoneCount() int {
	return len(s.Bones)
}

// Validate checks the hierarchy: bone IDs match their index, the root
// exists and is parentless, every parent reference resolves, and no parent
// chain loops.
func (s *Skeleton) Validate() error {
	if len(s.Bones) == 0 {
		return apperr.Validation("skeleton has no bones")
	}
	if s.RootBone < 0 || s.RootBone >= len(s.Bones) {
		return apperr.Validationf("root bone ID %d out of bounds, skeleton has %d bones",
			s.RootBone, len(s.Bones))
	}
	if s.Bones[s.RootBone].Parent != nil {
		return apperr.Validationf("root bone %q has a parent", s.Bones[s.RootBone].Name)
	}

	for index, bone := range s.Bones {
		if bone.ID != index {
			return apperr.Validationf("bone %q has ID %d but sits at index %d", bone.Name, bone.ID, index)
		}
		if bone.Parent != nil {
			if *bone.Parent < 0 || *bone.Parent >= len(s.Bones) {
				return apperr.Validationf("bone %q references missing parent ID %d", bone.Name, *bone.Parent)
			}
			if *bone.Parent == bone.ID {
				return apperr.Validationf("bone %q is its own parent", bone.Name)
			}
		}
	}

	for _, bone := range s.Bones {
		if s.hasParentCycle(bone.ID) {
			return apperr.Validationf("bone %q has a circular parent chain", bone.Name)
		}
	}

	return nil
}

func (s *Skeleton) hasParentCycle(start BoneID) bool {
	visited := make([]bool, len(s.Bones))
	current := start
	for {
		if visited[current] {
			return true
		}
		visited[current] = true
		bone := &s.Bones[current]
		if bone.Parent == nil {
			return false
		}
		current = *bone.Parent
	}
}
