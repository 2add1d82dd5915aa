package visual

import "math"

// ikEpsilon keeps the clamped target distance strictly inside the
// reachable annulus so the law of cosines never degenerates.
const ikEpsilon = 0.001

// SolveTwoBone solves analytic two-bone inverse kinematics for a chain like
// an arm or leg. Given the rest positions of the root joint, middle joint,
// and end effector plus a target, it returns the rotations to apply to the
// upper and lower bone. Unreachable targets are clamped into range rather
// than failed, so a fully extended limb points at the target.
//
// The optional pole position disambiguates the bend direction; when nil the
// joint bends relative to world up.
func SolveTwoBone(rootPos, midPos, endPos, target Vec3, pole *Vec3) [2]Quat {
	upperLength := vecLength(vecSub(midPos, rootPos))
	lowerLength := vecLength(vecSub(endPos, midPos))

	targetDir := vecSub(target, rootPos)
	targetDistance := vecLength(targetDir)

	maxReach := upperLength + lowerLength
	minReach := upperLength - lowerLength
	if minReach < 0 {
		minReach = -minReach
	}
	clamped := clamp32(targetDistance, minReach+ikEpsilon, maxReach-ikEpsilon)

	cosUpper := (upperLength*upperLength + clamped*clamped - lowerLength*lowerLength) /
		(2 * upperLength * clamped)
	cosMid := (upperLength*upperLength + lowerLength*lowerLength - clamped*clamped) /
		(2 * upperLength * lowerLength)

	upperAngle := acos32(clamp32(cosUpper, -1, 1))
	midAngle := float32(math.Pi) - acos32(clamp32(cosMid, -1, 1))

	targetNormalized := Vec3{0, 0, 1}
	if targetDistance > 0 {
		targetNormalized = vecScale(targetDir, 1/targetDistance)
	}

	poleDir := Vec3{0, 1, 0}
	if pole != nil {
		poleDir = vecNormalize(vecSub(*pole, rootPos))
	}

	axis := vecNormalize(vecCross(targetNormalized, poleDir))

	return [2]Quat{
		quatFromAxisAngle(axis, upperAngle),
		quatFromAxisAngle(axis, midAngle),
	}
}

// ApplyTwoBone runs the solved rotations forward from the root, returning
// the mid joint and end effector positions. The chain is assumed to extend
// along the root-to-target direction before bending: the upper bone rotates
// away from the target line by the first rotation, and the lower bone swings
// back by the second (the solver hands out the knee's exterior angle about
// the same axis).
func ApplyTwoBone(rootPos, target Vec3, upperLength, lowerLength float32, rotations [2]Quat) (mid, end Vec3) {
	dir := vecNormalize(vecSub(target, rootPos))

	upperDir := quatRotate(rotations[0], dir)
	mid = vecAdd(rootPos, vecScale(upperDir, upperLength))

	lowerDir := quatRotate(quatConjugate(rotations[1]), upperDir)
	end = vecAdd(mid, vecScale(lowerDir, lowerLength))
	return mid, end
}
