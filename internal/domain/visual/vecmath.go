package visual

import "math"

// Vec3 is an [x, y, z] vector. Mesh and animation data stores raw arrays;
// the helpers here keep the geometry code readable without pulling in a
// full linear algebra dependency.
type Vec3 = [3]float32

// Quat is an [x, y, z, w] quaternion.
type Quat = [4]float32

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

func sin32(v float32) float32 {
	return float32(math.Sin(float64(v)))
}

func cos32(v float32) float32 {
	return float32(math.Cos(float64(v)))
}

func acos32(v float32) float32 {
	return float32(math.Acos(float64(v)))
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func vecAdd(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func vecSub(a, b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func vecScale(v Vec3, s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func vecDot(a, b Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func vecCross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func vecLength(v Vec3) float32 {
	return sqrt32(vecDot(v, v))
}

// vecNormalize returns the unit vector, or zero when the input has no length.
func vecNormalize(v Vec3) Vec3 {
	length := vecLength(v)
	if length == 0 {
		return Vec3{}
	}
	return vecScale(v, 1/length)
}

func vecLerp(a, b Vec3, t float32) Vec3 {
	return Vec3{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}

func quatNormalize(q Quat) Quat {
	length := sqrt32(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	if length == 0 {
		return QuatIdentity()
	}
	return Quat{q[0] / length, q[1] / length, q[2] / length, q[3] / length}
}

// quatSlerp interpolates along the shortest arc between two rotations. Near
// parallel quaternions fall back to normalized lerp to avoid dividing by a
// vanishing sin(theta).
func quatSlerp(a, b Quat, t float32) Quat {
	qa := quatNormalize(a)
	qb := quatNormalize(b)

	dot := qa[0]*qb[0] + qa[1]*qb[1] + qa[2]*qb[2] + qa[3]*qb[3]
	if dot < 0 {
		qb = Quat{-qb[0], -qb[1], -qb[2], -qb[3]}
		dot = -dot
	}

	if dot > 0.9995 {
		return quatNormalize(Quat{
			qa[0] + (qb[0]-qa[0])*t,
			qa[1] + (qb[1]-qa[1])*t,
			qa[2] + (qb[2]-qa[2])*t,
			qa[3] + (qb[3]-qa[3])*t,
		})
	}

	theta := acos32(clamp32(dot, -1, 1))
	sinTheta := sin32(theta)
	scaleA := sin32((1-t)*theta) / sinTheta
	scaleB := sin32(t*theta) / sinTheta

	return Quat{
		qa[0]*scaleA + qb[0]*scaleB,
		qa[1]*scaleA + qb[1]*scaleB,
		qa[2]*scaleA + qb[2]*scaleB,
		qa[3]*scaleA + qb[3]*scaleB,
	}
}

// quatFromAxisAngle builds a rotation of angle radians about a normalized axis.
func quatFromAxisAngle(axis Vec3, angle float32) Quat {
	half := angle * 0.5
	sinHalf := sin32(half)
	return Quat{axis[0] * sinHalf, axis[1] * sinHalf, axis[2] * sinHalf, cos32(half)}
}

// quatConjugate inverts a unit quaternion's rotation.
func quatConjugate(q Quat) Quat {
	return Quat{-q[0], -q[1], -q[2], q[3]}
}

// quatRotate applies a rotation to a vector using q * v * q^-1 expanded to
// the cross product form.
func quatRotate(q Quat, v Vec3) Vec3 {
	qv := Vec3{q[0], q[1], q[2]}
	uv := vecCross(qv, v)
	uuv := vecCross(qv, uv)
	return vecAdd(v, vecAdd(vecScale(uv, 2*q[3]), vecScale(uuv, 2)))
}
