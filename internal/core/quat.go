package core

import "math"

// Quat is a rotation quaternion. Euler angles follow the Y-up convention used
// by the game world: pitch about X, yaw about Y, roll about Z, applied
// roll first, then pitch, then yaw.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat { return Quat{W: 1} }

// AxisAngle builds a rotation of deg degrees about a unit axis.
func AxisAngle(axis Vec3, deg float64) Quat {
	s, c := math.Sincos(deg * Deg2Rad / 2)
	return Quat{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: c}
}

// FromEuler builds a rotation from pitch, yaw and roll in degrees.
func FromEuler(pitch, yaw, roll float64) Quat {
	qy := AxisAngle(Vec3{Y: 1}, yaw)
	qx := AxisAngle(Vec3{X: 1}, pitch)
	qz := AxisAngle(Vec3{Z: 1}, roll)
	return qy.Mul(qx).Mul(qz)
}

// Mul composes two rotations; o is applied first.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Dot returns the 4D dot product.
func (q Quat) Dot(o Quat) float64 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// Normalize returns the unit quaternion. A zero quaternion becomes identity.
func (q Quat) Normalize() Quat {
	l := math.Sqrt(q.Dot(q))
	if l == 0 {
		return QuatIdentity()
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// Rotate applies the rotation to a vector.
func (q Quat) Rotate(v Vec3) Vec3 {
	// t = 2 * cross(q.xyz, v); v' = v + w*t + cross(q.xyz, t)
	tx := 2 * (q.Y*v.Z - q.Z*v.Y)
	ty := 2 * (q.Z*v.X - q.X*v.Z)
	tz := 2 * (q.X*v.Y - q.Y*v.X)
	return Vec3{
		X: v.X + q.W*tx + (q.Y*tz - q.Z*ty),
		Y: v.Y + q.W*ty + (q.Z*tx - q.X*tz),
		Z: v.Z + q.W*tz + (q.X*ty - q.Y*tx),
	}
}

// Forward returns the rotated +Z axis.
func (q Quat) Forward() Vec3 { return q.Rotate(Vec3{Z: 1}) }

// Euler decomposes the rotation into pitch, yaw and roll in degrees.
func (q Quat) Euler() (pitch, yaw, roll float64) {
	f := q.Forward()
	r := q.Rotate(Vec3{X: 1})
	u := q.Rotate(Vec3{Y: 1})

	pitch = math.Asin(ClampF(-f.Y, -1, 1)) * Rad2Deg
	yaw = math.Atan2(f.X, f.Z) * Rad2Deg
	roll = math.Atan2(r.Y, u.Y) * Rad2Deg
	return pitch, yaw, roll
}

// Angle returns the angle in degrees between two rotations.
func (q Quat) Angle(o Quat) float64 {
	d := math.Abs(q.Normalize().Dot(o.Normalize()))
	return 2 * math.Acos(math.Min(d, 1)) * Rad2Deg
}

// Slerp spherically interpolates from a to b. t is clamped to [0, 1] and the
// shorter arc is always taken.
func Slerp(a, b Quat, t float64) Quat {
	t = ClampF(t, 0, 1)
	a = a.Normalize()
	b = b.Normalize()

	cos := a.Dot(b)
	if cos < 0 {
		b = Quat{-b.X, -b.Y, -b.Z, -b.W}
		cos = -cos
	}

	// Nearly parallel: fall back to normalized lerp
	if cos > 0.9995 {
		return Quat{
			X: a.X + (b.X-a.X)*t,
			Y: a.Y + (b.Y-a.Y)*t,
			Z: a.Z + (b.Z-a.Z)*t,
			W: a.W + (b.W-a.W)*t,
		}.Normalize()
	}

	theta := math.Acos(cos)
	sin := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sin
	wb := math.Sin(t*theta) / sin
	return Quat{
		X: wa*a.X + wb*b.X,
		Y: wa*a.Y + wb*b.Y,
		Z: wa*a.Z + wb*b.Z,
		W: wa*a.W + wb*b.W,
	}
}

// MoveTowards moves current towards target by at most maxDelta.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}
