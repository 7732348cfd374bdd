package core

import "math"

// Deg2Rad converts degrees to radians.
const Deg2Rad = math.Pi / 180

// Rad2Deg converts radians to degrees.
const Rad2Deg = 180 / math.Pi

// Vec2 is a point or direction on the horizontal XZ plane.
type Vec2 struct {
	X, Z float64
}

// NewVec2 creates a new XZ vector.
func NewVec2(x, z float64) Vec2 { return Vec2{X: x, Z: z} }

// Add returns the sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Z + o.Z} }

// Sub returns the difference between two vectors.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Z - o.Z} }

// Scale multiplies the vector by a scalar.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Z * k} }

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Z*o.Z }

// LenSq returns the squared length.
func (v Vec2) LenSq() float64 { return v.Dot(v) }

// Len returns the Euclidean length.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Z) }

// Dist returns the distance between two points.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Z / l}
}

// Heading returns the unit forward vector for a yaw in degrees,
// measured clockwise from +Z towards +X.
func Heading(yawDeg float64) Vec2 {
	s, c := math.Sincos(yawDeg * Deg2Rad)
	return Vec2{X: s, Z: c}
}

// Bearing returns the yaw in degrees [0, 360) of a direction on the XZ plane.
func Bearing(v Vec2) float64 {
	deg := math.Atan2(v.X, v.Z) * Rad2Deg
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Vec3 is a world-space vector with Y pointing up.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new 3D vector.
func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns the sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference between two vectors.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale multiplies the vector by a scalar.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// LenSq returns the squared length.
func (v Vec3) LenSq() float64 { return v.Dot(v) }

// Len returns the Euclidean length.
func (v Vec3) Len() float64 { return math.Sqrt(v.LenSq()) }

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// XZ drops the vertical component.
func (v Vec3) XZ() Vec2 { return Vec2{X: v.X, Z: v.Z} }

// Lift places an XZ point at height y.
func (v Vec2) Lift(y float64) Vec3 { return Vec3{X: v.X, Y: y, Z: v.Z} }
