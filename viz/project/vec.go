package project

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3    { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Mul(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Rotation is a precomputed rotation angle.
type Rotation struct {
	cos, sin float64
}

func Rotate(rad float64) Rotation {
	return Rotation{cos: math.Cos(rad), sin: math.Sin(rad)}
}

// RotateY rotates v about the Y axis.
func RotateY(v Vec3, r Rotation) Vec3 {
	return Vec3{
		X: v.X*r.cos - v.Z*r.sin,
		Y: v.Y,
		Z: v.Z*r.cos + v.X*r.sin,
	}
}

// RotateX rotates v about the X axis.
func RotateX(v Vec3, r Rotation) Vec3 {
	return Vec3{
		X: v.X,
		Y: v.Y*r.cos - v.Z*r.sin,
		Z: v.Z*r.cos + v.Y*r.sin,
	}
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
