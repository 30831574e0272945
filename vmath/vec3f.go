package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector in arena space
// X and Z span the ground plane, Y is height and stays presentation-only
type Vec3F struct {
	X float64 `json:"x" yaml:"x" msgpack:"x"`
	Y float64 `json:"y" yaml:"y" msgpack:"y"`
	Z float64 `json:"z" yaml:"z" msgpack:"z"`
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

// V3FAddScaled returns a + b*s
func V3FAddScaled(a, b Vec3F, s float64) Vec3F {
	return Vec3F{a.X + b.X*s, a.Y + b.Y*s, a.Z + b.Z*s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FNormalize returns the unit vector of v, or zero vector when v has no length
func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FDist returns the euclidean distance between two points
func V3FDist(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

// V3FFacing returns the heading angle for a ground-plane direction
// Angle 0 faces +Z, positive angles turn toward +X
func V3FFacing(dir Vec3F) float64 {
	return math.Atan2(dir.X, dir.Z)
}

// V3FHeading returns the unit ground-plane vector for a heading angle, inverse of V3FFacing
func V3FHeading(angle float64) Vec3F {
	return Vec3F{X: math.Sin(angle), Z: math.Cos(angle)}
}

// V3FClampPlanar clamps X and Z into [-bound, bound], Y untouched
func V3FClampPlanar(v Vec3F, bound float64) Vec3F {
	v.X = Clamp(v.X, -bound, bound)
	v.Z = Clamp(v.Z, -bound, bound)
	return v
}

// V3FClampMag shortens v to at most limit length, keeping direction
func V3FClampMag(v Vec3F, limit float64) Vec3F {
	mag := V3FMag(v)
	if mag <= limit || mag == 0 {
		return v
	}
	return V3FScale(v, limit/mag)
}
