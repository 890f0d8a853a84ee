package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 r3.Vector) float64 {
	return p2.Sub(p1).Norm()
}

// OffsetAlongYaw moves p forward by `forward` and left by `left` in the ground plane of a heading
// of yaw radians. Z is untouched.
func OffsetAlongYaw(p r3.Vector, yaw, forward, left float64) r3.Vector {
	cosYaw, sinYaw := math.Cos(yaw), math.Sin(yaw)
	return r3.Vector{
		X: p.X + forward*cosYaw - left*sinYaw,
		Y: p.Y + forward*sinYaw + left*cosYaw,
		Z: p.Z,
	}
}
