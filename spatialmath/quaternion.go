// Package spatialmath contains the orientation and distance helpers the converters use to place
// geometry in the world frame.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/autoware-viz/sceneconv/msgs"
)

// QuatFromMsg converts a ROS quaternion (x, y, z, w) to a gonum quaternion.
func QuatFromMsg(q msgs.Quaternion) quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

// QuatToMsg converts a gonum quaternion to a ROS quaternion.
func QuatToMsg(q quat.Number) msgs.Quaternion {
	return msgs.Quaternion{X: q.Imag, Y: q.Jmag, Z: q.Kmag, W: q.Real}
}

// NewZeroOrientation returns the identity quaternion.
func NewZeroOrientation() quat.Number {
	return quat.Number{Real: 1}
}

// QuaternionFromYaw returns the unit quaternion for a pure rotation of yaw radians about +Z.
func QuaternionFromYaw(yaw float64) quat.Number {
	return quat.Number{Real: math.Cos(yaw / 2), Kmag: math.Sin(yaw / 2)}
}

// YawFromQuaternion extracts the heading about +Z. The quaternion is assumed to be unit length;
// it is not renormalized.
func YawFromQuaternion(q quat.Number) float64 {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	return math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))
}

// RotateVector rotates a vector expressed in the body frame of q into the parent frame by
// computing q * v * conj(q).
func RotateVector(q quat.Number, v r3.Vector) r3.Vector {
	rotated := quat.Mul(quat.Mul(q, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(q))
	return r3.Vector{X: rotated.Imag, Y: rotated.Jmag, Z: rotated.Kmag}
}

// QuaternionAlmostEqual is an equality test for all the float components of a quaternion. Quaternions have double coverage, q == -q, and
// this function will *not* account for that. Use only if you're certain you're looking for exactly identical quaternions.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	return math.Abs(a.Imag-b.Imag) < tol &&
		math.Abs(a.Jmag-b.Jmag) < tol &&
		math.Abs(a.Kmag-b.Kmag) < tol &&
		math.Abs(a.Real-b.Real) < tol
}
