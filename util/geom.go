package util

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

func DegToRad(deg float64) float64 {
	return deg / 180.0 * math.Pi
}

// Rotation2D returns the 2x2 rotation matrix for the given angle in radians.
func Rotation2D(rot float64) *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		math.Cos(rot), -math.Sin(rot),
		math.Sin(rot), math.Cos(rot),
	})
}

// RigidTransform2D returns the 3x3 homogeneous transform of a frame located
// at (trX, trY) with its x axis rotated by rot, mapping local coordinates
// into the fixed frame.
func RigidTransform2D(trX, trY, rot float64) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		math.Cos(rot), -math.Sin(rot), trX,
		math.Sin(rot), math.Cos(rot), trY,
		0, 0, 1,
	})
}

// InvTransform2D inverts a rigid transform produced by RigidTransform2D
// without a general matrix inversion: the rotation block is transposed and
// the translation re-projected.
func InvTransform2D(tf *mat.Dense) *mat.Dense {
	r00, r01 := tf.At(0, 0), tf.At(0, 1)
	r10, r11 := tf.At(1, 0), tf.At(1, 1)
	tx, ty := tf.At(0, 2), tf.At(1, 2)
	return mat.NewDense(3, 3, []float64{
		r00, r10, -(r00*tx + r10*ty),
		r01, r11, -(r01*tx + r11*ty),
		0, 0, 1,
	})
}

// IsWithin reports whether p lies inside the axis-aligned box [min, max].
// With inclusive set, points on the boundary count as inside.
func IsWithin(min, max, p []float64, inclusive bool) bool {
	for i := range p {
		if inclusive {
			if p[i] < min[i] || max[i] < p[i] {
				return false
			}
		} else {
			if p[i] <= min[i] || max[i] <= p[i] {
				return false
			}
		}
	}
	return true
}
