// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math2

import "errors"

// ErrSingularTransform is returned when TransformPointInverse is called on
// a Transform whose determinant is (near) zero. Programmer error: surface
// as a precondition violation, see spec.md §7.
var ErrSingularTransform = errors.New("math2: transform has no inverse (singular)")

// Vec2H is a 2D vector carrying an explicit homogeneous coordinate. A
// world "position" sets W=1 so translation applies when transformed; a
// "direction" sets W=0 so only rotation applies. Position and direction
// are distinguished only by W, per spec.md §3.
type Vec2H struct {
	X, Y, W Real
}

// Position builds a homogeneous position (W=1) from a Vec2.
func Position(v Vec2) Vec2H {
	return Vec2H{v.X, v.Y, 1}
}

// Direction builds a homogeneous direction (W=0) from a Vec2.
func Direction(v Vec2) Vec2H {
	return Vec2H{v.X, v.Y, 0}
}

// Vec2 drops the homogeneous coordinate, returning the 2D point/direction.
func (v Vec2H) Vec2() Vec2 {
	return Vec2{v.X, v.Y}
}

// Transform is a 3x3 matrix encoding a 2D rotation and translation,
// stored column-major: [m00 m10 m20 m01 m11 m21 m02 m12 m22].
type Transform [9]Real

// Identity returns the identity transform.
func Identity() Transform {

	var t Transform
	t[0], t[4], t[8] = 1, 1, 1
	return t
}

// NewTransform builds a transform from a rotation angle (radians) and a
// world translation, matching the convention used by Body poses.
func NewTransform(angle Real, translation Vec2) Transform {

	c, s := Cos(angle), Sin(angle)
	var t Transform
	// column 0
	t[0] = c
	t[1] = s
	t[2] = 0
	// column 1
	t[3] = -s
	t[4] = c
	t[5] = 0
	// column 2 (translation)
	t[6] = translation.X
	t[7] = translation.Y
	t[8] = 1
	return t
}

func (t *Transform) at(row, col int) Real {
	return t[col*3+row]
}

// Determinant computes the determinant of the 3x3 homogeneous matrix.
func (t *Transform) Determinant() Real {

	a, b, c := t.at(0, 0), t.at(0, 1), t.at(0, 2)
	d, e, f := t.at(1, 0), t.at(1, 1), t.at(1, 2)
	g, h, i := t.at(2, 0), t.at(2, 1), t.at(2, 2)

	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// TransformPoint applies this transform to v, which carries its own
// homogeneous coordinate (1 for a position, 0 for a direction) per
// spec.md §3, and returns the resulting 2D point/direction. The
// homogeneous coordinate of the result is never written back: only x
// and y are computed.
func (t *Transform) TransformPoint(v Vec2H) Vec2 {

	x := t.at(0, 0)*v.X + t.at(0, 1)*v.Y + t.at(0, 2)*v.W
	y := t.at(1, 0)*v.X + t.at(1, 1)*v.Y + t.at(1, 2)*v.W
	return Vec2{x, y}
}

// TransformPointInverse applies the inverse of this transform to v using
// the adjugate divided by the determinant. Fails with ErrSingularTransform
// when |det| <= Epsilon, per spec.md §4.1.
func (t *Transform) TransformPointInverse(v Vec2H) (Vec2, error) {

	a, b, c := t.at(0, 0), t.at(0, 1), t.at(0, 2)
	d, e, f := t.at(1, 0), t.at(1, 1), t.at(1, 2)
	g, h, i := t.at(2, 0), t.at(2, 1), t.at(2, 2)

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if Abs(det) <= Epsilon {
		return Vec2{}, ErrSingularTransform
	}

	// Adjugate (transpose of the cofactor matrix), rows 0 and 1 only —
	// the output is always a 2D point, per spec.md §9's note on the
	// original setTransformedInversePos.
	invDet := 1 / det
	m00 := (e*i - f*h) * invDet
	m01 := (c*h - b*i) * invDet
	m02 := (b*f - c*e) * invDet
	m10 := (f*g - d*i) * invDet
	m11 := (a*i - c*g) * invDet
	m12 := (c*d - a*f) * invDet

	x := m00*v.X + m01*v.Y + m02*v.W
	y := m10*v.X + m11*v.Y + m12*v.W
	return Vec2{x, y}, nil
}

// Position extracts the translation component of this transform.
func (t *Transform) Position() Vec2 {
	return Vec2{t.at(0, 2), t.at(1, 2)}
}
