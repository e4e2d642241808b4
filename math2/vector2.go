// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math2

import "errors"

// ErrZeroVector is returned by operations that need a non-zero vector
// (normalize, clampedLength on a zero vector with a positive length)
// but were given one. Programmer error: surface as a precondition
// violation, see spec.md §7.
var ErrZeroVector = errors.New("math2: zero vector where non-zero was required")

// Vec2 is a 2D vector/point with X and Y components.
type Vec2 struct {
	X Real
	Y Real
}

// NewVec2 creates and returns a new Vec2 with the specified x and y components.
func NewVec2(x, y Real) Vec2 {

	return Vec2{X: x, Y: y}
}

// Set sets this vector's X and Y components. Returns the updated vector.
func (v *Vec2) Set(x, y Real) *Vec2 {

	v.X = x
	v.Y = y
	return v
}

// Zero sets this vector's components to zero. Returns the updated vector.
func (v *Vec2) Zero() *Vec2 {

	v.X = 0
	v.Y = 0
	return v
}

// Copy copies other into this vector. Returns the updated vector.
func (v *Vec2) Copy(other Vec2) *Vec2 {

	*v = other
	return v
}

// Add adds other to this vector. Returns the updated vector.
func (v *Vec2) Add(other Vec2) *Vec2 {

	v.X += other.X
	v.Y += other.Y
	return v
}

// AddVectors sets this vector to a + b. Returns the updated vector.
func (v *Vec2) AddVectors(a, b Vec2) *Vec2 {

	v.X = a.X + b.X
	v.Y = a.Y + b.Y
	return v
}

// Sub subtracts other from this vector. Returns the updated vector.
func (v *Vec2) Sub(other Vec2) *Vec2 {

	v.X -= other.X
	v.Y -= other.Y
	return v
}

// SubVectors sets this vector to a - b. Returns the updated vector.
func (v *Vec2) SubVectors(a, b Vec2) *Vec2 {

	v.X = a.X - b.X
	v.Y = a.Y - b.Y
	return v
}

// MultiplyScalar multiplies each component by s. Returns the updated vector.
func (v *Vec2) MultiplyScalar(s Real) *Vec2 {

	v.X *= s
	v.Y *= s
	return v
}

// DivideScalar divides each component by s. If s is zero, sets this vector to zero.
// Returns the updated vector.
func (v *Vec2) DivideScalar(s Real) *Vec2 {

	if s != 0 {
		inv := 1 / s
		v.X *= inv
		v.Y *= inv
	} else {
		v.X = 0
		v.Y = 0
	}
	return v
}

// Negate negates each component. Returns the updated vector.
func (v *Vec2) Negate() *Vec2 {

	v.X = -v.X
	v.Y = -v.Y
	return v
}

// Min sets this vector's components to the minimum of itself and other.
func (v *Vec2) Min(other Vec2) *Vec2 {

	if other.X < v.X {
		v.X = other.X
	}
	if other.Y < v.Y {
		v.Y = other.Y
	}
	return v
}

// Max sets this vector's components to the maximum of itself and other.
func (v *Vec2) Max(other Vec2) *Vec2 {

	if other.X > v.X {
		v.X = other.X
	}
	if other.Y > v.Y {
		v.Y = other.Y
	}
	return v
}

// Dot returns the dot product of this vector with other.
func (v Vec2) Dot(other Vec2) Real {

	return v.X*other.X + v.Y*other.Y
}

// Cross returns the 2D cross product (scalar) of this vector with other:
// the z component of the 3D cross product of (v,0) and (other,0).
func (v Vec2) Cross(other Vec2) Real {

	return v.X*other.Y - v.Y*other.X
}

// Perp returns the vector rotated by +90 degrees: (-y, x).
func (v Vec2) Perp() Vec2 {

	return Vec2{-v.Y, v.X}
}

// LengthSq returns the squared length of this vector.
func (v Vec2) LengthSq() Real {

	return v.X*v.X + v.Y*v.Y
}

// Length returns the length of this vector.
func (v Vec2) Length() Real {

	return Sqrt(v.LengthSq())
}

// IsZero reports whether this vector is within Epsilon of the zero vector.
func (v Vec2) IsZero() bool {

	return Abs(v.X) < Epsilon && Abs(v.Y) < Epsilon
}

// Normalize normalizes this vector so its length becomes 1.
// Returns ErrZeroVector if the vector is (near) zero.
func (v *Vec2) Normalize() error {

	if v.IsZero() {
		return ErrZeroVector
	}
	v.DivideScalar(v.Length())
	return nil
}

// Normalized returns a unit-length copy of v, or the zero vector and
// ErrZeroVector if v is (near) zero.
func (v Vec2) Normalized() (Vec2, error) {

	if err := v.Normalize(); err != nil {
		return Vec2{}, err
	}
	return v, nil
}

// ClampedLength scales v to length L only if |v| > L; otherwise returns v
// unchanged. Fails with ErrZeroVector if v is (near) zero and L > 0, per
// spec.md §4.1.
func ClampedLength(v Vec2, length Real) (Vec2, error) {

	if length > 0 && v.IsZero() {
		return Vec2{}, ErrZeroVector
	}
	l := v.Length()
	if l <= length {
		return v, nil
	}
	scale := length / l
	v.MultiplyScalar(scale)
	return v, nil
}

// Lerp linearly interpolates between v and other by alpha in [0,1].
func (v Vec2) Lerp(other Vec2, alpha Real) Vec2 {

	return Vec2{
		X: v.X + (other.X-v.X)*alpha,
		Y: v.Y + (other.Y-v.Y)*alpha,
	}
}

// Equals reports whether v and other are bit-equal.
func (v Vec2) Equals(other Vec2) bool {

	return v.X == other.X && v.Y == other.Y
}
