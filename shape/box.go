// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/quartzengine/rigid2d/math2"

// Box is a shape defined by its half-extents along the local X and Y
// axes, centered on the local origin.
type Box struct {
	HalfExtents math2.Vec2
}

// NewBox creates a new Box shape from half-extents along X and Y.
func NewBox(halfExtents math2.Vec2) *Box {
	return &Box{HalfExtents: halfExtents}
}

// Kind satisfies Shape.
func (b *Box) Kind() Kind { return KindBox }

// Support returns the corner of the box whose signs match d, per
// spec.md §4.1.
func (b *Box) Support(d math2.Vec2) math2.Vec2 {

	x := b.HalfExtents.X
	if d.X < 0 {
		x = -x
	}
	y := b.HalfExtents.Y
	if d.Y < 0 {
		y = -y
	}
	return math2.Vec2{X: x, Y: y}
}

// LocalAABB satisfies Shape.
func (b *Box) LocalAABB() math2.AABB {

	return math2.AABB{
		Min: math2.Vec2{X: -b.HalfExtents.X, Y: -b.HalfExtents.Y},
		Max: math2.Vec2{X: b.HalfExtents.X, Y: b.HalfExtents.Y},
	}
}

// Vertices returns the four corners of the box in CCW order, local frame.
func (b *Box) Vertices() [4]math2.Vec2 {

	hx, hy := b.HalfExtents.X, b.HalfExtents.Y
	return [4]math2.Vec2{
		{X: hx, Y: -hy},
		{X: hx, Y: hy},
		{X: -hx, Y: hy},
		{X: -hx, Y: -hy},
	}
}
