// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math2

// AABB is a 2D axis-aligned bounding box in world space, defined by its
// minimum and maximum corners.
type AABB struct {
	Min Vec2
	Max Vec2
}

// EmptyAABB returns an AABB with no extent, ready to be grown with
// ExpandByPoint.
func EmptyAABB() AABB {
	return AABB{
		Min: Vec2{Infinity, Infinity},
		Max: Vec2{-Infinity, -Infinity},
	}
}

// ExpandByPoint grows the box, if needed, to contain point. Returns the
// updated box.
func (b *AABB) ExpandByPoint(point Vec2) *AABB {

	b.Min.Min(point)
	b.Max.Max(point)
	return b
}

// Center returns the center point of the box.
func (b AABB) Center() Vec2 {

	var c Vec2
	c.AddVectors(b.Min, b.Max).MultiplyScalar(0.5)
	return c
}

// Overlaps reports whether b and other intersect, per spec.md §4.2.
func (b AABB) Overlaps(other AABB) bool {

	if other.Max.X < b.Min.X || other.Min.X > b.Max.X {
		return false
	}
	if other.Max.Y < b.Min.Y || other.Min.Y > b.Max.Y {
		return false
	}
	return true
}

// Translate offsets both corners by v.
func (b *AABB) Translate(v Vec2) *AABB {

	b.Min.Add(v)
	b.Max.Add(v)
	return b
}
