// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rigid2d

import "github.com/quartzengine/rigid2d/math2"

// ForceField is an external force, defined at every point, applied to
// dynamic bodies during Step's integrate-forces stage alongside gravity
// (spec.md §1 "apply gravity and external forces to velocities").
// Grounded on the teacher's physics/forcefield.go, generalized from 3D
// to 2D.
type ForceField interface {
	ForceAt(pos math2.Vec2) math2.Vec2
}

// ConstantForceField applies the same force everywhere, e.g. wind.
type ConstantForceField struct {
	Force math2.Vec2
}

// ForceAt satisfies ForceField.
func (f ConstantForceField) ForceAt(pos math2.Vec2) math2.Vec2 {
	return f.Force
}

// PointAttractorForceField pulls bodies toward Position with a force
// that falls off with the inverse square of distance, scaled by Mass.
type PointAttractorForceField struct {
	Position math2.Vec2
	Mass     math2.Real
}

// ForceAt satisfies ForceField.
func (f PointAttractorForceField) ForceAt(pos math2.Vec2) math2.Vec2 {

	var dir math2.Vec2
	dir.SubVectors(f.Position, pos)
	dist := dir.Length()
	if dist <= math2.Epsilon {
		return math2.Vec2{}
	}
	dir.MultiplyScalar(1 / dist)
	dir.MultiplyScalar(f.Mass / (dist * dist))
	return dir
}

// PointRepellerForceField pushes bodies away from Position with a
// force that falls off with the inverse square of distance, scaled by
// Mass.
type PointRepellerForceField struct {
	Position math2.Vec2
	Mass     math2.Real
}

// ForceAt satisfies ForceField.
func (f PointRepellerForceField) ForceAt(pos math2.Vec2) math2.Vec2 {

	var dir math2.Vec2
	dir.SubVectors(pos, f.Position)
	dist := dir.Length()
	if dist <= math2.Epsilon {
		return math2.Vec2{}
	}
	dir.MultiplyScalar(1 / dist)
	dir.MultiplyScalar(f.Mass / (dist * dist))
	return dir
}

// AddForceField registers an external force field, applied to every
// dynamic body on every subsequent Step.
func (w *World) AddForceField(f ForceField) {
	w.forceFields = append(w.forceFields, f)
}

// RemoveForceField removes a previously added force field. Returns
// true if found.
func (w *World) RemoveForceField(f ForceField) bool {

	for i, existing := range w.forceFields {
		if existing == f {
			w.forceFields = append(w.forceFields[:i], w.forceFields[i+1:]...)
			return true
		}
	}
	return false
}
