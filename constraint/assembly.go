// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"github.com/quartzengine/rigid2d/contact"
	"github.com/quartzengine/rigid2d/math2"
	"github.com/quartzengine/rigid2d/object"
)

// Config holds the assembly-time parameters that shape the Baumgarte
// bias term: beta is the position-correction fraction applied per
// step, slop is the penetration allowed before correction kicks in
// (avoiding jitter from floating-point noise), and restitution is the
// coefficient of restitution applied to the pre-solve approach
// velocity (spec.md §4.9, §6 WorldConfig).
type Config struct {
	Beta        math2.Real
	Slop        math2.Real
	Restitution math2.Real
	Dt          math2.Real
}

// DefaultConfig returns reasonable assembly parameters (spec.md §9).
func DefaultConfig(dt math2.Real) Config {

	return Config{Beta: 0.1, Slop: 0.005, Restitution: 0, Dt: dt}
}

// worldOffset returns the world-space vector from body's center of
// mass to localPoint transformed into world space.
func worldOffset(body *object.Body, localPoint math2.Vec2) math2.Vec2 {

	world := body.PointToWorld(localPoint)
	var r math2.Vec2
	r.SubVectors(world, body.Position)
	return r
}

// AssembleContacts builds one Constraint row per ContactPoint across
// all cached pairs, resolving body ids through lookup. Pairs whose
// bodies no longer exist are skipped defensively; the caller is
// expected to have already retired such CachedPairs (spec.md §4.8).
func AssembleContacts(pairs []*contact.CachedPair, lookup func(object.BodyId) (*object.Body, bool), cfg Config) []*Constraint {

	var rows []*Constraint
	for _, cp := range pairs {
		bodyA, okA := lookup(cp.Pair.A)
		bodyB, okB := lookup(cp.Pair.B)
		if !okA || !okB {
			continue
		}

		for i := range cp.Points {
			pt := &cp.Points[i]
			rA := worldOffset(bodyA, pt.LocalA)
			rB := worldOffset(bodyB, pt.LocalB)

			row := New(bodyA, bodyB, rA, rB, cp.Normal, 0, 0, math2.Infinity, &pt.AccumImpulse)

			approach := row.relativeVelocity()
			penetrationBias := -(cfg.Beta / cfg.Dt) * math2.Max(0, pt.Depth-cfg.Slop)
			restitutionBias := math2.Real(0)
			if approach < -1 {
				restitutionBias = cfg.Restitution * approach
			}
			row.Bias = penetrationBias + restitutionBias

			rows = append(rows, row)
		}
	}
	return rows
}

// AssembleJoints builds two unclamped Constraint rows (world X and Y)
// per Joint, driving each body's matching anchor point toward the
// other's (spec.md §4.9).
func AssembleJoints(joints []*Joint, lookup func(object.BodyId) (*object.Body, bool), cfg Config) []*Constraint {

	var rows []*Constraint
	axes := [2]math2.Vec2{{X: 1, Y: 0}, {X: 0, Y: 1}}

	for _, j := range joints {
		bodyA, okA := lookup(j.BodyA)
		bodyB, okB := lookup(j.BodyB)
		if !okA || !okB {
			continue
		}

		rA := worldOffset(bodyA, j.LocalAnchorA)
		rB := worldOffset(bodyB, j.LocalAnchorB)

		var anchorA, anchorB math2.Vec2
		anchorA.AddVectors(bodyA.Position, rA)
		anchorB.AddVectors(bodyB.Position, rB)
		var errVec math2.Vec2
		errVec.SubVectors(anchorB, anchorA)

		for axisIdx, axis := range axes {
			row := New(bodyA, bodyB, rA, rB, axis, 0, -math2.Infinity, math2.Infinity, &j.AccumImpulse[axisIdx])
			row.Bias = (cfg.Beta / cfg.Dt) * errVec.Dot(axis)
			rows = append(rows, row)
		}
	}
	return rows
}
