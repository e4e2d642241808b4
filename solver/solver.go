// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver runs the iterative Gauss-Seidel pass over the
// assembled constraint rows, grounded on the teacher's
// physics/solver/gs.go. Unlike the teacher, which accumulates
// per-body VelocityDeltas in side arrays indexed by body and merges
// them into the body state after solving, rows here write directly
// into each object.Body's LinearVelocity/AngularVelocity as they
// iterate (the standard sequential-impulse style spec.md §4.10
// describes): there is no separate SolverBody snapshot to keep in
// sync, since a body's velocity IS its solver state during the solve.
package solver

import "github.com/quartzengine/rigid2d/constraint"

// Info controls how the solver runs: how many Gauss-Seidel passes to
// take, and whether to warm-start from each row's accumulated impulse
// (spec.md §4.10).
type Info struct {
	NumIterations int
	WarmStarting  bool
}

// DefaultInfo returns the solver parameters used when a World is not
// configured otherwise (spec.md §6 WorldConfig).
func DefaultInfo() Info {
	return Info{NumIterations: 10, WarmStarting: true}
}

// Solve runs the sequential-impulse solve over rows: one warm-start
// pass (if enabled) seeding each row's contribution from its carried
// AccumImpulse, then NumIterations Gauss-Seidel passes refining the
// accumulated impulses and the bodies' velocities in lockstep.
func Solve(rows []*constraint.Constraint, info Info) {

	if info.WarmStarting {
		for _, row := range rows {
			row.WarmStart()
		}
	}
	for i := 0; i < info.NumIterations; i++ {
		for _, row := range rows {
			row.Iterate()
		}
	}
}
