// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rigid2d implements a deterministic, single-threaded 2D rigid
// body physics core: a World holds bodies and joints and advances them
// one fixed timestep at a time through integrate-forces, broadphase,
// narrow-phase, contact caching, constraint assembly and iterative
// solve (spec.md §2). Grounded on the teacher's physics/simulation.go
// Simulation/internalStep driver, generalized from its 3D pipeline to
// 2D and to this package's own body/joint/shape types.
package rigid2d

import (
	"errors"
	"fmt"
	"sort"

	"github.com/quartzengine/rigid2d/collision"
	"github.com/quartzengine/rigid2d/constraint"
	"github.com/quartzengine/rigid2d/contact"
	"github.com/quartzengine/rigid2d/internal/log"
	"github.com/quartzengine/rigid2d/math2"
	"github.com/quartzengine/rigid2d/narrowphase"
	"github.com/quartzengine/rigid2d/object"
	"github.com/quartzengine/rigid2d/shape"
	"github.com/quartzengine/rigid2d/solver"
)

// ErrInvalidBodyId is returned by any World operation given a BodyId
// that was never issued, or that has since been removed (spec.md §7).
var ErrInvalidBodyId = errors.New("rigid2d: invalid body id")

// ErrInvalidJointId is returned by any World operation given a JointId
// that was never issued, or that has since been removed (spec.md §7).
var ErrInvalidJointId = errors.New("rigid2d: invalid joint id")

// WorldConfig holds the parameters of a World's simulation (spec.md §6).
type WorldConfig struct {
	Gravity                  math2.Vec2
	DeltaTime                math2.Real
	CoefficientOfRestitution math2.Real
	NumIterations            int

	// Beta is the Baumgarte position-correction fraction applied each
	// step; Slop is the penetration allowed before correction kicks in
	// (spec.md §4.9).
	Beta math2.Real
	Slop math2.Real

	// LogFilePath, if non-empty, adds a file writer alongside the
	// default console one so an embedder running long batch
	// simulations can keep a persistent log of a World's lifetime.
	LogFilePath string
}

// DefaultWorldConfig returns reasonable defaults: Earth-like gravity,
// a 60Hz fixed timestep, inelastic contacts and 10 solver iterations.
func DefaultWorldConfig() WorldConfig {

	return WorldConfig{
		Gravity:                  math2.Vec2{X: 0, Y: -9.81},
		DeltaTime:                1.0 / 60.0,
		CoefficientOfRestitution: 0,
		NumIterations:            10,
		Beta:                     0.1,
		Slop:                     0.005,
	}
}

// World owns every body and joint in a simulation and advances them
// through Step (spec.md §2, §6).
type World struct {
	config WorldConfig

	bodies       map[object.BodyId]*object.Body
	nextBodyId   object.BodyId
	freeBodyIds  []object.BodyId

	joints       map[constraint.JointId]*constraint.Joint
	nextJointId  constraint.JointId
	freeJointIds []constraint.JointId

	broadphase  *collision.Broadphase
	cachedPairs map[collision.BodyIdPair]*contact.CachedPair

	forceFields []ForceField

	time        math2.Real
	stepNumber  int
}

// CreateWorld creates an empty World with the given configuration
// (spec.md §6 createWorld). If config.LogFilePath is set, log output is
// additionally written there; a failure to open it is logged and
// otherwise ignored, since it is an ambient concern and never a reason
// to fail the simulation itself.
func CreateWorld(config WorldConfig) *World {

	if config.LogFilePath != "" {
		f, err := log.NewFile(config.LogFilePath)
		if err != nil {
			log.Error("rigid2d: could not open log file %q: %v", config.LogFilePath, err)
		} else {
			log.AddWriter(f)
		}
	}

	return &World{
		config:      config,
		bodies:      make(map[object.BodyId]*object.Body),
		joints:      make(map[constraint.JointId]*constraint.Joint),
		broadphase:  collision.NewBroadphase(),
		cachedPairs: make(map[collision.BodyIdPair]*contact.CachedPair),
	}
}

// CreateBody adds a new body to the world and returns its id. Ids are
// allocated from a free-list, so a removed body's id may be reused by
// a later CreateBody call (spec.md §3, §6 createBody).
func (w *World) CreateBody(motionType object.MotionType, position math2.Vec2, orientation math2.Real, mass, inertia math2.Real, s shape.Shape) object.BodyId {

	id := w.allocBodyId()
	body := object.New(id, motionType, position, orientation, mass, inertia, s)
	w.bodies[id] = body
	log.Debug("rigid2d: created body %d (%v)", id, motionType)
	return id
}

func (w *World) allocBodyId() object.BodyId {

	n := len(w.freeBodyIds)
	if n > 0 {
		id := w.freeBodyIds[n-1]
		w.freeBodyIds = w.freeBodyIds[:n-1]
		return id
	}
	id := w.nextBodyId
	w.nextBodyId++
	return id
}

// RemoveBody removes a body and retires any cached contact manifold
// that referenced it (spec.md §6 removeBody).
func (w *World) RemoveBody(id object.BodyId) error {

	if _, ok := w.bodies[id]; !ok {
		return fmt.Errorf("%w: %d", ErrInvalidBodyId, id)
	}
	delete(w.bodies, id)
	w.freeBodyIds = append(w.freeBodyIds, id)

	for pair := range w.cachedPairs {
		if pair.A == id || pair.B == id {
			delete(w.cachedPairs, pair)
		}
	}
	log.Debug("rigid2d: removed body %d", id)
	return nil
}

// AddJoint creates a point-to-point joint pinning the world point pivot
// between bodyA and bodyB (spec.md §6 addJoint).
func (w *World) AddJoint(bodyA, bodyB object.BodyId, pivot math2.Vec2) (constraint.JointId, error) {

	a, ok := w.bodies[bodyA]
	if !ok {
		return constraint.InvalidJointId, fmt.Errorf("%w: %d", ErrInvalidBodyId, bodyA)
	}
	b, ok := w.bodies[bodyB]
	if !ok {
		return constraint.InvalidJointId, fmt.Errorf("%w: %d", ErrInvalidBodyId, bodyB)
	}

	j, err := constraint.NewJoint(constraint.InvalidJointId, a, b, pivot)
	if err != nil {
		return constraint.InvalidJointId, err
	}

	id := w.allocJointId()
	j.Id = id
	w.joints[id] = j
	return id, nil
}

func (w *World) allocJointId() constraint.JointId {

	n := len(w.freeJointIds)
	if n > 0 {
		id := w.freeJointIds[n-1]
		w.freeJointIds = w.freeJointIds[:n-1]
		return id
	}
	id := w.nextJointId
	w.nextJointId++
	return id
}

// RemoveJoint removes a joint (spec.md §6 removeJoint).
func (w *World) RemoveJoint(id constraint.JointId) error {

	if _, ok := w.joints[id]; !ok {
		return fmt.Errorf("%w: %d", ErrInvalidJointId, id)
	}
	delete(w.joints, id)
	w.freeJointIds = append(w.freeJointIds, id)
	return nil
}

// SetPosition teleports a body to a new position, bypassing integration
// (spec.md §6 setPosition).
func (w *World) SetPosition(id object.BodyId, position math2.Vec2) error {

	b, ok := w.bodies[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrInvalidBodyId, id)
	}
	b.Position = position
	return nil
}

// SetMotionType changes a body's motion type, re-deriving its inverse
// mass/inertia (spec.md §6 setMotionType).
func (w *World) SetMotionType(id object.BodyId, motionType object.MotionType) error {

	b, ok := w.bodies[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrInvalidBodyId, id)
	}
	b.SetMotionType(motionType)
	return nil
}

// GetBody returns the body with the given id (spec.md §6 getBody).
func (w *World) GetBody(id object.BodyId) (*object.Body, error) {

	b, ok := w.bodies[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBodyId, id)
	}
	return b, nil
}

// GetActiveBodyIds returns the ids of all Dynamic bodies, in ascending
// order for determinism (spec.md §6 getActiveBodyIds).
func (w *World) GetActiveBodyIds() []object.BodyId {

	ids := make([]object.BodyId, 0, len(w.bodies))
	for id, b := range w.bodies {
		if b.MotionType == object.Dynamic {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// orderedBodies returns every body in the world sorted by id, so the
// broadphase sweep and narrow-phase dispatch run in a fixed order every
// step regardless of Go's randomized map iteration (spec.md §5
// determinism).
func (w *World) orderedBodies() []*object.Body {

	ids := make([]object.BodyId, 0, len(w.bodies))
	for id := range w.bodies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	bodies := make([]*object.Body, len(ids))
	for i, id := range ids {
		bodies[i] = w.bodies[id]
	}
	return bodies
}

func (w *World) lookupBody(id object.BodyId) (*object.Body, bool) {
	b, ok := w.bodies[id]
	return b, ok
}

// Step advances the world by one fixed timestep through the six
// stages: integrate forces, broadphase, narrow-phase dispatch, contact
// caching, constraint assembly, and the iterative solve (spec.md §2).
func (w *World) Step() {

	dt := w.config.DeltaTime

	// 1. Integrate forces: apply gravity and any registered force
	// fields to dynamic bodies' velocities.
	for _, b := range w.bodies {
		if b.MotionType != object.Dynamic {
			continue
		}
		b.LinearVelocity.X += w.config.Gravity.X * dt
		b.LinearVelocity.Y += w.config.Gravity.Y * dt

		for _, field := range w.forceFields {
			force := field.ForceAt(b.Position)
			if b.Mass > 0 {
				b.LinearVelocity.X += force.X * b.InvMass * dt
				b.LinearVelocity.Y += force.Y * b.InvMass * dt
			}
		}
	}

	bodies := w.orderedBodies()

	// 2. Broadphase.
	newPairs, existingPairs, destroyedPairs := w.broadphase.FindPairs(bodies)
	for _, pair := range destroyedPairs {
		delete(w.cachedPairs, pair)
	}

	// 3 & 4. Narrow-phase dispatch and contact caching.
	candidates := append(append([]collision.BodyIdPair(nil), newPairs...), existingPairs...)
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].A != candidates[j].A {
			return candidates[i].A < candidates[j].A
		}
		return candidates[i].B < candidates[j].B
	})
	for _, pair := range candidates {
		bodyA, bodyB := w.bodies[pair.A], w.bodies[pair.B]
		normal, points, colliding := narrowphase.Test(bodyA, bodyB)
		if !colliding {
			delete(w.cachedPairs, pair)
			continue
		}
		if cached, ok := w.cachedPairs[pair]; ok {
			cached.Merge(normal, points)
		} else {
			w.cachedPairs[pair] = contact.NewCachedPair(pair, normal, points)
		}
	}

	// 5. Constraint assembly.
	cfg := constraint.Config{
		Beta:        w.config.Beta,
		Slop:        w.config.Slop,
		Restitution: w.config.CoefficientOfRestitution,
		Dt:          dt,
	}
	rows := constraint.AssembleContacts(w.orderedCachedPairs(), w.lookupBody, cfg)
	rows = append(rows, constraint.AssembleJoints(w.orderedJoints(), w.lookupBody, cfg)...)

	// 6. Iterative Gauss-Seidel solve.
	solver.Solve(rows, solver.Info{NumIterations: w.config.NumIterations, WarmStarting: true})

	// Integrate velocities into poses.
	for _, b := range w.bodies {
		b.Integrate(dt)
	}

	w.time += dt
	w.stepNumber++
}

func (w *World) orderedCachedPairs() []*contact.CachedPair {

	pairs := make([]collision.BodyIdPair, 0, len(w.cachedPairs))
	for pair := range w.cachedPairs {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})

	out := make([]*contact.CachedPair, len(pairs))
	for i, pair := range pairs {
		out[i] = w.cachedPairs[pair]
	}
	return out
}

func (w *World) orderedJoints() []*constraint.Joint {

	ids := make([]constraint.JointId, 0, len(w.joints))
	for id := range w.joints {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*constraint.Joint, len(ids))
	for i, id := range ids {
		out[i] = w.joints[id]
	}
	return out
}
