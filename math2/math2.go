// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math2 implements basic math functions which operate
// directly on Real numbers without casting, and contains the
// vector, transform and bounding-box types used by the rest of
// the physics core.
package math2

import "math"

// Real is the scalar floating-point type used throughout the core.
type Real = float32

// Epsilon is the machine epsilon for Real.
const Epsilon Real = 1.1920929e-7

const Pi = math.Pi

var Infinity = Real(math.Inf(1))

// Clamp clamps x to the provided closed interval [a, b].
func Clamp(x, a, b Real) Real {

	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

func Abs(v Real) Real {
	return Real(math.Abs(float64(v)))
}

func Sqrt(v Real) Real {
	return Real(math.Sqrt(float64(v)))
}

func Sin(v Real) Real {
	return Real(math.Sin(float64(v)))
}

func Cos(v Real) Real {
	return Real(math.Cos(float64(v)))
}

func Atan2(y, x Real) Real {
	return Real(math.Atan2(float64(y), float64(x)))
}

func Inf(sign int) Real {
	return Real(math.Inf(sign))
}

func Max(a, b Real) Real {
	return Real(math.Max(float64(a), float64(b)))
}

func Min(a, b Real) Real {
	return Real(math.Min(float64(a), float64(b)))
}

// NormalizeAngle wraps an angle, in radians, into (-Pi, Pi].
func NormalizeAngle(a Real) Real {

	for a <= -Pi {
		a += 2 * Pi
	}
	for a > Pi {
		a -= 2 * Pi
	}
	return a
}
