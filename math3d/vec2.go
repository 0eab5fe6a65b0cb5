// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package math3d provides float32 vector and matrix primitives for the
// wire3d software renderer.
//
// All arithmetic is 32-bit; there is no double-precision accumulation
// anywhere in the pipeline. Scalar helpers come from github.com/chewxy/math32.
package math3d

import "github.com/chewxy/math32"

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float32
}

// V2 creates a new Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Mul returns the component-wise product a * b.
func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

// Scale returns the vector scaled by s.
func (a Vec2) Scale(s float32) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Dot returns the dot product of two vectors.
func (a Vec2) Dot(b Vec2) float32 {
	return a.X*b.X + a.Y*b.Y
}

// Length returns the length of the vector.
func (a Vec2) Length() float32 {
	return math32.Sqrt(a.X*a.X + a.Y*a.Y)
}

// Normalize returns a unit vector in the same direction.
// A zero vector is returned unchanged; callers that cannot tolerate a
// degenerate input must validate before calling.
func (a Vec2) Normalize() Vec2 {
	l := a.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}
