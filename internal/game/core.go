package game

import "math"

type Vec2 struct{ X, Y float64 }

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Dot(b Vec2) float64   { return a.X*b.X + a.Y*b.Y }
func (a Vec2) Len() float64         { return math.Hypot(a.X, a.Y) }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }

// Normalize returns the unit vector, or zero for a zero-length input.
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l < 1e-9 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// FromAngle builds a unit vector from an angle in radians.
func FromAngle(rad float64) Vec2 { return Vec2{math.Cos(rad), math.Sin(rad)} }

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func approach(current, target, maxStep float64) float64 {
	if maxStep <= 0 {
		return current
	}
	if current < target {
		return math.Min(current+maxStep, target)
	}
	return math.Max(current-maxStep, target)
}
