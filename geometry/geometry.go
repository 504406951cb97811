// Package geometry holds the small value types shared by the map loader
// and the tile atlas.
package geometry

import "image"

// Rect is an axis aligned rectangle. X, Y is the upper left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Vec2 is a 2D vector.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// NewRectFromVec2s returns the rectangle spanned by two opposite corners,
// in any order.
func NewRectFromVec2s(a, b Vec2) Rect {
	r := Rect{X: a.X, Y: a.Y}
	if a.X > b.X {
		r.X = b.X
		r.W = a.X - b.X
	} else {
		r.W = b.X - a.X
	}
	if a.Y > b.Y {
		r.Y = b.Y
		r.H = a.Y - b.Y
	} else {
		r.H = b.Y - a.Y
	}
	return r
}

func (r Rect) Centre() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Colliding reports whether r and o overlap. Touching edges do not count.
func (r Rect) Colliding(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Contains reports whether v lies strictly inside r.
func (r Rect) Contains(v Vec2) bool {
	return r.X < v.X &&
		r.X+r.W > v.X &&
		r.Y < v.Y &&
		r.Y+r.H > v.Y
}

// Image converts r to integer pixel bounds, truncating toward zero.
func (r Rect) Image() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
}

func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}
