package geom

import "math"

// Box is an axis-aligned rectangle in world coordinates. Min holds the
// smallest x and y, Max the largest. Both edges are inclusive.
type Box struct {
	Min Point
	Max Point
}

// EmptyBox returns a box that contains nothing; expanding it by a point
// yields a degenerate box around that point.
func EmptyBox() Box {
	return Box{
		Min: Point{X: math.MaxInt, Y: math.MaxInt},
		Max: Point{X: math.MinInt, Y: math.MinInt},
	}
}

// BoxOf returns the smallest box containing all points.
func BoxOf(points ...Point) Box {
	b := EmptyBox()
	for _, p := range points {
		b.Expand(p)
	}
	return b
}

// Empty reports whether the box contains no points.
func (b Box) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Expand grows the box to include p.
func (b *Box) Expand(p Point) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
}

// ExpandBox grows the box to include other.
func (b *Box) ExpandBox(other Box) {
	if !other.Empty() {
		b.Expand(other.Min)
		b.Expand(other.Max)
	}
}

// Grow returns the box enlarged by d on every side.
func (b Box) Grow(d int) Box {
	if b.Empty() {
		return b
	}
	return Box{
		Min: Point{X: b.Min.X - d, Y: b.Min.Y - d},
		Max: Point{X: b.Max.X + d, Y: b.Max.Y + d},
	}
}

// Contains reports whether p lies inside the box.
func (b Box) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Intersects reports whether the two boxes overlap.
func (b Box) Intersects(other Box) bool {
	if b.Empty() || other.Empty() {
		return false
	}
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y
}

// Width returns the horizontal extent of the box.
func (b Box) Width() int {
	if b.Empty() {
		return 0
	}
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent of the box.
func (b Box) Height() int {
	if b.Empty() {
		return 0
	}
	return b.Max.Y - b.Min.Y
}

// Center returns the midpoint of the box, rounded toward negative infinity.
func (b Box) Center() Point {
	return Point{
		X: floorDiv(b.Min.X+b.Max.X, 2),
		Y: floorDiv(b.Min.Y+b.Max.Y, 2),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
