// Package geom provides the integer geometry kernel for schematic primitives.
//
// All functions are pure and operate on world coordinates, which are
// integers. Rotations are restricted to quarter turns so that every result
// is exact; there is no trigonometry anywhere in this package.
package geom

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAngle is returned for rotation angles that are not a multiple of 90 degrees.
	ErrInvalidAngle = errors.New("angle must be a multiple of 90 degrees")
	// ErrZeroScale is returned when a scale factor is zero.
	ErrZeroScale = errors.New("scale factor must be non-zero")
)

// Point is a position in world coordinates.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// String formats the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Translate moves p by (dx, dy).
func Translate(p Point, dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// NormalizeAngle maps any angle in degrees into [0, 360).
func NormalizeAngle(angle int) int {
	angle %= 360
	if angle < 0 {
		angle += 360
	}
	return angle
}

// CheckAngle normalizes angle and verifies it is a quarter turn.
func CheckAngle(angle int) (int, error) {
	a := NormalizeAngle(angle)
	if a%90 != 0 {
		return 0, fmt.Errorf("rotate by %d: %w", angle, ErrInvalidAngle)
	}
	return a, nil
}

// rotate90 rotates v counter-clockwise about the origin by a normalized
// quarter-turn angle.
func rotate90(v Point, angle int) Point {
	switch angle {
	case 90:
		return Point{X: -v.Y, Y: v.X}
	case 180:
		return Point{X: -v.X, Y: -v.Y}
	case 270:
		return Point{X: v.Y, Y: -v.X}
	default:
		return v
	}
}

// Rotate rotates p counter-clockwise about center. The angle is normalized
// modulo 360 first; anything other than 0, 90, 180 or 270 is rejected.
func Rotate(p, center Point, angle int) (Point, error) {
	a, err := CheckAngle(angle)
	if err != nil {
		return p, err
	}
	return rotate90(p.Sub(center), a).Add(center), nil
}

// Mirror reflects p about the vertical line x = axisX.
func Mirror(p Point, axisX int) Point {
	return Point{X: 2*axisX - p.X, Y: p.Y}
}

// Scale scales p relative to origin. Negative factors flip as well.
func Scale(p, origin Point, sx, sy int) (Point, error) {
	if sx == 0 || sy == 0 {
		return p, fmt.Errorf("scale by (%d, %d): %w", sx, sy, ErrZeroScale)
	}
	return Point{
		X: origin.X + sx*(p.X-origin.X),
		Y: origin.Y + sy*(p.Y-origin.Y),
	}, nil
}

// SquaredDistance returns the exact squared Euclidean distance between a and b.
func SquaredDistance(a, b Point) int64 {
	dx := int64(b.X - a.X)
	dy := int64(b.Y - a.Y)
	return dx*dx + dy*dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
