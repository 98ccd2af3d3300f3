package geom

import "fmt"

// Transform is an exact integer affine map:
//
//	| A  C  E |
//	| B  D  F |
//	| 0  0  1 |
//
// so that x' = A*x + C*y + E and y' = B*x + D*y + F.
//
// Transforms built from the constructors in this package always have a
// signed-permutation linear part (one non-zero entry per row and column),
// which is what lets Decompose recover the quarter-turn and mirror
// components of any composition.
type Transform struct {
	A, B, C, D, E, F int
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// Translation returns a transform moving points by (dx, dy).
func Translation(dx, dy int) Transform {
	return Transform{A: 1, D: 1, E: dx, F: dy}
}

// Rotation returns a counter-clockwise quarter-turn rotation about center.
func Rotation(center Point, angle int) (Transform, error) {
	a, err := CheckAngle(angle)
	if err != nil {
		return Transform{}, err
	}

	var t Transform
	switch a {
	case 0:
		t = Transform{A: 1, D: 1}
	case 90:
		t = Transform{B: 1, C: -1}
	case 180:
		t = Transform{A: -1, D: -1}
	case 270:
		t = Transform{B: -1, C: 1}
	}
	// Keep center fixed
	t.E = center.X - (t.A*center.X + t.C*center.Y)
	t.F = center.Y - (t.B*center.X + t.D*center.Y)
	return t, nil
}

// Mirroring returns a reflection about the vertical line x = axisX.
func Mirroring(axisX int) Transform {
	return Transform{A: -1, D: 1, E: 2 * axisX}
}

// Scaling returns an anisotropic scale about origin.
func Scaling(origin Point, sx, sy int) (Transform, error) {
	if sx == 0 || sy == 0 {
		return Transform{}, fmt.Errorf("scale by (%d, %d): %w", sx, sy, ErrZeroScale)
	}
	return Transform{
		A: sx,
		D: sy,
		E: origin.X - sx*origin.X,
		F: origin.Y - sy*origin.Y,
	}, nil
}

// Apply maps p through the transform.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.C*p.Y + t.E,
		Y: t.B*p.X + t.D*p.Y + t.F,
	}
}

// Then returns the transform that applies t first and next second.
func (t Transform) Then(next Transform) Transform {
	return Transform{
		A: next.A*t.A + next.C*t.B,
		B: next.B*t.A + next.D*t.B,
		C: next.A*t.C + next.C*t.D,
		D: next.B*t.C + next.D*t.D,
		E: next.A*t.E + next.C*t.F + next.E,
		F: next.B*t.E + next.D*t.F + next.F,
	}
}

// IsIdentity reports whether t leaves every point unchanged.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// Determinant returns the determinant of the linear part.
func (t Transform) Determinant() int {
	return t.A*t.D - t.B*t.C
}

// Decomposition splits a signed-permutation linear part into a scale by
// (SX, SY), an optional mirror about a vertical axis and a counter-clockwise
// quarter turn, applied in that order. SX and SY are magnitudes.
type Decomposition struct {
	Angle    int
	Mirrored bool
	SX, SY   int
}

// Decompose splits the linear part of t. ok is false if the linear part is
// not a scaled signed permutation.
func (t Transform) Decompose() (d Decomposition, ok bool) {
	d.SX = abs(t.A) + abs(t.B)
	d.SY = abs(t.C) + abs(t.D)
	switch {
	case t.B == 0 && t.C == 0 && t.A != 0 && t.D != 0:
		switch {
		case t.A > 0 && t.D > 0:
		case t.A < 0 && t.D < 0:
			d.Angle = 180
		case t.A < 0:
			d.Mirrored = true
		default:
			d.Angle, d.Mirrored = 180, true
		}
	case t.A == 0 && t.D == 0 && t.B != 0 && t.C != 0:
		switch {
		case t.C < 0 && t.B > 0:
			d.Angle = 90
		case t.C > 0 && t.B < 0:
			d.Angle = 270
		case t.C < 0:
			d.Angle, d.Mirrored = 90, true
		default:
			d.Angle, d.Mirrored = 270, true
		}
	default:
		return Decomposition{}, false
	}
	return d, true
}

// SizeFactor returns max(|sx|, |sy|) of the scale component. Scalar sizes
// such as radii are multiplied by this value. The factor of a composition
// is not the product of the factors of its steps when a step scales the
// axes unequally.
func (t Transform) SizeFactor() int {
	return max(abs(t.A), abs(t.B), abs(t.C), abs(t.D))
}

// String formats the transform as its six coefficients.
func (t Transform) String() string {
	return fmt.Sprintf("[%d %d %d %d %d %d]", t.A, t.B, t.C, t.D, t.E, t.F)
}
