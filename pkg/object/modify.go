package object

import (
	"fmt"
	"math"

	"github.com/OpenTraceLab/OpenTraceSch/pkg/geom"
)

// Handle indices for boxes and pictures.
const (
	CornerUpperLeft = iota
	CornerLowerRight
	CornerUpperRight
	CornerLowerLeft
)

// Handle indices for circles and arcs.
const (
	HandleCenter = iota
	HandleRadius
	HandleArcStart
	HandleArcEnd
)

// PointCount returns how many handles ModifyPoint accepts for kind.
func PointCount(k Kind) int {
	switch k {
	case KindLine, KindPin:
		return 2
	case KindBox, KindPicture:
		return 4
	case KindCircle:
		return 2
	case KindArc:
		return 4
	case KindText:
		return 1
	default:
		return 0
	}
}

// Points returns the current handle positions of o, indexed the same way
// as ModifyPoint.
func Points(o *Object) []geom.Point {
	switch o.Kind {
	case KindLine:
		return []geom.Point{o.Line.Start, o.Line.End}
	case KindPin:
		return []geom.Point{o.Pin.Start, o.Pin.End}
	case KindBox:
		return corners(o.Box.Upper, o.Box.Lower)
	case KindPicture:
		return corners(o.Picture.Upper, o.Picture.Lower)
	case KindCircle:
		c := o.Circle
		return []geom.Point{c.Center, geom.Pt(c.Center.X+c.Radius, c.Center.Y)}
	case KindArc:
		a := o.Arc
		return []geom.Point{
			a.Center,
			pointOnCircle(a.Center, a.Radius, float64(a.StartAngle)+float64(a.Sweep)/2),
			pointOnCircle(a.Center, a.Radius, float64(a.StartAngle)),
			pointOnCircle(a.Center, a.Radius, float64(a.StartAngle+a.Sweep)),
		}
	case KindText:
		return []geom.Point{o.Text.Anchor}
	}
	return nil
}

func corners(upper, lower geom.Point) []geom.Point {
	return []geom.Point{
		upper,
		lower,
		geom.Pt(lower.X, upper.Y),
		geom.Pt(upper.X, lower.Y),
	}
}

// opposite returns the corner that stays fixed while corner which is dragged.
func opposite(upper, lower geom.Point, which int) geom.Point {
	c := corners(upper, lower)
	switch which {
	case CornerUpperLeft:
		return c[CornerLowerRight]
	case CornerLowerRight:
		return c[CornerUpperLeft]
	case CornerUpperRight:
		return c[CornerLowerLeft]
	default:
		return c[CornerUpperRight]
	}
}

// ModifyPoint moves the single handle which of o to (x, y). It is the
// operation behind dragging a handle: every call is a complete update and
// the cached bounds are recomputed afterwards.
func ModifyPoint(o *Object, x, y, which int) error {
	if which < 0 || which >= PointCount(o.Kind) {
		return fmt.Errorf("modify %s point %d (valid 0..%d): %w",
			o.Kind, which, PointCount(o.Kind)-1, ErrInvalidPoint)
	}
	p := geom.Pt(x, y)
	if err := checkPoints(p); err != nil {
		return err
	}

	n := o.clone()
	switch n.Kind {
	case KindLine:
		if which == 0 {
			n.Line.Start = p
		} else {
			n.Line.End = p
		}

	case KindPin:
		if which == 0 {
			n.Pin.Start = p
		} else {
			n.Pin.End = p
		}

	case KindBox:
		fixed := opposite(n.Box.Upper, n.Box.Lower, which)
		n.Box.Upper, n.Box.Lower = normalizeCorners(p, fixed)

	case KindPicture:
		fixed := opposite(n.Picture.Upper, n.Picture.Lower, which)
		n.Picture.Upper, n.Picture.Lower = normalizeCorners(p, fixed)

	case KindCircle:
		if which == HandleCenter {
			n.Circle.Center = p
		} else {
			n.Circle.Radius = roundedDistance(n.Circle.Center, p)
		}

	case KindArc:
		modifyArc(n.Arc, p, which)

	case KindText:
		n.Text.Anchor = p
	}

	if err := n.validate(); err != nil {
		return fmt.Errorf("modify %s point %d: %w", o.Kind, which, err)
	}
	n.UpdateBounds()
	*o = *n
	return nil
}

// modifyArc updates one arc handle. Dragging the start handle keeps the end
// angle fixed and vice versa; the direction of the sweep never changes.
func modifyArc(a *Arc, p geom.Point, which int) {
	switch which {
	case HandleCenter:
		a.Center = p
	case HandleRadius:
		a.Radius = roundedDistance(a.Center, p)
	case HandleArcStart:
		end := a.StartAngle + a.Sweep
		a.StartAngle = angleTo(a.Center, p)
		a.Sweep = sweepBetween(a.StartAngle, end, a.Sweep > 0)
	case HandleArcEnd:
		a.Sweep = sweepBetween(a.StartAngle, angleTo(a.Center, p), a.Sweep > 0)
	}
}

// sweepBetween returns the sweep from start to end travelling in the given
// direction. Coincident angles give a full turn.
func sweepBetween(start, end int, ccw bool) int {
	if ccw {
		s := geom.NormalizeAngle(end - start)
		if s == 0 {
			s = 360
		}
		return s
	}
	s := geom.NormalizeAngle(start - end)
	if s == 0 {
		s = 360
	}
	return -s
}

func roundedDistance(a, b geom.Point) int {
	return int(math.Round(math.Sqrt(float64(geom.SquaredDistance(a, b)))))
}

// angleTo returns the direction from center to p in whole degrees.
func angleTo(center, p geom.Point) int {
	rad := math.Atan2(float64(p.Y-center.Y), float64(p.X-center.X))
	return geom.NormalizeAngle(int(math.Round(rad * 180 / math.Pi)))
}

func pointOnCircle(center geom.Point, radius int, degrees float64) geom.Point {
	rad := degrees * math.Pi / 180
	return geom.Pt(
		center.X+int(math.Round(float64(radius)*math.Cos(rad))),
		center.Y+int(math.Round(float64(radius)*math.Sin(rad))),
	)
}
