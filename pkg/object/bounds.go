package object

import (
	"strings"
	"unicode/utf8"

	"github.com/OpenTraceLab/OpenTraceSch/pkg/geom"
)

// Text extents are estimated from the font size: one point of size is ten
// world units of cap height, and an average glyph is 60% as wide as tall.
const (
	textUnitsPerPoint = 10
	textWidthPercent  = 60
)

// Bounds returns the cached world bounding box of o, including half the
// stroke width.
func (o *Object) Bounds() geom.Box {
	return o.bounds
}

// UpdateBounds recomputes the cached bounds. Callers that edit payload
// fields directly must call it afterwards.
func (o *Object) UpdateBounds() {
	o.bounds = computeBounds(o)
}

func halfWidth(w int) int {
	return (w + 1) / 2
}

func computeBounds(o *Object) geom.Box {
	hw := halfWidth(o.Stroke.Width)

	switch o.Kind {
	case KindLine:
		return geom.BoxOf(o.Line.Start, o.Line.End).Grow(hw)

	case KindPin:
		return geom.BoxOf(o.Pin.Start, o.Pin.End).Grow(halfWidth(o.Pin.Type.Width()))

	case KindBox:
		return geom.BoxOf(o.Box.Upper, o.Box.Lower).Grow(hw)

	case KindPicture:
		return geom.BoxOf(o.Picture.Upper, o.Picture.Lower)

	case KindCircle:
		c := o.Circle
		return geom.BoxOf(
			geom.Pt(c.Center.X-c.Radius, c.Center.Y-c.Radius),
			geom.Pt(c.Center.X+c.Radius, c.Center.Y+c.Radius),
		).Grow(hw)

	case KindArc:
		return arcBounds(*o.Arc).Grow(hw)

	case KindText:
		return textBounds(*o.Text)
	}
	return geom.EmptyBox()
}

// arcBounds covers both end points plus every axis crossing inside the sweep.
func arcBounds(a Arc) geom.Box {
	start := a.StartAngle
	sweep := a.Sweep
	if sweep < 0 {
		start = geom.NormalizeAngle(start + sweep)
		sweep = -sweep
	}

	b := geom.BoxOf(
		pointOnCircle(a.Center, a.Radius, float64(start)),
		pointOnCircle(a.Center, a.Radius, float64(start+sweep)),
	)

	// Quadrant points reached while travelling counter-clockwise from start
	for q := 0; q < 360; q += 90 {
		if geom.NormalizeAngle(q-start) <= sweep {
			switch q {
			case 0:
				b.Expand(geom.Pt(a.Center.X+a.Radius, a.Center.Y))
			case 90:
				b.Expand(geom.Pt(a.Center.X, a.Center.Y+a.Radius))
			case 180:
				b.Expand(geom.Pt(a.Center.X-a.Radius, a.Center.Y))
			case 270:
				b.Expand(geom.Pt(a.Center.X, a.Center.Y-a.Radius))
			}
		}
	}
	return b
}

// textBounds estimates the box covered by a text object. Hidden or empty
// text, or text whose angle is not a quarter turn, collapses to its anchor.
func textBounds(t Text) geom.Box {
	if !t.Visible || t.String == "" {
		return geom.BoxOf(t.Anchor)
	}

	lines := strings.Split(t.String, "\n")
	widest := 0
	for _, l := range lines {
		widest = max(widest, utf8.RuneCountInString(l))
	}
	height := t.Size * textUnitsPerPoint * len(lines)
	width := t.Size * textUnitsPerPoint * widest * textWidthPercent / 100

	// Offsets of the unrotated text box relative to the anchor
	x0 := -width * t.Alignment.Horizontal() / 2
	y0 := -height * t.Alignment.Vertical() / 2
	box := []geom.Point{
		geom.Pt(x0, y0),
		geom.Pt(x0+width, y0+height),
	}

	rot, err := geom.Rotation(t.Anchor, t.Angle)
	if err != nil {
		return geom.BoxOf(t.Anchor)
	}
	b := geom.EmptyBox()
	for _, p := range box {
		b.Expand(rot.Apply(p.Add(t.Anchor)))
	}
	return b
}
