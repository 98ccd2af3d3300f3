package object

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceSch/pkg/geom"
)

// maxOffset bounds the translation part of an accepted transform so that
// applying it to an in-world point cannot overflow.
const maxOffset int64 = 1 << 62

// Translate moves every point of o by (dx, dy).
func Translate(o *Object, dx, dy int) error {
	return Apply(o, geom.Translation(dx, dy))
}

// Rotate turns o counter-clockwise about center. angle is normalized
// modulo 360 and must then be 0, 90, 180 or 270.
func Rotate(o *Object, center geom.Point, angle int) error {
	t, err := rotation(center, angle)
	if err != nil {
		return err
	}
	return Apply(o, t)
}

// Mirror reflects o about the vertical line x = axisX.
func Mirror(o *Object, axisX int) error {
	t, err := mirroring(axisX)
	if err != nil {
		return err
	}
	return Apply(o, t)
}

// Scale scales o about origin by integer factors. Negative factors flip.
// Radii and text sizes are scaled by max(|sx|, |sy|) at each call, so two
// unequal-axis scales in a row can size them differently from the single
// composed scale; point geometry always matches.
func Scale(o *Object, origin geom.Point, sx, sy int) error {
	t, err := scaling(origin, sx, sy)
	if err != nil {
		return err
	}
	return Apply(o, t)
}

// Apply maps o through t. The result is validated before anything is
// written back; on error o is unchanged.
func Apply(o *Object, t geom.Transform) error {
	next, err := transformed(o, t)
	if err != nil {
		return err
	}
	*o = *next
	return nil
}

// ApplyAll maps every object through t. Either all objects change or, if
// any of them would become invalid, none do.
func ApplyAll(objs []*Object, t geom.Transform) error {
	results := make([]*Object, len(objs))
	for i, o := range objs {
		next, err := transformed(o, t)
		if err != nil {
			return fmt.Errorf("object %s: %w", o.ID, err)
		}
		results[i] = next
	}
	for i, o := range objs {
		*o = *results[i]
	}
	return nil
}

// TranslateAll moves every object by (dx, dy).
func TranslateAll(objs []*Object, dx, dy int) error {
	return ApplyAll(objs, geom.Translation(dx, dy))
}

// RotateAll turns every object about a shared center.
func RotateAll(objs []*Object, center geom.Point, angle int) error {
	t, err := rotation(center, angle)
	if err != nil {
		return err
	}
	return ApplyAll(objs, t)
}

// MirrorAll reflects every object about x = axisX.
func MirrorAll(objs []*Object, axisX int) error {
	t, err := mirroring(axisX)
	if err != nil {
		return err
	}
	return ApplyAll(objs, t)
}

// ScaleAll scales every object about a shared origin.
func ScaleAll(objs []*Object, origin geom.Point, sx, sy int) error {
	t, err := scaling(origin, sx, sy)
	if err != nil {
		return err
	}
	return ApplyAll(objs, t)
}

// rotation, mirroring and scaling build kernel transforms after checking
// that the fixed point lies in the world, so the offsets cannot wrap.
func rotation(center geom.Point, angle int) (geom.Transform, error) {
	if err := checkPoints(center); err != nil {
		return geom.Transform{}, fmt.Errorf("rotation center: %w", err)
	}
	return geom.Rotation(center, angle)
}

func mirroring(axisX int) (geom.Transform, error) {
	if !inWorld(axisX) {
		return geom.Transform{}, fmt.Errorf("mirror axis x=%d: %w", axisX, ErrOutOfWorld)
	}
	return geom.Mirroring(axisX), nil
}

func scaling(origin geom.Point, sx, sy int) (geom.Transform, error) {
	if err := checkPoints(origin); err != nil {
		return geom.Transform{}, fmt.Errorf("scale origin: %w", err)
	}
	if !inWorld(sx) || !inWorld(sy) {
		return geom.Transform{}, fmt.Errorf("scale by (%d, %d): %w", sx, sy, ErrOutOfWorld)
	}
	return geom.Scaling(origin, sx, sy)
}

func checkTransform(t geom.Transform) error {
	for _, v := range []int{t.A, t.B, t.C, t.D} {
		if !inWorld(v) {
			return fmt.Errorf("transform %v: %w", t, ErrOutOfWorld)
		}
	}
	for _, v := range []int{t.E, t.F} {
		if int64(v) > maxOffset || int64(v) < -maxOffset {
			return fmt.Errorf("transform %v: %w", t, ErrOutOfWorld)
		}
	}
	return nil
}

// transformed returns a validated copy of o mapped through t.
func transformed(o *Object, t geom.Transform) (*Object, error) {
	d, ok := t.Decompose()
	if !ok {
		return nil, fmt.Errorf("transform %v: %w", t, ErrUnsupportedTransform)
	}
	if err := checkTransform(t); err != nil {
		return nil, err
	}
	angle, mirrored := d.Angle, d.Mirrored
	size := t.SizeFactor()

	n := o.clone()
	switch n.Kind {
	case KindLine:
		n.Line.Start = t.Apply(n.Line.Start)
		n.Line.End = t.Apply(n.Line.End)

	case KindPin:
		n.Pin.Start = t.Apply(n.Pin.Start)
		n.Pin.End = t.Apply(n.Pin.End)

	case KindBox:
		n.Box.Upper, n.Box.Lower = normalizeCorners(t.Apply(n.Box.Upper), t.Apply(n.Box.Lower))

	case KindCircle:
		n.Circle.Center = t.Apply(n.Circle.Center)
		n.Circle.Radius *= size

	case KindArc:
		a := n.Arc
		a.Center = t.Apply(a.Center)
		a.Radius *= size
		start := a.StartAngle
		if mirrored {
			start = 180 - start
			a.Sweep = -a.Sweep
		}
		a.StartAngle = geom.NormalizeAngle(start + angle)

	case KindText:
		txt := n.Text
		txt.Anchor = t.Apply(txt.Anchor)
		txt.Size *= size
		if mirrored {
			txt.Alignment = mirrorAlignment(txt.Alignment, txt.Angle)
		}
		txt.Angle = geom.NormalizeAngle(txt.Angle + angle)

	case KindPicture:
		p := n.Picture
		p.Upper, p.Lower = normalizeCorners(t.Apply(p.Upper), t.Apply(p.Lower))
		pa := p.Angle
		if mirrored {
			p.Mirrored = !p.Mirrored
			pa = -pa
		}
		p.Angle = geom.NormalizeAngle(pa + angle)

	default:
		return nil, fmt.Errorf("transform %s: %w", n.Kind, ErrUnsupportedKind)
	}

	if err := n.validate(); err != nil {
		return nil, err
	}
	n.UpdateBounds()
	return n, nil
}

// mirrorAlignment keeps mirrored text readable: the glyphs are not
// reflected, instead the alignment component along the x axis flips so the
// text stays on the mirrored side of its anchor.
func mirrorAlignment(a Alignment, angle int) Alignment {
	if angle == 90 || angle == 270 {
		return a.FlipVertical()
	}
	return a.FlipHorizontal()
}
