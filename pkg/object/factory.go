package object

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceSch/pkg/geom"
	"go.jetify.com/typeid/v2"
)

// newID returns a fresh identity such as "line_01h455vb4pex5vsknk084sn02q".
func newID(k Kind) string {
	return typeid.MustGenerate(k.String()).String()
}

func newObject(kind Kind, color int) (*Object, error) {
	if !ValidColor(color) {
		return nil, fmt.Errorf("new %s: color %d: %w", kind, color, ErrInvalidColor)
	}
	return &Object{
		ID:     newID(kind),
		Kind:   kind,
		Color:  color,
		Stroke: DefaultLineStyle(),
	}, nil
}

// finish validates the payload and computes the initial bounds.
func finish(o *Object) (*Object, error) {
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("new %s: %w", o.Kind, err)
	}
	o.UpdateBounds()
	return o, nil
}

// Geometry is the defining payload of one primitive kind: a Line, Box,
// Circle, Arc, Pin, Text or Picture value.
type Geometry interface {
	Kind() Kind
}

func (Line) Kind() Kind    { return KindLine }
func (Box) Kind() Kind     { return KindBox }
func (Circle) Kind() Kind  { return KindCircle }
func (Arc) Kind() Kind     { return KindArc }
func (Pin) Kind() Kind     { return KindPin }
func (Text) Kind() Kind    { return KindText }
func (Picture) Kind() Kind { return KindPicture }

// New creates an object of the given kind from its payload by way of the
// per-kind constructor, so the same validation applies. Box and picture
// corners may be any two opposite corners. A Text payload keeps its
// Visible flag. Pictures are always tagged GraphicColor, but color must
// still be a valid index.
func New(kind Kind, color int, g Geometry) (*Object, error) {
	if kind < 0 || int(kind) >= len(kindNames) {
		return nil, fmt.Errorf("new %s: %w", kind, ErrUnsupportedKind)
	}
	if g == nil || g.Kind() != kind {
		return nil, fmt.Errorf("new %s: payload %T: %w", kind, g, ErrInvalidGeometry)
	}

	switch v := g.(type) {
	case Line:
		return NewLine(color, v.Start, v.End)
	case Box:
		return NewBox(color, v.Upper, v.Lower)
	case Circle:
		return NewCircle(color, v.Center, v.Radius)
	case Arc:
		return NewArc(color, v.Center, v.Radius, v.StartAngle, v.Sweep)
	case Pin:
		return NewPin(color, v.Start, v.End, v.WhichEnd, v.Type)
	case Text:
		o, err := NewText(color, v.Anchor, v.String, v.Size, v.Angle, v.Alignment)
		if err != nil {
			return nil, err
		}
		if !v.Visible {
			o.Text.Visible = false
			o.UpdateBounds()
		}
		return o, nil
	case Picture:
		if !ValidColor(color) {
			return nil, fmt.Errorf("new picture: color %d: %w", color, ErrInvalidColor)
		}
		return NewPicture(v.Upper, v.Lower, v.Angle, v.Mirrored, v.Filename)
	}
	return nil, fmt.Errorf("new %s: payload %T: %w", kind, g, ErrInvalidGeometry)
}

// NewLine creates a line from start to end. A zero-length line is legal
// and serves as a point marker.
func NewLine(color int, start, end geom.Point) (*Object, error) {
	o, err := newObject(KindLine, color)
	if err != nil {
		return nil, err
	}
	o.Line = &Line{Start: start, End: end}
	return finish(o)
}

// NewBox creates a box from any two opposite corners.
func NewBox(color int, c1, c2 geom.Point) (*Object, error) {
	o, err := newObject(KindBox, color)
	if err != nil {
		return nil, err
	}
	upper, lower := normalizeCorners(c1, c2)
	o.Box = &Box{Upper: upper, Lower: lower}
	return finish(o)
}

// NewCircle creates a circle.
func NewCircle(color int, center geom.Point, radius int) (*Object, error) {
	o, err := newObject(KindCircle, color)
	if err != nil {
		return nil, err
	}
	o.Circle = &Circle{Center: center, Radius: radius}
	return finish(o)
}

// NewArc creates an arc. startAngle is normalized into [0, 360).
func NewArc(color int, center geom.Point, radius, startAngle, sweep int) (*Object, error) {
	o, err := newObject(KindArc, color)
	if err != nil {
		return nil, err
	}
	o.Arc = &Arc{
		Center:     center,
		Radius:     radius,
		StartAngle: geom.NormalizeAngle(startAngle),
		Sweep:      sweep,
	}
	return finish(o)
}

// NewPin creates a pin. whichEnd selects the connectable end.
func NewPin(color int, start, end geom.Point, whichEnd int, pinType PinType) (*Object, error) {
	o, err := newObject(KindPin, color)
	if err != nil {
		return nil, err
	}
	o.Pin = &Pin{Start: start, End: end, WhichEnd: whichEnd, Type: pinType}
	return finish(o)
}

// NewText creates a visible text object. angle must be a quarter turn.
func NewText(color int, anchor geom.Point, str string, size, angle int, align Alignment) (*Object, error) {
	o, err := newObject(KindText, color)
	if err != nil {
		return nil, err
	}
	a, err := geom.CheckAngle(angle)
	if err != nil {
		return nil, fmt.Errorf("new text: %w", err)
	}
	o.Text = &Text{
		Anchor:    anchor,
		String:    str,
		Size:      size,
		Angle:     a,
		Alignment: align,
		Visible:   true,
	}
	return finish(o)
}

// NewPicture creates a picture spanning two opposite corners. Pictures
// have no palette color of their own; they are tagged GraphicColor.
func NewPicture(c1, c2 geom.Point, angle int, mirrored bool, filename string) (*Object, error) {
	o, err := newObject(KindPicture, GraphicColor)
	if err != nil {
		return nil, err
	}
	a, err := geom.CheckAngle(angle)
	if err != nil {
		return nil, fmt.Errorf("new picture: %w", err)
	}
	upper, lower := normalizeCorners(c1, c2)
	o.Picture = &Picture{
		Upper:    upper,
		Lower:    lower,
		Angle:    a,
		Mirrored: mirrored,
		Filename: filename,
	}
	return finish(o)
}

// Copy returns a deep duplicate of o with a new ID. Transforming either
// object never affects the other.
func Copy(o *Object) *Object {
	c := o.clone()
	c.ID = newID(c.Kind)
	return c
}

// clone deep-copies o, keeping its ID.
func (o *Object) clone() *Object {
	c := *o
	c.Line, c.Box, c.Circle, c.Arc = nil, nil, nil, nil
	c.Pin, c.Text, c.Picture = nil, nil, nil

	switch o.Kind {
	case KindLine:
		v := *o.Line
		c.Line = &v
	case KindBox:
		v := *o.Box
		c.Box = &v
	case KindCircle:
		v := *o.Circle
		c.Circle = &v
	case KindArc:
		v := *o.Arc
		c.Arc = &v
	case KindPin:
		v := *o.Pin
		c.Pin = &v
	case KindText:
		v := *o.Text
		c.Text = &v
	case KindPicture:
		v := *o.Picture
		c.Picture = &v
	}
	return &c
}

// normalizeCorners orders two opposite corners as (upper-left, lower-right).
func normalizeCorners(a, b geom.Point) (upper, lower geom.Point) {
	return geom.Pt(min(a.X, b.X), max(a.Y, b.Y)), geom.Pt(max(a.X, b.X), min(a.Y, b.Y))
}

func inWorld(v int) bool {
	return v >= -WorldLimit && v <= WorldLimit
}

func checkPoints(points ...geom.Point) error {
	for _, p := range points {
		if !inWorld(p.X) || !inWorld(p.Y) {
			return fmt.Errorf("point %v: %w", p, ErrOutOfWorld)
		}
	}
	return nil
}

func checkSize(name string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%s %d must be positive: %w", name, v, ErrInvalidGeometry)
	}
	if v > WorldLimit {
		return fmt.Errorf("%s %d: %w", name, v, ErrOutOfWorld)
	}
	return nil
}

// validate checks that the payload matches Kind and lies within the world.
func (o *Object) validate() error {
	if !ValidColor(o.Color) {
		return fmt.Errorf("color %d: %w", o.Color, ErrInvalidColor)
	}

	switch o.Kind {
	case KindLine:
		if o.Line == nil {
			break
		}
		return checkPoints(o.Line.Start, o.Line.End)

	case KindBox:
		if o.Box == nil {
			break
		}
		return checkPoints(o.Box.Upper, o.Box.Lower)

	case KindCircle:
		if o.Circle == nil {
			break
		}
		if err := checkSize("radius", o.Circle.Radius); err != nil {
			return err
		}
		return checkPoints(o.Circle.Center)

	case KindArc:
		if o.Arc == nil {
			break
		}
		if err := checkSize("radius", o.Arc.Radius); err != nil {
			return err
		}
		if o.Arc.Sweep == 0 || o.Arc.Sweep < -360 || o.Arc.Sweep > 360 {
			return fmt.Errorf("arc sweep %d: %w", o.Arc.Sweep, ErrInvalidGeometry)
		}
		return checkPoints(o.Arc.Center)

	case KindPin:
		if o.Pin == nil {
			break
		}
		if o.Pin.WhichEnd != 0 && o.Pin.WhichEnd != 1 {
			return fmt.Errorf("pin end %d: %w", o.Pin.WhichEnd, ErrInvalidGeometry)
		}
		if o.Pin.Type != PinNet && o.Pin.Type != PinBus {
			return fmt.Errorf("pin type %d: %w", int(o.Pin.Type), ErrInvalidGeometry)
		}
		return checkPoints(o.Pin.Start, o.Pin.End)

	case KindText:
		if o.Text == nil {
			break
		}
		if err := checkSize("text size", o.Text.Size); err != nil {
			return err
		}
		if !o.Text.Alignment.Valid() {
			return fmt.Errorf("text alignment %d: %w", int(o.Text.Alignment), ErrInvalidGeometry)
		}
		return checkPoints(o.Text.Anchor)

	case KindPicture:
		if o.Picture == nil {
			break
		}
		return checkPoints(o.Picture.Upper, o.Picture.Lower)

	default:
		return fmt.Errorf("kind %d: %w", int(o.Kind), ErrUnsupportedKind)
	}

	return fmt.Errorf("%s without payload: %w", o.Kind, ErrInvalidGeometry)
}
