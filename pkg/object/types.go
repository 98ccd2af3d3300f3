package object

import (
	"errors"
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceSch/pkg/geom"
)

var (
	ErrInvalidColor         = errors.New("invalid color index")
	ErrInvalidGeometry      = errors.New("invalid geometry")
	ErrInvalidPoint         = errors.New("invalid point index")
	ErrOutOfWorld           = errors.New("coordinate outside world limits")
	ErrInvalidStyle         = errors.New("invalid style")
	ErrUnsupportedKind      = errors.New("operation not supported for this kind")
	ErrUnsupportedTransform = errors.New("transform is not a quarter-turn affine map")
)

// WorldLimit bounds the absolute value of every world coordinate and
// scalar size.
const WorldLimit = 1 << 30

// Palette indices. Colors are indices into the host's palette; the object
// model only checks the range.
const (
	BackgroundColor = iota
	PinColor
	NetEndpointColor
	GraphicColor
	NetColor
	AttributeColor
	LogicBubbleColor
	DotsGridColor
	DetachedAttributeColor
	TextColor
	BusColor
	SelectColor
	BoundingBoxColor
	ZoomBoxColor
	StrokeColor
	LockColor
	OutputBackgroundColor
	FreestyleColor1
	FreestyleColor2
	FreestyleColor3
	FreestyleColor4
	JunctionColor
	MeshGridMajorColor
	MeshGridMinorColor
	OverriddenColor

	MaxColors
)

// ValidColor reports whether c is a legal palette index.
func ValidColor(c int) bool {
	return c >= 0 && c < MaxColors
}

// Kind discriminates the primitive family.
type Kind int

const (
	KindLine Kind = iota
	KindBox
	KindCircle
	KindArc
	KindPin
	KindText
	KindPicture
)

var kindNames = [...]string{
	KindLine:    "line",
	KindBox:     "box",
	KindCircle:  "circle",
	KindArc:     "arc",
	KindPin:     "pin",
	KindText:    "text",
	KindPicture: "picture",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind converts a kind name back to a Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(name, s) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q: %w", s, ErrUnsupportedKind)
}

// HasStroke reports whether objects of this kind carry a LineStyle.
func (k Kind) HasStroke() bool {
	switch k {
	case KindLine, KindBox, KindCircle, KindArc:
		return true
	}
	return false
}

// HasFill reports whether objects of this kind carry a FillStyle.
func (k Kind) HasFill() bool {
	return k == KindBox || k == KindCircle
}

// Object is a single schematic primitive. Exactly one payload pointer is
// non-nil and it matches Kind.
type Object struct {
	ID    string // typeid with the kind name as prefix
	Kind  Kind
	Color int

	Stroke LineStyle // meaningful when Kind.HasStroke()
	Fill   FillStyle // meaningful when Kind.HasFill()

	Line    *Line
	Box     *Box
	Circle  *Circle
	Arc     *Arc
	Pin     *Pin
	Text    *Text
	Picture *Picture

	bounds geom.Box
}

// Line is a straight segment. Start and End may coincide.
type Line struct {
	Start geom.Point
	End   geom.Point
}

// Box is an axis-aligned rectangle. Upper is the top-left corner
// (smallest x, largest y) and Lower the bottom-right one.
type Box struct {
	Upper geom.Point
	Lower geom.Point
}

// Circle is defined by its center and a positive radius.
type Circle struct {
	Center geom.Point
	Radius int
}

// Arc is a circular arc. StartAngle is in [0, 360) degrees measured
// counter-clockwise from the positive x axis; Sweep is non-zero and in
// [-360, 360], positive meaning counter-clockwise.
type Arc struct {
	Center     geom.Point
	Radius     int
	StartAngle int
	Sweep      int
}

// EndAngle returns StartAngle+Sweep normalized into [0, 360).
func (a Arc) EndAngle() int {
	return geom.NormalizeAngle(a.StartAngle + a.Sweep)
}

// PinType selects between net pins and bus pins.
type PinType int

const (
	PinNet PinType = iota
	PinBus
)

func (t PinType) String() string {
	switch t {
	case PinNet:
		return "net"
	case PinBus:
		return "bus"
	default:
		return fmt.Sprintf("pintype(%d)", int(t))
	}
}

// Width returns the stroke width pins of this type are drawn with.
func (t PinType) Width() int {
	if t == PinBus {
		return 30
	}
	return 10
}

// Pin is a symbol connection point. WhichEnd (0 or 1) names the end that
// connects to nets.
type Pin struct {
	Start    geom.Point
	End      geom.Point
	WhichEnd int
	Type     PinType
}

// Connection returns the connectable end of the pin.
func (p Pin) Connection() geom.Point {
	if p.WhichEnd == 1 {
		return p.End
	}
	return p.Start
}

// Text is a string anchored at a point.
type Text struct {
	Anchor    geom.Point
	String    string
	Size      int // font size in points
	Angle     int // 0, 90, 180 or 270
	Alignment Alignment
	Visible   bool
}

// Picture is an embedded or linked image placed in a rectangle.
type Picture struct {
	Upper    geom.Point
	Lower    geom.Point
	Angle    int
	Mirrored bool
	Filename string
}

// Alignment is one of nine anchor positions. The value encodes the
// horizontal component times three plus the vertical component.
type Alignment int

const (
	LowerLeft Alignment = iota
	MiddleLeft
	UpperLeft
	LowerMiddle
	MiddleMiddle
	UpperMiddle
	LowerRight
	MiddleRight
	UpperRight
)

// Valid reports whether a is one of the nine alignments.
func (a Alignment) Valid() bool {
	return a >= LowerLeft && a <= UpperRight
}

// Horizontal returns 0 for left, 1 for center and 2 for right.
func (a Alignment) Horizontal() int { return int(a) / 3 }

// Vertical returns 0 for lower, 1 for middle and 2 for upper.
func (a Alignment) Vertical() int { return int(a) % 3 }

// FlipHorizontal swaps left and right.
func (a Alignment) FlipHorizontal() Alignment {
	return Alignment((2-a.Horizontal())*3 + a.Vertical())
}

// FlipVertical swaps lower and upper.
func (a Alignment) FlipVertical() Alignment {
	return Alignment(a.Horizontal()*3 + 2 - a.Vertical())
}

var alignmentNames = [...]string{
	"lower-left", "middle-left", "upper-left",
	"lower-middle", "middle-middle", "upper-middle",
	"lower-right", "middle-right", "upper-right",
}

func (a Alignment) String() string {
	if !a.Valid() {
		return fmt.Sprintf("alignment(%d)", int(a))
	}
	return alignmentNames[a]
}

// ParseAlignment converts an alignment name such as "lower-left".
func ParseAlignment(s string) (Alignment, error) {
	for i, name := range alignmentNames {
		if name == s {
			return Alignment(i), nil
		}
	}
	return 0, fmt.Errorf("unknown alignment %q: %w", s, ErrInvalidGeometry)
}
