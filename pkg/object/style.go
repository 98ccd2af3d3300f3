package object

import "fmt"

// CapStyle is the shape drawn at the open ends of a stroke.
type CapStyle int

const (
	CapNone CapStyle = iota
	CapSquare
	CapRound
)

var capNames = [...]string{"none", "square", "round"}

func (c CapStyle) String() string {
	if c < 0 || int(c) >= len(capNames) {
		return fmt.Sprintf("cap(%d)", int(c))
	}
	return capNames[c]
}

// ParseCapStyle converts a cap style name.
func ParseCapStyle(s string) (CapStyle, error) {
	for i, name := range capNames {
		if name == s {
			return CapStyle(i), nil
		}
	}
	return 0, fmt.Errorf("unknown cap style %q: %w", s, ErrInvalidStyle)
}

// DashType is the stroke pattern.
type DashType int

const (
	DashSolid DashType = iota
	DashDotted
	DashDashed
	DashCenter
	DashPhantom
)

var dashNames = [...]string{"solid", "dotted", "dashed", "center", "phantom"}

func (d DashType) String() string {
	if d < 0 || int(d) >= len(dashNames) {
		return fmt.Sprintf("dash(%d)", int(d))
	}
	return dashNames[d]
}

// ParseDashType converts a dash type name.
func ParseDashType(s string) (DashType, error) {
	for i, name := range dashNames {
		if name == s {
			return DashType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown dash type %q: %w", s, ErrInvalidStyle)
}

// UsesLength reports whether the pattern has dashes with a length.
func (d DashType) UsesLength() bool {
	return d == DashDashed || d == DashCenter || d == DashPhantom
}

// UsesSpace reports whether the pattern has gaps.
func (d DashType) UsesSpace() bool {
	return d != DashSolid
}

// LineStyle holds the stroke attributes of lines, boxes, circles and arcs.
// DashLength and DashSpace are zero whenever Dash does not use them.
type LineStyle struct {
	Width      int
	Cap        CapStyle
	Dash       DashType
	DashLength int
	DashSpace  int
}

// DefaultLineStyle is a zero-width solid stroke with no caps.
func DefaultLineStyle() LineStyle {
	return LineStyle{}
}

// Validate checks ranges. Inactive dash fields are ignored.
func (s LineStyle) Validate() error {
	if s.Width < 0 || s.Width > WorldLimit {
		return fmt.Errorf("line width %d: %w", s.Width, ErrInvalidStyle)
	}
	if s.Cap < CapNone || s.Cap > CapRound {
		return fmt.Errorf("cap style %d: %w", int(s.Cap), ErrInvalidStyle)
	}
	if s.Dash < DashSolid || s.Dash > DashPhantom {
		return fmt.Errorf("dash type %d: %w", int(s.Dash), ErrInvalidStyle)
	}
	if s.Dash.UsesLength() && (s.DashLength <= 0 || s.DashLength > WorldLimit) {
		return fmt.Errorf("dash length %d for %s: %w", s.DashLength, s.Dash, ErrInvalidStyle)
	}
	if s.Dash.UsesSpace() && (s.DashSpace <= 0 || s.DashSpace > WorldLimit) {
		return fmt.Errorf("dash space %d for %s: %w", s.DashSpace, s.Dash, ErrInvalidStyle)
	}
	return nil
}

// Normalized returns s with the fields its dash type ignores set to zero.
func (s LineStyle) Normalized() LineStyle {
	if !s.Dash.UsesLength() {
		s.DashLength = 0
	}
	if !s.Dash.UsesSpace() {
		s.DashSpace = 0
	}
	return s
}

// SetStroke validates s and stores it on o. The cached bounds follow the
// new width.
func SetStroke(o *Object, s LineStyle) error {
	if !o.Kind.HasStroke() {
		return fmt.Errorf("set stroke on %s: %w", o.Kind, ErrUnsupportedKind)
	}
	if err := s.Validate(); err != nil {
		return err
	}
	o.Stroke = s.Normalized()
	o.UpdateBounds()
	return nil
}

// SetColor changes the palette index of o.
func SetColor(o *Object, color int) error {
	if !ValidColor(color) {
		return fmt.Errorf("color %d: %w", color, ErrInvalidColor)
	}
	o.Color = color
	return nil
}

// Lengths used when a dash pattern first needs them.
const (
	DefaultDashLength = 100
	DefaultDashSpace  = 100
)

// WithDash switches the dash type, seeding newly active fields that are
// still zero with the defaults.
func (s LineStyle) WithDash(d DashType) LineStyle {
	s.Dash = d
	if d.UsesLength() && s.DashLength == 0 {
		s.DashLength = DefaultDashLength
	}
	if d.UsesSpace() && s.DashSpace == 0 {
		s.DashSpace = DefaultDashSpace
	}
	return s.Normalized()
}
