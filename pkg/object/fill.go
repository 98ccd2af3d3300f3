package object

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceSch/pkg/geom"
)

// FillType is the interior pattern of a closed primitive.
type FillType int

const (
	FillHollow FillType = iota
	FillFilled
	FillMesh
	FillHatch
)

// FillCapabilities tells an editor which FillStyle fields a fill type uses.
type FillCapabilities struct {
	UsesWidth bool // Width
	UsesPair1 bool // Angle1, Pitch1
	UsesPair2 bool // Angle2, Pitch2
}

// FillTypeInfo describes one fill type for presentation.
type FillTypeInfo struct {
	Type FillType
	Name string
	FillCapabilities
}

var fillTypes = [...]FillTypeInfo{
	{Type: FillHollow, Name: "Hollow"},
	{Type: FillFilled, Name: "Filled"},
	{Type: FillMesh, Name: "Mesh", FillCapabilities: FillCapabilities{UsesWidth: true, UsesPair1: true, UsesPair2: true}},
	{Type: FillHatch, Name: "Hatch", FillCapabilities: FillCapabilities{UsesWidth: true, UsesPair1: true}},
}

// FillTypes returns every fill type in presentation order.
func FillTypes() []FillTypeInfo {
	out := make([]FillTypeInfo, len(fillTypes))
	copy(out, fillTypes[:])
	return out
}

// Valid reports whether f is a known fill type.
func (f FillType) Valid() bool {
	return f >= FillHollow && f <= FillHatch
}

// Capabilities returns which auxiliary fields f uses. Unknown types use none.
func (f FillType) Capabilities() FillCapabilities {
	if !f.Valid() {
		return FillCapabilities{}
	}
	return fillTypes[f].FillCapabilities
}

func (f FillType) String() string {
	if !f.Valid() {
		return fmt.Sprintf("fill(%d)", int(f))
	}
	return fillTypes[f].Name
}

// ParseFillType converts a fill type name, case-insensitively.
func ParseFillType(s string) (FillType, error) {
	for _, info := range fillTypes {
		if strings.EqualFold(info.Name, s) {
			return info.Type, nil
		}
	}
	return 0, fmt.Errorf("unknown fill type %q: %w", s, ErrInvalidStyle)
}

// FillStyle holds the fill attributes of boxes and circles. Fields the
// fill type does not use are kept at zero.
type FillStyle struct {
	Type   FillType
	Width  int
	Angle1 int
	Pitch1 int
	Angle2 int
	Pitch2 int
}

// Validate checks the fields that Type uses.
func (f FillStyle) Validate() error {
	if !f.Type.Valid() {
		return fmt.Errorf("fill type %d: %w", int(f.Type), ErrInvalidStyle)
	}
	caps := f.Type.Capabilities()
	if caps.UsesWidth && (f.Width < 0 || f.Width > WorldLimit) {
		return fmt.Errorf("fill width %d: %w", f.Width, ErrInvalidStyle)
	}
	if caps.UsesPair1 && (f.Pitch1 <= 0 || f.Pitch1 > WorldLimit) {
		return fmt.Errorf("fill pitch1 %d: %w", f.Pitch1, ErrInvalidStyle)
	}
	if caps.UsesPair2 && (f.Pitch2 <= 0 || f.Pitch2 > WorldLimit) {
		return fmt.Errorf("fill pitch2 %d: %w", f.Pitch2, ErrInvalidStyle)
	}
	return nil
}

// Normalized zeroes unused fields and brings angles into [0, 360).
func (f FillStyle) Normalized() FillStyle {
	caps := f.Type.Capabilities()
	if !caps.UsesWidth {
		f.Width = 0
	}
	if caps.UsesPair1 {
		f.Angle1 = geom.NormalizeAngle(f.Angle1)
	} else {
		f.Angle1, f.Pitch1 = 0, 0
	}
	if caps.UsesPair2 {
		f.Angle2 = geom.NormalizeAngle(f.Angle2)
	} else {
		f.Angle2, f.Pitch2 = 0, 0
	}
	return f
}

// SetFill validates f and stores it on o.
func SetFill(o *Object, f FillStyle) error {
	if !o.Kind.HasFill() {
		return fmt.Errorf("set fill on %s: %w", o.Kind, ErrUnsupportedKind)
	}
	if err := f.Validate(); err != nil {
		return err
	}
	o.Fill = f.Normalized()
	return nil
}

// Values used when a fill type first needs them.
const (
	DefaultFillWidth  = 10
	DefaultFillAngle1 = 45
	DefaultFillPitch1 = 100
	DefaultFillAngle2 = 135
	DefaultFillPitch2 = 100
)

// WithType switches the fill type, seeding newly active pitches that are
// still zero with the defaults.
func (f FillStyle) WithType(t FillType) FillStyle {
	f.Type = t
	caps := t.Capabilities()
	if caps.UsesWidth && f.Width == 0 {
		f.Width = DefaultFillWidth
	}
	if caps.UsesPair1 && f.Pitch1 == 0 {
		f.Angle1, f.Pitch1 = DefaultFillAngle1, DefaultFillPitch1
	}
	if caps.UsesPair2 && f.Pitch2 == 0 {
		f.Angle2, f.Pitch2 = DefaultFillAngle2, DefaultFillPitch2
	}
	return f.Normalized()
}
