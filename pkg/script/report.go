package script

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceSch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSch/pkg/object"
)

// ObjectInfo is a printable summary of one named object.
type ObjectInfo struct {
	Name   string        `json:"name"`
	ID     string        `json:"id"`
	Kind   string        `json:"kind"`
	Color  int           `json:"color"`
	Points []geom.Point  `json:"points"`
	Bounds [2]geom.Point `json:"bounds"`
	Stroke *StrokeInfo   `json:"stroke,omitempty"`
	Fill   *FillInfo     `json:"fill,omitempty"`
	Text   string        `json:"text,omitempty"`
	File   string        `json:"file,omitempty"`
}

type StrokeInfo struct {
	Width      int    `json:"width"`
	Cap        string `json:"cap"`
	Dash       string `json:"dash"`
	DashLength int    `json:"dash_length,omitempty"`
	DashSpace  int    `json:"dash_space,omitempty"`
}

type FillInfo struct {
	Type   string `json:"type"`
	Width  int    `json:"width,omitempty"`
	Angle1 int    `json:"angle1,omitempty"`
	Pitch1 int    `json:"pitch1,omitempty"`
	Angle2 int    `json:"angle2,omitempty"`
	Pitch2 int    `json:"pitch2,omitempty"`
}

// Describe summarises o under name.
func Describe(name string, o *object.Object) ObjectInfo {
	b := o.Bounds()
	info := ObjectInfo{
		Name:   name,
		ID:     o.ID,
		Kind:   o.Kind.String(),
		Color:  o.Color,
		Points: object.Points(o),
		Bounds: [2]geom.Point{b.Min, b.Max},
	}
	if o.Kind.HasStroke() {
		s := o.Stroke
		info.Stroke = &StrokeInfo{
			Width:      s.Width,
			Cap:        s.Cap.String(),
			Dash:       s.Dash.String(),
			DashLength: s.DashLength,
			DashSpace:  s.DashSpace,
		}
	}
	if o.Kind.HasFill() {
		f := o.Fill
		info.Fill = &FillInfo{
			Type:   f.Type.String(),
			Width:  f.Width,
			Angle1: f.Angle1,
			Pitch1: f.Pitch1,
			Angle2: f.Angle2,
			Pitch2: f.Pitch2,
		}
	}
	switch o.Kind {
	case object.KindText:
		info.Text = o.Text.String
	case object.KindPicture:
		info.File = o.Picture.Filename
	}
	return info
}

// String renders the summary on one line.
func (i ObjectInfo) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s color=%d", i.Name, i.Kind, i.Color)
	for _, p := range i.Points {
		sb.WriteByte(' ')
		sb.WriteString(p.String())
	}
	if s := i.Stroke; s != nil {
		fmt.Fprintf(&sb, " width=%d cap=%s dash=%s", s.Width, s.Cap, s.Dash)
		if s.DashLength != 0 {
			fmt.Fprintf(&sb, " length=%d", s.DashLength)
		}
		if s.DashSpace != 0 {
			fmt.Fprintf(&sb, " space=%d", s.DashSpace)
		}
	}
	if f := i.Fill; f != nil {
		fmt.Fprintf(&sb, " fill=%s", f.Type)
	}
	if i.Text != "" {
		fmt.Fprintf(&sb, " %q", i.Text)
	}
	if i.File != "" {
		fmt.Fprintf(&sb, " file=%q", i.File)
	}
	return sb.String()
}

// Measure renders the derived lengths of o. Open kinds report their
// length, closed kinds their perimeter and area.
func Measure(name string, o *object.Object) (string, error) {
	switch o.Kind {
	case object.KindLine, object.KindPin:
		l, err := object.Length(o)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s length=%s", name, object.FormatLength(l)), nil
	}
	p, err := object.Perimeter(o)
	if err != nil {
		return "", err
	}
	a, err := object.Area(o)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s perimeter=%s area=%s", name, object.FormatLength(p), object.FormatLength(a)), nil
}
