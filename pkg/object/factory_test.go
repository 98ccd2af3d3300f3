package object

import (
	"errors"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceSch/pkg/geom"
)

func mustLine(t *testing.T, color int, a, b geom.Point) *Object {
	t.Helper()
	o, err := NewLine(color, a, b)
	if err != nil {
		t.Fatalf("NewLine failed: %v", err)
	}
	return o
}

func TestNewLine(t *testing.T) {
	o := mustLine(t, 3, geom.Pt(0, 0), geom.Pt(5, 5))

	if o.Kind != KindLine {
		t.Errorf("Expected kind line, got %s", o.Kind)
	}
	if o.Color != 3 {
		t.Errorf("Expected color 3, got %d", o.Color)
	}
	if o.Line.Start != geom.Pt(0, 0) || o.Line.End != geom.Pt(5, 5) {
		t.Errorf("Unexpected endpoints %v-%v", o.Line.Start, o.Line.End)
	}
	if o.Stroke != DefaultLineStyle() {
		t.Errorf("Expected default stroke, got %+v", o.Stroke)
	}
	if !strings.HasPrefix(o.ID, "line_") {
		t.Errorf("Expected ID with line_ prefix, got %q", o.ID)
	}
	if o.Box != nil || o.Circle != nil || o.Arc != nil || o.Pin != nil || o.Text != nil || o.Picture != nil {
		t.Error("Expected only the line payload to be set")
	}
}

func TestNewLineZeroLength(t *testing.T) {
	o := mustLine(t, GraphicColor, geom.Pt(7, 7), geom.Pt(7, 7))
	if b := o.Bounds(); b.Min != geom.Pt(7, 7) || b.Max != geom.Pt(7, 7) {
		t.Errorf("Expected point bounds at (7, 7), got %v-%v", b.Min, b.Max)
	}
}

func TestFactoryValidation(t *testing.T) {
	far := geom.Pt(WorldLimit+1, 0)

	tests := []struct {
		name string
		make func() (*Object, error)
		want error
	}{
		{"negative color", func() (*Object, error) { return NewLine(-1, geom.Pt(0, 0), geom.Pt(1, 1)) }, ErrInvalidColor},
		{"color too large", func() (*Object, error) { return NewLine(MaxColors, geom.Pt(0, 0), geom.Pt(1, 1)) }, ErrInvalidColor},
		{"line outside world", func() (*Object, error) { return NewLine(3, geom.Pt(0, 0), far) }, ErrOutOfWorld},
		{"box outside world", func() (*Object, error) { return NewBox(3, far, geom.Pt(0, 0)) }, ErrOutOfWorld},
		{"zero radius circle", func() (*Object, error) { return NewCircle(3, geom.Pt(0, 0), 0) }, ErrInvalidGeometry},
		{"negative radius arc", func() (*Object, error) { return NewArc(3, geom.Pt(0, 0), -5, 0, 90) }, ErrInvalidGeometry},
		{"zero sweep arc", func() (*Object, error) { return NewArc(3, geom.Pt(0, 0), 5, 0, 0) }, ErrInvalidGeometry},
		{"sweep beyond full turn", func() (*Object, error) { return NewArc(3, geom.Pt(0, 0), 5, 0, 361) }, ErrInvalidGeometry},
		{"bad pin end", func() (*Object, error) { return NewPin(PinColor, geom.Pt(0, 0), geom.Pt(0, 300), 2, PinNet) }, ErrInvalidGeometry},
		{"bad pin type", func() (*Object, error) { return NewPin(PinColor, geom.Pt(0, 0), geom.Pt(0, 300), 0, PinType(7)) }, ErrInvalidGeometry},
		{"text angle", func() (*Object, error) { return NewText(TextColor, geom.Pt(0, 0), "x", 10, 45, LowerLeft) }, geom.ErrInvalidAngle},
		{"text size", func() (*Object, error) { return NewText(TextColor, geom.Pt(0, 0), "x", 0, 0, LowerLeft) }, ErrInvalidGeometry},
		{"text alignment", func() (*Object, error) { return NewText(TextColor, geom.Pt(0, 0), "x", 10, 0, Alignment(9)) }, ErrInvalidGeometry},
		{"picture angle", func() (*Object, error) { return NewPicture(geom.Pt(0, 0), geom.Pt(10, 10), 30, false, "a.png") }, geom.ErrInvalidAngle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := tt.make()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
			if o != nil {
				t.Error("Expected nil object on error")
			}
		})
	}
}

func TestNewBoxNormalizesCorners(t *testing.T) {
	o, err := NewBox(GraphicColor, geom.Pt(10, 0), geom.Pt(0, 20))
	if err != nil {
		t.Fatalf("NewBox failed: %v", err)
	}
	if o.Box.Upper != geom.Pt(0, 20) || o.Box.Lower != geom.Pt(10, 0) {
		t.Errorf("Expected upper (0, 20) lower (10, 0), got %v %v", o.Box.Upper, o.Box.Lower)
	}
}

func TestNewArcNormalizesStart(t *testing.T) {
	o, err := NewArc(GraphicColor, geom.Pt(0, 0), 10, -90, 180)
	if err != nil {
		t.Fatalf("NewArc failed: %v", err)
	}
	if o.Arc.StartAngle != 270 {
		t.Errorf("Expected start 270, got %d", o.Arc.StartAngle)
	}
	if o.Arc.EndAngle() != 90 {
		t.Errorf("Expected end 90, got %d", o.Arc.EndAngle())
	}
}

func TestPinConnection(t *testing.T) {
	o, err := NewPin(PinColor, geom.Pt(0, 0), geom.Pt(0, 300), 1, PinBus)
	if err != nil {
		t.Fatalf("NewPin failed: %v", err)
	}
	if o.Pin.Connection() != geom.Pt(0, 300) {
		t.Errorf("Expected connection at (0, 300), got %v", o.Pin.Connection())
	}
	if o.Pin.Type.Width() != 30 {
		t.Errorf("Expected bus pin width 30, got %d", o.Pin.Type.Width())
	}
}

func TestCopyIsIndependent(t *testing.T) {
	orig := mustLine(t, 3, geom.Pt(1, 2), geom.Pt(3, 4))
	if err := SetStroke(orig, LineStyle{Width: 10, Cap: CapRound, Dash: DashDashed, DashLength: 100, DashSpace: 50}); err != nil {
		t.Fatalf("SetStroke failed: %v", err)
	}
	snapshot := *orig.Line
	stroke := orig.Stroke

	dup := Copy(orig)
	if dup.ID == orig.ID {
		t.Error("Expected copy to have a new ID")
	}
	if dup.Line == orig.Line {
		t.Fatal("Expected copy to own its geometry")
	}
	if *dup.Line != *orig.Line || dup.Stroke != orig.Stroke || dup.Color != orig.Color {
		t.Error("Expected copy to carry identical attributes")
	}

	if err := Translate(dup, 100, 100); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if err := Rotate(dup, geom.Pt(0, 0), 90); err != nil {
		t.Fatalf("Rotate failed: %v", err)
	}
	if err := Scale(dup, geom.Pt(0, 0), -2, 3); err != nil {
		t.Fatalf("Scale failed: %v", err)
	}
	if err := ModifyPoint(dup, 9, 9, 0); err != nil {
		t.Fatalf("ModifyPoint failed: %v", err)
	}
	if err := SetStroke(dup, DefaultLineStyle()); err != nil {
		t.Fatalf("SetStroke failed: %v", err)
	}

	if *orig.Line != snapshot {
		t.Errorf("Original geometry changed to %+v", *orig.Line)
	}
	if orig.Stroke != stroke {
		t.Errorf("Original stroke changed to %+v", orig.Stroke)
	}
}

func TestCopyEveryKind(t *testing.T) {
	for _, o := range sampleObjects(t) {
		dup := Copy(o)
		if dup.Kind != o.Kind {
			t.Errorf("Copy of %s has kind %s", o.Kind, dup.Kind)
		}
		if err := Translate(dup, 5, 5); err != nil {
			t.Fatalf("Translate %s failed: %v", o.Kind, err)
		}
		if Points(o)[0] == Points(dup)[0] {
			t.Errorf("Translating the copy of %s moved the original", o.Kind)
		}
	}
}

func TestNewDispatchesEveryKind(t *testing.T) {
	tests := []struct {
		kind  Kind
		color int
		g     Geometry
		check func(o *Object) bool
	}{
		{KindLine, 3, Line{Start: geom.Pt(0, 0), End: geom.Pt(5, 5)}, func(o *Object) bool {
			return o.Line.End == geom.Pt(5, 5)
		}},
		{KindBox, 3, Box{Upper: geom.Pt(10, 0), Lower: geom.Pt(0, 10)}, func(o *Object) bool {
			return o.Box.Upper == geom.Pt(0, 10) && o.Box.Lower == geom.Pt(10, 0)
		}},
		{KindCircle, 3, Circle{Center: geom.Pt(1, 2), Radius: 7}, func(o *Object) bool {
			return o.Circle.Radius == 7
		}},
		{KindArc, 3, Arc{Center: geom.Pt(0, 0), Radius: 10, StartAngle: -90, Sweep: 45}, func(o *Object) bool {
			return o.Arc.StartAngle == 270 && o.Arc.Sweep == 45
		}},
		{KindPin, PinColor, Pin{Start: geom.Pt(0, 0), End: geom.Pt(0, 300), WhichEnd: 1, Type: PinBus}, func(o *Object) bool {
			return o.Pin.Connection() == geom.Pt(0, 300) && o.Pin.Type == PinBus
		}},
		{KindText, TextColor, Text{Anchor: geom.Pt(4, 4), String: "R1", Size: 10, Angle: 450, Alignment: UpperRight}, func(o *Object) bool {
			return o.Text.Angle == 90 && !o.Text.Visible && o.Bounds() == geom.BoxOf(geom.Pt(4, 4))
		}},
		{KindPicture, 3, Picture{Upper: geom.Pt(0, 0), Lower: geom.Pt(40, 20), Angle: 180, Filename: "a.png"}, func(o *Object) bool {
			return o.Color == GraphicColor && o.Picture.Upper == geom.Pt(0, 20)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			o, err := New(tt.kind, tt.color, tt.g)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if o.Kind != tt.kind {
				t.Errorf("Expected kind %s, got %s", tt.kind, o.Kind)
			}
			if !strings.HasPrefix(o.ID, tt.kind.String()+"_") {
				t.Errorf("Expected ID with %s_ prefix, got %q", tt.kind, o.ID)
			}
			if !tt.check(o) {
				t.Errorf("Unexpected payload %+v", o)
			}
		})
	}
}

func TestNewRejects(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		color int
		g     Geometry
		want  error
	}{
		{"unknown kind", Kind(99), 3, Line{}, ErrUnsupportedKind},
		{"negative kind", Kind(-1), 3, Line{}, ErrUnsupportedKind},
		{"mismatched payload", KindCircle, 3, Line{}, ErrInvalidGeometry},
		{"nil payload", KindLine, 3, nil, ErrInvalidGeometry},
		{"pointer payload", KindLine, 3, &Line{}, ErrInvalidGeometry},
		{"zero radius", KindCircle, 3, Circle{}, ErrInvalidGeometry},
		{"bad color", KindBox, MaxColors, Box{}, ErrInvalidColor},
		{"bad picture color", KindPicture, -1, Picture{}, ErrInvalidColor},
		{"bad text angle", KindText, TextColor, Text{String: "x", Size: 10, Angle: 30}, geom.ErrInvalidAngle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.kind, tt.color, tt.g); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for k := KindLine; k <= KindPicture; k++ {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q): expected %s, got %s (%v)", k.String(), k, got, err)
		}
	}
	if _, err := ParseKind("path"); !errors.Is(err, ErrUnsupportedKind) {
		t.Errorf("Expected ErrUnsupportedKind, got %v", err)
	}
}

// sampleObjects returns one object of every kind.
func sampleObjects(t *testing.T) []*Object {
	t.Helper()

	var objs []*Object
	add := func(o *Object, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("creating sample object failed: %v", err)
		}
		objs = append(objs, o)
	}

	add(NewLine(GraphicColor, geom.Pt(0, 0), geom.Pt(100, 50)))
	add(NewBox(GraphicColor, geom.Pt(-20, 40), geom.Pt(60, -10)))
	add(NewCircle(GraphicColor, geom.Pt(30, 30), 25))
	add(NewArc(GraphicColor, geom.Pt(-40, 10), 30, 45, 90))
	add(NewPin(PinColor, geom.Pt(0, 0), geom.Pt(0, 300), 0, PinNet))
	add(NewText(TextColor, geom.Pt(200, 100), "U1", 10, 0, LowerLeft))
	add(NewPicture(geom.Pt(0, 0), geom.Pt(400, 300), 90, false, "logo.png"))
	return objs
}
