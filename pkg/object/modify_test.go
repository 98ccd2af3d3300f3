package object

import (
	"errors"
	"testing"

	"github.com/OpenTraceLab/OpenTraceSch/pkg/geom"
)

func TestModifyLineEndpoint(t *testing.T) {
	o := mustLine(t, 3, geom.Pt(0, 0), geom.Pt(10, 0))
	if err := ModifyPoint(o, 10, 10, 1); err != nil {
		t.Fatalf("ModifyPoint failed: %v", err)
	}
	if o.Line.Start != geom.Pt(0, 0) {
		t.Errorf("Expected point 0 untouched, got %v", o.Line.Start)
	}
	if o.Line.End != geom.Pt(10, 10) {
		t.Errorf("Expected point 1 at (10, 10), got %v", o.Line.End)
	}
	if b := o.Bounds(); b.Max != geom.Pt(10, 10) {
		t.Errorf("Expected bounds to be recomputed, got %v-%v", b.Min, b.Max)
	}
}

func TestModifyPointRange(t *testing.T) {
	for _, o := range sampleObjects(t) {
		want := Copy(o)
		for _, which := range []int{-1, PointCount(o.Kind)} {
			err := ModifyPoint(o, 1, 1, which)
			if !errors.Is(err, ErrInvalidPoint) {
				t.Errorf("%s point %d: expected ErrInvalidPoint, got %v", o.Kind, which, err)
			}
		}
		if !geometryEqual(o, want) {
			t.Errorf("%s changed by rejected modification", o.Kind)
		}
		if got := len(Points(o)); got != PointCount(o.Kind) {
			t.Errorf("%s: Points returned %d handles, PointCount says %d", o.Kind, got, PointCount(o.Kind))
		}
	}
}

func TestModifyPointOutsideWorld(t *testing.T) {
	o := mustLine(t, 3, geom.Pt(0, 0), geom.Pt(10, 0))
	if err := ModifyPoint(o, WorldLimit+1, 0, 0); !errors.Is(err, ErrOutOfWorld) {
		t.Errorf("Expected ErrOutOfWorld, got %v", err)
	}
	if o.Line.Start != geom.Pt(0, 0) {
		t.Errorf("Expected start untouched, got %v", o.Line.Start)
	}
}

func TestModifyBoxCorners(t *testing.T) {
	tests := []struct {
		which      int
		x, y       int
		upper, low geom.Point
	}{
		{CornerUpperLeft, -5, 15, geom.Pt(-5, 15), geom.Pt(10, 0)},
		{CornerLowerRight, 20, -5, geom.Pt(0, 10), geom.Pt(20, -5)},
		{CornerUpperRight, 30, 40, geom.Pt(0, 40), geom.Pt(30, 0)},
		{CornerLowerLeft, -10, -10, geom.Pt(-10, 10), geom.Pt(10, -10)},
		// Dragging past the opposite corner flips the box
		{CornerUpperLeft, 20, -10, geom.Pt(10, 0), geom.Pt(20, -10)},
	}

	for _, tt := range tests {
		o, err := NewBox(GraphicColor, geom.Pt(0, 10), geom.Pt(10, 0))
		if err != nil {
			t.Fatalf("NewBox failed: %v", err)
		}
		if err := ModifyPoint(o, tt.x, tt.y, tt.which); err != nil {
			t.Fatalf("ModifyPoint failed: %v", err)
		}
		if o.Box.Upper != tt.upper || o.Box.Lower != tt.low {
			t.Errorf("corner %d to (%d,%d): expected %v %v, got %v %v",
				tt.which, tt.x, tt.y, tt.upper, tt.low, o.Box.Upper, o.Box.Lower)
		}
	}
}

func TestModifyCircle(t *testing.T) {
	o, _ := NewCircle(GraphicColor, geom.Pt(0, 0), 10)
	if err := ModifyPoint(o, 3, 4, HandleRadius); err != nil {
		t.Fatalf("ModifyPoint failed: %v", err)
	}
	if o.Circle.Radius != 5 {
		t.Errorf("Expected radius 5, got %d", o.Circle.Radius)
	}
	if err := ModifyPoint(o, 0, 0, HandleRadius); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidGeometry for zero radius, got %v", err)
	}
	if err := ModifyPoint(o, 7, 8, HandleCenter); err != nil {
		t.Fatalf("ModifyPoint failed: %v", err)
	}
	if o.Circle.Center != geom.Pt(7, 8) || o.Circle.Radius != 5 {
		t.Errorf("Unexpected circle %+v", *o.Circle)
	}
}

func TestModifyArc(t *testing.T) {
	o, _ := NewArc(GraphicColor, geom.Pt(0, 0), 100, 0, 90)

	// Move the start to 45 degrees, end stays at 90
	if err := ModifyPoint(o, 50, 50, HandleArcStart); err != nil {
		t.Fatalf("ModifyPoint failed: %v", err)
	}
	if o.Arc.StartAngle != 45 || o.Arc.Sweep != 45 {
		t.Errorf("Expected start 45 sweep 45, got %d %d", o.Arc.StartAngle, o.Arc.Sweep)
	}

	// Move the end to 180 degrees
	if err := ModifyPoint(o, -100, 0, HandleArcEnd); err != nil {
		t.Fatalf("ModifyPoint failed: %v", err)
	}
	if o.Arc.StartAngle != 45 || o.Arc.Sweep != 135 {
		t.Errorf("Expected start 45 sweep 135, got %d %d", o.Arc.StartAngle, o.Arc.Sweep)
	}

	if err := ModifyPoint(o, 0, 30, HandleRadius); err != nil {
		t.Fatalf("ModifyPoint failed: %v", err)
	}
	if o.Arc.Radius != 30 {
		t.Errorf("Expected radius 30, got %d", o.Arc.Radius)
	}

	cw, _ := NewArc(GraphicColor, geom.Pt(0, 0), 100, 90, -90)
	if err := ModifyPoint(cw, 0, -100, HandleArcEnd); err != nil {
		t.Fatalf("ModifyPoint failed: %v", err)
	}
	if cw.Arc.StartAngle != 90 || cw.Arc.Sweep != -180 {
		t.Errorf("Expected clockwise sweep -180, got %d %d", cw.Arc.StartAngle, cw.Arc.Sweep)
	}
}

func TestArcHandles(t *testing.T) {
	o, _ := NewArc(GraphicColor, geom.Pt(10, 10), 100, 0, 90)
	pts := Points(o)
	want := []geom.Point{geom.Pt(10, 10), geom.Pt(81, 81), geom.Pt(110, 10), geom.Pt(10, 110)}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("handle %d: expected %v, got %v", i, want[i], pts[i])
		}
	}
}

func TestModifyTextAndPin(t *testing.T) {
	txt, _ := NewText(TextColor, geom.Pt(0, 0), "hello", 10, 0, LowerLeft)
	if err := ModifyPoint(txt, 50, 60, 0); err != nil {
		t.Fatalf("ModifyPoint failed: %v", err)
	}
	if txt.Text.Anchor != geom.Pt(50, 60) {
		t.Errorf("Expected anchor (50, 60), got %v", txt.Text.Anchor)
	}

	pin, _ := NewPin(PinColor, geom.Pt(0, 0), geom.Pt(0, 300), 0, PinNet)
	if err := ModifyPoint(pin, 0, 200, 1); err != nil {
		t.Fatalf("ModifyPoint failed: %v", err)
	}
	if pin.Pin.End != geom.Pt(0, 200) || pin.Pin.Start != geom.Pt(0, 0) {
		t.Errorf("Unexpected pin %v-%v", pin.Pin.Start, pin.Pin.End)
	}
}
