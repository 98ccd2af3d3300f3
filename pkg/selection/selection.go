// Package selection reads and edits the shared style attributes of a set
// of selected primitives.
//
// Every function is stateless: the caller passes the current selection as
// a slice and gets back either the common value or a State saying the
// selection holds no applicable object or disagrees. Setters validate the
// new value first and then write it to every applicable object, or to
// none of them.
package selection

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceSch/pkg/object"
)

// State summarises how a selection agrees on an attribute.
type State int

const (
	// None means no selected object carries the attribute.
	None State = iota
	// Uniform means all objects carrying the attribute share one value.
	Uniform
	// Mixed means the objects carrying the attribute disagree.
	Mixed
)

func (s State) String() string {
	switch s {
	case None:
		return "none"
	case Uniform:
		return "uniform"
	case Mixed:
		return "mixed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// common scans objs for which applies is true and reports whether get
// agrees across them.
func common[T comparable](objs []*object.Object, applies func(*object.Object) bool, get func(*object.Object) T) (T, State) {
	var value T
	state := None
	for _, o := range objs {
		if o == nil || !applies(o) {
			continue
		}
		v := get(o)
		switch state {
		case None:
			value, state = v, Uniform
		case Uniform:
			if v != value {
				var zero T
				return zero, Mixed
			}
		}
	}
	return value, state
}

func hasStroke(o *object.Object) bool { return o.Kind.HasStroke() }
func hasFill(o *object.Object) bool   { return o.Kind.HasFill() }

func usesDashLength(o *object.Object) bool {
	return hasStroke(o) && o.Stroke.Dash.UsesLength()
}

func usesDashSpace(o *object.Object) bool {
	return hasStroke(o) && o.Stroke.Dash.UsesSpace()
}

func usesFillWidth(o *object.Object) bool {
	return hasFill(o) && o.Fill.Type.Capabilities().UsesWidth
}

func usesFillPair1(o *object.Object) bool {
	return hasFill(o) && o.Fill.Type.Capabilities().UsesPair1
}

func usesFillPair2(o *object.Object) bool {
	return hasFill(o) && o.Fill.Type.Capabilities().UsesPair2
}

// Color returns the palette index shared by the selection.
func Color(objs []*object.Object) (int, State) {
	return common(objs, func(*object.Object) bool { return true }, func(o *object.Object) int { return o.Color })
}

// LineWidth returns the stroke width shared by stroked objects.
func LineWidth(objs []*object.Object) (int, State) {
	return common(objs, hasStroke, func(o *object.Object) int { return o.Stroke.Width })
}

// CapStyle returns the cap style shared by stroked objects.
func CapStyle(objs []*object.Object) (object.CapStyle, State) {
	return common(objs, hasStroke, func(o *object.Object) object.CapStyle { return o.Stroke.Cap })
}

// DashType returns the dash type shared by stroked objects.
func DashType(objs []*object.Object) (object.DashType, State) {
	return common(objs, hasStroke, func(o *object.Object) object.DashType { return o.Stroke.Dash })
}

// DashLength returns the dash length shared by objects whose pattern uses one.
func DashLength(objs []*object.Object) (int, State) {
	return common(objs, usesDashLength, func(o *object.Object) int { return o.Stroke.DashLength })
}

// DashSpace returns the dash spacing shared by objects whose pattern uses one.
func DashSpace(objs []*object.Object) (int, State) {
	return common(objs, usesDashSpace, func(o *object.Object) int { return o.Stroke.DashSpace })
}

// FillType returns the fill type shared by fillable objects.
func FillType(objs []*object.Object) (object.FillType, State) {
	return common(objs, hasFill, func(o *object.Object) object.FillType { return o.Fill.Type })
}

// FillWidth returns the fill line width shared by fills that use one.
func FillWidth(objs []*object.Object) (int, State) {
	return common(objs, usesFillWidth, func(o *object.Object) int { return o.Fill.Width })
}

// FillAngle1 returns the first fill angle shared by fills that use it.
func FillAngle1(objs []*object.Object) (int, State) {
	return common(objs, usesFillPair1, func(o *object.Object) int { return o.Fill.Angle1 })
}

// FillPitch1 returns the first fill pitch shared by fills that use it.
func FillPitch1(objs []*object.Object) (int, State) {
	return common(objs, usesFillPair1, func(o *object.Object) int { return o.Fill.Pitch1 })
}

// FillAngle2 returns the second fill angle shared by fills that use it.
func FillAngle2(objs []*object.Object) (int, State) {
	return common(objs, usesFillPair2, func(o *object.Object) int { return o.Fill.Angle2 })
}

// FillPitch2 returns the second fill pitch shared by fills that use it.
func FillPitch2(objs []*object.Object) (int, State) {
	return common(objs, usesFillPair2, func(o *object.Object) int { return o.Fill.Pitch2 })
}
