package selection

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceSch/pkg/object"
)

// updateStroke computes the new stroke of every stroked object, validates
// all of them and only then writes them back.
func updateStroke(objs []*object.Object, applies func(*object.Object) bool, edit func(object.LineStyle) object.LineStyle) error {
	var targets []*object.Object
	var styles []object.LineStyle
	for _, o := range objs {
		if o == nil || !applies(o) {
			continue
		}
		s := edit(o.Stroke)
		if err := s.Validate(); err != nil {
			return fmt.Errorf("object %s: %w", o.ID, err)
		}
		targets = append(targets, o)
		styles = append(styles, s)
	}
	for i, o := range targets {
		if err := object.SetStroke(o, styles[i]); err != nil {
			return err
		}
	}
	return nil
}

func updateFill(objs []*object.Object, applies func(*object.Object) bool, edit func(object.FillStyle) object.FillStyle) error {
	var targets []*object.Object
	var fills []object.FillStyle
	for _, o := range objs {
		if o == nil || !applies(o) {
			continue
		}
		f := edit(o.Fill)
		if err := f.Validate(); err != nil {
			return fmt.Errorf("object %s: %w", o.ID, err)
		}
		targets = append(targets, o)
		fills = append(fills, f)
	}
	for i, o := range targets {
		if err := object.SetFill(o, fills[i]); err != nil {
			return err
		}
	}
	return nil
}

// SetColor sets the palette index of every object.
func SetColor(objs []*object.Object, color int) error {
	if !object.ValidColor(color) {
		return fmt.Errorf("color %d: %w", color, object.ErrInvalidColor)
	}
	for _, o := range objs {
		if o != nil {
			o.Color = color
		}
	}
	return nil
}

// SetLineWidth sets the stroke width of every stroked object.
func SetLineWidth(objs []*object.Object, width int) error {
	return updateStroke(objs, hasStroke, func(s object.LineStyle) object.LineStyle {
		s.Width = width
		return s
	})
}

// SetCapStyle sets the cap style of every stroked object.
func SetCapStyle(objs []*object.Object, c object.CapStyle) error {
	return updateStroke(objs, hasStroke, func(s object.LineStyle) object.LineStyle {
		s.Cap = c
		return s
	})
}

// SetDashType switches the dash pattern of every stroked object. Lengths
// that become active are seeded with defaults when unset.
func SetDashType(objs []*object.Object, d object.DashType) error {
	return updateStroke(objs, hasStroke, func(s object.LineStyle) object.LineStyle {
		return s.WithDash(d)
	})
}

// SetDashLength sets the dash length on objects whose pattern uses one.
func SetDashLength(objs []*object.Object, length int) error {
	return updateStroke(objs, usesDashLength, func(s object.LineStyle) object.LineStyle {
		s.DashLength = length
		return s
	})
}

// SetDashSpace sets the dash spacing on objects whose pattern uses one.
func SetDashSpace(objs []*object.Object, space int) error {
	return updateStroke(objs, usesDashSpace, func(s object.LineStyle) object.LineStyle {
		s.DashSpace = space
		return s
	})
}

// SetFillType switches the fill type of every fillable object.
func SetFillType(objs []*object.Object, t object.FillType) error {
	return updateFill(objs, hasFill, func(f object.FillStyle) object.FillStyle {
		return f.WithType(t)
	})
}

// SetFillWidth sets the fill line width on fills that use one.
func SetFillWidth(objs []*object.Object, width int) error {
	return updateFill(objs, usesFillWidth, func(f object.FillStyle) object.FillStyle {
		f.Width = width
		return f
	})
}

// SetFillPair1 sets the first angle/pitch pair on fills that use it.
func SetFillPair1(objs []*object.Object, angle, pitch int) error {
	return updateFill(objs, usesFillPair1, func(f object.FillStyle) object.FillStyle {
		f.Angle1, f.Pitch1 = angle, pitch
		return f
	})
}

// SetFillPair2 sets the second angle/pitch pair on fills that use it.
func SetFillPair2(objs []*object.Object, angle, pitch int) error {
	return updateFill(objs, usesFillPair2, func(f object.FillStyle) object.FillStyle {
		f.Angle2, f.Pitch2 = angle, pitch
		return f
	})
}
