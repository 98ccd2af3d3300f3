package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/OpenTraceLab/OpenTraceSch/pkg/object"
	"github.com/OpenTraceLab/OpenTraceSch/pkg/selection"
)

// Error reports the script line a statement failed on.
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var errEmptyStatement = errors.New("empty statement")

// Interpreter executes scripts against a drawing. Output from print and
// measure statements goes to out.
type Interpreter struct {
	drawing *Drawing
	out     io.Writer
	logger  *slog.Logger
}

// NewInterpreter creates an interpreter. A nil logger discards log output.
func NewInterpreter(d *Drawing, out io.Writer, logger *slog.Logger) *Interpreter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if out == nil {
		out = io.Discard
	}
	return &Interpreter{drawing: d, out: out, logger: logger}
}

// Drawing returns the drawing the interpreter edits.
func (in *Interpreter) Drawing() *Drawing {
	return in.drawing
}

// Run executes the statements of s in order. It stops at the first failing
// statement or when ctx is cancelled. Statements that completed stay
// applied.
func (in *Interpreter) Run(ctx context.Context, s *Script) error {
	for _, st := range s.Statements {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := in.Exec(st); err != nil {
			in.logger.Error("statement failed", "line", st.Pos.Line, "error", err)
			return &Error{Line: st.Pos.Line, Err: err}
		}
	}
	in.logger.Info("script complete", "statements", len(s.Statements), "objects", in.drawing.Len())
	return nil
}

// Exec executes a single statement.
func (in *Interpreter) Exec(st *Statement) error {
	switch {
	case st.Line != nil:
		return in.create(st.Line.Name, func() (*object.Object, error) {
			return object.NewLine(st.Line.Color, st.Line.Start.Geom(), st.Line.End.Geom())
		})
	case st.Box != nil:
		return in.create(st.Box.Name, func() (*object.Object, error) {
			return object.NewBox(st.Box.Color, st.Box.Corner1.Geom(), st.Box.Corner2.Geom())
		})
	case st.Circle != nil:
		return in.create(st.Circle.Name, func() (*object.Object, error) {
			return object.NewCircle(st.Circle.Color, st.Circle.Center.Geom(), st.Circle.Radius)
		})
	case st.Arc != nil:
		a := st.Arc
		return in.create(a.Name, func() (*object.Object, error) {
			return object.NewArc(a.Color, a.Center.Geom(), a.Radius, a.Start, a.Sweep)
		})
	case st.Pin != nil:
		return in.createPin(st.Pin)
	case st.Text != nil:
		return in.createText(st.Text)
	case st.Picture != nil:
		p := st.Picture
		return in.create(p.Name, func() (*object.Object, error) {
			return object.NewPicture(p.Corner1.Geom(), p.Corner2.Geom(), p.Angle, p.Mirrored, p.Filename)
		})
	case st.Copy != nil:
		return in.copy(st.Copy)
	case st.Delete != nil:
		if err := in.drawing.Remove(st.Delete.Name); err != nil {
			return err
		}
		in.logger.Debug("deleted object", "name", st.Delete.Name)
		return nil
	case st.Translate != nil:
		t := st.Translate
		return in.transform(t.Target, "translate", func(objs []*object.Object) error {
			return object.TranslateAll(objs, t.DX, t.DY)
		})
	case st.Rotate != nil:
		r := st.Rotate
		return in.transform(r.Target, "rotate", func(objs []*object.Object) error {
			return object.RotateAll(objs, r.Center.Geom(), r.Angle)
		})
	case st.Mirror != nil:
		m := st.Mirror
		return in.transform(m.Target, "mirror", func(objs []*object.Object) error {
			return object.MirrorAll(objs, m.AxisX)
		})
	case st.Scale != nil:
		s := st.Scale
		return in.transform(s.Target, "scale", func(objs []*object.Object) error {
			return object.ScaleAll(objs, s.Origin.Geom(), s.SX, s.SY)
		})
	case st.Modify != nil:
		return in.modify(st.Modify)
	case st.Style != nil:
		return in.style(st.Style)
	case st.Fill != nil:
		return in.fill(st.Fill)
	case st.Color != nil:
		objs, err := in.drawing.Resolve(st.Color.Target)
		if err != nil {
			return err
		}
		return selection.SetColor(objs, st.Color.Color)
	case st.Print != nil:
		return in.print(st.Print.Name)
	case st.Measure != nil:
		o, err := in.drawing.Get(st.Measure.Name)
		if err != nil {
			return err
		}
		line, err := Measure(st.Measure.Name, o)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(in.out, line)
		return err
	}
	return errEmptyStatement
}

func (in *Interpreter) create(name string, build func() (*object.Object, error)) error {
	o, err := build()
	if err != nil {
		return err
	}
	if err := in.drawing.Add(name, o); err != nil {
		return err
	}
	in.logger.Debug("created object", "name", name, "kind", o.Kind, "id", o.ID)
	return nil
}

func (in *Interpreter) createPin(p *PinStmt) error {
	pinType := object.PinNet
	if p.Type == "bus" {
		pinType = object.PinBus
	}
	return in.create(p.Name, func() (*object.Object, error) {
		return object.NewPin(p.Color, p.Start.Geom(), p.End.Geom(), p.WhichEnd, pinType)
	})
}

func (in *Interpreter) createText(t *TextStmt) error {
	align := object.LowerLeft
	if t.Align != "" {
		a, err := object.ParseAlignment(t.Align)
		if err != nil {
			return err
		}
		align = a
	}
	return in.create(t.Name, func() (*object.Object, error) {
		o, err := object.NewText(t.Color, t.Anchor.Geom(), t.Value, t.Size, t.Angle, align)
		if err != nil {
			return nil, err
		}
		if t.Hidden {
			o.Text.Visible = false
			o.UpdateBounds()
		}
		return o, nil
	})
}

func (in *Interpreter) copy(c *CopyStmt) error {
	src, err := in.drawing.Get(c.Source)
	if err != nil {
		return err
	}
	return in.create(c.Name, func() (*object.Object, error) {
		return object.Copy(src), nil
	})
}

func (in *Interpreter) transform(target, op string, apply func([]*object.Object) error) error {
	objs, err := in.drawing.Resolve(target)
	if err != nil {
		return err
	}
	if err := apply(objs); err != nil {
		return fmt.Errorf("%s %s: %w", op, target, err)
	}
	in.logger.Debug("transformed", "op", op, "target", target, "objects", len(objs))
	return nil
}

func (in *Interpreter) modify(m *ModifyStmt) error {
	o, err := in.drawing.Get(m.Name)
	if err != nil {
		return err
	}
	if err := object.ModifyPoint(o, m.To.X, m.To.Y, m.Index); err != nil {
		return fmt.Errorf("modify %s: %w", m.Name, err)
	}
	in.logger.Debug("modified point", "name", m.Name, "index", m.Index, "to", m.To.Geom())
	return nil
}

// style applies every setting or none of them.
func (in *Interpreter) style(s *StyleStmt) error {
	objs, err := in.drawing.Resolve(s.Target)
	if err != nil {
		return err
	}
	saved := make([]object.LineStyle, len(objs))
	for i, o := range objs {
		saved[i] = o.Stroke
	}
	if err := applyStyle(objs, s.Settings); err != nil {
		for i, o := range objs {
			o.Stroke = saved[i]
			o.UpdateBounds()
		}
		return err
	}
	return nil
}

// applyStyle changes the dash type first so that a length or space given
// alongside it lands on the new pattern.
func applyStyle(objs []*object.Object, settings []*StyleSetting) error {
	var err error
	for _, set := range settings {
		if set.Dash == nil {
			continue
		}
		d, err := object.ParseDashType(*set.Dash)
		if err != nil {
			return err
		}
		if err := selection.SetDashType(objs, d); err != nil {
			return err
		}
	}
	for _, set := range settings {
		switch {
		case set.Width != nil:
			err = selection.SetLineWidth(objs, *set.Width)
		case set.Cap != nil:
			var c object.CapStyle
			if c, err = object.ParseCapStyle(*set.Cap); err == nil {
				err = selection.SetCapStyle(objs, c)
			}
		case set.Length != nil:
			err = selection.SetDashLength(objs, *set.Length)
		case set.Space != nil:
			err = selection.SetDashSpace(objs, *set.Space)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// fill applies every setting or none of them.
func (in *Interpreter) fill(f *FillStmt) error {
	objs, err := in.drawing.Resolve(f.Target)
	if err != nil {
		return err
	}
	saved := make([]object.FillStyle, len(objs))
	for i, o := range objs {
		saved[i] = o.Fill
	}
	if err := applyFill(objs, f.Settings); err != nil {
		for i, o := range objs {
			o.Fill = saved[i]
		}
		return err
	}
	return nil
}

func applyFill(objs []*object.Object, settings []*FillSetting) error {
	var err error
	for _, set := range settings {
		if set.Type == nil {
			continue
		}
		t, err := object.ParseFillType(*set.Type)
		if err != nil {
			return err
		}
		if err := selection.SetFillType(objs, t); err != nil {
			return err
		}
	}
	for _, set := range settings {
		switch {
		case set.Width != nil:
			err = selection.SetFillWidth(objs, *set.Width)
		case set.Pair1 != nil:
			err = selection.SetFillPair1(objs, set.Pair1.Angle, set.Pair1.Pitch)
		case set.Pair2 != nil:
			err = selection.SetFillPair2(objs, set.Pair2.Angle, set.Pair2.Pitch)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) print(name string) error {
	names := []string{name}
	if name == "" || name == AllObjects {
		names = in.drawing.Names()
	}
	for _, n := range names {
		o, err := in.drawing.Get(n)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(in.out, Describe(n, o)); err != nil {
			return err
		}
	}
	return nil
}

// Report summarises every object of the drawing in order.
func (d *Drawing) Report() []ObjectInfo {
	infos := make([]ObjectInfo, 0, len(d.names))
	for _, name := range d.names {
		infos = append(infos, Describe(name, d.objects[name]))
	}
	return infos
}
