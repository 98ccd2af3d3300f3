package object

import (
	"fmt"
	"math"
	"strconv"

	"github.com/OpenTraceLab/OpenTraceSch/pkg/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

// DisplayPrecision is the number of decimals FormatLength keeps.
const DisplayPrecision = 2

func vec(p geom.Point) r2.Vec {
	return r2.Vec{X: float64(p.X), Y: float64(p.Y)}
}

func distance(a, b geom.Point) float64 {
	return r2.Norm(r2.Sub(vec(b), vec(a)))
}

// Length returns the Euclidean length of a line or pin in float64. Use
// SquaredLength for exact comparisons.
func Length(o *Object) (float64, error) {
	switch o.Kind {
	case KindLine:
		return distance(o.Line.Start, o.Line.End), nil
	case KindPin:
		return distance(o.Pin.Start, o.Pin.End), nil
	}
	return 0, fmt.Errorf("length of %s: %w", o.Kind, ErrUnsupportedKind)
}

// SquaredLength returns the exact squared length of a line or pin.
func SquaredLength(o *Object) (int64, error) {
	switch o.Kind {
	case KindLine:
		return geom.SquaredDistance(o.Line.Start, o.Line.End), nil
	case KindPin:
		return geom.SquaredDistance(o.Pin.Start, o.Pin.End), nil
	}
	return 0, fmt.Errorf("squared length of %s: %w", o.Kind, ErrUnsupportedKind)
}

// Perimeter returns the outline length: the edge sum of a box or picture,
// the circumference of a circle, the curve length of an arc and the
// length of a line or pin.
func Perimeter(o *Object) (float64, error) {
	switch o.Kind {
	case KindLine, KindPin:
		return Length(o)
	case KindBox:
		return rectPerimeter(o.Box.Upper, o.Box.Lower), nil
	case KindPicture:
		return rectPerimeter(o.Picture.Upper, o.Picture.Lower), nil
	case KindCircle:
		return 2 * math.Pi * float64(o.Circle.Radius), nil
	case KindArc:
		return math.Abs(float64(o.Arc.Sweep)) * math.Pi / 180 * float64(o.Arc.Radius), nil
	}
	return 0, fmt.Errorf("perimeter of %s: %w", o.Kind, ErrUnsupportedKind)
}

func rectPerimeter(upper, lower geom.Point) float64 {
	w := float64(lower.X - upper.X)
	h := float64(upper.Y - lower.Y)
	return 2 * (w + h)
}

// Area returns the enclosed area. Open kinds (line, pin, arc) enclose
// nothing and report zero.
func Area(o *Object) (float64, error) {
	switch o.Kind {
	case KindLine, KindPin, KindArc:
		return 0, nil
	case KindBox:
		return float64(o.Box.Lower.X-o.Box.Upper.X) * float64(o.Box.Upper.Y-o.Box.Lower.Y), nil
	case KindPicture:
		return float64(o.Picture.Lower.X-o.Picture.Upper.X) * float64(o.Picture.Upper.Y-o.Picture.Lower.Y), nil
	case KindCircle:
		r := float64(o.Circle.Radius)
		return math.Pi * r * r, nil
	}
	return 0, fmt.Errorf("area of %s: %w", o.Kind, ErrUnsupportedKind)
}

// FormatLength renders a derived measure for display, rounded half away
// from zero to DisplayPrecision decimals.
func FormatLength(v float64) string {
	scale := math.Pow(10, DisplayPrecision)
	return strconv.FormatFloat(math.Round(v*scale)/scale, 'f', DisplayPrecision, 64)
}
