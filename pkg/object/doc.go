// Package object implements the schematic primitive object model.
//
// A schematic is drawn from a small closed family of primitives: lines,
// boxes, circles, arcs, pins, text and pictures. Each primitive is an
// *Object carrying a Kind discriminator and exactly one non-nil payload
// matching that kind. There is no inheritance and no runtime type
// introspection; every operation switches on Kind.
//
// # Overview
//
// The package provides:
//   - Factories: NewLine, NewBox, NewCircle, NewArc, NewPin, NewText, NewPicture
//   - Copy: a deep duplicate with a fresh identity
//   - Transforms: Translate, Rotate, Mirror, Scale and the general Apply
//   - Interactive edits: ModifyPoint and the Points handle list
//   - Queries: Length, SquaredLength, Perimeter, Area and the cached Bounds
//   - Style: LineStyle, FillStyle and the fill capability descriptor
//
// # Usage
//
//	l, err := object.NewLine(object.GraphicColor, geom.Pt(0, 0), geom.Pt(5, 5))
//	if err != nil {
//		return err
//	}
//	if err := object.Translate(l, 2, -2); err != nil {
//		return err
//	}
//	// l.Line.Start == (2, -2), l.Line.End == (7, 3)
//
// # Contract violations
//
// Bad input (an illegal colour, a 45 degree rotation, a zero scale factor,
// an unknown handle index, geometry outside the world limit) is reported
// as an error wrapping one of the sentinel errors below. Operations either
// succeed completely or leave the object exactly as it was; invalid input
// is never clamped.
//
// # Concurrency
//
// Nothing in this package blocks or keeps global state. Distinct objects
// may be transformed from different goroutines; the same object must not
// be mutated concurrently.
package object
