package script

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/OpenTraceLab/OpenTraceSch/pkg/geom"
)

// Script is a parsed edit script.
type Script struct {
	Statements []*Statement `( @@ | EOL )*`
}

// Statement is one line of a script. Exactly one field is set.
type Statement struct {
	Pos lexer.Position

	Line    *LineStmt    `  @@`
	Box     *BoxStmt     `| @@`
	Circle  *CircleStmt  `| @@`
	Arc     *ArcStmt     `| @@`
	Pin     *PinStmt     `| @@`
	Text    *TextStmt    `| @@`
	Picture *PictureStmt `| @@`

	Copy      *CopyStmt      `| @@`
	Delete    *DeleteStmt    `| @@`
	Translate *TranslateStmt `| @@`
	Rotate    *RotateStmt    `| @@`
	Mirror    *MirrorStmt    `| @@`
	Scale     *ScaleStmt     `| @@`
	Modify    *ModifyStmt    `| @@`
	Style     *StyleStmt     `| @@`
	Fill      *FillStmt      `| @@`
	Color     *ColorStmt     `| @@`
	Print     *PrintStmt     `| @@`
	Measure   *MeasureStmt   `| @@`
}

// Point is a coordinate pair written as (x, y).
type Point struct {
	X int `"(" @Int ","`
	Y int `@Int ")"`
}

// Geom converts the parsed point.
func (p *Point) Geom() geom.Point {
	return geom.Pt(p.X, p.Y)
}

// LineStmt creates a line.
// Example: line 3 (0, 0) (100, 0) as wire1
type LineStmt struct {
	Color int    `"line" @Int`
	Start *Point `@@`
	End   *Point `@@`
	Name  string `"as" @Ident`
}

// BoxStmt creates a box from two opposite corners.
// Example: box 3 (0, 100) (200, 0) as frame
type BoxStmt struct {
	Color   int    `"box" @Int`
	Corner1 *Point `@@`
	Corner2 *Point `@@`
	Name    string `"as" @Ident`
}

// CircleStmt creates a circle.
// Example: circle 3 (50, 50) 25 as c1
type CircleStmt struct {
	Color  int    `"circle" @Int`
	Center *Point `@@`
	Radius int    `@Int`
	Name   string `"as" @Ident`
}

// ArcStmt creates an arc from its start angle and signed sweep.
// Example: arc 3 (0, 0) 100 0 90 as a1
type ArcStmt struct {
	Color  int    `"arc" @Int`
	Center *Point `@@`
	Radius int    `@Int`
	Start  int    `@Int`
	Sweep  int    `@Int`
	Name   string `"as" @Ident`
}

// PinStmt creates a pin. The connectable end defaults to the first point.
// Example: pin 1 (0, 0) (0, 300) bus end 1 as p1
type PinStmt struct {
	Color    int    `"pin" @Int`
	Start    *Point `@@`
	End      *Point `@@`
	Type     string `@( "net" | "bus" )?`
	WhichEnd int    `( "end" @Int )?`
	Name     string `"as" @Ident`
}

// TextStmt creates a text label.
// Example: text 9 (10, 10) "R1" 10 0 align lower-left hidden as ref
type TextStmt struct {
	Color  int    `"text" @Int`
	Anchor *Point `@@`
	Value  string `@String`
	Size   int    `@Int`
	Angle  int    `@Int`
	Align  string `( "align" @Ident )?`
	Hidden bool   `@"hidden"?`
	Name   string `"as" @Ident`
}

// PictureStmt places an image.
// Example: picture (0, 100) (100, 0) 90 mirrored "logo.png" as logo
type PictureStmt struct {
	Corner1  *Point `"picture" @@`
	Corner2  *Point `@@`
	Angle    int    `@Int`
	Mirrored bool   `@"mirrored"?`
	Filename string `@String`
	Name     string `"as" @Ident`
}

// CopyStmt duplicates an object under a new name.
type CopyStmt struct {
	Source string `"copy" @Ident`
	Name   string `"as" @Ident`
}

// DeleteStmt removes an object.
type DeleteStmt struct {
	Name string `"delete" @Ident`
}

// TranslateStmt moves a target by an offset. The target "all" addresses
// every object in the drawing.
type TranslateStmt struct {
	Target string `"translate" @Ident`
	DX     int    `@Int`
	DY     int    `@Int`
}

// RotateStmt rotates a target counter-clockwise about a center.
type RotateStmt struct {
	Target string `"rotate" @Ident`
	Center *Point `@@`
	Angle  int    `@Int`
}

// MirrorStmt reflects a target across a vertical axis.
type MirrorStmt struct {
	Target string `"mirror" @Ident`
	AxisX  int    `@Int`
}

// ScaleStmt scales a target about an origin.
type ScaleStmt struct {
	Target string `"scale" @Ident`
	Origin *Point `@@`
	SX     int    `@Int`
	SY     int    `@Int`
}

// ModifyStmt moves one handle of an object.
// Example: modify frame 1 (300, -50)
type ModifyStmt struct {
	Name  string `"modify" @Ident`
	Index int    `@Int`
	To    *Point `@@`
}

// StyleStmt changes stroke attributes.
// Example: style all width 10 dash dashed length 50
type StyleStmt struct {
	Target   string          `"style" @Ident`
	Settings []*StyleSetting `@@+`
}

// StyleSetting is one stroke attribute assignment.
type StyleSetting struct {
	Width  *int    `  "width" "="? @Int`
	Cap    *string `| "cap" "="? @Ident`
	Dash   *string `| "dash" "="? @Ident`
	Length *int    `| "length" "="? @Int`
	Space  *int    `| "space" "="? @Int`
}

// FillStmt changes fill attributes.
// Example: fill frame type hatch width 5 pair1 45 100
type FillStmt struct {
	Target   string         `"fill" @Ident`
	Settings []*FillSetting `@@+`
}

// FillSetting is one fill attribute assignment.
type FillSetting struct {
	Type  *string    `  "type" "="? @Ident`
	Width *int       `| "width" "="? @Int`
	Pair1 *AnglePair `| "pair1" "="? @@`
	Pair2 *AnglePair `| "pair2" "="? @@`
}

// AnglePair is a hatch angle and pitch.
type AnglePair struct {
	Angle int `@Int`
	Pitch int `@Int`
}

// ColorStmt changes the palette index of a target.
type ColorStmt struct {
	Target string `"color" @Ident`
	Color  int    `@Int`
}

// PrintStmt writes one object, or every object when no name is given.
type PrintStmt struct {
	Name string `"print" @Ident?`
}

// MeasureStmt writes the derived lengths of an object.
type MeasureStmt struct {
	Name string `"measure" @Ident`
}
