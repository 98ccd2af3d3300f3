package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mustParser(t *testing.T) *Parser {
	t.Helper()
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	return parser
}

func TestParseCreateStatements(t *testing.T) {
	input := `
	# one of each kind
	line 3 (0, 0) (100, 0) as wire
	box 3 (0, 100) (200, 0) as frame
	circle 3 (50, 50) 25 as c1
	arc 3 (0, 0) 100 0 -90 as a1
	pin 1 (0, 0) (0, 300) bus end 1 as p1
	text 9 (10, 10) "R\"1" 10 90 align upper-right hidden as ref
	picture (0, 100) (100, 0) 270 mirrored "logo.png" as logo
	`

	s, err := mustParser(t).ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if len(s.Statements) != 7 {
		t.Fatalf("Expected 7 statements, got %d", len(s.Statements))
	}

	line := s.Statements[0].Line
	if line == nil {
		t.Fatal("Line statement is nil")
	}
	if line.Color != 3 || line.End.X != 100 || line.Name != "wire" {
		t.Errorf("Unexpected line statement %+v", line)
	}
	if s.Statements[0].Pos.Line != 3 {
		t.Errorf("Expected line statement on line 3, got %d", s.Statements[0].Pos.Line)
	}

	arc := s.Statements[3].Arc
	if arc == nil || arc.Radius != 100 || arc.Sweep != -90 {
		t.Errorf("Unexpected arc statement %+v", arc)
	}

	pin := s.Statements[4].Pin
	if pin == nil || pin.Type != "bus" || pin.WhichEnd != 1 {
		t.Errorf("Unexpected pin statement %+v", pin)
	}

	txt := s.Statements[5].Text
	if txt == nil {
		t.Fatal("Text statement is nil")
	}
	if txt.Value != `R"1` {
		t.Errorf("Expected unquoted string 'R\"1', got '%s'", txt.Value)
	}
	if txt.Align != "upper-right" || !txt.Hidden || txt.Angle != 90 {
		t.Errorf("Unexpected text statement %+v", txt)
	}

	pic := s.Statements[6].Picture
	if pic == nil || !pic.Mirrored || pic.Filename != "logo.png" || pic.Angle != 270 {
		t.Errorf("Unexpected picture statement %+v", pic)
	}
}

func TestParseOptionalParts(t *testing.T) {
	s, err := mustParser(t).ParseString(`pin 1 (0, 0) (0, 300) as p; text 9 (0, 0) "x" 10 0 as t`)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if len(s.Statements) != 2 {
		t.Fatalf("Expected 2 statements, got %d", len(s.Statements))
	}
	if p := s.Statements[0].Pin; p.Type != "" || p.WhichEnd != 0 {
		t.Errorf("Expected pin defaults, got %+v", p)
	}
	if txt := s.Statements[1].Text; txt.Align != "" || txt.Hidden {
		t.Errorf("Expected text defaults, got %+v", txt)
	}
}

func TestParseEditStatements(t *testing.T) {
	input := `translate all 10 -20
rotate frame (0, 0) 90
mirror frame 50
scale frame (0, 0) 2 -1
modify frame 1 (300, -50)
style all width 10 dash dashed length=50
fill frame type hatch width 5 pair1 45 100
color wire 4
copy wire as wire2
delete wire2
print
print frame
measure frame
`

	s, err := mustParser(t).ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if len(s.Statements) != 13 {
		t.Fatalf("Expected 13 statements, got %d", len(s.Statements))
	}

	if tr := s.Statements[0].Translate; tr == nil || tr.Target != "all" || tr.DY != -20 {
		t.Errorf("Unexpected translate statement %+v", tr)
	}
	if sc := s.Statements[3].Scale; sc == nil || sc.SX != 2 || sc.SY != -1 {
		t.Errorf("Unexpected scale statement %+v", sc)
	}
	if m := s.Statements[4].Modify; m == nil || m.Index != 1 || m.To.Y != -50 {
		t.Errorf("Unexpected modify statement %+v", m)
	}

	style := s.Statements[5].Style
	if style == nil || len(style.Settings) != 3 {
		t.Fatalf("Expected 3 style settings, got %+v", style)
	}
	if style.Settings[2].Length == nil || *style.Settings[2].Length != 50 {
		t.Errorf("Expected length 50, got %+v", style.Settings[2])
	}

	fill := s.Statements[6].Fill
	if fill == nil || len(fill.Settings) != 3 {
		t.Fatalf("Expected 3 fill settings, got %+v", fill)
	}
	if p := fill.Settings[2].Pair1; p == nil || p.Angle != 45 || p.Pitch != 100 {
		t.Errorf("Unexpected pair1 %+v", p)
	}

	if p := s.Statements[10].Print; p == nil || p.Name != "" {
		t.Errorf("Expected bare print, got %+v", p)
	}
	if p := s.Statements[11].Print; p == nil || p.Name != "frame" {
		t.Errorf("Expected print frame, got %+v", p)
	}
	if s.Statements[12].Pos.Line != 13 {
		t.Errorf("Expected measure on line 13, got %d", s.Statements[12].Pos.Line)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown statement", "explode wire"},
		{"missing name", "line 3 (0, 0) (1, 1)"},
		{"bad point", "line 3 (0 0) (1, 1) as l"},
		{"empty style", "style wire"},
		{"unterminated string", `text 9 (0, 0) "abc 10 0 as t`},
	}

	parser := mustParser(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, strErr := parser.ParseString(tt.input)
			if strErr == nil {
				t.Fatalf("Expected parse error for %q", tt.input)
			}
			_, readErr := parser.Parse(strings.NewReader(tt.input))
			if readErr == nil {
				t.Fatalf("Expected parse error from reader for %q", tt.input)
			}
			if strErr.Error() != readErr.Error() {
				t.Errorf("Expected identical errors, got %q and %q", strErr, readErr)
			}
			if !strings.HasPrefix(strErr.Error(), "parse error: ") {
				t.Errorf("Expected parse error prefix, got %q", strErr)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edit.otsch")
	if err := os.WriteFile(path, []byte("line 3 (0, 0) (5, 5) as l\n"), 0o644); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}

	s, err := mustParser(t).ParseFile(path)
	if err != nil {
		t.Fatalf("Failed to parse file: %v", err)
	}
	if len(s.Statements) != 1 || s.Statements[0].Line == nil {
		t.Fatalf("Expected one line statement, got %+v", s.Statements)
	}

	if _, err := mustParser(t).ParseFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for missing file")
	}
}
