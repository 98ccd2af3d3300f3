package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ScriptLexer defines the tokens of the edit script language.
// Statements are separated by newlines or semicolons.
var ScriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run from # to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Statement separators
	{Name: "EOL", Pattern: `[\n;]`},

	// Whitespace other than newlines
	{Name: "Whitespace", Pattern: `[ \t\r]+`},

	// Double-quoted strings with backslash escapes
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},

	// Signed integers
	{Name: "Int", Pattern: `[-+]?\d+`},

	// Keywords and object names
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_\-]*`},

	// Punctuation
	{Name: "Punct", Pattern: `[(),=]`},
})
