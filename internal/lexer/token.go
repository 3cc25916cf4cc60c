// Package lexer turns calculator source text into a token stream,
// including UTF-8 superscript digits and the three multiplication glyphs
// spec.md §4.5 requires.
package lexer

import "fmt"

// Kind identifies the lexical category of a Token.
type Kind int

// Token kinds, per spec.md §4.5.
const (
	Invalid Kind = iota
	EOF

	Number
	Identifier

	Plus
	Minus
	Star
	Slash
	Caret

	LParen
	RParen
	Comma
	Dot
	Colon

	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Keywords.
	As
	And
	Or
	List
	Show
	Clear
	All
)

var keywords = map[string]Kind{
	"as":    As,
	"and":   And,
	"or":    Or,
	"list":  List,
	"show":  Show,
	"clear": Clear,
	"all":   All,
}

var kindNames = map[Kind]string{
	Invalid: "Invalid", EOF: "EOF", Number: "Number", Identifier: "Identifier",
	Plus: "Plus", Minus: "Minus", Star: "Star", Slash: "Slash", Caret: "Caret",
	LParen: "LParen", RParen: "RParen", Comma: "Comma", Dot: "Dot", Colon: "Colon",
	Bang: "Bang", BangEqual: "BangEqual", Equal: "Equal", EqualEqual: "EqualEqual",
	Greater: "Greater", GreaterEqual: "GreaterEqual", Less: "Less", LessEqual: "LessEqual",
	As: "as", And: "and", Or: "or", List: "list", Show: "show", Clear: "clear", All: "all",
}

// String returns the name of the token kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexical token: its kind, the literal source text it
// came from, the parsed numeric literal if it is a Number, and its source
// line for error reporting.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal float64 // valid only when Kind == Number
	Line    int
}

// String renders the token for diagnostics.
func (t Token) String() string {
	if t.Kind == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Lexeme)
}
