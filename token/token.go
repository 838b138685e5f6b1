// Package token defines the token values produced by the lexio tokenizer.
//
package token

import "fmt"

// Kind classifies a token.
//
type Kind int

// Token kinds.
//
const (
	Identifier Kind = iota // [A-Za-z_][A-Za-z0-9_]*
	Number                 // [0-9]+, decimal, 64-bit signed
)

func (k Kind) String() string {
	switch k {
	case Identifier:
		return "Identifier"
	case Number:
		return "Number"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Pos is the byte offset of a token's first byte within its input.
//
type Pos int

// IsValid returns true if p is a valid position.
//
func (p Pos) IsValid() bool {
	return p >= 0
}

// A Token is a single lexical item: an identifier carrying its text, or a
// number carrying its parsed value. Tokens are immutable once produced.
//
type Token struct {
	Kind  Kind
	Pos   Pos
	Text  string // identifier text, empty for numbers
	Value int64  // numeric value, 0 for identifiers
}

func (t Token) String() string {
	if t.Kind == Number {
		return fmt.Sprintf("%d: Number(%d)", t.Pos, t.Value)
	}
	return fmt.Sprintf("%d: %s(%q)", t.Pos, t.Kind, t.Text)
}
