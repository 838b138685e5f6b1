// Copyright 2026 The lexio Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package lexio

import (
	"strconv"

	"github.com/noxabellus/lexio/token"
)

// A Lexer performs a single forward pass over a Source, grouping byte runs
// into identifier and number tokens. It holds one byte of lookahead, the
// only buffering between it and the source; the source itself offers no way
// to un-pull a byte.
//
// A Lexer exclusively owns its Source for its entire lifetime. Neither is
// safe for concurrent use.
//
type Lexer struct {
	src    Source
	lexeme []byte    // accumulator for the current run, reused between tokens
	pos    token.Pos // offset of the next unconsumed byte
	la     byte      // lookahead byte, valid when hasLA
	hasLA  bool
	eof    bool // the source has returned false; never pull it again
	done   bool // the token stream has terminated
}

// NewLexer returns a Lexer consuming src. A new Lexer must be created for
// every input to be tokenized; a Lexer whose stream has terminated stays
// terminated.
//
func NewLexer(src Source) *Lexer {
	return &Lexer{src: src, lexeme: make([]byte, 0, 64)}
}

// Next returns the next token in the stream. ok is false once the stream has
// terminated, either because the source ran out of bytes or because a byte
// outside the grammar was reached. The two are indistinguishable: an
// unrecognized byte and everything after it are silently dropped, unread.
//
// A decimal run whose value does not fit in an int64 panics. Inputs are
// expected to be well-formed; overflow is a programming error at the call
// site, not a lexical condition.
//
func (l *Lexer) Next() (tok token.Token, ok bool) {
	if l.done {
		return token.Token{}, false
	}
	for {
		b, ok := l.peek()
		switch {
		case !ok:
			l.done = true
			return token.Token{}, false
		case isLetter(b):
			return l.scanIdentifier(), true
		case isDigit(b):
			return l.scanNumber(), true
		case isSpace(b):
			l.advance()
		default:
			// Unrecognized byte: truncate the stream without consuming it.
			l.done = true
			return token.Token{}, false
		}
	}
}

// Drain consumes the remainder of the token stream into a slice.
//
func (l *Lexer) Drain() []token.Token {
	var toks []token.Token
	for {
		t, ok := l.Next()
		if !ok {
			return toks
		}
		toks = append(toks, t)
	}
}

// peek returns the next byte without consuming it.
func (l *Lexer) peek() (byte, bool) {
	if l.hasLA {
		return l.la, true
	}
	if l.eof {
		return 0, false
	}
	b, ok := l.src.Next()
	if !ok {
		l.eof = true
		return 0, false
	}
	l.la, l.hasLA = b, true
	return b, true
}

// advance consumes the lookahead byte. Must only be called after a
// successful peek.
func (l *Lexer) advance() {
	l.hasLA = false
	l.pos++
}

func (l *Lexer) scanIdentifier() token.Token {
	start := l.pos
	l.lexeme = l.lexeme[:0]
	for {
		b, ok := l.peek()
		if !ok || !isIdent(b) {
			break
		}
		l.lexeme = append(l.lexeme, b)
		l.advance()
	}
	// The accumulated bytes are ASCII letters, digits and underscores only,
	// so the string conversion cannot yield invalid text.
	return token.Token{Kind: token.Identifier, Pos: start, Text: string(l.lexeme)}
}

func (l *Lexer) scanNumber() token.Token {
	start := l.pos
	l.lexeme = l.lexeme[:0]
	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			break
		}
		l.lexeme = append(l.lexeme, b)
		l.advance()
	}
	v, err := strconv.ParseInt(string(l.lexeme), 10, 64)
	if err != nil {
		panic("lexio: number out of int64 range: " + string(l.lexeme))
	}
	return token.Token{Kind: token.Number, Pos: start, Value: v}
}

// isLetter reports whether b can start an identifier.
func isLetter(b byte) bool {
	return b == '_' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

// isIdent reports whether b can continue an identifier.
func isIdent(b byte) bool {
	return isLetter(b) || isDigit(b)
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// isSpace reports whether b is ASCII whitespace. Vertical tab is deliberately
// not part of the class: it terminates the stream like any other
// unrecognized byte.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
