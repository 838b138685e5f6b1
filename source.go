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

import "io"

// A Source is a lazy, forward-only, finite sequence of bytes with a single
// pull operation. Next returns the next byte and true, or false once the
// sequence has ended. A read failure on the underlying resource is
// indistinguishable from a clean end of stream: both collapse into false.
//
// A Source is single-consumer and not restartable. Once Next has returned
// false the source is spent.
//
type Source interface {
	Next() (byte, bool)
}

// Reader is the baseline acquisition strategy: every pull issues exactly one
// Read call for a single byte against the underlying io.Reader. It has the
// worst per-byte overhead of all sources and serves as the correctness
// reference for the others.
//
type Reader struct {
	r io.Reader
	b [1]byte
}

// NewReader returns a Source pulling single bytes from r.
//
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Next pulls one byte with one Read call. A call that yields no byte,
// whether from io.EOF, any other error, or a zero-length read, ends the
// stream.
//
func (s *Reader) Next() (byte, bool) {
	if n, _ := s.r.Read(s.b[:]); n == 0 {
		return 0, false
	}
	return s.b[0], true
}
