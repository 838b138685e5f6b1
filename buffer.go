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

// BufReader amortizes resource-level reads across a caller-supplied buffer.
//
// The buffer is borrowed, not owned: the caller must keep it alive and must
// not read or write it through any other reference for as long as the source
// is in use. Capacity is a tuning parameter only; any capacity >= 1 produces
// the same byte sequence.
//
type BufReader struct {
	r   io.Reader
	buf []byte
	off int // next byte to serve; 0 <= off <= n
	n   int // valid bytes in buf; n <= len(buf)
}

// NewBufReader returns a Source serving bytes from buf, refilled from r one
// block at a time.
//
func NewBufReader(r io.Reader, buf []byte) *BufReader {
	return &BufReader{r: r, buf: buf}
}

// Next serves the byte at the cursor, refilling the buffer first if it has
// been drained.
//
func (s *BufReader) Next() (byte, bool) {
	if s.off == s.n && !s.refill() {
		return 0, false
	}
	b := s.buf[s.off]
	s.off++
	return b, true
}

// refill issues a single Read for as much of the buffer as available. A call
// that obtains zero bytes, for whatever reason, ends the stream.
//
func (s *BufReader) refill() bool {
	n, _ := s.r.Read(s.buf)
	if n == 0 {
		return false
	}
	s.off, s.n = 0, n
	return true
}
