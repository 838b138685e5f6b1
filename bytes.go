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

// Bytes serves an input that has been fully preloaded into memory. It marks
// the point where acquisition cost has been paid entirely up front and
// traversal is pure slice indexing.
//
type Bytes struct {
	data []byte
	pos  int
}

// NewBytes returns a Source over data. The slice is not copied.
//
func NewBytes(data []byte) *Bytes {
	return &Bytes{data: data}
}

// ReadAll preloads the whole of r into memory and returns a Bytes source
// over it.
//
func ReadAll(r io.Reader) (*Bytes, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewBytes(data), nil
}

// Next returns the byte at the cursor and advances it.
//
func (s *Bytes) Next() (byte, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	b := s.data[s.pos]
	s.pos++
	return b, true
}
