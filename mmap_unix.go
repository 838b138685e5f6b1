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

//go:build unix

package lexio

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// ErrMapSize is returned by NewMapReader when the file is too large to map
// into the address space.
var ErrMapSize = errors.New("lexio: file too large to map")

// MapReader traverses a file through a read-only shared memory mapping
// established once at construction. No read syscalls occur after
// construction; every pull is a plain memory access.
//
// The *os.File is borrowed: MapReader never closes it, and the caller must
// keep it open and unmodified for as long as the mapping is live. Truncating
// or rewriting the file while the mapping exists is undefined behavior the
// source cannot detect.
//
type MapReader struct {
	data []byte // mapped region; nil once released, or for an empty file
	pos  int    // cursor; 0 <= pos <= len(data)
}

// NewMapReader maps the whole of f and returns a Source over the mapping.
// The caller must Close the returned MapReader when done with it.
//
func NewMapReader(f *os.File) (*MapReader, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := fi.Size()
	if size == 0 {
		// mmap rejects zero-length mappings; an empty file is simply an
		// already-exhausted source with nothing to release.
		return &MapReader{}, nil
	}
	if size != int64(int(size)) {
		return nil, ErrMapSize
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	return &MapReader{data: data}, nil
}

// Next returns the byte at the cursor and advances it. After the region is
// exhausted, or after Close, Next returns false.
//
func (s *MapReader) Next() (byte, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	b := s.data[s.pos]
	s.pos++
	return b, true
}

// Close releases the mapping. The first call unmaps the region; further
// calls are no-ops, so the mapping can never be double-released. Close does
// not close the file the mapping was created from.
//
func (s *MapReader) Close() error {
	if s.data == nil {
		return nil
	}
	data := s.data
	s.data, s.pos = nil, 0
	return unix.Munmap(data)
}
