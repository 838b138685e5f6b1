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

/*
Package lexio measures how the strategy used to acquire bytes from a file
affects the cost of tokenizing them.

The package separates the two concerns behind a single contract: a Source is
a lazy, forward-only producer of bytes with one pull operation, and a Lexer
is a single-pass tokenizer that consumes any Source identically, with no
knowledge of how the bytes were obtained. Several Source implementations of
differing I/O strategy are provided:

	Reader     one read syscall per byte, the correctness baseline
	BufReader  block reads into a caller-supplied buffer
	Bytes      the whole input preloaded into memory
	MapReader  the file memory-mapped, traversal is pure memory access

Because every Source satisfies the same contract, swapping strategies can
never change the token sequence produced for a given input, only the time it
takes to produce it. That property is what makes the comparison meaningful,
and it is asserted by the package tests.

Error model

The Source contract is deliberately flat: a pull either yields a byte or it
does not, and a read failure on the underlying resource is collapsed into end
of stream. The Lexer is equally blunt. A byte outside its grammar silently
truncates the token stream, and a decimal run that overflows an int64 panics.
This is appropriate for a measurement tool operating on known inputs; it is
not a general-purpose error handling strategy.

Ownership

A Lexer exclusively owns its Source, a BufReader exclusively borrows its
buffer, and a MapReader exclusively owns its mapping while only borrowing the
underlying file. Nothing in this package is safe for concurrent use; every
cursor is plain state touched by exactly one consumer.
*/
package lexio
