package lexio_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noxabellus/lexio"
)

// failingReader serves its data and then returns a read error instead of
// io.EOF.
type failingReader struct {
	data []byte
	pos  int
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("device gone")
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// dribbleReader returns at most one byte per Read call, forcing partial
// buffer fills regardless of buffer capacity.
type dribbleReader struct {
	r io.Reader
}

func (d dribbleReader) Read(p []byte) (int, error) {
	return d.r.Read(p[:1])
}

func drain(s lexio.Source) []byte {
	var out []byte
	for {
		b, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, b)
	}
}

func TestReaderYieldsEveryByte(t *testing.T) {
	s := lexio.NewReader(strings.NewReader("ab"))
	b, ok := s.Next()
	require.True(t, ok)
	require.Equal(t, byte('a'), b)
	b, ok = s.Next()
	require.True(t, ok)
	require.Equal(t, byte('b'), b)
	_, ok = s.Next()
	require.False(t, ok)
	// A spent source stays spent.
	_, ok = s.Next()
	require.False(t, ok)
}

func TestReaderCollapsesErrorToEnd(t *testing.T) {
	s := lexio.NewReader(&failingReader{data: []byte("xy")})
	require.Equal(t, []byte("xy"), drain(s))
}

func TestBufReaderServesAcrossRefills(t *testing.T) {
	const input = "the quick brown fox"
	for _, size := range []int{1, 2, 3, 7, 19, 64} {
		s := lexio.NewBufReader(strings.NewReader(input), make([]byte, size))
		require.Equal(t, []byte(input), drain(s), "capacity %d", size)
	}
}

func TestBufReaderPartialFills(t *testing.T) {
	const input = "partial fills still work"
	s := lexio.NewBufReader(dribbleReader{strings.NewReader(input)}, make([]byte, 1024))
	require.Equal(t, []byte(input), drain(s))
}

func TestBufReaderImmediateError(t *testing.T) {
	s := lexio.NewBufReader(&failingReader{}, make([]byte, 16))
	_, ok := s.Next()
	require.False(t, ok)
}

func TestBytesEmpty(t *testing.T) {
	_, ok := lexio.NewBytes(nil).Next()
	require.False(t, ok)
}

func TestReadAll(t *testing.T) {
	s, err := lexio.ReadAll(strings.NewReader("abc"))
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), drain(s))
}

func TestReadAllError(t *testing.T) {
	_, err := lexio.ReadAll(&failingReader{data: []byte("abc")})
	require.Error(t, err)
}

func TestSourcesAgreeByteForByte(t *testing.T) {
	const input = "identical bytes from every strategy 0123456789"
	want := []byte(input)
	require.Equal(t, want, drain(lexio.NewReader(strings.NewReader(input))))
	require.Equal(t, want, drain(lexio.NewBufReader(strings.NewReader(input), make([]byte, 5))))
	require.Equal(t, want, drain(lexio.NewBytes([]byte(input))))
}
