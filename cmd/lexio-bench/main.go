//go:build unix

// Command lexio-bench tokenizes a file with a chosen byte-acquisition
// strategy and reports the token count and elapsed wall time.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/noxabellus/lexio"
)

var (
	strategy = flag.String("strategy", "buffered", "acquisition strategy: direct, buffered, bytes or mmap")
	bufSize  = flag.Int("bufsize", 64*1024, "buffer size in bytes for the buffered strategy")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: lexio-bench [-strategy s] [-bufsize n] <file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	f, err := os.Open(path)
	if err != nil {
		fail(err)
	}
	defer f.Close()

	start := time.Now()
	var src lexio.Source
	switch *strategy {
	case "direct":
		src = lexio.NewReader(f)
	case "buffered":
		if *bufSize < 1 {
			fail(fmt.Errorf("bufsize must be >= 1, got %d", *bufSize))
		}
		src = lexio.NewBufReader(f, make([]byte, *bufSize))
	case "bytes":
		src, err = lexio.ReadAll(f)
		if err != nil {
			fail(err)
		}
	case "mmap":
		m, err := lexio.NewMapReader(f)
		if err != nil {
			fail(err)
		}
		defer m.Close()
		src = m
	default:
		fail(fmt.Errorf("unknown strategy %q", *strategy))
	}

	toks := lexio.NewLexer(src).Drain()
	elapsed := time.Since(start)

	fmt.Printf("%s: %d tokens in %v (%s)\n", path, len(toks), elapsed, *strategy)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "lexio-bench:", err)
	os.Exit(1)
}
