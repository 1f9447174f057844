// Command zlibdecode batch-decodes a directory of raw zlib streams and
// reports per-file timing, decompressed length, or the first error
// encountered. It has no notion of PNG chunks, signatures, or pixels — it
// exists only to exercise pngzlib.ZlibDecoder end to end against files on
// disk, the same way the original author's own benchmarking harness did.
//
// Usage:
//
//	zlibdecode [-dir zlib_tests] [-workers N]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/Si1veR123/rust-png-decoder"
)

func main() {
	dir := flag.String("dir", "zlib_tests", "directory of raw zlib-stream files to decode")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "number of concurrent decode workers")
	flag.Parse()

	if err := run(*dir, *workers); err != nil {
		fmt.Fprintf(os.Stderr, "zlibdecode: %v\n", err)
		os.Exit(1)
	}
}

type result struct {
	name     string
	size     int
	duration time.Duration
	err      error
}

func run(dir string, workers int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	if workers < 1 {
		workers = 1
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	jobs := make(chan string)
	results := make(chan result)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each worker keeps one read buffer across the files it's handed,
			// growing it only when a file is larger than anything seen so
			// far. Files in a batch tend to cluster in size, so in practice
			// this settles after the first couple of jobs per worker.
			var buf []byte
			for path := range jobs {
				results <- decodeOne(path, &buf)
			}
		}()
	}

	go func() {
		for _, p := range paths {
			jobs <- p
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	failed := false
	for r := range results {
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.name, r.err)
			failed = true
			continue
		}
		fmt.Printf("%s: %d bytes in %v\n", r.name, r.size, r.duration)
	}

	if failed {
		return fmt.Errorf("one or more files failed to decode")
	}
	return nil
}

// decodeOne reads path into *buf, growing it in place if it's too small,
// then parses it. Parse never retains a reference to its input past return,
// so *buf is safe for the caller to reuse on the next call.
func decodeOne(path string, buf *[]byte) result {
	info, err := os.Stat(path)
	if err != nil {
		return result{name: path, err: err}
	}

	size := int(info.Size())
	if cap(*buf) < size {
		*buf = make([]byte, size)
	}
	data := (*buf)[:size]

	f, err := os.Open(path)
	if err != nil {
		return result{name: path, err: err}
	}
	_, err = io.ReadFull(f, data)
	f.Close()
	if err != nil {
		return result{name: path, err: err}
	}

	start := time.Now()
	dec := pngzlib.NewZlibDecoder(data)
	decompressed, err := dec.Parse()
	elapsed := time.Since(start)
	if err != nil {
		return result{name: path, err: err}
	}

	return result{name: path, size: len(decompressed.Data), duration: elapsed}
}
