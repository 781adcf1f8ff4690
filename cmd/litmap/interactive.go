package main

import (
	"bufio"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/litmap/debounce"
)

// debounceLines reads input line by line. Every non-blank line schedules
// run after delay of quiet, replacing the line scheduled before it. A blank
// line runs the pending line at once. The pending line also runs at end of
// input.
func debounceLines(r io.Reader, delay time.Duration, run func(line string)) error {
	d := debounce.New(delay)
	defer d.Stop()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			d.Flush()
			continue
		}
		d.Trigger(func() { run(line) })
	}
	d.Flush()
	return scanner.Err()
}

// lockedWriter serializes whole writes from concurrent callbacks.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}

// latest hands out request numbers so that a response arriving after a
// newer request was issued can be dropped.
type latest struct {
	seq atomic.Uint64
}

func (l *latest) next() uint64 {
	return l.seq.Add(1)
}

func (l *latest) isCurrent(n uint64) bool {
	return l.seq.Load() == n
}
