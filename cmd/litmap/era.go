package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/litmap"
	"github.com/fwojciec/litmap/debounce"
)

// Run executes the era command.
func (c *EraCmd) Run(deps *Dependencies) error {
	if c.Interactive {
		return c.interactive(deps)
	}

	if c.Era != "" {
		if c.From != 0 || c.To != 0 {
			fmt.Fprintln(deps.Stderr, "error: give either an era or --from/--to, not both")
			return litmap.Errorf(litmap.EINVALID, "era and year range are mutually exclusive")
		}
		return c.explore(deps, deps.Stdout, deps.Stderr, c.Era, nil)
	}

	if c.From == 0 && c.To == 0 {
		fmt.Fprintln(deps.Stderr, "error: give an era or --from/--to")
		return litmap.Errorf(litmap.EINVALID, "era or year range required")
	}

	r, err := yearRange(deps, c.From, c.To)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", litmap.ErrorMessage(err))
		return err
	}
	return c.explore(deps, deps.Stdout, deps.Stderr, r.Era(), r)
}

// interactive reads "from to" pairs and explores the era of each range once
// input settles.
func (c *EraCmd) interactive(deps *Dependencies) error {
	stdout := &lockedWriter{w: deps.Stdout}
	stderr := &lockedWriter{w: deps.Stderr}
	var seq latest

	return debounceLines(deps.Stdin, debounce.YearRangeDelay, func(line string) {
		n := seq.next()

		from, to, err := parseYears(line)
		var r *litmap.YearRange
		if err == nil {
			r, err = yearRange(deps, from, to)
		}
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", litmap.ErrorMessage(err))
			return
		}

		var out, errOut bytes.Buffer
		_ = c.explore(deps, &out, &errOut, r.Era(), r)
		if !seq.isCurrent(n) {
			return
		}
		_, _ = stdout.Write(out.Bytes())
		_, _ = stderr.Write(errOut.Bytes())
	})
}

// explore orchestrates an era and prints the result along with the
// landmarks inside the year range, if any.
func (c *EraCmd) explore(deps *Dependencies, stdout, stderr io.Writer, era string, r *litmap.YearRange) error {
	p := newPrinter(stdout)
	if r != nil {
		fmt.Fprintf(stdout, "%d-%d → %s\n", r.From, r.To, p.era(era))

		landmarks, err := litmap.AllLandmarks(deps.Ctx, deps.Landmarks, litmap.LandmarkFilter{FromYear: &r.From, ToYear: &r.To})
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", litmap.ErrorMessage(err))
			return err
		}
		for _, l := range landmarks {
			p.landmarkLine(l)
		}
	} else {
		fmt.Fprintln(stdout, p.era(era))
	}

	result, err := deps.Orchestrator.Orchestrate(deps.Ctx, &litmap.OrchestrateRequest{Era: era})
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", litmap.ErrorMessage(err))
		return err
	}
	p.conductor(result, false)
	return nil
}

// yearRange clamps from..to to the span of all known landmarks.
func yearRange(deps *Dependencies, from, to int) (*litmap.YearRange, error) {
	landmarks, err := litmap.AllLandmarks(deps.Ctx, deps.Landmarks, litmap.LandmarkFilter{})
	if err != nil {
		return nil, err
	}
	global := litmap.GlobalYearRange(landmarks)
	if to == 0 {
		to = global.To
	}
	if from == 0 {
		from = global.From
	}
	r := litmap.ClampYearRange(&litmap.YearRange{From: from, To: to}, global)
	if r == nil {
		return nil, litmap.Errorf(litmap.EINVALID, "year range %d-%d is outside %d-%d", from, to, global.From, global.To)
	}
	return r, nil
}

func parseYears(line string) (from, to int, err error) {
	fields := strings.Fields(strings.ReplaceAll(line, "-", " "))
	if len(fields) != 2 {
		return 0, 0, litmap.Errorf(litmap.EINVALID, "expected 'from to', got %q", line)
	}
	if from, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, litmap.Errorf(litmap.EINVALID, "invalid year %q", fields[0])
	}
	if to, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, litmap.Errorf(litmap.EINVALID, "invalid year %q", fields[1])
	}
	return from, to, nil
}
