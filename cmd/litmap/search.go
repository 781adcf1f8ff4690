package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fwojciec/litmap"
	"github.com/fwojciec/litmap/debounce"
)

// SearchFailedMessage is shown when a book search fails.
const SearchFailedMessage = "Search failed — please try again."

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if c.Interactive {
		return c.interactive(deps)
	}
	return c.search(deps, deps.Stdout, deps.Stderr, c.Query)
}

func (c *SearchCmd) interactive(deps *Dependencies) error {
	stdout := &lockedWriter{w: deps.Stdout}
	stderr := &lockedWriter{w: deps.Stderr}
	var seq latest

	return debounceLines(deps.Stdin, debounce.SearchDelay, func(query string) {
		n := seq.next()
		var out, errOut bytes.Buffer
		_ = c.search(deps, &out, &errOut, query)
		if !seq.isCurrent(n) {
			return
		}
		_, _ = stdout.Write(out.Bytes())
		_, _ = stderr.Write(errOut.Bytes())
	})
}

func (c *SearchCmd) search(deps *Dependencies, stdout, stderr io.Writer, query string) error {
	result, err := deps.Librarian.SearchBooks(deps.Ctx, query, c.Limit)
	if litmap.ErrorCode(err) == litmap.EINVALID {
		fmt.Fprintf(stderr, "error: %s\n", litmap.ErrorMessage(err))
		return err
	}
	if err != nil {
		fmt.Fprintln(stderr, SearchFailedMessage)
		return err
	}

	if len(result.Books) == 0 {
		fmt.Fprintf(stdout, "No books found for %q.\n", query)
		return nil
	}

	fmt.Fprintf(stdout, "%d of %d books for %q\n", len(result.Books), result.NumFound, query)
	p := newPrinter(stdout)
	for _, b := range result.Books {
		p.book(b)
	}
	return nil
}

// Run executes the vibe command.
func (c *VibeCmd) Run(deps *Dependencies) error {
	result, err := deps.Vibes.VibeSearch(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", litmap.ErrorMessage(err))
		return err
	}

	if len(result.Matches) == 0 {
		fmt.Fprintf(deps.Stdout, "Nothing matches %q.\n", c.Query)
		return nil
	}

	p := newPrinter(deps.Stdout)
	for _, m := range result.Matches {
		fmt.Fprintf(deps.Stdout, "%3.0f%%  %s  %s  %s\n", m.VibeScore*100, m.Title, p.era(m.Era), p.dim(m.Book))
		if m.Reason != "" {
			fmt.Fprintf(deps.Stdout, "      %s\n", m.Reason)
		}
	}
	return nil
}
