package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/litmap"
	"github.com/fwojciec/litmap/atlas"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if len(c.Titles) > 1 && (c.Author != "" || c.Year != "") {
		fmt.Fprintln(deps.Stderr, "error: --author and --year apply to a single title")
		return litmap.Errorf(litmap.EINVALID, "--author and --year apply to a single title")
	}

	reqs := make([]litmap.TitleRequest, 0, len(c.Titles))
	for _, title := range c.Titles {
		reqs = append(reqs, litmap.TitleRequest{Title: title, Author: c.Author, Year: c.Year})
	}

	if c.Concurrency > 0 {
		deps.Importer.Concurrency = c.Concurrency
	}

	stdout := &lockedWriter{w: deps.Stdout}
	stderr := &lockedWriter{w: deps.Stderr}
	progress := func(event atlas.ProgressEvent) {
		switch event.Type {
		case atlas.ProgressStarted:
			fmt.Fprintf(stdout, "Extracting locations from %d books\n", event.Total)
		case atlas.ProgressCompleted:
			fmt.Fprintf(stdout, "  [%d/%d] %s\n", event.Completed, event.Total, event.Book)
		case atlas.ProgressFailed:
			fmt.Fprintf(stderr, "  [%d/%d] skip %s: %s\n", event.Completed, event.Total, event.Book, litmap.ErrorMessage(event.Error))
		case atlas.ProgressFinished:
			// Summary printed after import completes
		}
	}

	result, err := deps.Importer.ImportTitles(deps.Ctx, reqs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", litmap.ErrorMessage(err))
		return err
	}

	printImportResult(deps.Stdout, result)
	if result.Books == 0 {
		return litmap.Errorf(litmap.ENOTFOUND, "no book could be mapped")
	}
	return nil
}

// Run executes the upload command.
func (c *UploadCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Uploading %s\n", c.Path)

	result, err := deps.Importer.ImportPDF(deps.Ctx, c.Path, c.Title)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", litmap.ErrorMessage(err))
		return err
	}

	printImportResult(deps.Stdout, result)
	return nil
}

func printImportResult(w io.Writer, result *atlas.Result) {
	fmt.Fprintf(w, "Saved %d landmarks from %d books", result.Saved, result.Books)
	if result.Skipped > 0 || result.Failed > 0 {
		fmt.Fprintf(w, " (%d skipped, %d failed)", result.Skipped, result.Failed)
	}
	fmt.Fprintln(w)
}
