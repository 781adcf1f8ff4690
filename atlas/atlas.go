// Package atlas imports books into the local map. It asks the backend to
// extract locations from book titles or PDF uploads and stores the resulting
// landmarks so they show up alongside the curated ones.
package atlas

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/fwojciec/litmap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// NoLocationsMessage is reported for a book that yielded no landmarks.
const NoLocationsMessage = "No locations found for this book."

// DefaultConcurrency bounds simultaneous extractions in ImportTitles.
const DefaultConcurrency = 3

// Importer extracts and stores the locations of books.
type Importer struct {
	Extractor litmap.LocationExtractor
	Landmarks litmap.LandmarkService

	// Limiter paces extraction requests. Nil means no limit.
	Limiter *rate.Limiter

	Concurrency int
}

// Result holds the outcome of an import.
type Result struct {
	Books   int
	Saved   int
	Skipped int
	Failed  int
}

// ProgressEvent reports progress during an import.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Book      string
	Saved     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting import progress.
type ProgressFunc func(event ProgressEvent)

type bookResult struct {
	book    string
	saved   int
	skipped int
	err     error
}

// ImportTitles extracts locations for every title and stores them.
// Books are extracted concurrently but stored in request order, so landmark
// IDs do not depend on which extraction finishes first.
func (i *Importer) ImportTitles(ctx context.Context, reqs []litmap.TitleRequest, progress ProgressFunc) (*Result, error) {
	total := len(reqs)
	notify(progress, ProgressEvent{Type: ProgressStarted, Total: total})

	concurrency := i.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	extracted := make([]*litmap.BookLocations, total)
	errs := make([]error, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for n, req := range reqs {
		g.Go(func() error {
			if err := i.wait(gctx); err != nil {
				return err
			}
			locs, err := i.Extractor.ExtractFromTitle(gctx, req)
			if err == nil && (locs == nil || len(locs.GeoJSON.Landmarks()) == 0) {
				err = litmap.Errorf(litmap.ENOTFOUND, NoLocationsMessage)
			}
			extracted[n], errs[n] = locs, err

			done := int(completed.Add(1))
			if err != nil {
				notify(progress, ProgressEvent{Type: ProgressFailed, Completed: done, Total: total, Book: req.Title, Error: err})
			} else {
				notify(progress, ProgressEvent{Type: ProgressCompleted, Completed: done, Total: total, Book: req.Title})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{}
	for n, req := range reqs {
		r := bookResult{book: req.Title, err: errs[n]}
		if r.err == nil {
			r.saved, r.skipped, r.err = i.store(ctx, extracted[n])
		}
		result.add(r)
	}

	notify(progress, ProgressEvent{Type: ProgressFinished, Completed: total, Total: total, Saved: result.Saved})
	return result, nil
}

// ImportPDF uploads a PDF and stores the landmarks found in it. Title
// defaults to the file name without extension.
func (i *Importer) ImportPDF(ctx context.Context, path, title string) (*Result, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return nil, litmap.Errorf(litmap.EINVALID, "only PDF files are supported")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if title == "" {
		title = titleFromFilename(path)
	}

	if err := i.wait(ctx); err != nil {
		return nil, err
	}
	locs, err := i.Extractor.UploadBook(ctx, filepath.Base(path), f, title)
	if err != nil {
		return nil, err
	}
	if locs == nil || len(locs.GeoJSON.Landmarks()) == 0 {
		return nil, litmap.Errorf(litmap.ENOTFOUND, NoLocationsMessage)
	}

	result := &Result{}
	r := bookResult{book: title}
	r.saved, r.skipped, r.err = i.store(ctx, locs)
	result.add(r)
	if r.err != nil {
		return nil, r.err
	}
	return result, nil
}

// store saves the importable landmarks of a book and reports how many were
// saved and how many were skipped as invalid or already present.
func (i *Importer) store(ctx context.Context, locs *litmap.BookLocations) (saved, skipped int, err error) {
	var valid []*litmap.Landmark
	for _, l := range locs.Landmarks() {
		if l.Era == "" && l.Year > 0 {
			l.Era = litmap.YearToEra(l.Year)
		}
		if !importable(l) {
			skipped++
			continue
		}
		valid = append(valid, l)
	}
	if len(valid) == 0 {
		if skipped > 0 {
			return 0, skipped, nil
		}
		return 0, 0, litmap.Errorf(litmap.ENOTFOUND, NoLocationsMessage)
	}

	saved, err = i.Landmarks.CreateLandmarks(ctx, valid)
	if err != nil {
		return 0, 0, err
	}
	return saved, skipped + len(valid) - saved, nil
}

func (i *Importer) wait(ctx context.Context) error {
	if i.Limiter == nil {
		return ctx.Err()
	}
	return i.Limiter.Wait(ctx)
}

func (r *Result) add(b bookResult) {
	if b.err != nil {
		r.Failed++
		return
	}
	r.Books++
	r.Saved += b.saved
	r.Skipped += b.skipped
}

// importable reports whether l can be stored. Extracted landmarks have no ID
// yet; storage assigns one.
func importable(l *litmap.Landmark) bool {
	c := *l
	if c.ID == "" {
		c.ID = "pending"
	}
	return c.Validate() == nil
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}

// titleFromFilename turns "the_great-gatsby.PDF" into "the great gatsby".
func titleFromFilename(path string) string {
	base := filepath.Base(path)
	base = base[:len(base)-len(filepath.Ext(base))]
	return strings.NewReplacer("_", " ", "-", " ").Replace(base)
}
