package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/litmap"
)

func (c *LandmarksCmd) filter() litmap.LandmarkFilter {
	var f litmap.LandmarkFilter
	if c.Era != "" {
		f.Era = &c.Era
	}
	if c.Book != "" {
		f.Book = &c.Book
	}
	if c.From != 0 {
		f.FromYear = &c.From
	}
	if c.To != 0 {
		f.ToYear = &c.To
	}
	return f
}

// Run executes the landmarks command.
func (c *LandmarksCmd) Run(deps *Dependencies) error {
	landmarks, err := litmap.AllLandmarks(deps.Ctx, deps.Landmarks, c.filter())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", litmap.ErrorMessage(err))
		return err
	}

	if c.GeoJSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(litmap.NewFeatureCollection(landmarks))
	}

	if len(landmarks) == 0 {
		fmt.Fprintln(deps.Stdout, "No landmarks match.")
		return nil
	}

	p := newPrinter(deps.Stdout)
	for _, l := range landmarks {
		p.landmarkLine(l)
	}
	return nil
}

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	landmarks, err := litmap.AllLandmarks(deps.Ctx, deps.Landmarks, litmap.LandmarkFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", litmap.ErrorMessage(err))
		return err
	}

	stats := litmap.ComputeStats(landmarks)
	years := litmap.GlobalYearRange(landmarks)
	fmt.Fprintf(deps.Stdout, "Books:     %d\n", stats.Books)
	fmt.Fprintf(deps.Stdout, "Locations: %d\n", stats.Locations)
	fmt.Fprintf(deps.Stdout, "Eras:      %d\n", stats.Eras)
	fmt.Fprintf(deps.Stdout, "Regions:   %d\n", stats.Regions)
	fmt.Fprintf(deps.Stdout, "Years:     %d-%d\n", years.From, years.To)
	return nil
}

// Run executes the books command.
func (c *BooksCmd) Run(deps *Dependencies) error {
	books, err := deps.Landmarks.FindBooks(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", litmap.ErrorMessage(err))
		return err
	}

	if len(books) == 0 {
		fmt.Fprintln(deps.Stdout, "No imported books. Use 'litmap extract' or 'litmap upload' to add one.")
		return nil
	}

	for _, b := range books {
		fmt.Fprintf(deps.Stdout, "%s  %d landmarks  %s\n", b.Title, b.Landmarks, strings.Join(b.Eras, ", "))
	}
	return nil
}

// Run executes the forget command.
func (c *ForgetCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return litmap.Errorf(litmap.EINVALID, "use --force to confirm deletion")
	}

	n, err := deps.Landmarks.DeleteLandmarksByBook(deps.Ctx, c.Book)
	if litmap.ErrorCode(err) == litmap.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: book %q not found. Use 'litmap books' to see imported books.\n", c.Book)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", litmap.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed %d landmarks of %q\n", n, c.Book)
	return nil
}
