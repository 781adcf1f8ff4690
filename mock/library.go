package mock

import (
	"context"
	"io"

	"github.com/fwojciec/litmap"
)

var _ litmap.Librarian = (*Librarian)(nil)

// Librarian is a mock implementation of litmap.Librarian.
type Librarian struct {
	SearchBooksFn func(ctx context.Context, query string, limit int) (*litmap.BookSearchResult, error)
}

func (l *Librarian) SearchBooks(ctx context.Context, query string, limit int) (*litmap.BookSearchResult, error) {
	return l.SearchBooksFn(ctx, query, limit)
}

var _ litmap.LocationExtractor = (*LocationExtractor)(nil)

// LocationExtractor is a mock implementation of litmap.LocationExtractor.
type LocationExtractor struct {
	UploadBookFn       func(ctx context.Context, filename string, r io.Reader, title string) (*litmap.BookLocations, error)
	ExtractFromTitleFn func(ctx context.Context, req litmap.TitleRequest) (*litmap.BookLocations, error)
}

func (e *LocationExtractor) UploadBook(ctx context.Context, filename string, r io.Reader, title string) (*litmap.BookLocations, error) {
	return e.UploadBookFn(ctx, filename, r, title)
}

func (e *LocationExtractor) ExtractFromTitle(ctx context.Context, req litmap.TitleRequest) (*litmap.BookLocations, error) {
	return e.ExtractFromTitleFn(ctx, req)
}

var _ litmap.VibeSearcher = (*VibeSearcher)(nil)

// VibeSearcher is a mock implementation of litmap.VibeSearcher.
type VibeSearcher struct {
	VibeSearchFn func(ctx context.Context, query string) (*litmap.VibeSearchResult, error)
}

func (v *VibeSearcher) VibeSearch(ctx context.Context, query string) (*litmap.VibeSearchResult, error) {
	return v.VibeSearchFn(ctx, query)
}
