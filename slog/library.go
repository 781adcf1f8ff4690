package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/litmap"
)

// Ensure LoggingLibrarian implements litmap.Librarian.
var _ litmap.Librarian = (*LoggingLibrarian)(nil)

// LoggingLibrarian wraps a Librarian with request logging.
type LoggingLibrarian struct {
	next   litmap.Librarian
	logger *slog.Logger
}

// NewLoggingLibrarian creates a new LoggingLibrarian.
func NewLoggingLibrarian(next litmap.Librarian, logger *slog.Logger) *LoggingLibrarian {
	return &LoggingLibrarian{next: next, logger: logger}
}

// SearchBooks delegates to the wrapped librarian and logs the search.
func (l *LoggingLibrarian) SearchBooks(ctx context.Context, query string, limit int) (result *litmap.BookSearchResult, err error) {
	defer func(begin time.Time) {
		var count int
		if result != nil {
			count = len(result.Books)
		}
		l.logger.Info("book search",
			"query", query,
			"limit", limit,
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.SearchBooks(ctx, query, limit)
}

// Ensure LoggingLocationExtractor implements litmap.LocationExtractor.
var _ litmap.LocationExtractor = (*LoggingLocationExtractor)(nil)

// LoggingLocationExtractor wraps a LocationExtractor with request logging.
type LoggingLocationExtractor struct {
	next   litmap.LocationExtractor
	logger *slog.Logger
}

// NewLoggingLocationExtractor creates a new LoggingLocationExtractor.
func NewLoggingLocationExtractor(next litmap.LocationExtractor, logger *slog.Logger) *LoggingLocationExtractor {
	return &LoggingLocationExtractor{next: next, logger: logger}
}

// UploadBook delegates to the wrapped extractor and logs the upload.
func (e *LoggingLocationExtractor) UploadBook(ctx context.Context, filename string, r io.Reader, title string) (result *litmap.BookLocations, err error) {
	defer func(begin time.Time) {
		e.logger.Info("book upload",
			"file", filename,
			"title", title,
			"locations", locationCount(result),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.UploadBook(ctx, filename, r, title)
}

// ExtractFromTitle delegates to the wrapped extractor and logs the extraction.
func (e *LoggingLocationExtractor) ExtractFromTitle(ctx context.Context, req litmap.TitleRequest) (result *litmap.BookLocations, err error) {
	defer func(begin time.Time) {
		e.logger.Info("title extraction",
			"title", req.Title,
			"author", req.Author,
			"locations", locationCount(result),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractFromTitle(ctx, req)
}

func locationCount(result *litmap.BookLocations) int {
	if result == nil || result.GeoJSON == nil {
		return 0
	}
	return len(result.GeoJSON.Features)
}

// Ensure LoggingVibeSearcher implements litmap.VibeSearcher.
var _ litmap.VibeSearcher = (*LoggingVibeSearcher)(nil)

// LoggingVibeSearcher wraps a VibeSearcher with request logging.
type LoggingVibeSearcher struct {
	next   litmap.VibeSearcher
	logger *slog.Logger
}

// NewLoggingVibeSearcher creates a new LoggingVibeSearcher.
func NewLoggingVibeSearcher(next litmap.VibeSearcher, logger *slog.Logger) *LoggingVibeSearcher {
	return &LoggingVibeSearcher{next: next, logger: logger}
}

// VibeSearch delegates to the wrapped searcher and logs the search.
func (v *LoggingVibeSearcher) VibeSearch(ctx context.Context, query string) (result *litmap.VibeSearchResult, err error) {
	defer func(begin time.Time) {
		var count int
		if result != nil {
			count = len(result.Matches)
		}
		v.logger.Info("vibe search", "query", query, "count", count, "duration", time.Since(begin), "err", err)
	}(time.Now())
	return v.next.VibeSearch(ctx, query)
}
