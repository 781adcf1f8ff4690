package litmap

import (
	"context"
	"io"
)

// Book is an Open Library search hit.
type Book struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	Authors          []string `json:"authors"`
	FirstPublishYear int      `json:"first_publish_year,omitempty"`
	EditionCount     int      `json:"edition_count"`
	CoverURL         string   `json:"cover_url,omitempty"`
	ISBN             string   `json:"isbn,omitempty"`
	Subjects         []string `json:"subjects"`
	Languages        []string `json:"languages"`
	Publishers       []string `json:"publishers"`
}

// BookSearchResult is the librarian's answer to a title search.
type BookSearchResult struct {
	Query    string  `json:"query"`
	NumFound int     `json:"num_found"`
	Books    []*Book `json:"books"`
}

// Search limits accepted by the librarian.
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 100
)

// Librarian searches for books by title.
type Librarian interface {
	// SearchBooks returns up to limit books matching query.
	// Returns EINVALID for a blank query or a limit outside 1..MaxSearchLimit.
	SearchBooks(ctx context.Context, query string, limit int) (*BookSearchResult, error)
}

// BookLocations are the landmarks extracted from a book.
type BookLocations struct {
	BookTitle      string             `json:"book_title"`
	Author         string             `json:"author,omitempty"`
	LocationsFound int                `json:"locations_found"`
	GeoJSON        *FeatureCollection `json:"geojson"`
}

// Landmarks returns the extracted landmarks, each tagged with the book title
// when the feature lacks one.
func (b *BookLocations) Landmarks() []*Landmark {
	landmarks := b.GeoJSON.Landmarks()
	for _, l := range landmarks {
		if l.Book == "" {
			l.Book = b.BookTitle
		}
		l.Source = SourceImport
	}
	return landmarks
}

// TitleRequest names a book whose locations should be recalled.
type TitleRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   string `json:"year"`
}

// LocationExtractor turns books into mapped locations.
type LocationExtractor interface {
	// UploadBook sends a PDF and returns the locations found in its text.
	// Returns EINVALID if the file name does not end in .pdf.
	UploadBook(ctx context.Context, filename string, r io.Reader, title string) (*BookLocations, error)

	// ExtractFromTitle recalls notable locations of a book by title.
	// Returns EINVALID for a blank title.
	ExtractFromTitle(ctx context.Context, req TitleRequest) (*BookLocations, error)
}

// VibeMatch is a landmark matching a free-form mood query.
type VibeMatch struct {
	LandmarkID string  `json:"landmark_id"`
	Title      string  `json:"title"`
	Book       string  `json:"book"`
	Era        string  `json:"era"`
	Reason     string  `json:"reason"`
	VibeScore  float64 `json:"vibe_score"`
}

// VibeSearchResult lists landmarks matching a mood query.
type VibeSearchResult struct {
	Query   string       `json:"query"`
	Matches []*VibeMatch `json:"matches"`
	AIMS    int64        `json:"ai_ms"`
	TotalMS int64        `json:"total_ms"`
}

// VibeSearcher matches landmarks against a mood description.
type VibeSearcher interface {
	// VibeSearch returns landmarks matching query.
	// Returns EINVALID for a blank query.
	VibeSearch(ctx context.Context, query string) (*VibeSearchResult, error)
}
