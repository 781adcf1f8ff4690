package litmap

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Landmark sources.
const (
	SourceCurated = "curated"
	SourceImport  = "import"
)

// Coordinates is a WGS84 point. It marshals as a GeoJSON position
// ([longitude, latitude]).
type Coordinates struct {
	Lng float64
	Lat float64
}

// Valid reports whether the point lies within longitude and latitude bounds.
func (c Coordinates) Valid() bool {
	return c.Lng >= -180 && c.Lng <= 180 && c.Lat >= -90 && c.Lat <= 90
}

// MarshalJSON encodes the point as [lng, lat].
func (c Coordinates) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Lng, c.Lat})
}

// UnmarshalJSON decodes a GeoJSON position. Extra elements (altitude) are ignored.
func (c *Coordinates) UnmarshalJSON(data []byte) error {
	var pos []float64
	if err := json.Unmarshal(data, &pos); err != nil {
		return err
	}
	if len(pos) < 2 {
		return fmt.Errorf("position needs 2 elements, got %d", len(pos))
	}
	c.Lng, c.Lat = pos[0], pos[1]
	return nil
}

// Landmark is a point of interest tied to a book and an era.
type Landmark struct {
	ID                string      `json:"id"`
	Title             string      `json:"title"`
	Book              string      `json:"book"`
	Era               string      `json:"era"`
	Year              int         `json:"year,omitempty"`
	Quote             string      `json:"quote,omitempty"`
	HistoricalContext string      `json:"historical_context,omitempty"`
	Mood              string      `json:"mood,omitempty"`
	Relevance         int         `json:"relevance,omitempty"`
	Rank              int         `json:"rank,omitempty"`
	Coordinates       Coordinates `json:"coordinates"`
	Source            string      `json:"source,omitempty"`
	ContentHash       string      `json:"-"`
	CreatedAt         time.Time   `json:"-"`
}

// Validate returns an error if the landmark contains invalid fields.
func (l *Landmark) Validate() error {
	if l.ID == "" {
		return Errorf(EINVALID, "landmark ID required")
	}
	if l.Title == "" {
		return Errorf(EINVALID, "landmark title required")
	}
	if l.Era == "" {
		return Errorf(EINVALID, "landmark era required")
	}
	if !l.Coordinates.Valid() {
		return Errorf(EINVALID, "landmark %q has invalid coordinates", l.ID)
	}
	return nil
}

// FeatureData returns the properties the conductor needs to explain
// landmarks missing from its curated knowledge base.
func (l *Landmark) FeatureData() *FeatureData {
	return &FeatureData{
		Book:              l.Book,
		Quote:             l.Quote,
		HistoricalContext: l.HistoricalContext,
		Year:              l.Year,
		Era:               l.Era,
		Title:             l.Title,
		Mood:              l.Mood,
	}
}

// LandmarkService represents a service for managing imported landmarks.
type LandmarkService interface {
	// CreateLandmarks stores landmarks in a single batch. Landmarks whose
	// content is already stored are skipped. Returns the number saved.
	CreateLandmarks(ctx context.Context, landmarks []*Landmark) (int, error)

	// FindLandmarkByID retrieves a landmark by ID.
	// Returns ENOTFOUND if landmark does not exist.
	FindLandmarkByID(ctx context.Context, id string) (*Landmark, error)

	// FindLandmarks retrieves landmarks matching the filter.
	FindLandmarks(ctx context.Context, filter LandmarkFilter) ([]*Landmark, error)

	// FindBooks lists imported books with their landmark counts.
	FindBooks(ctx context.Context) ([]*BookSummary, error)

	// DeleteLandmarksByBook removes every landmark imported for a book.
	// Returns ENOTFOUND if no landmark belongs to the book.
	DeleteLandmarksByBook(ctx context.Context, book string) (int, error)
}

// LandmarkFilter represents a filter for FindLandmarks.
type LandmarkFilter struct {
	Era      *string `json:"era"`
	Book     *string `json:"book"`
	FromYear *int    `json:"fromYear"`
	ToYear   *int    `json:"toYear"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Match reports whether the landmark satisfies the filter's field criteria.
// Offset and Limit are ignored.
func (f LandmarkFilter) Match(l *Landmark) bool {
	if f.Era != nil && l.Era != *f.Era {
		return false
	}
	if f.Book != nil && l.Book != *f.Book {
		return false
	}
	if f.FromYear != nil && l.Year < *f.FromYear {
		return false
	}
	if f.ToYear != nil && l.Year > *f.ToYear {
		return false
	}
	return true
}

// BookSummary describes an imported book.
type BookSummary struct {
	Title     string    `json:"title"`
	Landmarks int       `json:"landmarks"`
	Eras      []string  `json:"eras"`
	CreatedAt time.Time `json:"createdAt"`
}

// FindLandmark looks up a landmark among the curated set first and then in
// storage. The service may be nil.
func FindLandmark(ctx context.Context, svc LandmarkService, id string) (*Landmark, error) {
	for _, l := range CuratedLandmarks() {
		if l.ID == id {
			return l, nil
		}
	}
	if svc == nil {
		return nil, Errorf(ENOTFOUND, "landmark %q not found", id)
	}
	l, err := svc.FindLandmarkByID(ctx, id)
	if ErrorCode(err) == ENOTFOUND {
		return nil, Errorf(ENOTFOUND, "landmark %q not found", id)
	}
	return l, err
}

// AllLandmarks returns curated landmarks followed by stored ones, both
// narrowed by the filter. The service may be nil.
func AllLandmarks(ctx context.Context, svc LandmarkService, filter LandmarkFilter) ([]*Landmark, error) {
	var all []*Landmark
	for _, l := range CuratedLandmarks() {
		if filter.Match(l) {
			all = append(all, l)
		}
	}
	if svc == nil {
		return all, nil
	}
	stored, err := svc.FindLandmarks(ctx, LandmarkFilter{
		Era:      filter.Era,
		Book:     filter.Book,
		FromYear: filter.FromYear,
		ToYear:   filter.ToYear,
	})
	if err != nil {
		return nil, err
	}
	return append(all, stored...), nil
}
