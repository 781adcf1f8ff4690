package litmap

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// GeoJSON object types.
const (
	TypeFeatureCollection = "FeatureCollection"
	TypeFeature           = "Feature"
	TypePoint             = "Point"
)

// FeatureCollection is a GeoJSON feature collection of landmark points.
type FeatureCollection struct {
	Type     string     `json:"type"`
	Features []*Feature `json:"features"`
}

// Feature is a GeoJSON feature with landmark properties.
type Feature struct {
	Type       string            `json:"type"`
	Geometry   *Geometry         `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// Geometry is a GeoJSON point geometry.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates Coordinates `json:"coordinates"`
}

// FeatureProperties holds the landmark fields carried by a feature.
type FeatureProperties struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Book              string  `json:"book"`
	Era               string  `json:"era"`
	Year              FlexInt `json:"year,omitempty"`
	Quote             string  `json:"quote,omitempty"`
	HistoricalContext string  `json:"historical_context,omitempty"`
	Mood              string  `json:"mood,omitempty"`
	Relevance         FlexInt `json:"relevance,omitempty"`
	Rank              int     `json:"rank,omitempty"`
}

// NewFeatureCollection converts landmarks into a feature collection.
func NewFeatureCollection(landmarks []*Landmark) *FeatureCollection {
	fc := &FeatureCollection{Type: TypeFeatureCollection, Features: make([]*Feature, 0, len(landmarks))}
	for _, l := range landmarks {
		fc.Features = append(fc.Features, NewFeature(l))
	}
	return fc
}

// NewFeature converts a landmark into a point feature.
func NewFeature(l *Landmark) *Feature {
	return &Feature{
		Type:     TypeFeature,
		Geometry: &Geometry{Type: TypePoint, Coordinates: l.Coordinates},
		Properties: FeatureProperties{
			ID:                l.ID,
			Title:             l.Title,
			Book:              l.Book,
			Era:               l.Era,
			Year:              FlexInt(l.Year),
			Quote:             l.Quote,
			HistoricalContext: l.HistoricalContext,
			Mood:              l.Mood,
			Relevance:         FlexInt(l.Relevance),
			Rank:              l.Rank,
		},
	}
}

// Landmark converts the feature into a landmark. Features without a
// geometry land at (0, 0).
func (f *Feature) Landmark() *Landmark {
	l := &Landmark{
		ID:                f.Properties.ID,
		Title:             f.Properties.Title,
		Book:              f.Properties.Book,
		Era:               f.Properties.Era,
		Year:              int(f.Properties.Year),
		Quote:             f.Properties.Quote,
		HistoricalContext: f.Properties.HistoricalContext,
		Mood:              f.Properties.Mood,
		Relevance:         int(f.Properties.Relevance),
		Rank:              f.Properties.Rank,
	}
	if f.Geometry != nil {
		l.Coordinates = f.Geometry.Coordinates
	}
	return l
}

// Landmarks converts every feature of the collection. A nil collection
// yields nil.
func (fc *FeatureCollection) Landmarks() []*Landmark {
	if fc == nil {
		return nil
	}
	landmarks := make([]*Landmark, 0, len(fc.Features))
	for _, f := range fc.Features {
		landmarks = append(landmarks, f.Landmark())
	}
	return landmarks
}

// FlexInt is an integer property that model-written features may carry as a
// float, a numeric string or null. Anything that is not a number decodes to
// zero instead of failing the whole collection.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*n = 0
		return nil
	}
	*n = FlexInt(math.Round(f))
	return nil
}
