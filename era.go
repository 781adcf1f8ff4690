package litmap

import (
	"fmt"
	"math"
)

// EraMeta describes how an era is labelled and colored.
type EraMeta struct {
	Label string
	Color string
}

// DefaultEraColor is used for eras without metadata.
const DefaultEraColor = "#b388ff"

var eraMeta = map[string]EraMeta{
	"1920s": {Label: "Harlem Renaissance", Color: "#ff6b6b"},
	"1940s": {Label: "Post-War Immigration", Color: "#e6b800"},
	"1960s": {Label: "Civil Rights", Color: "#4ecdc4"},
}

// LookupEra returns the metadata for an era. Unknown eras get the era
// string as label and DefaultEraColor.
func LookupEra(era string) EraMeta {
	if m, ok := eraMeta[era]; ok {
		return m
	}
	return EraMeta{Label: era, Color: DefaultEraColor}
}

// YearToEra returns the decade containing year, e.g. 1925 → "1920s".
func YearToEra(year int) string {
	return fmt.Sprintf("%ds", int(math.Floor(float64(year)/10))*10)
}

// YearRange is an inclusive range of years.
type YearRange struct {
	From int
	To   int
}

// Midpoint returns the midpoint of the range, rounded half up.
func (r YearRange) Midpoint() int {
	return int(math.Floor(float64(r.From+r.To)/2 + 0.5))
}

// Era returns the era of the range midpoint.
func (r YearRange) Era() string {
	return YearToEra(r.Midpoint())
}

// Contains reports whether year lies within the range.
func (r YearRange) Contains(year int) bool {
	return year >= r.From && year <= r.To
}

// DefaultYearRange is the global range used when no landmark carries a year.
var DefaultYearRange = YearRange{From: 1920, To: 2020}

// GlobalYearRange returns the span of landmark years padded by five years
// on each side and widened to whole decades. Landmarks without a year are
// ignored.
func GlobalYearRange(landmarks []*Landmark) YearRange {
	minYear, maxYear := math.MaxInt, math.MinInt
	for _, l := range landmarks {
		if l.Year == 0 {
			continue
		}
		minYear = min(minYear, l.Year)
		maxYear = max(maxYear, l.Year)
	}
	if minYear == math.MaxInt {
		return DefaultYearRange
	}
	return YearRange{
		From: int(math.Floor(float64(minYear-5)/10)) * 10,
		To:   int(math.Ceil(float64(maxYear+5)/10)) * 10,
	}
}

// ClampYearRange intersects r with the global range. It returns nil when r
// is nil or the intersection is empty.
func ClampYearRange(r *YearRange, global YearRange) *YearRange {
	if r == nil {
		return nil
	}
	clamped := YearRange{From: max(r.From, global.From), To: min(r.To, global.To)}
	if clamped.From >= clamped.To {
		return nil
	}
	return &clamped
}
