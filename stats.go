package litmap

// Stats summarizes a set of landmarks.
type Stats struct {
	Books     int `json:"books"`
	Locations int `json:"locations"`
	Eras      int `json:"eras"`
	Regions   int `json:"regions"`
}

// ComputeStats counts distinct books, eras and rough regions.
func ComputeStats(landmarks []*Landmark) Stats {
	books := make(map[string]struct{})
	eras := make(map[string]struct{})
	regions := make(map[string]struct{})
	for _, l := range landmarks {
		if l.Book != "" {
			books[l.Book] = struct{}{}
		}
		if l.Era != "" {
			eras[l.Era] = struct{}{}
		}
		regions[Region(l.Coordinates.Lng)] = struct{}{}
	}
	return Stats{
		Books:     len(books),
		Locations: len(landmarks),
		Eras:      len(eras),
		Regions:   len(regions),
	}
}

// Region buckets a longitude into a coarse world region.
func Region(lng float64) string {
	switch {
	case lng > -130 && lng < -60:
		return "USA"
	case lng > -10 && lng < 40:
		return "Europe"
	case lng > 40 && lng < 80:
		return "Asia"
	case lng > 100 && lng < 160:
		return "Asia-Pacific"
	default:
		return "Other"
	}
}
