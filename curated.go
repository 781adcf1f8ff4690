package litmap

// CuratedLandmarks returns the built-in literary landmarks in tour order.
// A fresh slice of copies is returned on every call.
func CuratedLandmarks() []*Landmark {
	out := make([]*Landmark, len(curated))
	for i := range curated {
		l := curated[i]
		out[i] = &l
	}
	return out
}

var curated = []Landmark{
	// 1940s: The Joy Luck Club
	{
		ID:                "jlc-san-francisco",
		Title:             "San Francisco — Immigration Landing",
		Book:              "The Joy Luck Club",
		Era:               "1940s",
		Year:              1949,
		Quote:             "I wanted my children to have the best combination: American circumstances and Chinese character.",
		HistoricalContext: "Post-WWII wave of Chinese immigration through Angel Island and San Francisco.",
		Coordinates:       Coordinates{Lng: -122.4194, Lat: 37.7749},
		Source:            SourceCurated,
	},
	{
		ID:                "jlc-chinatown",
		Title:             "Chinatown — Grant Avenue",
		Book:              "The Joy Luck Club",
		Era:               "1940s",
		Year:              1949,
		Quote:             "We are not those kind of people—we are better.",
		HistoricalContext: "SF Chinatown is the oldest in North America, established in the 1840s during the Gold Rush.",
		Coordinates:       Coordinates{Lng: -122.4083, Lat: 37.7956},
		Source:            SourceCurated,
	},
	// 1920s: Harlem Renaissance
	{
		ID:                "hr-harlem",
		Title:             "Harlem — The Cotton Club",
		Book:              "Harlem Renaissance Anthology",
		Era:               "1920s",
		Year:              1925,
		Quote:             "I, too, sing America. I am the darker brother.",
		HistoricalContext: "The Cotton Club on 142nd St was the epicenter of the Harlem Renaissance music scene.",
		Coordinates:       Coordinates{Lng: -73.9442, Lat: 40.8116},
		Source:            SourceCurated,
	},
	{
		ID:                "hr-apollo",
		Title:             "The Apollo Theater",
		Book:              "Harlem Renaissance Anthology",
		Era:               "1920s",
		Year:              1934,
		Quote:             "Life is for the living. Death is for the dead. Let life be like music. And death a note unsaid.",
		HistoricalContext: "The Apollo opened to all races in 1934. Its Amateur Night launched Ella Fitzgerald, James Brown, and more.",
		Coordinates:       Coordinates{Lng: -73.9498, Lat: 40.8146},
		Source:            SourceCurated,
	},
	{
		ID:                "hr-cathedral",
		Title:             "Cathedral of St. John the Divine",
		Book:              "Harlem Renaissance Anthology",
		Era:               "1920s",
		Year:              1925,
		Quote:             "Hold fast to dreams, for if dreams die, life is a broken-winged bird that cannot fly.",
		HistoricalContext: "Langston Hughes and Countee Cullen both attended events at this massive cathedral on the edge of Harlem.",
		Coordinates:       Coordinates{Lng: -73.9585, Lat: 40.8044},
		Source:            SourceCurated,
	},
	// 1960s: Civil Rights
	{
		ID:                "cr-montgomery",
		Title:             "Montgomery — Bus Boycott",
		Book:              "Civil Rights Landmarks",
		Era:               "1960s",
		Year:              1955,
		Quote:             "People always say that I didn't give up my seat because I was tired, but that isn't true. I was tired of giving in.",
		HistoricalContext: "Rosa Parks' arrest on Dec 1, 1955 sparked the 381-day Montgomery Bus Boycott.",
		Coordinates:       Coordinates{Lng: -86.3077, Lat: 32.3792},
		Source:            SourceCurated,
	},
	{
		ID:                "cr-birmingham",
		Title:             "Birmingham — 16th Street Baptist Church",
		Book:              "Civil Rights Landmarks",
		Era:               "1960s",
		Year:              1963,
		Quote:             "Injustice anywhere is a threat to justice everywhere.",
		HistoricalContext: "The 1963 bombing killed four young girls and galvanized national support for the Civil Rights Act.",
		Coordinates:       Coordinates{Lng: -86.8025, Lat: 33.5207},
		Source:            SourceCurated,
	},
	{
		ID:                "cr-lincoln-memorial",
		Title:             "Lincoln Memorial — 'I Have a Dream'",
		Book:              "Civil Rights Landmarks",
		Era:               "1960s",
		Year:              1963,
		Quote:             "I have a dream that my four little children will one day live in a nation where they will not be judged by the color of their skin.",
		HistoricalContext: "On August 28, 1963, over 250,000 people gathered for the March on Washington.",
		Coordinates:       Coordinates{Lng: -77.0502, Lat: 38.8893},
		Source:            SourceCurated,
	},
}
