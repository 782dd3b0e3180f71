package places

// Place is the public result shape for a ranked point of interest. The
// internal popularity score is dropped before results leave the service.
type Place struct {
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Category    string  `json:"category"`
	Description *string `json:"description"`
	MapsLink    string  `json:"maps_link"`
}

// candidate is a raw POI record that passed validation: it has a display
// name and a resolvable coordinate. Transient, exists only during ranking.
type candidate struct {
	name          string
	lat           float64
	lon           float64
	category      string // raw tag value, e.g. "theme_park"
	categoryLabel string // formatted, e.g. "Theme Park"
	tags          map[string]string
}

type scoredCandidate struct {
	candidate
	score float64
}
