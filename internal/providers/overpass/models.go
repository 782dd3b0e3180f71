package overpass

// InterpreterResponse is the Overpass interpreter payload: a flat list of
// geotagged elements.
type InterpreterResponse struct {
	Version   float64   `json:"version"`
	Generator string    `json:"generator"`
	Elements  []Element `json:"elements"`
}

// Element is a single OSM entity. Nodes carry lat/lon directly; ways and
// relations carry a centroid in Center when the query requests "out center".
type Element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *Center           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags"`
}

// Center is the centroid of a way or relation.
type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Name returns the element's display name tag, or "" when absent.
func (e Element) Name() string {
	return e.Tags["name"]
}

// Position resolves the element's coordinate from either a direct lat/lon
// or a centroid. ok is false when neither is present.
func (e Element) Position() (lat, lon float64, ok bool) {
	if e.Lat != nil && e.Lon != nil {
		return *e.Lat, *e.Lon, true
	}
	if e.Center != nil {
		return e.Center.Lat, e.Center.Lon, true
	}
	return 0, 0, false
}
