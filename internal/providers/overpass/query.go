package overpass

import (
	"fmt"
	"strings"
)

// maxElements caps how many elements the interpreter returns per query.
const maxElements = 500

// TagQuery selects OSM entities carrying a given tag, emitted once per
// geometry variant.
type TagQuery struct {
	Key        string
	Value      string
	Geometries []string // subset of "node", "way", "relation"
}

// AllGeometries covers point, way, and area entities.
var AllGeometries = []string{"node", "way", "relation"}

// defaultTagQueries is the broad attraction filter used when no category is
// selected. Geometry variants are limited to those each tag plausibly maps
// to (peaks are nodes, parks can be relations).
var defaultTagQueries = []TagQuery{
	{"tourism", "attraction", []string{"node", "way", "relation"}},
	{"tourism", "museum", []string{"node", "way"}},
	{"historic", "monument", []string{"node", "way"}},
	{"historic", "castle", []string{"node", "way"}},
	{"leisure", "park", []string{"node", "way", "relation"}},
	{"leisure", "garden", []string{"node", "way"}},
	{"natural", "peak", []string{"node"}},
}

// DefaultTagQueries returns the broad default filter set.
func DefaultTagQueries() []TagQuery {
	out := make([]TagQuery, len(defaultTagQueries))
	copy(out, defaultTagQueries)
	return out
}

// BuildAroundQuery renders an Overpass QL query selecting all entities
// matching any of the tag queries within radiusMeters of the coordinate.
// Way and relation results carry centroid coordinates ("out center").
func BuildAroundQuery(latitude, longitude float64, radiusMeters int, tags []TagQuery) string {
	var b strings.Builder
	b.WriteString("[out:json];\n(\n")
	for _, t := range tags {
		for _, geometry := range t.Geometries {
			fmt.Fprintf(&b, "  %s[%q=%q](around:%d,%f,%f);\n",
				geometry, t.Key, t.Value, radiusMeters, latitude, longitude)
		}
	}
	fmt.Fprintf(&b, ");\nout center %d;\n", maxElements)
	return b.String()
}
