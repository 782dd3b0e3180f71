package categories

// Key identifies a place category filter selectable by the user.
type Key string

const (
	All           Key = "all"
	Attractions   Key = "attractions"
	Food          Key = "food"
	Shopping      Key = "shopping"
	Entertainment Key = "entertainment"
	Historic      Key = "historic"
	Nature        Key = "nature"
)

// TagFilter is a single OpenStreetMap tag key/value pair used to build
// provider filter queries.
type TagFilter struct {
	Key   string
	Value string
}

// mappings maps each category key to the OSM tags it covers. The "all" key
// maps to nil, meaning no filtering.
var mappings = map[Key][]TagFilter{
	All: nil,

	Attractions: {
		{"tourism", "attraction"},
		{"tourism", "viewpoint"},
		{"historic", "monument"},
	},

	Food: {
		{"amenity", "restaurant"},
		{"amenity", "cafe"},
		{"amenity", "bar"},
		{"amenity", "fast_food"},
	},

	Shopping: {
		{"shop", "mall"},
		{"shop", "department_store"},
		{"amenity", "marketplace"},
		{"shop", "supermarket"},
	},

	Entertainment: {
		{"amenity", "theatre"},
		{"amenity", "cinema"},
		{"tourism", "museum"},
		{"amenity", "arts_centre"},
		{"amenity", "nightclub"},
	},

	Historic: {
		{"historic", "castle"},
		{"historic", "archaeological_site"},
		{"historic", "ruins"},
		{"historic", "memorial"},
		{"historic", "monument"},
	},

	Nature: {
		{"leisure", "park"},
		{"leisure", "garden"},
		{"natural", "beach"},
		{"tourism", "zoo"},
		{"leisure", "nature_reserve"},
	},
}

var displayNames = map[Key]string{
	All:           "All Places",
	Attractions:   "Attractions & Landmarks",
	Food:          "Food & Dining",
	Shopping:      "Shopping",
	Entertainment: "Entertainment & Culture",
	Historic:      "Historic Sites",
	Nature:        "Nature & Parks",
}

// keys lists all category keys in presentation order.
var keys = []Key{All, Attractions, Food, Shopping, Entertainment, Historic, Nature}

// Lookup returns the tag filters registered under the given key. The second
// return value reports whether the key is a known category. A known key may
// still map to nil filters ("all").
func Lookup(k Key) ([]TagFilter, bool) {
	filters, ok := mappings[k]
	return filters, ok
}

// DisplayName returns the user-friendly display name for a category key,
// or "Places" for unrecognized keys.
func DisplayName(k Key) string {
	if name, ok := displayNames[k]; ok {
		return name
	}
	return "Places"
}

// Keys returns all category keys in presentation order.
func Keys() []Key {
	out := make([]Key, len(keys))
	copy(out, keys)
	return out
}
