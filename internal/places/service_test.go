package places

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/itznotaditya/voyant/internal/categories"
	"github.com/itznotaditya/voyant/internal/config"
	"github.com/itznotaditya/voyant/internal/providers/overpass"
	"github.com/itznotaditya/voyant/internal/providers/wikipedia"
	"github.com/itznotaditya/voyant/internal/types"
)

// Mock providers for testing

type mockPOIProvider struct {
	response  *overpass.InterpreterResponse
	err       error
	lastQuery string
}

func (m *mockPOIProvider) Query(query string) (*overpass.InterpreterResponse, error) {
	m.lastQuery = query
	return m.response, m.err
}

type mockDescriptionProvider struct {
	summaries map[string]*wikipedia.SummaryResponse
	requested []string
}

func (m *mockDescriptionProvider) Summary(key string) (*wikipedia.SummaryResponse, error) {
	m.requested = append(m.requested, key)
	if resp, ok := m.summaries[key]; ok {
		return resp, nil
	}
	return nil, errors.New("fetch returned status 404: not found")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			SearchRadiusMeters: 30000,
			MaxResults:         5,
		},
	}
}

func newTestService(poi *mockPOIProvider, desc *mockDescriptionProvider) Service {
	if desc == nil {
		desc = &mockDescriptionProvider{}
	}
	return NewPlacesServiceWithProviders(poi, desc, testConfig(), testLogger())
}

func floatPtr(f float64) *float64 { return &f }

func namedNode(name string, lat, lon float64, tags map[string]string) overpass.Element {
	if tags == nil {
		tags = map[string]string{}
	}
	tags["name"] = name
	return overpass.Element{Type: "node", Lat: floatPtr(lat), Lon: floatPtr(lon), Tags: tags}
}

func TestNearby_ProviderFailureYieldsEmpty(t *testing.T) {
	svc := newTestService(&mockPOIProvider{err: errors.New("connection refused")}, nil)

	results := svc.Nearby(types.NewCoords(41.9, 12.5), 30000, categories.All, "Rome")
	if len(results) != 0 {
		t.Errorf("Nearby returned %d results on provider failure, want 0", len(results))
	}
}

func TestNearby_DiscardsInvalidRecords(t *testing.T) {
	resp := &overpass.InterpreterResponse{
		Elements: []overpass.Element{
			namedNode("Colosseum", 41.8902, 12.4922, map[string]string{"historic": "monument"}),
			// No name: discarded
			{Type: "node", Lat: floatPtr(41.9), Lon: floatPtr(12.5), Tags: map[string]string{"tourism": "attraction"}},
			// No coordinate anywhere: discarded
			{Type: "way", Tags: map[string]string{"name": "Mystery Way", "tourism": "attraction"}},
			// Centroid coordinate: kept
			{
				Type:   "way",
				Center: &overpass.Center{Lat: 41.91, Lon: 12.48},
				Tags:   map[string]string{"name": "Villa Borghese", "leisure": "park"},
			},
		},
	}
	svc := newTestService(&mockPOIProvider{response: resp}, nil)

	results := svc.Nearby(types.NewCoords(41.9, 12.5), 30000, categories.All, "Rome")
	if len(results) != 2 {
		t.Fatalf("Nearby returned %d results, want 2", len(results))
	}
	for _, p := range results {
		if p.Name == "" {
			t.Error("result with empty name survived validation")
		}
	}
}

func TestNearby_CapsResults(t *testing.T) {
	resp := &overpass.InterpreterResponse{}
	for i := 0; i < 12; i++ {
		resp.Elements = append(resp.Elements,
			namedNode(fmt.Sprintf("Spot %d", i), 41.9, 12.5, map[string]string{"tourism": "attraction"}))
	}
	svc := newTestService(&mockPOIProvider{response: resp}, nil)

	results := svc.Nearby(types.NewCoords(41.9, 12.5), 30000, categories.All, "Rome")
	if len(results) != 5 {
		t.Errorf("Nearby returned %d results, want 5", len(results))
	}
}

func TestNearby_FewerRecordsThanCap(t *testing.T) {
	resp := &overpass.InterpreterResponse{
		Elements: []overpass.Element{
			namedNode("Colosseum", 41.8902, 12.4922, map[string]string{"historic": "monument"}),
			namedNode("Pantheon", 41.8986, 12.4769, map[string]string{"tourism": "attraction"}),
		},
	}
	svc := newTestService(&mockPOIProvider{response: resp}, nil)

	results := svc.Nearby(types.NewCoords(41.9, 12.5), 30000, categories.All, "Rome")
	if len(results) != 2 {
		t.Errorf("Nearby returned %d results, want 2", len(results))
	}
}

func TestNearby_OrdersByScoreDescending(t *testing.T) {
	resp := &overpass.InterpreterResponse{
		Elements: []overpass.Element{
			// Weak candidate: long name, no tags of note, far from center
			namedNode("some entirely forgettable roadside stop", 42.4, 12.5, nil),
			// Strong candidate: historic monument near the center with rich metadata
			namedNode("Colosseum", 41.8902, 12.4922, map[string]string{
				"historic":   "monument",
				"wikipedia":  "en:Colosseum",
				"website":    "https://example.com",
				"wheelchair": "yes",
			}),
		},
	}
	svc := newTestService(&mockPOIProvider{response: resp}, nil)

	results := svc.Nearby(types.NewCoords(41.9, 12.5), 30000, categories.All, "Rome")
	if len(results) != 2 {
		t.Fatalf("Nearby returned %d results, want 2", len(results))
	}
	if results[0].Name != "Colosseum" {
		t.Errorf("top result = %q, want Colosseum", results[0].Name)
	}
}

func TestNearby_MapsLink(t *testing.T) {
	resp := &overpass.InterpreterResponse{
		Elements: []overpass.Element{
			namedNode("Trevi Fountain", 41.9009, 12.4833, map[string]string{"tourism": "attraction"}),
		},
	}
	svc := newTestService(&mockPOIProvider{response: resp}, nil)

	results := svc.Nearby(types.NewCoords(41.9, 12.5), 30000, categories.All, "Rome")
	if len(results) != 1 {
		t.Fatalf("Nearby returned %d results, want 1", len(results))
	}

	link := results[0].MapsLink
	if !strings.HasPrefix(link, "https://www.google.com/maps/search/?api=1&query=") {
		t.Errorf("maps link %q has wrong base", link)
	}
	if !strings.Contains(link, "Trevi+Fountain%2C+Rome") {
		t.Errorf("maps link %q does not encode name and location", link)
	}
}

func TestNearby_CategoryLabel(t *testing.T) {
	resp := &overpass.InterpreterResponse{
		Elements: []overpass.Element{
			namedNode("Gardaland", 45.45, 10.71, map[string]string{"tourism": "theme_park"}),
			namedNode("No Class", 45.45, 10.71, nil),
		},
	}
	svc := newTestService(&mockPOIProvider{response: resp}, nil)

	results := svc.Nearby(types.NewCoords(45.45, 10.71), 30000, categories.All, "")
	if len(results) != 2 {
		t.Fatalf("Nearby returned %d results, want 2", len(results))
	}

	labels := map[string]string{}
	for _, p := range results {
		labels[p.Name] = p.Category
	}
	if labels["Gardaland"] != "Theme Park" {
		t.Errorf("category label = %q, want Theme Park", labels["Gardaland"])
	}
	if labels["No Class"] != "Attraction" {
		t.Errorf("untagged category label = %q, want Attraction", labels["No Class"])
	}
}

func TestNearby_QueryRespectsCategoryFilter(t *testing.T) {
	poi := &mockPOIProvider{response: &overpass.InterpreterResponse{}}
	svc := newTestService(poi, nil)

	svc.Nearby(types.NewCoords(41.9, 12.5), 30000, categories.Food, "Rome")
	if !strings.Contains(poi.lastQuery, `"amenity"="restaurant"`) {
		t.Errorf("food query missing restaurant filter:\n%s", poi.lastQuery)
	}
	if strings.Contains(poi.lastQuery, `"natural"="peak"`) {
		t.Errorf("food query contains default filter:\n%s", poi.lastQuery)
	}

	svc.Nearby(types.NewCoords(41.9, 12.5), 30000, categories.Key("bogus"), "Rome")
	if !strings.Contains(poi.lastQuery, `"natural"="peak"`) {
		t.Errorf("unrecognized category should fall back to the default filter:\n%s", poi.lastQuery)
	}
}

func TestDescribe(t *testing.T) {
	longExtract := "The Colosseum is an ancient amphitheatre in Rome. It was built under the Flavian emperors. It held gladiatorial contests. It remains an iconic symbol. It draws millions of visitors yearly."

	tests := []struct {
		name      string
		place     string
		location  string
		summaries map[string]*wikipedia.SummaryResponse
		want      string
		wantOK    bool
	}{
		{
			name:     "direct hit",
			place:    "Colosseum",
			location: "Rome",
			summaries: map[string]*wikipedia.SummaryResponse{
				"Colosseum": {Extract: longExtract},
			},
			want:   "The Colosseum is an ancient amphitheatre in Rome. It was built under the Flavian emperors. It held gladiatorial contests. It remains an iconic symbol.",
			wantOK: true,
		},
		{
			name:     "falls back to location-qualified key",
			place:    "Duomo",
			location: "Milan",
			summaries: map[string]*wikipedia.SummaryResponse{
				"Duomo,_Milan": {Extract: "The Duomo di Milano is the cathedral church of Milan and one of the largest churches in the world."},
			},
			want:   "The Duomo di Milano is the cathedral church of Milan and one of the largest churches in the world.",
			wantOK: true,
		},
		{
			name:     "short extract rejected",
			place:    "Obscure Spot",
			location: "",
			summaries: map[string]*wikipedia.SummaryResponse{
				"Obscure_Spot": {Extract: "Too short."},
			},
			wantOK: false,
		},
		{
			name:      "no page at all",
			place:     "Nowhere Special",
			location:  "Atlantis",
			summaries: nil,
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(
				&mockPOIProvider{response: &overpass.InterpreterResponse{}},
				&mockDescriptionProvider{summaries: tt.summaries},
			)
			got, ok := svc.Describe(tt.place, tt.location)
			if ok != tt.wantOK {
				t.Fatalf("Describe ok = %v, want %v", ok, tt.wantOK)
			}
			if tt.wantOK && got != tt.want {
				t.Errorf("Describe = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescriptionLookupKeys(t *testing.T) {
	keys := descriptionLookupKeys("St. Peter's Basilica, Vatican", "Rome")
	if len(keys) != 3 {
		t.Fatalf("got %d keys, want 3", len(keys))
	}
	if keys[0] != "St._Peter's_Basilica,_Vatican" {
		t.Errorf("keys[0] = %q", keys[0])
	}
	if keys[1] != "St._Peter's_Basilica,_Vatican,_Rome" {
		t.Errorf("keys[1] = %q", keys[1])
	}
	if keys[2] != "St._Peter's_Basilica_Vatican" {
		t.Errorf("keys[2] = %q", keys[2])
	}
}

func TestFallbackDescription(t *testing.T) {
	got := FallbackDescription("Museum")
	want := "A notable museum in the area worth visiting."
	if got != want {
		t.Errorf("FallbackDescription = %q, want %q", got, want)
	}
}

func TestFormatReply(t *testing.T) {
	svc := newTestService(&mockPOIProvider{response: &overpass.InterpreterResponse{}}, nil)

	results := []Place{
		{Name: "Colosseum", Category: "Monument"},
		{Name: "Villa Borghese", Category: "Park"},
	}

	reply := svc.FormatReply(results, "Rome", categories.All)
	if !strings.HasPrefix(reply, "In Rome these are the places you can go:") {
		t.Errorf("unexpected reply prefix: %q", reply)
	}
	if !strings.Contains(reply, "- Colosseum (Monument)") || !strings.Contains(reply, "- Villa Borghese (Park)") {
		t.Errorf("reply missing place lines: %q", reply)
	}

	filtered := svc.FormatReply(results, "Rome", categories.Historic)
	if !strings.Contains(filtered, "(Historic Sites)") {
		t.Errorf("filtered reply missing category name: %q", filtered)
	}
}

func TestFormatReply_Empty(t *testing.T) {
	svc := newTestService(&mockPOIProvider{response: &overpass.InterpreterResponse{}}, nil)

	unfiltered := svc.FormatReply(nil, "Rome", categories.All)
	if !strings.Contains(unfiltered, "great place to explore") {
		t.Errorf("unexpected empty unfiltered reply: %q", unfiltered)
	}

	filtered := svc.FormatReply(nil, "Rome", categories.Nature)
	if !strings.Contains(filtered, "nature & parks") {
		t.Errorf("empty filtered reply should name the category: %q", filtered)
	}
}

func TestTrimExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "three sentences kept whole",
			input: "The tower dominates the skyline forever. It was finished in 1889 by Eiffel. It is visited by millions.",
			want:  "The tower dominates the skyline forever. It was finished in 1889 by Eiffel. It is visited by millions.",
		},
		{
			name:  "truncated to four sentences with final period",
			input: "One sentence goes here first of all. Second sentence follows right after it. Third sentence continues the story. Fourth sentence nearly finishes it. Fifth sentence must be dropped entirely.",
			want:  "One sentence goes here first of all. Second sentence follows right after it. Third sentence continues the story. Fourth sentence nearly finishes it.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trimExtract(tt.input); got != tt.want {
				t.Errorf("trimExtract = %q, want %q", got, tt.want)
			}
		})
	}
}
