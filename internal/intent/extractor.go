package intent

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Location extraction is a chain of heuristics evaluated in fixed priority
// order; each rule is a cheap fallback for the one before it:
//
//  1. strip weather keywords so they don't leak into the captured location
//  2. preposition-anchored pattern ("in"/"at"/"near"/"from")
//  3. verb-anchored pattern ("to"/"visit"/"for"/"about"), rejecting captures
//     that start with the phrasal verbs "go"/"do"
//  4. short inputs (<=3 tokens) are treated as a bare place name
//  5. capitalized tokens collected from the original text
//
// The ordering matters: "things to do in Paris" must resolve via the
// preposition anchor to "Paris", not via the verb anchor to "do in paris".

// locationStripKeywords are removed from the text before pattern matching.
// Wider than the intent keyword set on purpose ("temp", "climate").
var locationStripKeywords = []string{"weather", "temperature", "temp", "forecast", "rain", "hot", "cold", "climate"}

var stripPatterns = compileStripPatterns()

func compileStripPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(locationStripKeywords))
	for _, kw := range locationStripKeywords {
		patterns = append(patterns, regexp.MustCompile(`\b`+kw+`\b`))
	}
	return patterns
}

var (
	prepositionPattern = regexp.MustCompile(`(?:in|at|near|from)\s+([a-zA-Z\s]+)`)
	verbAnchorPattern  = regexp.MustCompile(`(?:to|visit|for|about)\s+([a-zA-Z\s]+)`)
)

// captureStopwords are fillers a pattern may capture instead of a place.
var captureStopwords = map[string]struct{}{
	"please":   {},
	"now":      {},
	"today":    {},
	"tomorrow": {},
	"me":       {},
	"us":       {},
}

var greetings = map[string]struct{}{
	"hi":    {},
	"hello": {},
	"hey":   {},
	"":      {},
}

// functionWords are capitalized tokens that are never place names.
var functionWords = map[string]struct{}{
	"i":     {},
	"i'm":   {},
	"what":  {},
	"where": {},
	"how":   {},
	"let's": {},
	"the":   {},
	"a":     {},
}

// Extract parses raw query text into an intent and a candidate location.
// The location is empty when no candidate could be found.
func Extract(text string) (Intent, string) {
	return Classify(text), ExtractLocation(text)
}

// ExtractLocation applies the extraction rule chain to the given text and
// returns the candidate location, or "" when none was found.
func ExtractLocation(text string) string {
	cleaned := strings.TrimSpace(strings.ToLower(text))
	for _, p := range stripPatterns {
		cleaned = strings.TrimSpace(p.ReplaceAllString(cleaned, ""))
	}

	// Rule 2: preposition anchor
	if m := prepositionPattern.FindStringSubmatch(cleaned); m != nil {
		if candidate, ok := acceptCapture(m[1]); ok {
			return candidate
		}
	}

	// Rule 3: verb anchor with phrasal-verb exclusion
	if capture, ok := matchVerbAnchor(cleaned); ok {
		if candidate, ok := acceptCapture(capture); ok {
			return candidate
		}
	}

	// Rule 4: short input is likely just a place name
	if len(strings.Fields(cleaned)) <= 3 {
		if _, greeting := greetings[cleaned]; !greeting {
			return titleCase(cleaned)
		}
	}

	// Rule 5: collect capitalized tokens from the original text
	var capitalized []string
	for _, word := range strings.Fields(text) {
		clean := strings.Trim(word, "?.!,")
		if clean == "" {
			continue
		}
		lower := strings.ToLower(clean)
		if isStripKeyword(lower) {
			continue
		}
		if _, skip := functionWords[lower]; skip {
			continue
		}
		if unicode.IsUpper([]rune(clean)[0]) {
			capitalized = append(capitalized, clean)
		}
	}
	if len(capitalized) > 0 {
		return strings.Join(capitalized, " ")
	}

	return ""
}

// matchVerbAnchor finds the first verb-anchored capture that does not start
// with "go" or "do". Go's RE2 has no negative lookahead, so rejected anchors
// are skipped by rescanning from one character past the anchor start, which
// matches the engine-advance behavior of a (?!go\b|do\b) assertion.
func matchVerbAnchor(text string) (string, bool) {
	offset := 0
	for offset < len(text) {
		loc := verbAnchorPattern.FindStringSubmatchIndex(text[offset:])
		if loc == nil {
			return "", false
		}
		capture := text[offset+loc[2] : offset+loc[3]]
		if !startsWithPhrasalVerb(capture) {
			return capture, true
		}
		offset += loc[0] + 1
	}
	return "", false
}

func startsWithPhrasalVerb(capture string) bool {
	for _, verb := range []string{"go", "do"} {
		if capture == verb || strings.HasPrefix(capture, verb+" ") {
			return true
		}
	}
	return false
}

// acceptCapture trims a pattern capture and rejects stopwords.
func acceptCapture(capture string) (string, bool) {
	candidate := strings.TrimSpace(capture)
	if _, stop := captureStopwords[candidate]; stop {
		return "", false
	}
	return titleCase(candidate), true
}

func isStripKeyword(word string) bool {
	for _, kw := range locationStripKeywords {
		if word == kw {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
