package wikipedia

// SummaryResponse is the page-summary payload. Only the fields the
// description lookup needs are modeled.
type SummaryResponse struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Extract     string `json:"extract"`
}
