package wikipedia

// Extract is the simplified article payload handed back to the assistant.
type Extract struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	Source string `json:"source"`
}

type pageResult struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
}

type queryResponse struct {
	Query struct {
		Pages map[string]pageResult `json:"pages"`
	} `json:"query"`
}
