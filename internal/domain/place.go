package domain

// Place is a destination returned by the place search operation. All fields
// come straight from the language model; an empty result list is a valid
// search outcome.
type Place struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Country     string   `json:"country"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	Categories  []string `json:"categories"`
}
