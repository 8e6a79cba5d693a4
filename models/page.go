package models

// Page is a fetched webpage as the crawler hands it around: the raw URL it
// was fetched from, its BFS depth (0 for the seed) and the HTML body.
type Page struct {
	URL   string `json:"url"`
	Depth int    `json:"depth"`
	HTML  string `json:"html"`
}

func NewPage(url string, depth int, html string) *Page {
	return &Page{
		URL:   url,
		Depth: depth,
		HTML:  html,
	}
}
