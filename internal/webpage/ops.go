// Package webpage supplies the webpage operations the pipeline core is
// built against: fetching a page over HTTP, extracting the URLs and words
// embedded in its HTML, and classifying URLs as internal or external to
// the crawl domain.
package webpage

import (
	"context"

	"github.com/searchpipe/searchpipe/models"
)

// Ops is the capability consumed by the crawler and the indexer.
type Ops interface {
	// Fetch retrieves the HTML body of url.
	Fetch(ctx context.Context, url string) (string, error)
	// ExtractURLs returns the URLs embedded in the page, resolved against
	// the page URL.
	ExtractURLs(page *models.Page) []string
	// ExtractWords returns the raw word tokens of the page's visible text.
	ExtractWords(page *models.Page) []string
	// IsInternal reports whether url belongs to the crawl domain.
	IsInternal(url string) bool
}

type webOps struct {
	fetcher    *Fetcher
	classifier *Classifier
}

func NewOps(fetcher *Fetcher, classifier *Classifier) Ops {
	return &webOps{
		fetcher:    fetcher,
		classifier: classifier,
	}
}

func (o *webOps) Fetch(ctx context.Context, url string) (string, error) {
	return o.fetcher.Fetch(ctx, url)
}

func (o *webOps) ExtractURLs(page *models.Page) []string {
	return ExtractURLs(page)
}

func (o *webOps) ExtractWords(page *models.Page) []string {
	return ExtractWords(page)
}

func (o *webOps) IsInternal(url string) bool {
	return o.classifier.IsInternal(url)
}
