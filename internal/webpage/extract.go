package webpage

import (
	httpUrl "net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/searchpipe/searchpipe/models"
)

// ExtractURLs returns the anchor targets of the page resolved against the
// page URL. Unparsable hrefs and targets whose scheme is not http or https
// are skipped; duplicates are kept, the crawler's seen-set is the dedupe
// authority.
func ExtractURLs(page *models.Page) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return nil
	}
	baseUrl, err := httpUrl.Parse(page.URL)
	if err != nil {
		return nil
	}
	var urls []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		parsedUrl, err := httpUrl.Parse(strings.TrimSpace(s.AttrOr("href", "")))
		if err != nil {
			return
		}
		absUrl := baseUrl.ResolveReference(parsedUrl)
		if absUrl.Scheme != "http" && absUrl.Scheme != "https" {
			return
		}
		urls = append(urls, absUrl.String())
	})
	return urls
}

// ExtractWords returns the whitespace-separated tokens of the page's
// visible text, in document order. Script and style contents are skipped.
// Tokens are raw: punctuation and case survive, the indexer's
// normalization decides what to keep.
func ExtractWords(page *models.Page) []string {
	tokenizer := html.NewTokenizer(strings.NewReader(page.HTML))
	var words []string
	skip := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return words
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if skippedTag(string(name)) {
				skip++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if skippedTag(string(name)) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip > 0 {
				continue
			}
			text := norm.NFC.String(string(tokenizer.Text()))
			words = append(words, strings.Fields(text)...)
		}
	}
}

func skippedTag(name string) bool {
	return name == "script" || name == "style"
}
