package query

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

const snippetMaxLen = 128

// fillMetadata loads each ranked doc's page to populate its url, title and
// snippet. A doc whose page cannot be loaded stays in the ranking but is
// skipped at print time.
func (e *Engine) fillMetadata(docs []*RankedDoc) {
	for _, doc := range docs {
		page, err := e.pages.Load(doc.DocID)
		if err != nil {
			doc.loadFailed = true
			continue
		}
		doc.URL = page.URL
		doc.Title = extractTitle(page.HTML)
		doc.Snippet = extractSnippet(page.HTML)
	}
}

// extractTitle returns the substring between the first <title> and the
// next </title>, or "" if either is absent.
func extractTitle(html string) string {
	start := strings.Index(html, "<title>")
	if start < 0 {
		return ""
	}
	start += len("<title>")
	end := strings.Index(html[start:], "</title>")
	if end < 0 {
		return ""
	}
	return html[start : start+end]
}

// extractSnippet returns the content attribute of the first
// <meta name="description"> tag, capped at 128 bytes.
func extractSnippet(html string) string {
	start := strings.Index(html, `<meta name="description"`)
	if start < 0 {
		return ""
	}
	content := strings.Index(html[start:], `content="`)
	if content < 0 {
		return ""
	}
	start += content + len(`content="`)
	end := strings.IndexByte(html[start:], '"')
	if end < 0 {
		return ""
	}
	if end > snippetMaxLen {
		end = snippetMaxLen
	}
	return html[start : start+end]
}

// sortDocs orders by score descending; the sort is stable so ties keep
// their evaluation order.
func sortDocs(docs []*RankedDoc) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].Score > docs[j].Score
	})
}

func printDocs(w io.Writer, docs []*RankedDoc) {
	for _, doc := range docs {
		if doc.loadFailed {
			continue
		}
		fmt.Fprintf(w, "title: %s\nrank:%d doc:%d : %s\n", doc.Title, doc.Score, doc.DocID, doc.URL)
		fmt.Fprintf(w, "%s...\n\n", doc.Snippet)
	}
}
