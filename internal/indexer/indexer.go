// Package indexer builds the inverted index from a crawler page directory.
package indexer

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/searchpipe/searchpipe/internal/index"
	"github.com/searchpipe/searchpipe/internal/pageio"
	"github.com/searchpipe/searchpipe/models"
)

// WordExtractor yields the raw word tokens of a page, in document order.
type WordExtractor func(page *models.Page) []string

type Indexer struct {
	extract WordExtractor
	logger  *log.Logger
}

func New(extract WordExtractor) *Indexer {
	return &Indexer{
		extract: extract,
		logger:  log.New(os.Stdout, "[indexer] ", log.LstdFlags),
	}
}

// Build loads every page in pageDir in ascending ID order and indexes its
// normalized words. A page that cannot be loaded is fatal.
func (ix *Indexer) Build(pageDir string) (*index.Index, error) {
	ids, err := pageIDs(pageDir)
	if err != nil {
		return nil, err
	}
	sort.Ints(ids)

	idx := index.New()
	for _, id := range ids {
		ix.logger.Printf("loading page id: %d ...", id)
		page, err := pageio.Load(id, pageDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load page %d: %w", id, err)
		}
		for _, token := range ix.extract(page) {
			if word, ok := NormalizeWord(token); ok {
				idx.Add(word, id)
			}
		}
	}
	ix.logger.Printf("indexed %d pages: %d words, total count %d", len(ids), idx.Len(), idx.TotalCount())
	return idx, nil
}

// pageIDs enumerates the page files in dir, skipping dot-prefixed names.
// Any other name that is not a decimal page ID is an error.
func pageIDs(dir string) ([]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open page directory %s: %w", dir, err)
	}
	var ids []int
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		id, err := strconv.Atoi(name)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("page directory %s contains non-page file %q", dir, name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
