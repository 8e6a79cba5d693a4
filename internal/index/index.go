// Package index holds the in-memory inverted index and its on-disk text
// format shared by the indexer and the querier.
package index

// Posting records how many times a word occurs in one document.
type Posting struct {
	DocID int
	Count int
}

// Entry is one indexed word and its postings, kept in first-occurrence
// order.
type Entry struct {
	Word     string
	Postings []Posting
}

// Index maps words to their entries. Not safe for concurrent use; the
// indexer and querier are single-threaded.
type Index struct {
	entries map[string]*Entry
}

func New() *Index {
	return &Index{
		entries: make(map[string]*Entry),
	}
}

// Add records one occurrence of word in docID, creating the entry or
// posting as needed.
func (idx *Index) Add(word string, docID int) {
	entry, ok := idx.entries[word]
	if !ok {
		entry = &Entry{Word: word}
		idx.entries[word] = entry
	}
	for i := range entry.Postings {
		if entry.Postings[i].DocID == docID {
			entry.Postings[i].Count++
			return
		}
	}
	entry.Postings = append(entry.Postings, Posting{DocID: docID, Count: 1})
}

// Lookup returns the entry for word, or nil.
func (idx *Index) Lookup(word string) *Entry {
	return idx.entries[word]
}

// Len returns the number of indexed words.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// TotalCount sums every posting count in the index.
func (idx *Index) TotalCount() int {
	total := 0
	for _, entry := range idx.entries {
		for _, p := range entry.Postings {
			total += p.Count
		}
	}
	return total
}

func (idx *Index) put(entry *Entry) {
	idx.entries[entry.Word] = entry
}
