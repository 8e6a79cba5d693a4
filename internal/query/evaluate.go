package query

import (
	"github.com/searchpipe/searchpipe/internal/index"
)

// RankedDoc is one document surviving a query, carrying its integer score
// and, after metadata fill, its presentation fields.
type RankedDoc struct {
	DocID   int
	Score   int
	URL     string
	Title   string
	Snippet string

	loadFailed bool
}

// docQueue is an ordered operand on the evaluation stack.
type docQueue []*RankedDoc

func (q docQueue) find(docID int) *RankedDoc {
	for _, doc := range q {
		if doc.DocID == docID {
			return doc
		}
	}
	return nil
}

// Evaluate runs a validated token sequence against the index. Operands are
// posting lists converted to ranked-doc queues; "and" binds tighter than
// "or", so each "and" reduces the top two operands immediately and the
// operands left at the end are folded with union. A word missing from the
// index contributes an empty operand.
func Evaluate(idx *index.Index, tokens []string) []*RankedDoc {
	var stack []docQueue
	currOperator := ""
	for _, token := range tokens {
		if isOperator(token) {
			currOperator = token
			continue
		}
		stack = append(stack, postingQueue(idx.Lookup(token)))
		if currOperator == "and" {
			n := len(stack)
			merged := intersect(stack[n-1], stack[n-2])
			stack = append(stack[:n-2], merged)
		}
	}
	for len(stack) > 1 {
		n := len(stack)
		merged := union(stack[n-1], stack[n-2])
		stack = append(stack[:n-2], merged)
	}
	if len(stack) == 0 {
		return nil
	}
	return stack[0]
}

// postingQueue converts an index entry to an operand queue; a doc's initial
// score is its posting count.
func postingQueue(entry *index.Entry) docQueue {
	if entry == nil {
		return nil
	}
	q := make(docQueue, 0, len(entry.Postings))
	for _, p := range entry.Postings {
		q = append(q, &RankedDoc{DocID: p.DocID, Score: p.Count})
	}
	return q
}

// intersect keeps the docs present in both operands, in q1's order, scored
// with the minimum of the two scores.
func intersect(q1, q2 docQueue) docQueue {
	var result docQueue
	for _, doc := range q1 {
		if other := q2.find(doc.DocID); other != nil {
			score := doc.Score
			if other.Score < score {
				score = other.Score
			}
			result = append(result, &RankedDoc{DocID: doc.DocID, Score: score})
		}
	}
	return result
}

// union merges q2 into q1: docs in both sum their scores and keep q1's
// position; docs only in q2 are appended in q2's order.
func union(q1, q2 docQueue) docQueue {
	result := make(docQueue, 0, len(q1)+len(q2))
	for _, doc := range q1 {
		result = append(result, &RankedDoc{DocID: doc.DocID, Score: doc.Score})
	}
	for _, doc := range q2 {
		if merged := result.find(doc.DocID); merged != nil {
			merged.Score += doc.Score
			continue
		}
		result = append(result, &RankedDoc{DocID: doc.DocID, Score: doc.Score})
	}
	return result
}
