package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCreatesAndBumps(t *testing.T) {
	idx := New()
	idx.Add("fox", 1)
	idx.Add("fox", 1)
	idx.Add("fox", 2)
	idx.Add("dog", 2)

	fox := idx.Lookup("fox")
	require.NotNil(t, fox)
	assert.Equal(t, []Posting{{DocID: 1, Count: 2}, {DocID: 2, Count: 1}}, fox.Postings)

	dog := idx.Lookup("dog")
	require.NotNil(t, dog)
	assert.Equal(t, []Posting{{DocID: 2, Count: 1}}, dog.Postings)

	assert.Nil(t, idx.Lookup("cat"))
	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, 4, idx.TotalCount())
}

func TestPostingsKeepFirstOccurrenceOrder(t *testing.T) {
	idx := New()
	idx.Add("word", 5)
	idx.Add("word", 2)
	idx.Add("word", 5)

	entry := idx.Lookup("word")
	require.NotNil(t, entry)
	assert.Equal(t, []Posting{{DocID: 5, Count: 2}, {DocID: 2, Count: 1}}, entry.Postings)
}
