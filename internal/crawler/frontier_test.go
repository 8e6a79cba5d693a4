package crawler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchpipe/searchpipe/internal/pageio"
	"github.com/searchpipe/searchpipe/models"
)

func TestClaimIsExclusive(t *testing.T) {
	f := newFrontier(t.TempDir())
	assert.True(t, f.Claim("https://site.test/a"))
	assert.False(t, f.Claim("https://site.test/a"))
	assert.True(t, f.Claim("https://site.test/b"))
}

func TestUnclaimRollsBack(t *testing.T) {
	f := newFrontier(t.TempDir())
	require.True(t, f.Claim("https://site.test/a"))
	f.Unclaim("https://site.test/a")
	assert.True(t, f.Claim("https://site.test/a"))
}

func TestAdmitAssignsDenseIDsAndSaves(t *testing.T) {
	dir := t.TempDir()
	f := newFrontier(dir)

	for i, url := range []string{"https://site.test/a", "https://site.test/b", "https://site.test/c"} {
		require.True(t, f.Claim(url))
		id, err := f.Admit(models.NewPage(url, 0, "<html></html>"))
		require.NoError(t, err)
		assert.Equal(t, i+1, id)

		page, err := pageio.Load(id, dir)
		require.NoError(t, err)
		assert.Equal(t, url, page.URL)
	}

	added, retrieved, seen := f.Stats()
	assert.Equal(t, 3, added)
	assert.Equal(t, 0, retrieved)
	assert.Equal(t, 3, seen)
}

func TestAdmitSaveFailure(t *testing.T) {
	f := newFrontier("/nonexistent-page-dir")
	require.True(t, f.Claim("https://site.test/a"))
	_, err := f.Admit(models.NewPage("https://site.test/a", 0, ""))
	assert.Error(t, err)
}

func TestNextPopsInFIFOOrder(t *testing.T) {
	f := newFrontier(t.TempDir())
	for _, url := range []string{"https://site.test/a", "https://site.test/b"} {
		f.Claim(url)
		_, err := f.Admit(models.NewPage(url, 0, ""))
		require.NoError(t, err)
	}

	page, ok := f.Next()
	require.True(t, ok)
	assert.Equal(t, "https://site.test/a", page.URL)
	page, ok = f.Next()
	require.True(t, ok)
	assert.Equal(t, "https://site.test/b", page.URL)
}

func TestNextTerminatesWhenAllRetrieved(t *testing.T) {
	f := newFrontier(t.TempDir())
	f.Claim("https://site.test/a")
	_, err := f.Admit(models.NewPage("https://site.test/a", 0, ""))
	require.NoError(t, err)

	page, ok := f.Next()
	require.True(t, ok)
	require.NotNil(t, page)

	f.MarkRetrieved()
	_, ok = f.Next()
	assert.False(t, ok)
	assert.NoError(t, f.Err())
}

func TestNextBlocksUntilWorkOrTermination(t *testing.T) {
	f := newFrontier(t.TempDir())
	f.Claim("https://site.test/a")
	_, err := f.Admit(models.NewPage("https://site.test/a", 0, ""))
	require.NoError(t, err)

	// the only queued page is popped; a second consumer must block until
	// the first marks it retrieved, then observe termination
	_, ok := f.Next()
	require.True(t, ok)

	done := make(chan bool, 1)
	go func() {
		_, ok := f.Next()
		done <- ok
	}()

	select {
	case <-done:
		t.Fatal("Next returned before termination")
	case <-time.After(50 * time.Millisecond):
	}

	f.MarkRetrieved()
	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Next did not observe termination")
	}
}

func TestFailWakesWaiters(t *testing.T) {
	f := newFrontier(t.TempDir())
	f.Claim("https://site.test/a")
	_, err := f.Admit(models.NewPage("https://site.test/a", 0, ""))
	require.NoError(t, err)
	_, ok := f.Next()
	require.True(t, ok)

	done := make(chan bool, 1)
	go func() {
		_, ok := f.Next()
		done <- ok
	}()

	f.Fail(errors.New("save failed"))
	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Fail did not wake the waiter")
	}
	assert.Error(t, f.Err())
}
