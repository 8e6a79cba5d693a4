package crawler

import (
	"container/list"
	"sync"

	"github.com/searchpipe/searchpipe/internal/pageio"
	"github.com/searchpipe/searchpipe/models"
)

// frontier is the crawl monitor. One mutex and condition variable guard the
// FIFO queue of fetched-but-unexpanded pages, the seen-URL set, the
// added/retrieved counters and the next page ID. The seen-check and claim
// form one critical section; enqueue, ID assignment and page save form
// another.
//
// The network fetch runs outside the lock: a worker claims a URL (inserting
// it into the seen-set), fetches, then either admits the page or rolls the
// claim back on fetch failure.
type frontier struct {
	mu   sync.Mutex
	cond *sync.Cond

	pageDir string

	queue          *list.List
	seen           map[string]struct{}
	pagesAdded     int
	pagesRetrieved int
	nextID         int
	err            error
}

func newFrontier(pageDir string) *frontier {
	f := &frontier{
		pageDir: pageDir,
		queue:   list.New(),
		seen:    make(map[string]struct{}),
		nextID:  1,
	}
	f.cond = sync.NewCond(&f.mu)
	return f
}

// Claim marks url as seen so no other worker fetches it. It returns false
// if the url was already claimed or admitted.
func (f *frontier) Claim(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.seen[url]; ok {
		return false
	}
	f.seen[url] = struct{}{}
	return true
}

// Unclaim rolls back a claim whose fetch failed, making the url eligible
// again.
func (f *frontier) Unclaim(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.seen, url)
}

// Admit assigns the next page ID, saves the page to the store and enqueues
// it for expansion, all under the lock. The caller must hold a claim on the
// page's URL.
func (f *frontier) Admit(page *models.Page) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	if err := pageio.Save(page, id, f.pageDir); err != nil {
		return 0, err
	}
	f.nextID++
	f.pagesAdded++
	f.queue.PushBack(page)
	f.cond.Broadcast()
	return id, nil
}

// Next pops the next page to expand. It blocks while the queue is empty but
// pages are still being expanded, and returns ok=false once the crawl has
// terminated: the queue is empty and every added page has been retrieved,
// or the crawl has failed.
func (f *frontier) Next() (*models.Page, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for f.queue.Len() == 0 && f.pagesRetrieved < f.pagesAdded && f.err == nil {
		f.cond.Wait()
	}
	if f.err != nil || f.queue.Len() == 0 {
		return nil, false
	}
	page := f.queue.Remove(f.queue.Front()).(*models.Page)
	return page, true
}

// MarkRetrieved records that a popped page has been fully expanded and
// wakes waiters so they can re-test the termination predicate.
func (f *frontier) MarkRetrieved() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pagesRetrieved++
	f.cond.Broadcast()
}

// Fail aborts the crawl: waiters wake and Next reports termination.
func (f *frontier) Fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err == nil {
		f.err = err
	}
	f.cond.Broadcast()
}

func (f *frontier) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Stats reports the counters for logging and tests.
func (f *frontier) Stats() (added, retrieved, seen int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pagesAdded, f.pagesRetrieved, len(f.seen)
}
