package query

import (
	"container/list"
	"sync"

	"github.com/searchpipe/searchpipe/internal/pageio"
	"github.com/searchpipe/searchpipe/models"
)

type cacheItem struct {
	id   int
	page *models.Page
}

// pageCache is an LRU over loaded page files so repeated queries do not
// re-read the store. Page files are immutable for the lifetime of a store,
// so entries never expire.
type pageCache struct {
	capacity int
	dir      string
	cache    map[int]*list.Element
	list     *list.List
	mu       sync.Mutex
}

func newPageCache(capacity int, dir string) *pageCache {
	if capacity < 1 {
		capacity = 1
	}
	return &pageCache{
		capacity: capacity,
		dir:      dir,
		cache:    make(map[int]*list.Element),
		list:     list.New(),
	}
}

// Load returns the page for id, reading it from the store on a miss.
func (c *pageCache) Load(id int) (*models.Page, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[id]; ok {
		c.list.MoveToFront(elem)
		return elem.Value.(*cacheItem).page, nil
	}

	page, err := pageio.Load(id, c.dir)
	if err != nil {
		return nil, err
	}
	elem := c.list.PushFront(&cacheItem{id: id, page: page})
	c.cache[id] = elem
	if c.list.Len() > c.capacity {
		oldest := c.list.Back()
		c.list.Remove(oldest)
		delete(c.cache, oldest.Value.(*cacheItem).id)
	}
	return page, nil
}

func (c *pageCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Len()
}
