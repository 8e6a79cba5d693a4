// Package crawler implements the concurrent bounded-depth BFS over an
// internal URL subgraph. Pages are fetched at depths 0..maxDepth and saved
// to the page store under dense, monotonically increasing IDs; pages at
// maxDepth are saved but not expanded.
package crawler

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/searchpipe/searchpipe/internal/webpage"
	"github.com/searchpipe/searchpipe/models"
)

type Crawler struct {
	ops      webpage.Ops
	pageDir  string
	maxDepth int
	workers  int
	frontier *frontier
	logger   *log.Logger
}

func New(ops webpage.Ops, pageDir string, maxDepth, workers int) *Crawler {
	return &Crawler{
		ops:      ops,
		pageDir:  pageDir,
		maxDepth: maxDepth,
		workers:  workers,
		frontier: newFrontier(pageDir),
		logger:   log.New(os.Stdout, "[crawler] ", log.LstdFlags),
	}
}

// Run fetches the seed eagerly, then expands the frontier with the
// configured number of workers until every admitted page has been
// expanded. A seed fetch failure or a page save failure is fatal;
// per-URL fetch failures are logged and skipped.
func (c *Crawler) Run(ctx context.Context, seedUrl string) error {
	html, err := c.ops.Fetch(ctx, seedUrl)
	if err != nil {
		return fmt.Errorf("failed to fetch seed url %s: %w", seedUrl, err)
	}
	seedPage := models.NewPage(seedUrl, 0, html)
	c.frontier.Claim(seedUrl)
	if _, err := c.frontier.Admit(seedPage); err != nil {
		return fmt.Errorf("failed to save seed page: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < c.workers; i++ {
		workerID := i
		g.Go(func() error {
			return c.crawl(ctx, workerID)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	added, retrieved, seen := c.frontier.Stats()
	c.logger.Printf("crawl finished: %d pages saved, %d expanded, %d urls seen", added, retrieved, seen)
	return nil
}

func (c *Crawler) crawl(ctx context.Context, workerID int) error {
	logger := log.New(os.Stdout, fmt.Sprintf("[worker-%d] ", workerID), log.LstdFlags)
	for {
		page, ok := c.frontier.Next()
		if !ok {
			return c.frontier.Err()
		}
		if page.Depth >= c.maxDepth {
			c.frontier.MarkRetrieved()
			continue
		}
		for _, url := range c.ops.ExtractURLs(page) {
			if !c.ops.IsInternal(url) {
				logger.Printf("found url: %s [external]", url)
				continue
			}
			if !c.frontier.Claim(url) {
				logger.Printf("found url: %s [already seen]", url)
				continue
			}
			html, err := c.ops.Fetch(ctx, url)
			if err != nil {
				logger.Printf("failed to fetch %s: %v", url, err)
				c.frontier.Unclaim(url)
				continue
			}
			child := models.NewPage(url, page.Depth+1, html)
			id, err := c.frontier.Admit(child)
			if err != nil {
				err = fmt.Errorf("failed to save page for %s: %w", url, err)
				c.frontier.Fail(err)
				return err
			}
			logger.Printf("found url: %s [internal] saved as page %d", url, id)
		}
		c.frontier.MarkRetrieved()
	}
}
