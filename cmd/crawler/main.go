package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/searchpipe/searchpipe/config"
	"github.com/searchpipe/searchpipe/internal/crawler"
	"github.com/searchpipe/searchpipe/internal/webpage"
)

func main() {
	var (
		configFile = flag.String("config", "searchpipe", "Name of the optional configuration file")
		workers    = flag.Int("workers", 0, "Number of crawl workers (overrides config)")
	)
	flag.Parse()

	if flag.NArg() != 3 {
		fmt.Println("Usage: crawler <seedurl> <pagedir> <maxdepth>")
		os.Exit(1)
	}
	seedUrl := flag.Arg(0)
	pageDir := flag.Arg(1)
	maxDepth, err := strconv.Atoi(flag.Arg(2))
	if err != nil || maxDepth < 0 {
		log.Fatalf("Max depth must be 0 or greater, got %q", flag.Arg(2))
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Printf("Failed to load configuration %s: %v", *configFile, err)
		log.Println("Using default configuration...")
		cfg = config.Default()
	}
	if *workers > 0 {
		cfg.Crawler.Workers = *workers
	}
	if cfg.Crawler.Workers < 1 {
		log.Fatalf("Number of workers must be a natural number")
	}

	if err := os.MkdirAll(pageDir, 0755); err != nil {
		log.Fatalf("Failed to create save directory %s: %v", pageDir, err)
	}

	classifier, err := webpage.NewClassifier(seedUrl)
	if err != nil {
		log.Fatalf("Invalid seed url: %v", err)
	}
	ops := webpage.NewOps(webpage.NewFetcher(&cfg.Fetcher), classifier)

	c := crawler.New(ops, pageDir, maxDepth, cfg.Crawler.Workers)
	if err := c.Run(context.Background(), seedUrl); err != nil {
		log.Fatalf("Crawl failed: %v", err)
	}
}
