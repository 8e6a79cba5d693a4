package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/searchpipe/searchpipe/config"
	"github.com/searchpipe/searchpipe/internal/index"
	"github.com/searchpipe/searchpipe/internal/query"
)

func main() {
	configFile := flag.String("config", "searchpipe", "Name of the optional configuration file")
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 || len(args) > 3 || (len(args) == 3 && args[2] != "-q") {
		fmt.Fprintln(os.Stderr, "usage: query <pageDirectory> <indexFile> [-q]")
		os.Exit(1)
	}
	pageDir := args[0]
	indexFile := args[1]
	quiet := len(args) == 3

	info, err := os.Stat(pageDir)
	if err != nil || !info.IsDir() {
		log.Fatalf("Page directory %s doesn't exist", pageDir)
	}
	finfo, err := os.Stat(indexFile)
	if err != nil || !finfo.Mode().IsRegular() {
		log.Fatalf("Index file %s doesn't exist", indexFile)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		cfg = config.Default()
	}

	idx, err := index.Load(indexFile)
	if err != nil {
		log.Fatalf("Failed to load index: %v", err)
	}

	engine := query.NewEngine(idx, pageDir, cfg.Query.PageCacheSize, quiet)
	if err := engine.Run(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("Query loop failed: %v", err)
	}
}
