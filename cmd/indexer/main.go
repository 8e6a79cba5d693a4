package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/searchpipe/searchpipe/internal/index"
	"github.com/searchpipe/searchpipe/internal/indexer"
	"github.com/searchpipe/searchpipe/internal/webpage"
)

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Println("Usage: indexer <pagedir> <indexnm>")
		os.Exit(1)
	}
	pageDir := flag.Arg(0)
	indexFile := flag.Arg(1)

	info, err := os.Stat(pageDir)
	if err != nil || !info.IsDir() {
		log.Fatalf("Page directory %s doesn't exist", pageDir)
	}

	ix := indexer.New(webpage.ExtractWords)
	idx, err := ix.Build(pageDir)
	if err != nil {
		log.Fatalf("Failed to build index: %v", err)
	}
	if err := index.Save(idx, indexFile); err != nil {
		log.Fatalf("Failed to save index: %v", err)
	}
}
