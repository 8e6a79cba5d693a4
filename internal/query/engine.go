package query

import (
	"bufio"
	"fmt"
	"io"

	"github.com/searchpipe/searchpipe/internal/index"
)

// maxQueryLen bounds one query line, excluding the newline; longer lines
// are truncated at the cap.
const maxQueryLen = 511

// Engine is the interactive query loop over one loaded index and page
// store.
type Engine struct {
	idx   *index.Index
	pages *pageCache
	quiet bool
}

func NewEngine(idx *index.Index, pageDir string, pageCacheSize int, quiet bool) *Engine {
	return &Engine{
		idx:   idx,
		pages: newPageCache(pageCacheSize, pageDir),
		quiet: quiet,
	}
}

// Run reads query lines from in until EOF, writing prompts, results and
// error lines to out. EOF is a normal exit.
func (e *Engine) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		if !e.quiet {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if len(line) > maxQueryLen {
			line = line[:maxQueryLen]
		}
		if line == "" {
			continue
		}
		e.runQuery(line, out)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read query input: %w", err)
	}
	return nil
}

func (e *Engine) runQuery(line string, out io.Writer) {
	tokens, ok := Tokenize(line)
	if !ok || !Validate(tokens) {
		fmt.Fprintln(out, "[invalid query]")
		return
	}
	docs := Evaluate(e.idx, tokens)
	e.fillMetadata(docs)
	sortDocs(docs)
	printDocs(out, docs)
}
