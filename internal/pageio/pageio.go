// Package pageio saves and loads the crawler's numbered page files.
//
// A page file is named by its decimal page ID and laid out as:
//
//	<url>\n
//	<depth>\n
//	<html-length>\n
//	<html bytes, exactly html-length of them>
package pageio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/searchpipe/searchpipe/models"
)

// Save writes page to <dir>/<id>.
func Save(page *models.Page, id int, dir string) error {
	if page == nil {
		return errors.New("nil page")
	}
	path := filepath.Join(dir, strconv.Itoa(id))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create page file for url %s: %w", page.URL, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "%s\n%d\n%d\n%s", page.URL, page.Depth, len(page.HTML), page.HTML)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write page file %s: %w", path, err)
	}
	return nil
}

// Load reads <dir>/<id> back into a page. The html-length header bounds the
// HTML read; a file shorter than its header yields the truncated HTML.
func Load(id int, dir string) (*models.Page, error) {
	path := filepath.Join(dir, strconv.Itoa(id))
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open page file %s: %w", path, err)
	}
	defer file.Close()

	r := bufio.NewReader(file)
	url, err := readLine(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read url from page file %d: %w", id, err)
	}
	depth, err := readIntLine(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read depth from page file %d: %w", id, err)
	}
	length, err := readIntLine(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read html length from page file %d: %w", id, err)
	}

	html := make([]byte, length)
	n, err := io.ReadFull(r, html)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read html from page file %d: %w", id, err)
	}
	return models.NewPage(url, depth, string(html[:n])), nil
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func readIntLine(r *bufio.Reader) (int, error) {
	line, err := readLine(r)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", line, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}
