package webpage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/searchpipe/searchpipe/config"
)

type Fetcher struct {
	client      *http.Client
	headers     http.Header
	maxBodySize int64
}

func NewFetcher(cfg *config.FetcherConfig) *Fetcher {
	transport := &http.Transport{
		MaxIdleConnsPerHost: 10,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		DisableKeepAlives:   false,
		DisableCompression:  false,
	}
	if cfg.ProxyEnabled {
		proxyUrl, err := url.Parse(cfg.ProxyUrl)
		if err == nil {
			transport.Proxy = http.ProxyURL(proxyUrl)
		} else {
			fmt.Printf("failed to load the proxy : %s. Please check the config file\n", cfg.ProxyUrl)
		}
	}
	client := &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}
	headers := http.Header{
		"User-Agent":      []string{cfg.UserAgent},
		"Accept":          []string{"text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"},
		"Accept-Language": []string{"en-US,en;q=0.5"},
		"Connection":      []string{"keep-alive"},
	}
	return &Fetcher{
		client:      client,
		headers:     headers,
		maxBodySize: cfg.MaxBodySize,
	}
}

// Fetch retrieves url and returns its body. Bodies larger than the
// configured cap are truncated at the cap.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	for key, vals := range f.headers {
		for _, val := range vals {
			req.Header.Add(key, val)
		}
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bad response status: %s", resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}
