package config

import "time"

type Config struct {
	Crawler CrawlerConfig
	Fetcher FetcherConfig
	Query   QueryConfig
}

type CrawlerConfig struct {
	Workers int
}

type FetcherConfig struct {
	Timeout      time.Duration
	UserAgent    string
	ProxyUrl     string
	ProxyEnabled bool
	MaxBodySize  int64
}

type QueryConfig struct {
	PageCacheSize int
}
