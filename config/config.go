package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Load reads the named YAML config file from the working directory and
// unmarshals it over the defaults. Missing keys keep their default values.
func Load(filename string) (*Config, error) {
	viper.SetConfigName(filename)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	setDefaults()
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("cannot read the config file %w", err)
	}
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error parsing the config file %w", err)
	}
	return &config, nil
}

func setDefaults() {
	def := Default()
	viper.SetDefault("crawler.workers", def.Crawler.Workers)
	viper.SetDefault("fetcher.timeout", def.Fetcher.Timeout)
	viper.SetDefault("fetcher.useragent", def.Fetcher.UserAgent)
	viper.SetDefault("fetcher.proxyurl", def.Fetcher.ProxyUrl)
	viper.SetDefault("fetcher.proxyenabled", def.Fetcher.ProxyEnabled)
	viper.SetDefault("fetcher.maxbodysize", def.Fetcher.MaxBodySize)
	viper.SetDefault("query.pagecachesize", def.Query.PageCacheSize)
}

func Default() *Config {
	return &Config{
		Crawler: CrawlerConfig{
			Workers: 3,
		},
		Fetcher: FetcherConfig{
			Timeout:     10 * time.Second,
			UserAgent:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36",
			MaxBodySize: 10 << 20,
		},
		Query: QueryConfig{
			PageCacheSize: 256,
		},
	}
}
