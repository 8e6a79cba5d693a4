package webpage

import (
	"fmt"
	httpUrl "net/url"
	"strings"
)

// Classifier decides whether a URL belongs to the crawl domain. A URL is
// internal iff its scheme and host match the seed URL's.
type Classifier struct {
	scheme string
	host   string
}

func NewClassifier(seedUrl string) (*Classifier, error) {
	u, err := httpUrl.Parse(seedUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("seed url %q has no scheme or host", seedUrl)
	}
	return &Classifier{
		scheme: strings.ToLower(u.Scheme),
		host:   strings.ToLower(u.Host),
	}, nil
}

func (c *Classifier) IsInternal(rawUrl string) bool {
	u, err := httpUrl.Parse(rawUrl)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Scheme, c.scheme) && strings.EqualFold(u.Host, c.host)
}
