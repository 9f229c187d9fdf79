package fetch

import (
	"context"
	"fmt"
	"strings"
)

// Source delivers the raw text of one remote export.
type Source interface {
	// Fetch returns the export body for the given source reference.
	Fetch(ctx context.Context, ref string) (string, error)
}

// Router dispatches a source reference to the right fetcher: http(s) URLs go
// over HTTP, anything else is treated as an object key in the configured
// bucket.
type Router struct {
	http   Source
	bucket Source
}

// NewRouter creates a router from the fetch configuration. The bucket source
// is only wired when an object storage endpoint is configured.
func NewRouter(cfg Config) (*Router, error) {
	r := &Router{http: NewHTTPSource(cfg)}

	if cfg.Endpoint != "" {
		bucket, err := NewBucketSource(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket source: %w", err)
		}
		r.bucket = bucket
	}

	return r, nil
}

// Fetch implements Source.
func (r *Router) Fetch(ctx context.Context, ref string) (string, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return r.http.Fetch(ctx, ref)
	}
	if r.bucket == nil {
		return "", fmt.Errorf("no bucket configured for source %q", ref)
	}
	return r.bucket.Fetch(ctx, ref)
}
