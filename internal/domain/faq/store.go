package faq

import "context"

// Store keeps per-process query counters. Nothing in it outlives the process.
type Store interface {
	IncrementQuery(ctx context.Context, bucket Bucket, canonical, display string) error
	TopQueries(ctx context.Context, bucket Bucket, limit int) ([]TrendingQuery, error)
}

// CatalogSource loads catalog entries, in catalog order, from configuration.
type CatalogSource interface {
	Name() string
	Load(ctx context.Context) ([]Entry, error)
}
