package registry

import (
	"context"
	"log/slog"
	"time"

	"estagio-gateway/internal/registry/metrics"
	"estagio-gateway/pkg/documents"
)

// Store is the cache the CachedClient consults before the network.
// Implementations live in the store subpackage.
type Store interface {
	Find(ctx context.Context, cnpj string) (LookupResult, error)
	Save(ctx context.Context, cnpj string, result LookupResult) error
}

// CachedClient wraps a Client with a lookup cache. Only found results are
// cached; not-found and failure outcomes always retry the registry on the
// next document so a transient upstream problem never sticks.
type CachedClient struct {
	client  Client
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewCachedClient wires a client with a cache store.
func NewCachedClient(client Client, store Store, logger *slog.Logger, m *metrics.Metrics) *CachedClient {
	return &CachedClient{client: client, store: store, logger: logger, metrics: m}
}

func (c *CachedClient) LookupOrg(ctx context.Context, cnpj string) (LookupResult, error) {
	normalized := documents.FormatCNPJ(cnpj)

	if cached, err := c.store.Find(ctx, normalized); err == nil {
		c.metrics.IncrementCache("hit")
		return cached, nil
	}
	c.metrics.IncrementCache("miss")

	start := time.Now()
	result, err := c.client.LookupOrg(ctx, normalized)
	if err != nil {
		return result, err
	}
	c.metrics.ObserveLookup(string(result.Status), time.Since(start))

	if result.Found() {
		if err := c.store.Save(ctx, normalized, result); err != nil && c.logger != nil {
			// Cache failures are not lookup failures.
			c.logger.WarnContext(ctx, "registry cache save failed",
				"cnpj", documents.MaskCNPJ(normalized),
				"error", err,
			)
		}
	}
	return result, nil
}
