// Package api implements the typed client for the StockLens product API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stocklens/stocklens-mobile/internal/catalog"
	"github.com/stocklens/stocklens-mobile/internal/observability"
)

// Operation labels used for client metrics.
const (
	opFetchProduct      = "fetch_product"
	opFetchBatchSummary = "fetch_batch_summary"
	opDeleteProduct     = "delete_product"
	opLookupBarcode     = "lookup_barcode"
)

// Client talks to the product API. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
	metrics *observability.Metrics
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (tests, transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithMetrics wires call-outcome counters.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient builds a Client for the API at baseURL. The timeout applies
// per request.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchProduct returns one product by identifier.
func (c *Client) FetchProduct(ctx context.Context, id string) (catalog.Product, error) {
	var product catalog.Product
	if id == "" {
		return product, fmt.Errorf("api: product id required")
	}
	err := c.do(ctx, http.MethodGet, "/api/v1/products/"+url.PathEscape(id), &product)
	c.metrics.RecordAPICall(opFetchProduct, err)
	if err != nil {
		return catalog.Product{}, c.translate(err, catalog.ErrProductNotFound)
	}
	return product, nil
}

// FetchBatchSummary returns the batch aggregate for a product.
func (c *Client) FetchBatchSummary(ctx context.Context, productID string) (catalog.BatchSummary, error) {
	var summary catalog.BatchSummary
	if productID == "" {
		return summary, fmt.Errorf("api: product id required")
	}
	err := c.do(ctx, http.MethodGet, "/api/v1/products/"+url.PathEscape(productID)+"/batches/summary", &summary)
	c.metrics.RecordAPICall(opFetchBatchSummary, err)
	if err != nil {
		return catalog.BatchSummary{}, c.translate(err, catalog.ErrBatchesNotFound)
	}
	return summary, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("api: product id required")
	}
	err := c.do(ctx, http.MethodDelete, "/api/v1/products/"+url.PathEscape(id), nil)
	c.metrics.RecordAPICall(opDeleteProduct, err)
	if err != nil {
		return c.translate(err, catalog.ErrProductNotFound)
	}
	return nil
}

// LookupBarcode resolves a scanned barcode to a product.
func (c *Client) LookupBarcode(ctx context.Context, code string) (catalog.Product, error) {
	var product catalog.Product
	if !catalog.ValidBarcode(code) {
		return product, fmt.Errorf("api: %w: barcode %q", catalog.ErrValidation, code)
	}
	err := c.do(ctx, http.MethodGet, "/api/v1/products/barcode/"+url.PathEscape(code), &product)
	c.metrics.RecordAPICall(opLookupBarcode, err)
	if err != nil {
		return catalog.Product{}, c.translate(err, catalog.ErrProductNotFound)
	}
	return product, nil
}

// do performs one request and decodes a 2xx JSON body into out (out may be
// nil for responses without a body).
func (c *Client) do(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeProblem(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode %s %s: %w", method, path, err)
	}
	return nil
}

// translate maps a 404 problem onto the matching sentinel and logs
// everything else at debug level for the caller to handle.
func (c *Client) translate(err error, notFound error) error {
	var problem *Problem
	if errors.As(err, &problem) && problem.Status == http.StatusNotFound {
		return fmt.Errorf("%w: %s", notFound, problem.UserMessage())
	}
	if c.logger != nil {
		c.logger.Debug("product api call failed", slog.Any("error", err))
	}
	return err
}
