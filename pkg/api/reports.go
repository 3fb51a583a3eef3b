package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/paybyte/paybyte-sdk-go/pkg/model"
)

// Balances returns the merchant's funds, one entry per currency.
func (c *Client) Balances(ctx context.Context) ([]model.Balance, error) {
	res, err := call[[]model.Balance](ctx, c, http.MethodGet, "/v1/balances", nil, nil, "")
	if err != nil {
		return nil, err
	}
	return *res, nil
}

// StatsRequest bounds a statistics query. Zero times mean "gateway default
// window" (the current calendar month).
type StatsRequest struct {
	From time.Time
	To   time.Time
}

// Stats returns aggregated payment activity for the requested window.
func (c *Client) Stats(ctx context.Context, req StatsRequest) (*model.Stats, error) {
	q := url.Values{}
	if !req.From.IsZero() {
		q.Set("from", req.From.UTC().Format(time.RFC3339))
	}
	if !req.To.IsZero() {
		q.Set("to", req.To.UTC().Format(time.RFC3339))
	}
	return call[model.Stats](ctx, c, http.MethodGet, "/v1/stats", q, nil, "")
}

// ExchangeRate returns the gateway's current conversion quote between two
// currencies.
func (c *Client) ExchangeRate(ctx context.Context, from, to string) (*model.ExchangeRate, error) {
	if from == "" || to == "" {
		return nil, fmt.Errorf("both currencies are required")
	}
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	return call[model.ExchangeRate](ctx, c, http.MethodGet, "/v1/rates", q, nil, "")
}
