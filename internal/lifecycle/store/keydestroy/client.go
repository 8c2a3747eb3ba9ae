// Package keydestroy is the client for the external key-management
// service's crypto-shredding primitive. Destroying a user's keys renders
// every ciphertext for them permanently unreadable, wherever the bytes
// live. No circuit breaker here: key destruction is on the critical path
// of every erasure, and a tripped breaker would turn one transient failure
// into minutes of guaranteed FAILED reports.
package keydestroy

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	id "custodian/pkg/domain"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	http *resty.Client
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying resty client. Test hook.
func WithHTTPClient(http *resty.Client) Option {
	return func(c *Client) { c.http = http }
}

// New constructs a key-destruction client for the key service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().SetBaseURL(baseURL).SetTimeout(defaultTimeout),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DestroyKeys irreversibly destroys all encryption keys for the user. The
// key service treats destroying already-destroyed keys as success, so the
// call is safe to repeat.
func (c *Client) DestroyKeys(ctx context.Context, userID id.UserID) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", userID.String()).
		Post("/v1/keys/{id}/destroy")
	if err != nil {
		return fmt.Errorf("destroy keys: %w", err)
	}
	switch resp.StatusCode() {
	case http.StatusOK, http.StatusNoContent:
		return nil
	default:
		return fmt.Errorf("destroy keys: unexpected status %d", resp.StatusCode())
	}
}
