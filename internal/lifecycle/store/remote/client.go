// Package remote adapts HTTP-fronted backends (graph, vector, and
// conversational memory stores) to the backend adapter contract. These
// stores are non-critical for erasure, so each client sits behind a
// circuit breaker: a flapping backend fails fast and shows up in the
// report as a named failure instead of stalling the whole walk.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"

	"custodian/internal/lifecycle/ports"
	id "custodian/pkg/domain"
	"custodian/pkg/platform/sentinel"
)

const defaultTimeout = 10 * time.Second

// Client is a generic adapter over the shared lifecycle HTTP contract:
//
//	GET    {base}/v1/users/{id}/data  -> 200 payload | 204 empty
//	DELETE {base}/v1/users/{id}       -> 204 (idempotent)
type Client struct {
	name    string
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker[*resty.Response]
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying resty client. Test hook.
func WithHTTPClient(http *resty.Client) Option {
	return func(c *Client) { c.http = http }
}

// NewGraph constructs the graph-store adapter.
func NewGraph(baseURL string, opts ...Option) *Client {
	return newClient(ports.ComponentGraphStore, baseURL, opts...)
}

// NewVector constructs the vector-store adapter.
func NewVector(baseURL string, opts ...Option) *Client {
	return newClient(ports.ComponentVectorStore, baseURL, opts...)
}

// NewMemory constructs the conversational-memory-store adapter.
func NewMemory(baseURL string, opts ...Option) *Client {
	return newClient(ports.ComponentMemoryStore, baseURL, opts...)
}

func newClient(name, baseURL string, opts ...Option) *Client {
	c := &Client{
		name: name,
		http: resty.New().SetBaseURL(baseURL).SetTimeout(defaultTimeout),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.breaker = gobreaker.NewCircuitBreaker[*resty.Response](gobreaker.Settings{
		Name: name,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		Timeout: 30 * time.Second,
	})
	return c
}

func (c *Client) Name() string {
	return c.name
}

// breakerErr marks fail-fast rejections as unavailability so callers can
// tell a shedding backend from a broken one.
func breakerErr(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", sentinel.ErrUnavailable, err)
	}
	return err
}

// Export fetches the backend's data for the user, or (nil, nil) when the
// backend holds nothing for them.
func (c *Client) Export(ctx context.Context, userID id.UserID) (json.RawMessage, error) {
	resp, err := c.breaker.Execute(func() (*resty.Response, error) {
		return c.http.R().
			SetContext(ctx).
			SetPathParam("id", userID.String()).
			Get("/v1/users/{id}/data")
	})
	if err != nil {
		return nil, fmt.Errorf("%s export: %w", c.name, breakerErr(err))
	}
	switch resp.StatusCode() {
	case http.StatusOK:
		body := resp.Body()
		if len(body) == 0 {
			return nil, nil
		}
		return json.RawMessage(body), nil
	case http.StatusNoContent, http.StatusNotFound:
		// Absence is not a failure.
		return nil, nil
	default:
		return nil, fmt.Errorf("%s export: unexpected status %d", c.name, resp.StatusCode())
	}
}

// Delete removes the backend's data for the user. A 404 counts as success
// so repeated erasures stay idempotent.
func (c *Client) Delete(ctx context.Context, userID id.UserID) error {
	resp, err := c.breaker.Execute(func() (*resty.Response, error) {
		return c.http.R().
			SetContext(ctx).
			SetPathParam("id", userID.String()).
			Delete("/v1/users/{id}")
	})
	if err != nil {
		return fmt.Errorf("%s delete: %w", c.name, breakerErr(err))
	}
	switch resp.StatusCode() {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	default:
		return fmt.Errorf("%s delete: unexpected status %d", c.name, resp.StatusCode())
	}
}
