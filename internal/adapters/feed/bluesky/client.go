// Package bluesky provides a thin Bluesky AppView XRPC client
//
// The client classifies failures but never retries or throttles on its own;
// resilience policy belongs to the callers that compose it
package bluesky

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	perr "skypulse/internal/platform/errors"
	"skypulse/internal/platform/logger"
)

const (
	baseURLDefault = "https://public.api.bsky.app"
	defaultTimeout = 10 * time.Second
	defaultUA      = "skypulse-analytics"

	maxBody = 1 << 20
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Bearer token for authed calls; empty uses the public AppView
	AccessJWT string
}

// Client is a minimal XRPC query client
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("bluesky"),
		now:  time.Now,
	}
}

// get issues an XRPC query and decodes the JSON response into out
func (c *Client) get(ctx context.Context, nsid string, q url.Values, out any) error {
	u := c.opts.BaseURL + "/xrpc/" + nsid
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "bluesky new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	if c.opts.AccessJWT != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.AccessJWT)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return perr.Unavailablef("bluesky do failed: %v", err)
	}
	defer func() {
		if cerr := drainAndClose(resp.Body); cerr != nil {
			c.log.Error().Err(cerr).Str("nsid", nsid).Msg("bluesky close body failed")
		}
	}()

	rem, reset := parseRateHeaders(resp.Header)
	c.log.Debug().
		Str("nsid", nsid).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Int("rate_remaining", rem).
		Time("rate_reset", reset).
		Msg("bluesky http response")

	if resp.StatusCode != http.StatusOK {
		return statusError(resp, nsid)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return perr.Unavailablef("bluesky read body: %v", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return perr.Malformedf("bluesky decode %s: %v", nsid, err)
	}
	return nil
}

// Ping checks service liveness via the health endpoint
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+"/xrpc/_health", nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "bluesky new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Unavailablef("bluesky health: %v", err)
	}
	defer func() { _ = drainAndClose(resp.Body) }()
	if resp.StatusCode != http.StatusOK {
		return perr.Unavailablef("bluesky health status %d", resp.StatusCode)
	}
	return nil
}
