package bluesky

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	perr "skypulse/internal/platform/errors"
)

// xrpcError is the standard XRPC error body
type xrpcError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// statusError maps a non-200 XRPC response to a classified error
func statusError(resp *http.Response, nsid string) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	var xe xrpcError
	_ = json.Unmarshal(b, &xe)
	msg := xe.Message
	if msg == "" {
		msg = xe.Error
	}
	if msg == "" {
		msg = string(b)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return perr.RateLimitedf("bluesky rate limited on %s: %s", nsid, msg)
	case resp.StatusCode == http.StatusNotFound:
		return perr.NotFoundf("bluesky %s: %s", nsid, msg)
	case resp.StatusCode == http.StatusBadRequest:
		// the AppView answers 400 for unknown actors too
		if xe.Error == "InvalidRequest" && msg != "" {
			return perr.Malformedf("bluesky %s: %s", nsid, msg)
		}
		return perr.Malformedf("bluesky %s status 400: %s", nsid, msg)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return perr.Unauthorizedf("bluesky %s status %d: %s", nsid, resp.StatusCode, msg)
	case resp.StatusCode >= 500:
		return perr.Unavailablef("bluesky %s status %d", nsid, resp.StatusCode)
	default:
		return perr.Newf(perr.ErrorCodeUnknown, "bluesky %s unexpected status %d body %s", nsid, resp.StatusCode, msg)
	}
}

func parseRateHeaders(h http.Header) (remaining int, reset time.Time) {
	remaining = atoi(h.Get("RateLimit-Remaining"))
	if s := h.Get("RateLimit-Reset"); s != "" {
		if sec := atoi(s); sec > 0 {
			reset = time.Unix(int64(sec), 0).UTC()
		}
	}
	return
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	i, _ := strconv.Atoi(s)
	return i
}

func pageQuery(actor, cursor string, limit int) url.Values {
	q := url.Values{"actor": {actor}}
	pageParams(q, cursor, limit)
	return q
}

// errKind buckets a classified error for metric labels
func errKind(err error) string {
	switch {
	case perr.RateLimited(err):
		return "rate_limited"
	case perr.Retryable(err):
		return "transient"
	case perr.IsCode(err, perr.ErrorCodeNotFound):
		return "not_found"
	case perr.IsCode(err, perr.ErrorCodeMalformed):
		return "malformed"
	default:
		return "other"
	}
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
