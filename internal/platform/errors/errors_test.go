package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestNewAndCode(t *testing.T) {
	err := New(ErrorCodeNotFound, "missing actor")
	if err.Error() != "missing actor" {
		t.Fatalf("Error() = %q, want %q", err.Error(), "missing actor")
	}
	if CodeOf(err) != ErrorCodeNotFound {
		t.Fatalf("CodeOf = %d, want %d", CodeOf(err), ErrorCodeNotFound)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrs.New("boom")
	err := Wrap(cause, ErrorCodeUnavailable, "fetch failed")

	if got := err.Error(); got != "fetch failed: boom" {
		t.Fatalf("Error() = %q", got)
	}
	if !stderrs.Is(err, cause) {
		t.Fatalf("wrapped cause not reachable via errors.Is")
	}
	if Root(err) != cause {
		t.Fatalf("Root did not return the deepest cause")
	}
}

func TestCodeOfForeignError(t *testing.T) {
	if got := CodeOf(stderrs.New("plain")); got != ErrorCodeUnknown {
		t.Fatalf("CodeOf foreign = %d, want Unknown", got)
	}
}

func TestIsCodeThroughWrapping(t *testing.T) {
	inner := RateLimitedf("window exhausted")
	outer := Wrap(inner, ErrorCodeTooManyRequests, "feed call rejected")

	if !IsCode(outer, ErrorCodeTooManyRequests) {
		t.Fatalf("expected TooManyRequests through wrap")
	}
	if !RateLimited(outer) {
		t.Fatalf("RateLimited(outer) = false")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeDataUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeMalformed, http.StatusBadRequest},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeUnknown, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := HTTPStatusCode(tt.code); got != tt.want {
			t.Fatalf("HTTPStatusCode(%d) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestRetryable(t *testing.T) {
	if !Retryable(Unavailablef("upstream 503")) {
		t.Fatalf("transient should be retryable")
	}
	if Retryable(RateLimitedf("limited")) {
		t.Fatalf("rate limited must never be retryable")
	}
	if Retryable(NotFoundf("gone")) {
		t.Fatalf("not found must not be retryable")
	}
}

func TestWireFrom(t *testing.T) {
	w := WireFrom(WithField(Newf(ErrorCodeValidation, "bad input"), "actor"))
	if w.Code != ErrorCodeValidation || w.Field != "actor" || w.Message != "bad input" {
		t.Fatalf("WireFrom = %+v", w)
	}

	if got := WireFrom(nil); got != (Wire{}) {
		t.Fatalf("WireFrom(nil) = %+v, want zero", got)
	}
}

func TestWithOp(t *testing.T) {
	err := WithOp(Unavailablef("x"), "feed.RecentPosts")
	e, ok := As(err)
	if !ok || e.Op() != "feed.RecentPosts" {
		t.Fatalf("WithOp not applied: %+v", err)
	}
}
