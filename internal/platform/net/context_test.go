package net

import (
	"context"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequest(context.Background(), "req-42")
	if got := RequestID(ctx); got != "req-42" {
		t.Fatalf("RequestID = %q, want %q", got, "req-42")
	}
	if got := RequestID(context.Background()); got != "" {
		t.Fatalf("RequestID on empty ctx = %q, want empty", got)
	}
}

func TestViewerIDRoundTrip(t *testing.T) {
	ctx := WithViewer(context.Background(), "did:plc:alice")
	if got := ViewerID(ctx); got != "did:plc:alice" {
		t.Fatalf("ViewerID = %q", got)
	}
	if got := ViewerID(context.Background()); got != "" {
		t.Fatalf("ViewerID on empty ctx = %q, want empty", got)
	}
	// empty id is not stored
	if got := ViewerID(WithViewer(context.Background(), "")); got != "" {
		t.Fatalf("empty viewer should not be stored, got %q", got)
	}
}
