// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyViewerID ctxKey = "viewer_id"

// WithRequest annotates context with the request id
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return ctx
}

// WithViewer annotates context with the resolved viewer actor id
func WithViewer(ctx context.Context, viewerID string) context.Context {
	if viewerID != "" {
		ctx = context.WithValue(ctx, keyViewerID, viewerID)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// ViewerID returns the viewer actor id on the context if present
func ViewerID(ctx context.Context) string {
	if v, ok := ctx.Value(keyViewerID).(string); ok {
		return v
	}
	return ""
}
