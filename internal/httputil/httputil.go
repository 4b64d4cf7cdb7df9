// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by components that call the
// search service.
package httputil

import (
	"context"
	"net/http"
	"time"

	"github.com/pdiddy/content-screener/pkg/types"
)

// RetryDelay is the fixed pause between fetch attempts. Tests override this
// to avoid real sleeps.
var RetryDelay = 1 * time.Second

const defaultTimeout = 30 * time.Second

// NewClient returns an http.Client with the configured request timeout.
// A zero timeout falls back to 30 s.
func NewClient(cfg types.HTTPConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// Backoff waits RetryDelay before the next attempt, or returns ctx.Err() if
// the context is cancelled first. Once a request is dispatched it is awaited
// to completion or timeout; Backoff is the only point where a caller can
// abort a retrying fetch early.
func Backoff(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(RetryDelay):
		return nil
	}
}
