// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/content-screener/pkg/types"
)

func init() {
	// Use a tiny delay so tests finish quickly.
	RetryDelay = 1 * time.Millisecond
}

func TestNewClientTimeout(t *testing.T) {
	c := NewClient(types.HTTPConfig{Timeout: 5 * time.Second})
	assert.Equal(t, 5*time.Second, c.Timeout)

	c = NewClient(types.HTTPConfig{})
	assert.Equal(t, 30*time.Second, c.Timeout)
}

func TestBackoffCompletes(t *testing.T) {
	require.NoError(t, Backoff(context.Background()))
}

func TestBackoffCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Backoff(ctx), context.Canceled)
}
