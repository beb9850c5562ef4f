// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"net/http"

	"golang.org/x/time/rate"
)

// Do executes a single HTTP request after waiting for the rate limiter.
// A nil limiter passes the request straight through. The request is not
// retried: upstream failures must surface immediately so orchestrating
// layers can isolate them per channel. If the context is cancelled while
// waiting for a token the function returns ctx.Err().
func Do(ctx context.Context, client *http.Client, limiter *rate.Limiter, req *http.Request) (*http.Response, error) {
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	return client.Do(req.Clone(ctx))
}
