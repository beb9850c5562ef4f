// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acemap

import "fmt"

// UpstreamError reports a transport failure or a non-2xx response from the
// Acemap API. The call is not retried; orchestrating layers decide whether
// to degrade or propagate.
type UpstreamError struct {
	// Endpoint is the search type that failed ("work", "author", "institution").
	Endpoint string

	// StatusCode is the HTTP status, or 0 for transport failures.
	StatusCode int

	// Err is the underlying transport error, nil for status failures.
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("acemap %s search: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("acemap %s search: HTTP %d", e.Endpoint, e.StatusCode)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// DecodeError reports a well-delivered but malformed response body.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("acemap %s search: decoding response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ConfigurationError reports an invalid request from the caller: an
// unknown search type, an out-of-range page or size, or an unsupported
// sort key.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string { return e.Reason }
