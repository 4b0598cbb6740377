package client

import (
	"net/url"
	"time"
)

// DefaultTimeout bounds the whole round trip of an operation unless
// overridden with WithTimeout.
const DefaultTimeout = 30 * time.Second

type callOptions struct {
	timeout     time.Duration
	queryParams url.Values
}

func defaultCallOptions() callOptions {
	return callOptions{timeout: DefaultTimeout}
}

// CallOption adjusts a single operation; every client method accepts them.
type CallOption func(*callOptions)

// WithTimeout overrides the round-trip timeout for one call.
func WithTimeout(timeout time.Duration) CallOption {
	return func(options *callOptions) {
		options.timeout = timeout
	}
}

// WithQueryParams appends extra URL query parameters to one call.
func WithQueryParams(params url.Values) CallOption {
	return func(options *callOptions) {
		options.queryParams = params
	}
}
