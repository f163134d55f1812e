// Package network builds the HTTP clients used to talk to the upstream API.
package network

import (
	"net/http"
	"time"
)

// Client is the shared client for requests outside the API client, such as HLS playlists.
var Client = New(time.Minute, false)

// New returns a client with a tuned connection pool.
// With fingerprint set, TLS handshakes present a browser ClientHello.
func New(timeout time.Duration, fingerprint bool) *http.Client {
	var transport http.RoundTripper = newTransport()
	if fingerprint {
		transport = NewFingerprintTransport()
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 32
	t.MaxIdleConnsPerHost = 8
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = time.Second
	return t
}
