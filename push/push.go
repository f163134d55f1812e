// Package push decodes the Web Push application server key used when
// subscribing to notifications.
package push

import (
	"crypto/ecdh"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// KeySize is the length of an uncompressed P-256 public key.
const KeySize = 65

var ErrEmptyKey = errors.New("application server key is empty")

// DecodeApplicationServerKey decodes a URL-safe base64 VAPID public key,
// with or without padding, and checks that it is a point on P-256.
func DecodeApplicationServerKey(key string) ([]byte, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrEmptyKey
	}

	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(key, "="))
	if err != nil {
		return nil, fmt.Errorf("decode application server key: %w", err)
	}

	if len(raw) != KeySize || raw[0] != 0x04 {
		return nil, fmt.Errorf("application server key must be a %d-byte uncompressed point, got %d bytes", KeySize, len(raw))
	}

	if _, err := ecdh.P256().NewPublicKey(raw); err != nil {
		return nil, fmt.Errorf("application server key: %w", err)
	}

	return raw, nil
}

// EncodeApplicationServerKey is the inverse of DecodeApplicationServerKey.
func EncodeApplicationServerKey(raw []byte) string {
	return base64.RawURLEncoding.EncodeToString(raw)
}
