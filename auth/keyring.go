// Package auth provides a high-level API for persisting and retrieving API credentials from the system keyring.
package auth

import (
	"github.com/yleguide/yleguide/constant"
	"github.com/zalando/go-keyring"
)

// Entry names a credential stored in the keyring.
type Entry string

const (
	AppKey Entry = "app-key"
	Secret Entry = "secret"
)

const service = constant.App

// Set persists a credential to the system keyring.
func Set(entry Entry, value string) error {
	return keyring.Set(service, string(entry), value)
}

// Get retrieves a credential from the system keyring.
func Get(entry Entry) (string, error) {
	return keyring.Get(service, string(entry))
}

// Delete removes a credential from the system keyring.
func Delete(entry Entry) error {
	return keyring.Delete(service, string(entry))
}
