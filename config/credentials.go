package config

import (
	"errors"

	"github.com/spf13/viper"
	"github.com/yleguide/yleguide/auth"
	"github.com/yleguide/yleguide/key"
	"github.com/yleguide/yleguide/log"
)

// ErrMissingCredentials is returned when no app id/key pair is configured.
var ErrMissingCredentials = errors.New("api credentials are not configured, run \"yleguide auth set\" or set api.app_id and api.app_key")

// Credentials is the static key material for the upstream API.
type Credentials struct {
	AppID  string
	AppKey string
	Secret string
}

// LoadCredentials resolves credentials from viper first and the system keyring second.
func LoadCredentials() (Credentials, error) {
	c := Credentials{
		AppID:  viper.GetString(key.APIAppID),
		AppKey: viper.GetString(key.APIAppKey),
		Secret: viper.GetString(key.APISecret),
	}

	if c.AppKey == "" {
		if v, err := auth.Get(auth.AppKey); err == nil {
			c.AppKey = v
		} else {
			log.Debugf("keyring app key: %v", err)
		}
	}

	if c.Secret == "" {
		if v, err := auth.Get(auth.Secret); err == nil {
			c.Secret = v
		} else {
			log.Debugf("keyring secret: %v", err)
		}
	}

	if c.AppID == "" || c.AppKey == "" {
		return c, ErrMissingCredentials
	}

	return c, nil
}
