package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/yleguide/yleguide/config"
	"github.com/yleguide/yleguide/guide"
	"github.com/yleguide/yleguide/key"
	"github.com/yleguide/yleguide/network"
	"github.com/yleguide/yleguide/router"
	"github.com/yleguide/yleguide/stream"
	"github.com/yleguide/yleguide/yle"
)

// app holds the catalog fetcher and stream resolver built from configuration.
type app struct {
	fetcher  *guide.Fetcher
	resolver *stream.Resolver
	timeout  time.Duration
}

func newApp() (*app, error) {
	credentials, err := config.LoadCredentials()
	if err != nil {
		return nil, err
	}

	timeout, err := time.ParseDuration(viper.GetString(key.APITimeout))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key.APITimeout, err)
	}

	httpClient := network.New(timeout, viper.GetBool(key.NetworkFingerprint))
	client, err := yle.NewClient(
		httpClient,
		viper.GetString(key.APIBaseURL),
		credentials.AppID,
		credentials.AppKey,
		yle.WithRateLimit(viper.GetFloat64(key.APIRateLimit)),
	)
	if err != nil {
		return nil, err
	}

	fetcher := guide.NewFetcher(client, guide.NewState(), guide.Options{
		ServiceType:   viper.GetString(key.APIServiceType),
		WindowStart:   viper.GetInt(key.APIWindowStart),
		WindowEnd:     viper.GetInt(key.APIWindowEnd),
		PersonalQuery: viper.GetString(key.PersonalQuery),
		Locales:       viper.GetStringSlice(key.APILocales),
	})

	return &app{
		fetcher:  fetcher,
		resolver: stream.NewResolver(client, credentials.Secret, stream.WithVariants(network.Client)),
		timeout:  timeout,
	}, nil
}

func (a *app) router(views router.Views) *router.Router {
	return router.New(a.fetcher, a.resolver, views, a.timeout)
}
