// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Defaults applied by validate when a field was left unset by every source.
const (
	defaultHTTPAddress       = "localhost:8080"
	defaultTokenIssuer       = "gymdesk"
	defaultTokenDuration     = 24 * time.Hour
	defaultRequestTimeout    = 30 * time.Second
	defaultStatusRefreshSpec = "0 3 * * *"
	defaultInactivityCutoff  = 30 * 24 * time.Hour
	defaultReconcileSpec     = "30 * * * *"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, filling defaults for
// optional fields.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}
	if cfg.Stripe.SecretKey == "" {
		return ErrInvalidStripeConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Workers.StatusRefreshSpec == "" {
		cfg.Workers.StatusRefreshSpec = defaultStatusRefreshSpec
	}
	if cfg.Workers.InactivityCutoff == 0 {
		cfg.Workers.InactivityCutoff = defaultInactivityCutoff
	}
	if cfg.Workers.ReconcileSpec == "" {
		cfg.Workers.ReconcileSpec = defaultReconcileSpec
	}

	return nil
}
