package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly field
// types, so durations can be written as "30s" strings in the config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Stripe struct {
		SecretKey      string   `json:"secret_key"`
		PublishableKey string   `json:"publishable_key"`
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"stripe,omitempty"`

	Cache struct {
		Addr     string   `json:"address"`
		Password string   `json:"password"`
		DB       int      `json:"db"`
		TTL      Duration `json:"ttl"`
	} `json:"cache,omitempty"`

	Events struct {
		Brokers []string `json:"brokers"`
	} `json:"events,omitempty"`

	Workers struct {
		StatusRefreshSpec string   `json:"status_refresh_spec"`
		InactivityCutoff  Duration `json:"inactivity_cutoff"`
		ReconcileSpec     string   `json:"reconcile_spec"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Stripe: Stripe{
			SecretKey:      jsonCfg.Stripe.SecretKey,
			PublishableKey: jsonCfg.Stripe.PublishableKey,
			BaseURL:        jsonCfg.Stripe.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Stripe.RequestTimeout),
		},
		Cache: Cache{
			Addr:     jsonCfg.Cache.Addr,
			Password: jsonCfg.Cache.Password,
			DB:       jsonCfg.Cache.DB,
			TTL:      time.Duration(jsonCfg.Cache.TTL),
		},
		Events: Events{
			Brokers: jsonCfg.Events.Brokers,
		},
		Workers: Workers{
			StatusRefreshSpec: jsonCfg.Workers.StatusRefreshSpec,
			InactivityCutoff:  time.Duration(jsonCfg.Workers.InactivityCutoff),
			ReconcileSpec:     jsonCfg.Workers.ReconcileSpec,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
