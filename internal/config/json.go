package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version       string `json:"version"`
		DebugEndpoint bool   `json:"debug_endpoint"`
	} `json:"app,omitempty"`

	Auth struct {
		BcryptCost    int      `json:"bcrypt_cost"`
		SessionTTL    Duration `json:"session_ttl"`
		SessionIssuer string   `json:"session_issuer"`
		CookieName    string   `json:"cookie_name"`
		CookieSecure  bool     `json:"cookie_secure"`
	} `json:"auth,omitempty"`

	SecretKey string `json:"secret_key"`

	Cloudant struct {
		APIKey            string   `json:"apikey"`
		URL               string   `json:"url"`
		IAMURL            string   `json:"iam_url"`
		ConnectAttempts   int      `json:"connect_attempts"`
		RetryDelay        Duration `json:"retry_delay"`
		CallTimeout       Duration `json:"call_timeout"`
		ReconnectCooldown Duration `json:"reconnect_cooldown"`
		Collections       []string `json:"collections"`
	} `json:"cloudant,omitempty"`

	Fallback struct {
		Driver string `json:"driver"`
		DSN    string `json:"dsn"`
	} `json:"fallback,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	LogLevel string `json:"log_level"`
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
			Version:       jsonCfg.App.Version,
			DebugEndpoint: jsonCfg.App.DebugEndpoint,
		},
		Auth: Auth{
			BcryptCost:    jsonCfg.Auth.BcryptCost,
			SessionTTL:    time.Duration(jsonCfg.Auth.SessionTTL),
			SessionIssuer: jsonCfg.Auth.SessionIssuer,
			CookieName:    jsonCfg.Auth.CookieName,
			CookieSecure:  jsonCfg.Auth.CookieSecure,
		},
		SecretKey: jsonCfg.SecretKey,
		Cloudant: Cloudant{
			APIKey:            jsonCfg.Cloudant.APIKey,
			URL:               jsonCfg.Cloudant.URL,
			IAMURL:            jsonCfg.Cloudant.IAMURL,
			ConnectAttempts:   jsonCfg.Cloudant.ConnectAttempts,
			RetryDelay:        time.Duration(jsonCfg.Cloudant.RetryDelay),
			CallTimeout:       time.Duration(jsonCfg.Cloudant.CallTimeout),
			ReconnectCooldown: time.Duration(jsonCfg.Cloudant.ReconnectCooldown),
			Collections:       jsonCfg.Cloudant.Collections,
		},
		Fallback: Fallback{
			Driver: jsonCfg.Fallback.Driver,
			DSN:    jsonCfg.Fallback.DSN,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		LogLevel:     jsonCfg.LogLevel,
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
