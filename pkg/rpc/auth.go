package rpc

import "net/http"

// HeaderAPIKey is the vendor header carrying the API key.
const HeaderAPIKey = "X-API-KEY"

// AuthConfig holds authentication configuration
type AuthConfig struct {
	APIKey  string            `json:"api_key" yaml:"api_key"`
	Headers map[string]string `json:"headers" yaml:"headers"` // extra headers, sent as-is
}

func setHeaders(req *http.Request, auth *AuthConfig) {
	if auth != nil {
		for k, v := range auth.Headers {
			req.Header.Set(k, v)
		}
		if auth.APIKey != "" {
			req.Header.Set(HeaderAPIKey, auth.APIKey)
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
}
