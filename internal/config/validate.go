package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
//
// Missing store credentials are caught here, at boot, rather than turning
// every request into a 500: there is no point starting a tracker that
// cannot reach its record store.
func (c *Config) Validate() error {
	if c.Airtable.BaseID == "" || c.Airtable.APIKey == "" {
		return fmt.Errorf("airtable: base_id and api_key are required")
	}

	if c.Auth.JWTSecret != "" && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("upload.max_bytes must be > 0 (got %d)", c.Upload.MaxBytes)
	}

	if c.Server.RateLimitPerMinute <= 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be > 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	return nil
}
