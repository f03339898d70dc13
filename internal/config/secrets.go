package config

import "fmt"

// MinAPIKeyLength is the shortest API key accepted without a warning
const MinAPIKeyLength = 32

// Example values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
	defaultDBPassword = "postgres"
)

// Warnings reports weak or example secrets left in place. Development
// environments only get warnings for example values.
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if c.IsDevelopment() {
		return warnings
	}

	if c.DBPassword == defaultDBPassword {
		warnings = append(warnings, "DB_PASSWORD is the postgres default outside development")
	}
	if len(c.APIKey) < MinAPIKeyLength {
		warnings = append(warnings, fmt.Sprintf("API_KEY is shorter than %d characters", MinAPIKeyLength))
	}
	return warnings
}
