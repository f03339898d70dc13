package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarnings(t *testing.T) {
	strongKey := strings.Repeat("k", MinAPIKeyLength)

	tests := []struct {
		name string
		cfg  Config
		want int
	}{
		{"dev defaults are quiet", Config{Environment: "dev", DBPassword: "postgres", APIKey: "short"}, 0},
		{"dev example values", Config{Environment: "dev", DBPassword: ExampleDBPassword, APIKey: ExampleAPIKey}, 2},
		{"prod strong secrets", Config{Environment: "prod", DBPassword: "s3cret!", APIKey: strongKey}, 0},
		{"prod default password", Config{Environment: "prod", DBPassword: "postgres", APIKey: strongKey}, 1},
		{"prod short key", Config{Environment: "prod", DBPassword: "s3cret!", APIKey: "short"}, 1},
		{"prod everything wrong", Config{Environment: "prod", DBPassword: "postgres", APIKey: ExampleAPIKey}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.cfg.Warnings(), tt.want)
		})
	}
}
