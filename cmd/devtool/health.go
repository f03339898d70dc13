package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"time"
)

const slowHealthThreshold = time.Second

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check /healthz and /readyz of a running server"
}

func (c *HealthCheckCommand) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	baseURL := fs.String("url", "http://localhost:8080", "Server base URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", *baseURL))
	client := &http.Client{Timeout: 5 * time.Second}

	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		if err := checkEndpoint(ctx, client, *baseURL+path); err != nil {
			PrintError("%s failed: %v", path, err)
			return err
		}
		if d := time.Since(start); d > slowHealthThreshold {
			PrintWarning("%s slow response time (%v)", path, d)
		} else {
			PrintSuccess("%s passed (%v)", path, d)
		}
	}
	return nil
}

func checkEndpoint(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status code %d", resp.StatusCode)
	}
	return nil
}
