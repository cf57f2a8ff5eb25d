package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

const (
	ngrokAttempts = 10
	ngrokInterval = 3 * time.Second
)

// detectNgrokURL returns the public URL of the local ngrok agent, preferring HTTPS.
// The agent may still be starting, so the lookup is retried.
func detectNgrokURL(ctx context.Context, ngrokAPIBase string) (string, error) {
	endpoint := strings.TrimRight(ngrokAPIBase, "/") + "/api/tunnels"
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= ngrokAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(ngrokInterval):
			}
		}

		tunnels, err := fetchTunnels(ctx, client, endpoint)
		if err != nil {
			lastErr = err
			continue
		}
		if u := pickTunnel(tunnels); u != "" {
			return u, nil
		}
		lastErr = fmt.Errorf("no active tunnels")
	}

	return "", fmt.Errorf("ngrok: %w after %d attempts", lastErr, ngrokAttempts)
}

func fetchTunnels(ctx context.Context, client *http.Client, endpoint string) ([]ngrokTunnel, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ngrok API not reachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ngrok API returned %d", resp.StatusCode)
	}

	var out ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode ngrok API response: %w", err)
	}
	return out.Tunnels, nil
}

func pickTunnel(tunnels []ngrokTunnel) string {
	for _, t := range tunnels {
		if t.Proto == "https" {
			return t.PublicURL
		}
	}
	if len(tunnels) > 0 {
		return tunnels[0].PublicURL
	}
	return ""
}
