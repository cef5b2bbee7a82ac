package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	ngrokAttempts = 10
	ngrokInterval = 3 * time.Second
)

type ngrokTunnels struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// detectNgrokURL asks the local ngrok agent for its public URL, preferring
// https. ngrok may start after us, so the lookup is retried.
func detectNgrokURL(ctx context.Context, apiBase string) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= ngrokAttempts; attempt++ {
		url, err := lookupTunnel(ctx, client, apiBase+"/api/tunnels")
		if err == nil && url != "" {
			return url, nil
		}
		lastErr = err
		if lastErr == nil {
			lastErr = fmt.Errorf("no active tunnels")
		}

		if attempt == ngrokAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(ngrokInterval):
		}
	}

	return "", fmt.Errorf("ngrok tunnel not found after %d attempts: %w", ngrokAttempts, lastErr)
}

func lookupTunnel(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var t ngrokTunnels
	if err := json.NewDecoder(resp.Body).Decode(&t); err != nil {
		return "", fmt.Errorf("decode ngrok response: %w", err)
	}

	for _, tn := range t.Tunnels {
		if tn.Proto == "https" {
			return tn.PublicURL, nil
		}
	}
	if len(t.Tunnels) > 0 {
		return t.Tunnels[0].PublicURL, nil
	}
	return "", nil
}
