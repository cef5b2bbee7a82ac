package main

import (
	"context"
	"errors"
	"strings"

	"billing-automation/config"
	"billing-automation/pkg/clickup"
	"billing-automation/pkg/log"
)

const webhookPath = "/clickup-webhook"

var webhookEvents = []string{"taskCreated", "taskUpdated"}

type webhookRegistrar interface {
	ListWebhooks(ctx context.Context, teamID string) ([]clickup.Webhook, error)
	CreateWebhook(ctx context.Context, teamID, endpoint string, events []string) (*clickup.Webhook, error)
}

// registerWebhook makes sure a ClickUp webhook points at this service and
// returns its signing secret. The endpoint is the configured URL, else the
// ngrok tunnel.
func registerWebhook(ctx context.Context, l log.Logger, cu webhookRegistrar, cfg config.ClickUpConfig, ngrokAPI string) (string, error) {
	if cfg.TeamID == "" {
		return "", errors.New("CLICKUP_TEAM_ID is required to register the webhook")
	}

	endpoint := cfg.WebhookURL
	if endpoint == "" {
		if ngrokAPI == "" {
			return "", errors.New("no webhook URL configured and tunnel detection disabled")
		}
		tunnel, err := detectNgrokURL(ctx, ngrokAPI)
		if err != nil {
			return "", err
		}
		endpoint = strings.TrimRight(tunnel, "/") + webhookPath
		l.Infof(ctx, "Auto-detected ngrok URL: %s", endpoint)
	}

	existing, err := cu.ListWebhooks(ctx, cfg.TeamID)
	if err != nil {
		return "", err
	}
	for _, wh := range existing {
		if wh.Endpoint == endpoint {
			l.Infof(ctx, "ClickUp webhook %s already registered at %s", wh.ID, endpoint)
			return wh.Secret, nil
		}
	}

	wh, err := cu.CreateWebhook(ctx, cfg.TeamID, endpoint, webhookEvents)
	if err != nil {
		return "", err
	}
	l.Infof(ctx, "ClickUp webhook %s registered at %s", wh.ID, endpoint)
	return wh.Secret, nil
}
