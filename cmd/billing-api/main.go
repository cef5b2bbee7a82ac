package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"billing-automation/config"
	_ "billing-automation/docs" // Swagger docs
	billingHTTP "billing-automation/internal/billing/delivery/http"
	billingUC "billing-automation/internal/billing/usecase"
	"billing-automation/internal/goal"
	goalHTTP "billing-automation/internal/goal/delivery/http"
	goalUC "billing-automation/internal/goal/usecase"
	"billing-automation/internal/httpserver"
	oauthHTTP "billing-automation/internal/oauth/delivery/http"
	oauthUC "billing-automation/internal/oauth/usecase"
	"billing-automation/pkg/airtable"
	"billing-automation/pkg/hookclient"
	"billing-automation/pkg/keap"
	"billing-automation/pkg/log"
	"billing-automation/pkg/metrics"
	"billing-automation/pkg/tokenstore"
)

// @title       Billing Automation API
// @description Next billing date calculation with Airtable, webhook and Keap goal integrations.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting billing-api...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Keap credentials and client
	tokens := tokenstore.New(tokenstore.Config{
		ClientID:     cfg.Keap.ClientID,
		ClientSecret: cfg.Keap.ClientSecret,
		RedirectURL:  cfg.Keap.RedirectURI,
		AuthURL:      keap.AuthURL,
		TokenURL:     keap.TokenURL,
		Scopes:       []string{keap.OAuthScope},
		LegacyAPIKey: cfg.Keap.APIToken,
		AccessToken:  cfg.Keap.AccessToken,
		RefreshToken: cfg.Keap.RefreshToken,
	}, logger, tokenstore.WithRefreshHook(func(_ tokenstore.State, err error) {
		metrics.TokenRefreshes.WithLabelValues(metrics.Outcome(err)).Inc()
	}))
	keapClient := keap.NewClient(tokens, nil)

	if tokens.OAuthConfigured() {
		logger.Info(ctx, "Keap OAuth configured")
	} else if tokens.HasLegacyKey() {
		logger.Info(ctx, "Keap OAuth not configured, using legacy API key")
	} else {
		logger.Warn(ctx, "Keap not configured: goals will fail until /oauth/authorize is completed or KEAP_API_TOKEN is set")
	}

	// 4. Optional integrations
	var records billingUC.RecordStore
	if cfg.Airtable.APIKey != "" && cfg.Airtable.BaseID != "" {
		records = airtable.NewClient(cfg.Airtable.APIKey, cfg.Airtable.BaseID, cfg.Airtable.TableName, nil)
		logger.Infof(ctx, "Airtable enabled (table %q)", cfg.Airtable.TableName)
	} else {
		logger.Info(ctx, "Airtable skipped: AIRTABLE_API_KEY or AIRTABLE_BASE_ID is missing")
	}

	var notifier billingUC.Notifier
	if cfg.Webhook.URL != "" {
		notifier = hookclient.NewClient(cfg.Webhook.URL, nil)
		logger.Info(ctx, "Outbound webhook enabled")
	}

	// 5. Use cases
	goals := goalUC.New(logger, keapClient, tokens, goal.Defaults{
		SuccessGoalID:    cfg.Keap.SuccessGoalID,
		ErrorGoalID:      cfg.Keap.ErrorGoalID,
		Integration:      cfg.Keap.Integration,
		DiscoveryTimeout: cfg.Keap.DiscoveryTimeout,
	})
	billing := billingUC.New(logger, records, notifier, goals)
	oauth := oauthUC.New(logger, tokens, keapClient)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Service:     "billing-api",
		Message:     "Billing date calculator with Keap goal integration",
		Features: func() map[string]any {
			st := tokens.Snapshot()
			hasTokens := st.AccessToken != "" && st.RefreshToken != ""
			return map[string]any{
				"airtable": records != nil,
				"webhook":  notifier != nil,
				"keapGoals": map[string]any{
					"enabled":            st.AccessToken != "" || tokens.HasLegacyKey(),
					"oauth_configured":   tokens.OAuthConfigured(),
					"oauth_tokens":       hasTokens,
					"automatic_refresh":  hasTokens,
					"goalDiscovery":      true,
					"defaultSuccessGoal": cfg.Keap.SuccessGoalID != "",
					"defaultErrorGoal":   cfg.Keap.ErrorGoalID != "",
					"circuitBreaker":     keapClient.BreakerState(),
				},
			}
		},
		Domains: []httpserver.Domain{
			{Name: "billing", Register: func(r gin.IRouter) {
				billingHTTP.RegisterRoutes(r, billingHTTP.New(logger, billing))
			}},
			{Name: "goals", Register: func(r gin.IRouter) {
				goalHTTP.RegisterRoutes(r, goalHTTP.New(logger, goals))
			}},
			{Name: "oauth", Register: func(r gin.IRouter) {
				oauthHTTP.RegisterRoutes(r, oauthHTTP.New(logger, oauth, cfg.Keap.RedirectURI))
			}},
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
