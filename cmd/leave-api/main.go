package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"billing-automation/config"
	_ "billing-automation/docs" // Swagger docs
	"billing-automation/internal/httpserver"
	"billing-automation/internal/leave"
	leaveHTTP "billing-automation/internal/leave/delivery/http"
	leaveUC "billing-automation/internal/leave/usecase"
	"billing-automation/internal/webhook"
	"billing-automation/pkg/clickup"
	"billing-automation/pkg/gcalendar"
	"billing-automation/pkg/log"
	"billing-automation/pkg/pushcut"
	"billing-automation/pkg/telegram"
)

// @title       Leave Time API
// @description Computes when to leave for ClickUp appointments and publishes it.
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

	logger.Info(ctx, "Starting leave-api...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	loc, err := time.LoadLocation(cfg.Travel.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Travel.Timezone, err)
		loc = time.UTC
	}

	// 3. ClickUp
	if cfg.ClickUp.APIToken == "" {
		logger.Error(ctx, "CLICKUP_API_TOKEN is required")
		os.Exit(1)
	}
	cu := clickup.NewClient(cfg.ClickUp.APIToken, nil)

	secret := cfg.ClickUp.WebhookSecret
	if cfg.ClickUp.RegisterWebhook {
		registered, regErr := registerWebhook(ctx, logger, cu, cfg.ClickUp, cfg.Ngrok.APIURL)
		if regErr != nil {
			logger.Warnf(ctx, "ClickUp webhook registration failed: %v", regErr)
		} else if secret == "" {
			secret = registered
		}
	}

	// 4. Notification sinks (optional)
	var sinks leaveUC.Sinks
	if cfg.Pushcut.APIKey != "" && cfg.Pushcut.Notification != "" {
		sinks.Push = pushcut.NewClient(cfg.Pushcut.APIKey, nil)
		logger.Infof(ctx, "PushCut enabled (notification %q)", cfg.Pushcut.Notification)
	}
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		sinks.Chat = telegram.NewBot(cfg.Telegram.BotToken, nil)
		logger.Info(ctx, "Telegram enabled")
	}
	if cfg.GoogleCalendar.CredentialsPath != "" {
		cal, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run ./scripts/oauth-bootstrap google` to generate the token file")
		} else {
			sinks.Calendar = cal
			logger.Info(ctx, "Google Calendar enabled")
		}
	}

	// 5. Use case and handlers
	var rules []leave.KeywordRule
	for _, r := range cfg.Travel.Keywords {
		rules = append(rules, leave.KeywordRule{Keyword: r.Keyword, Minutes: r.Minutes})
	}
	uc := leaveUC.New(logger, leave.Config{
		Rules:               rules,
		DefaultMinutes:      cfg.Travel.DefaultMinutes,
		Strategy:            leave.Strategy(cfg.ClickUp.Strategy),
		LeaveFieldID:        cfg.ClickUp.LeaveFieldID,
		Location:            loc,
		PushcutNotification: cfg.Pushcut.Notification,
		TelegramChatID:      cfg.Telegram.ChatID,
		CalendarID:          cfg.GoogleCalendar.CalendarID,
	}, cu, sinks)

	webhookHandler := webhook.NewHandler(uc, webhook.SecurityConfig{
		Secret:          secret,
		AllowedIPs:      cfg.ClickUp.AllowedIPs,
		RateLimitPerMin: cfg.ClickUp.RateLimitPerMin,
	}, logger)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Service:     "leave-api",
		Message:     "ClickUp time-to-leave automation",
		Features: func() map[string]any {
			return map[string]any{
				"strategy":         cfg.ClickUp.Strategy,
				"leaveField":       cfg.ClickUp.LeaveFieldID != "",
				"signatureCheck":   secret != "",
				"pushcut":          sinks.Push != nil,
				"telegram":         sinks.Chat != nil,
				"calendar":         sinks.Calendar != nil,
				"timezone":         loc.String(),
				"customTravelKeys": len(rules),
			}
		},
		Domains: []httpserver.Domain{
			{Name: "clickup webhook", Register: func(r gin.IRouter) {
				webhook.RegisterRoutes(r, webhookHandler)
			}},
			{Name: "leave", Register: func(r gin.IRouter) {
				leaveHTTP.RegisterRoutes(r, leaveHTTP.New(logger, uc))
			}},
		},
		OnShutdown: []func(){webhookHandler.Wait},
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
