package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration. Every integration is optional and
// disables itself when its credentials are empty.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Billing service
	Keap     KeapConfig
	Airtable AirtableConfig
	Webhook  OutboundWebhookConfig

	// Leave service
	ClickUp        ClickUpConfig
	Pushcut        PushcutConfig
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
	Travel         TravelConfig
	Ngrok          NgrokConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int    `validate:"min=1,max=65535"`
	Mode string `validate:"oneof=debug release test"`
}

type LoggerConfig struct {
	Level        string `validate:"oneof=debug info warn error"`
	Mode         string
	Encoding     string `validate:"oneof=console json"`
	ColorEnabled bool
}

type KeapConfig struct {
	ClientID         string
	ClientSecret     string
	RedirectURI      string
	APIToken         string // legacy service key
	AccessToken      string
	RefreshToken     string
	SuccessGoalID    string
	ErrorGoalID      string
	Integration      string
	DiscoveryTimeout time.Duration
}

type AirtableConfig struct {
	APIKey    string
	BaseID    string
	TableName string
}

// OutboundWebhookConfig is the generic webhook the billing result is posted to.
type OutboundWebhookConfig struct {
	URL string `validate:"omitempty,url"`
}

type ClickUpConfig struct {
	APIToken        string
	LeaveFieldID    string
	Strategy        string `validate:"oneof=field subtask"`
	WebhookSecret   string
	TeamID          string
	RegisterWebhook bool
	WebhookURL      string `validate:"omitempty,url"`
	AllowedIPs      []string
	RateLimitPerMin int `validate:"min=0"`
}

type PushcutConfig struct {
	APIKey       string
	Notification string
}

type TelegramConfig struct {
	BotToken string
	ChatID   string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// KeywordRule maps a keyword to travel minutes; order is significant.
type KeywordRule struct {
	Keyword string `validate:"required"`
	Minutes int    `validate:"min=0"`
}

type TravelConfig struct {
	DefaultMinutes int `validate:"min=1"`
	Keywords       []KeywordRule `validate:"dive"`
	Timezone       string
}

type NgrokConfig struct {
	APIURL string
}

// Load loads configuration using Viper.
// A .env file is loaded first when present. Config file name: config.yaml,
// searched in ./config, ., /etc/app/. Env vars override file values with
// "." replaced by "_", e.g. keap.client_id is KEAP_CLIENT_ID.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Keap
	cfg.Keap.ClientID = v.GetString("keap.client_id")
	cfg.Keap.ClientSecret = v.GetString("keap.client_secret")
	cfg.Keap.RedirectURI = v.GetString("keap.redirect_uri")
	cfg.Keap.APIToken = v.GetString("keap.api_token")
	cfg.Keap.AccessToken = v.GetString("keap.access_token")
	cfg.Keap.RefreshToken = v.GetString("keap.refresh_token")
	cfg.Keap.SuccessGoalID = v.GetString("keap.success_goal_id")
	cfg.Keap.ErrorGoalID = v.GetString("keap.error_goal_id")
	cfg.Keap.Integration = v.GetString("keap.integration")
	cfg.Keap.DiscoveryTimeout = v.GetDuration("keap.discovery_timeout")

	cfg.Airtable.APIKey = v.GetString("airtable.api_key")
	cfg.Airtable.BaseID = v.GetString("airtable.base_id")
	cfg.Airtable.TableName = v.GetString("airtable.table_name")

	cfg.Webhook.URL = v.GetString("webhook.url")

	// ClickUp
	cfg.ClickUp.APIToken = v.GetString("clickup.api_token")
	cfg.ClickUp.LeaveFieldID = v.GetString("clickup.leave_field_id")
	cfg.ClickUp.Strategy = strings.ToLower(v.GetString("clickup.strategy"))
	cfg.ClickUp.WebhookSecret = v.GetString("clickup.webhook_secret")
	cfg.ClickUp.TeamID = v.GetString("clickup.team_id")
	cfg.ClickUp.RegisterWebhook = v.GetBool("clickup.register_webhook")
	cfg.ClickUp.WebhookURL = v.GetString("clickup.webhook_url")
	cfg.ClickUp.RateLimitPerMin = v.GetInt("clickup.rate_limit_per_min")
	// Split allowed IPs since viper might not parse array seamlessly from env
	cfg.ClickUp.AllowedIPs = splitList(v.GetString("clickup.allowed_ips"))

	cfg.Pushcut.APIKey = v.GetString("pushcut.api_key")
	cfg.Pushcut.Notification = v.GetString("pushcut.notification")

	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.ChatID = v.GetString("telegram.chat_id")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.id")

	// Travel
	cfg.Travel.DefaultMinutes = v.GetInt("travel.default_minutes")
	cfg.Travel.Timezone = v.GetString("travel.timezone")
	rules, err := keywordRules(v.Get("travel.keywords"))
	if err != nil {
		return nil, err
	}
	cfg.Travel.Keywords = rules

	cfg.Ngrok.APIURL = v.GetString("ngrok.api_url")

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if _, err := time.LoadLocation(cfg.Travel.Timezone); err != nil {
		return nil, fmt.Errorf("invalid config: travel.timezone: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "release")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.color_enabled", false)

	v.SetDefault("keap.integration", "billing-date-calculator")
	v.SetDefault("keap.discovery_timeout", 8*time.Second)
	v.SetDefault("airtable.table_name", "Script Results")

	v.SetDefault("clickup.strategy", "field")
	v.SetDefault("clickup.rate_limit_per_min", 60)

	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.id", "primary")

	v.SetDefault("travel.default_minutes", 60)
	v.SetDefault("travel.timezone", "UTC")

	v.SetDefault("ngrok.api_url", "http://ngrok:4040")
}

// keywordRules accepts either a YAML list of {keyword, minutes} or the env
// form "kw=min,kw=min". Nil means use the built-in table.
func keywordRules(raw any) ([]KeywordRule, error) {
	switch val := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return ParseKeywords(val)
	case []any:
		rules := make([]KeywordRule, 0, len(val))
		for i, item := range val {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("travel.keywords[%d]: expected keyword and minutes", i)
			}
			rules = append(rules, KeywordRule{
				Keyword: strings.ToLower(getStringFromMap(m, "keyword")),
				Minutes: getIntFromMap(m, "minutes"),
			})
		}
		return rules, nil
	default:
		return nil, fmt.Errorf("travel.keywords: unsupported type %T", raw)
	}
}

// ParseKeywords parses "mosque=45,office=30". Order is kept.
func ParseKeywords(s string) ([]KeywordRule, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var rules []KeywordRule
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		kw, mins, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("travel keyword %q: expected keyword=minutes", pair)
		}
		n, err := strconv.Atoi(strings.TrimSpace(mins))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("travel keyword %q: invalid minutes", pair)
		}
		rules = append(rules, KeywordRule{Keyword: strings.ToLower(strings.TrimSpace(kw)), Minutes: n})
	}
	return rules, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getStringFromMap(m map[string]any, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getIntFromMap(m map[string]any, key string) int {
	if val, ok := m[key]; ok {
		switch n := val.(type) {
		case int:
			return n
		case float64:
			return int(n)
		}
	}
	return 0
}
