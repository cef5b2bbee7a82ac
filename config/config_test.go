package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, "Script Results", cfg.Airtable.TableName)
	assert.Equal(t, "billing-date-calculator", cfg.Keap.Integration)
	assert.Equal(t, 8*time.Second, cfg.Keap.DiscoveryTimeout)
	assert.Equal(t, "field", cfg.ClickUp.Strategy)
	assert.Equal(t, 60, cfg.Travel.DefaultMinutes)
	assert.Nil(t, cfg.Travel.Keywords)
	assert.Equal(t, "primary", cfg.GoogleCalendar.CalendarID)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("KEAP_CLIENT_ID", "cid")
	t.Setenv("KEAP_SUCCESS_GOAL_ID", "123")
	t.Setenv("KEAP_DISCOVERY_TIMEOUT", "3s")
	t.Setenv("WEBHOOK_URL", "https://hooks.example.com/billing")
	t.Setenv("CLICKUP_STRATEGY", "Subtask")
	t.Setenv("CLICKUP_ALLOWED_IPS", "10.0.0.1, 192.168.0.0/16")
	t.Setenv("TRAVEL_KEYWORDS", "Gym=15, office=25")
	t.Setenv("TRAVEL_TIMEZONE", "Asia/Ho_Chi_Minh")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, "cid", cfg.Keap.ClientID)
	assert.Equal(t, "123", cfg.Keap.SuccessGoalID)
	assert.Equal(t, 3*time.Second, cfg.Keap.DiscoveryTimeout)
	assert.Equal(t, "https://hooks.example.com/billing", cfg.Webhook.URL)
	assert.Equal(t, "subtask", cfg.ClickUp.Strategy)
	assert.Equal(t, []string{"10.0.0.1", "192.168.0.0/16"}, cfg.ClickUp.AllowedIPs)
	assert.Equal(t, []KeywordRule{{"gym", 15}, {"office", 25}}, cfg.Travel.Keywords)
	assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.Travel.Timezone)
}

func TestLoadKeywordsFromYAML(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
travel:
  default_minutes: 40
  keywords:
    - keyword: Mosque
      minutes: 45
    - keyword: office
      minutes: 30
`)))

	cfg, err := load(v)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Travel.DefaultMinutes)
	assert.Equal(t, []KeywordRule{{"mosque", 45}, {"office", 30}}, cfg.Travel.Keywords)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"Unknown strategy", "CLICKUP_STRATEGY", "email"},
		{"Bad webhook url", "WEBHOOK_URL", "not a url"},
		{"Bad timezone", "TRAVEL_TIMEZONE", "Mars/Olympus"},
		{"Bad keywords", "TRAVEL_KEYWORDS", "gym"},
		{"Bad mode", "HTTP_SERVER_MODE", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := load(viper.New())
			assert.Error(t, err)
		})
	}
}

func TestParseKeywords(t *testing.T) {
	rules, err := ParseKeywords("mosque=45,, qur'an = 45 ")
	require.NoError(t, err)
	assert.Equal(t, []KeywordRule{{"mosque", 45}, {"qur'an", 45}}, rules)

	_, err = ParseKeywords("mosque=soon")
	assert.Error(t, err)

	rules, err = ParseKeywords("  ")
	require.NoError(t, err)
	assert.Nil(t, rules)
}
