package keap_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billing-automation/pkg/keap"
	"billing-automation/pkg/tokenstore"
)

type fakeTokens struct {
	token      string
	refreshed  string
	refreshErr error
	canRefresh bool
	refreshes  atomic.Int32
}

func (f *fakeTokens) AccessToken(ctx context.Context) string { return f.token }
func (f *fakeTokens) CanRefresh() bool                       { return f.canRefresh }
func (f *fakeTokens) Refresh(ctx context.Context) (tokenstore.State, error) {
	f.refreshes.Add(1)
	if f.refreshErr != nil {
		return tokenstore.State{}, f.refreshErr
	}
	f.token = f.refreshed
	return tokenstore.State{AccessToken: f.refreshed}, nil
}

func TestListCampaigns(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/campaigns", r.URL.Path)
		assert.Equal(t, "goals", r.URL.Query().Get("optional_properties"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`{"campaigns":[{"id":1,"name":"Billing","goals":[{"id":11,"name":"Paid","call_name":"billing_success","integration":"billing-date-calculator"}]}]}`))
	}))
	defer ts.Close()

	c := keap.NewClient(&fakeTokens{token: "tok"}, nil)
	c.SetBaseURL(ts.URL)

	campaigns, err := c.ListCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	require.Len(t, campaigns[0].Goals, 1)
	assert.Equal(t, int64(11), campaigns[0].Goals[0].ID)
	assert.Equal(t, "billing_success", campaigns[0].Goals[0].CallName)
}

func TestTriggerGoal(t *testing.T) {
	t.Run("Sends goal body with default integration", func(t *testing.T) {
		var got map[string]any
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/campaigns/goals", r.URL.Path)
			json.NewDecoder(r.Body).Decode(&got)
			w.Write([]byte(`[{"campaign_id":1,"success":true}]`))
		}))
		defer ts.Close()

		c := keap.NewClient(&fakeTokens{token: "tok"}, nil)
		c.SetBaseURL(ts.URL)

		resp, err := c.TriggerGoal(context.Background(), keap.TriggerGoalRequest{ContactID: "42", GoalID: "7"})
		require.NoError(t, err)
		assert.Contains(t, resp, "results")
		assert.Equal(t, float64(42), got["contact_id"])
		assert.Equal(t, float64(7), got["goal_id"])
		assert.Equal(t, keap.DefaultIntegration, got["integration"])
	})

	t.Run("No token fails without a call", func(t *testing.T) {
		var hits atomic.Int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits.Add(1) }))
		defer ts.Close()

		c := keap.NewClient(&fakeTokens{}, nil)
		c.SetBaseURL(ts.URL)

		_, err := c.TriggerGoal(context.Background(), keap.TriggerGoalRequest{ContactID: "1", GoalID: "2"})
		assert.ErrorIs(t, err, keap.ErrNoAccessToken)
		assert.Equal(t, int32(0), hits.Load())
	})

	t.Run("Upstream error carries status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"bad goal"}`))
		}))
		defer ts.Close()

		c := keap.NewClient(&fakeTokens{token: "tok"}, nil)
		c.SetBaseURL(ts.URL)

		_, err := c.TriggerGoal(context.Background(), keap.TriggerGoalRequest{ContactID: "1", GoalID: "2"})
		assert.ErrorIs(t, err, keap.ErrUpstream)
		assert.Contains(t, err.Error(), "bad goal")
	})
}

func TestRetryAfterUnauthorized(t *testing.T) {
	t.Run("Refreshes once and retries with new token", func(t *testing.T) {
		var auths []string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auths = append(auths, r.Header.Get("Authorization"))
			if r.Header.Get("Authorization") != "Bearer fresh" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Write([]byte(`{"ok":true}`))
		}))
		defer ts.Close()

		tokens := &fakeTokens{token: "stale", refreshed: "fresh", canRefresh: true}
		c := keap.NewClient(tokens, nil)
		c.SetBaseURL(ts.URL)

		resp, err := c.TriggerGoal(context.Background(), keap.TriggerGoalRequest{ContactID: "1", GoalID: "2"})
		require.NoError(t, err)
		assert.Equal(t, true, resp["ok"])
		assert.Equal(t, []string{"Bearer stale", "Bearer fresh"}, auths)
		assert.Equal(t, int32(1), tokens.refreshes.Load())
	})

	t.Run("Second 401 is a hard error", func(t *testing.T) {
		var hits atomic.Int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer ts.Close()

		tokens := &fakeTokens{token: "stale", refreshed: "still-bad", canRefresh: true}
		c := keap.NewClient(tokens, nil)
		c.SetBaseURL(ts.URL)

		_, err := c.TriggerGoal(context.Background(), keap.TriggerGoalRequest{ContactID: "1", GoalID: "2"})
		assert.ErrorIs(t, err, keap.ErrUnauthorized)
		assert.Equal(t, int32(2), hits.Load())
		assert.Equal(t, int32(1), tokens.refreshes.Load())
	})

	t.Run("Refresh failure is unauthorized", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer ts.Close()

		tokens := &fakeTokens{token: "stale", canRefresh: true, refreshErr: errors.New("invalid_grant")}
		c := keap.NewClient(tokens, nil)
		c.SetBaseURL(ts.URL)

		_, err := c.ListCampaigns(context.Background())
		assert.ErrorIs(t, err, keap.ErrUnauthorized)
	})

	t.Run("Without refresh token 401 is returned directly", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer ts.Close()

		tokens := &fakeTokens{token: "legacy"}
		c := keap.NewClient(tokens, nil)
		c.SetBaseURL(ts.URL)

		_, err := c.ListCampaigns(context.Background())
		assert.ErrorIs(t, err, keap.ErrUnauthorized)
		assert.Equal(t, int32(0), tokens.refreshes.Load())
	})
}

func TestIDMarshal(t *testing.T) {
	raw, err := json.Marshal(keap.TriggerGoalRequest{ContactID: "abc-1", Integration: "x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"contact_id":"abc-1","integration":"x"}`, string(raw))
}

func TestProfileValid(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account/profile", r.URL.Path)
		if r.Header.Get("Authorization") == "Bearer good" {
			w.Write([]byte(`{}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	c := keap.NewClient(&fakeTokens{}, nil)
	c.SetBaseURL(ts.URL)

	ok, err := c.ProfileValid(context.Background(), "good")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.ProfileValid(context.Background(), "bad")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = c.ProfileValid(context.Background(), "")
	assert.ErrorIs(t, err, keap.ErrNoAccessToken)
}
