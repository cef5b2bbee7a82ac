package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"billing-automation/internal/goal"
	pkgLog "billing-automation/pkg/log"
)

type mockUseCase struct {
	lastInput   goal.DispatchInput
	discovery   goal.Discovery
	discoverErr error
}

func (m *mockUseCase) Dispatch(ctx context.Context, input goal.DispatchInput) goal.Result {
	m.lastInput = input
	gt := goal.TypeError
	if input.Success {
		gt = goal.TypeSuccess
	}
	return goal.Result{Attempted: true, Success: true, GoalType: gt}
}

func (m *mockUseCase) Discover(ctx context.Context, callName, integration string) (goal.Discovery, error) {
	return m.discovery, m.discoverErr
}

func (m *mockUseCase) Health(ctx context.Context) goal.HealthOutput {
	return goal.HealthOutput{Ready: true, HasLegacyKey: true, AuthMethod: "Legacy API Key", Integration: goal.DefaultIntegration}
}

func setup(uc goal.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, New(pkgLog.NewNop(), uc))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDiscover(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		uc := &mockUseCase{discovery: goal.Discovery{GoalID: 77, CampaignName: "Billing"}}
		w := do(setup(uc), http.MethodPost, "/goals/discover", `{"callName":"billing_success"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["integration"] != goal.DefaultIntegration {
			t.Errorf("expected default integration, got %v", resp["integration"])
		}
	})

	t.Run("Missing call name", func(t *testing.T) {
		w := do(setup(&mockUseCase{}), http.MethodPost, "/goals/discover", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "example") {
			t.Errorf("expected example in body: %s", w.Body.String())
		}
	})

	t.Run("Not found", func(t *testing.T) {
		uc := &mockUseCase{discoverErr: fmt.Errorf("%w: nope", goal.ErrGoalNotFound)}
		w := do(setup(uc), http.MethodPost, "/goals/discover", `{"callName":"x"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var resp discoverFailedResp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Suggestion == "" || resp.Details == "" {
			t.Errorf("expected suggestion and details: %+v", resp)
		}
	})
}

func TestTestGoal(t *testing.T) {
	for _, path := range []string{"/goals/test", "/keap-goals/test"} {
		t.Run(path+" defaults to success", func(t *testing.T) {
			uc := &mockUseCase{}
			w := do(setup(uc), http.MethodPost, path, `{"contactId":12345,"keapSuccessGoalId":9}`)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}
			if !uc.lastInput.Success || uc.lastInput.ContactID != "12345" || uc.lastInput.Config.SuccessGoalID != "9" {
				t.Errorf("unexpected input: %+v", uc.lastInput)
			}
		})
	}

	t.Run("Error scenario", func(t *testing.T) {
		uc := &mockUseCase{}
		w := do(setup(uc), http.MethodPost, "/goals/test", `{"contactId":"1","testSuccess":false}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.lastInput.Success || uc.lastInput.ErrorDetail != "Test error scenario" {
			t.Errorf("unexpected input: %+v", uc.lastInput)
		}
		var resp testResp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.TestType != goal.TypeError {
			t.Errorf("expected error test type, got %s", resp.TestType)
		}
	})

	t.Run("Missing contact", func(t *testing.T) {
		w := do(setup(&mockUseCase{}), http.MethodPost, "/goals/test", `{"testSuccess":true}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		w := do(setup(&mockUseCase{}), http.MethodPost, "/goals/test", `{"contactId":`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestHealth(t *testing.T) {
	w := do(setup(&mockUseCase{}), http.MethodGet, "/keap-goals/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp healthResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.KeapGoalIntegration.Status != "configured" || resp.KeapGoalIntegration.DefaultSuccessGoalID != "not configured" {
		t.Errorf("unexpected health: %+v", resp.KeapGoalIntegration)
	}
}
