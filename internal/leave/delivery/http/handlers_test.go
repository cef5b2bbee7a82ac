package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"billing-automation/internal/leave"
	"billing-automation/internal/model"
	"billing-automation/pkg/clickup"
	pkgLog "billing-automation/pkg/log"
)

type fakeUseCase struct {
	triggers []model.LeaveTrigger
	err      error
}

func (f *fakeUseCase) Process(ctx context.Context, trigger model.LeaveTrigger) (leave.ProcessOutput, error) {
	f.triggers = append(f.triggers, trigger)
	if f.err != nil {
		return leave.ProcessOutput{}, f.err
	}
	if trigger.TaskID == "" {
		return leave.ProcessOutput{}, leave.ErrMissingTaskID
	}
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return leave.ProcessOutput{
		TaskID:         trigger.TaskID,
		TaskName:       "Dentist",
		Status:         leave.StatusProcessed,
		StartTime:      start,
		LeaveTime:      start.Add(-20 * time.Minute),
		TravelMinutes:  20,
		MatchedKeyword: "dentist",
		Tracker:        leave.SinkResult{Attempted: true, Success: true},
	}, nil
}

func (f *fakeUseCase) TaskFields(ctx context.Context, taskID string) (leave.TaskFieldsOutput, error) {
	if f.err != nil {
		return leave.TaskFieldsOutput{}, f.err
	}
	return leave.TaskFieldsOutput{
		TaskID:   taskID,
		TaskName: "Dentist",
		Fields:   []clickup.CustomField{{ID: "fld-1", Name: "Leave Time", Type: "date"}},
	}, nil
}

func setup(uc leave.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, New(pkgLog.NewNop(), uc))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestManualTrigger(t *testing.T) {
	t.Run("Without body uses the task start date", func(t *testing.T) {
		uc := &fakeUseCase{}
		w := do(setup(uc), http.MethodPost, "/manual-trigger/task-1", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if len(uc.triggers) != 1 || uc.triggers[0].StartOverride != nil {
			t.Fatalf("unexpected triggers: %+v", uc.triggers)
		}
		if uc.triggers[0].Source != model.SourceManual {
			t.Errorf("expected manual source, got %s", uc.triggers[0].Source)
		}

		var body map[string]any
		json.Unmarshal(w.Body.Bytes(), &body)
		if body["leaveTime"] != "2024-05-01T09:40:00.000Z" {
			t.Errorf("unexpected leaveTime: %v", body["leaveTime"])
		}
		if body["success"] != true || body["matchedKeyword"] != "dentist" {
			t.Errorf("unexpected body: %v", body)
		}
	})

	want := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	overrides := []struct {
		name string
		body string
	}{
		{"RFC 3339", `{"startDate":"2024-05-01T12:00:00+02:00"}`},
		{"Epoch millis string", fmt.Sprintf(`{"startDate":"%d"}`, want.UnixMilli())},
		{"Epoch millis number", fmt.Sprintf(`{"startDate":%d}`, want.UnixMilli())},
	}
	for _, tt := range overrides {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			w := do(setup(uc), http.MethodPost, "/manual-trigger/task-1", tt.body)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}
			got := uc.triggers[0].StartOverride
			if got == nil || !got.Equal(want) {
				t.Errorf("expected override %s, got %v", want, got)
			}
		})
	}

	t.Run("Bad start date", func(t *testing.T) {
		uc := &fakeUseCase{}
		w := do(setup(uc), http.MethodPost, "/manual-trigger/task-1", `{"startDate":"tomorrow"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if len(uc.triggers) != 0 {
			t.Errorf("expected no processing")
		}
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		w := do(setup(&fakeUseCase{}), http.MethodPost, "/manual-trigger/task-1", `{"startDate":`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Task lookup failure", func(t *testing.T) {
		uc := &fakeUseCase{err: fmt.Errorf("%w: 404", leave.ErrTaskLookupFailed)}
		w := do(setup(uc), http.MethodPost, "/manual-trigger/task-1", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("Unexpected error", func(t *testing.T) {
		uc := &fakeUseCase{err: errors.New("boom")}
		w := do(setup(uc), http.MethodPost, "/manual-trigger/task-1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestTaskFields(t *testing.T) {
	w := do(setup(&fakeUseCase{}), http.MethodGet, "/task-fields/task-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body taskFieldsResp
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.TaskID != "task-1" || len(body.Fields) != 1 || body.Fields[0].ID != "fld-1" {
		t.Errorf("unexpected body: %+v", body)
	}
}
