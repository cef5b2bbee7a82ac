package http

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"billing-automation/internal/leave"
	"billing-automation/pkg/clickup"
	"billing-automation/pkg/response"
)

type manualTriggerReq struct {
	// StartDate is RFC 3339 or epoch milliseconds, as a string or a number.
	StartDate json.RawMessage `json:"startDate,omitempty" swaggertype:"string" example:"2024-05-01T10:00:00Z"`
}

var manualTriggerExample = map[string]any{
	"startDate": "2024-05-01T10:00:00Z",
}

// startOverride returns nil when no startDate was supplied.
func (r manualTriggerReq) startOverride() (*time.Time, error) {
	raw := strings.TrimSpace(string(r.StartDate))
	if raw == "" || raw == "null" {
		return nil, nil
	}

	var s string
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(r.StartDate, &s); err != nil {
			return nil, leave.ErrInvalidStartDate
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, nil
		}
	} else {
		s = raw
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return &t, nil
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil || ms <= 0 {
		return nil, leave.ErrInvalidStartDate
	}
	t := time.UnixMilli(ms).UTC()
	return &t, nil
}

type processResp struct {
	Success        bool                        `json:"success"`
	TaskID         string                      `json:"taskId"`
	TaskName       string                      `json:"taskName"`
	Status         string                      `json:"status"`
	Reason         string                      `json:"reason,omitempty"`
	StartTime      response.DateTime           `json:"startTime" swaggertype:"string"`
	LeaveTime      response.DateTime           `json:"leaveTime" swaggertype:"string"`
	TravelMinutes  int                         `json:"travelMinutes,omitempty"`
	MatchedKeyword string                      `json:"matchedKeyword,omitempty"`
	Tracker        leave.SinkResult            `json:"tracker"`
	Notifications  map[string]leave.SinkResult `json:"notifications,omitempty"`
}

func newProcessResp(out leave.ProcessOutput) processResp {
	return processResp{
		Success:        out.Status == leave.StatusSkipped || !out.Tracker.Attempted || out.Tracker.Success,
		TaskID:         out.TaskID,
		TaskName:       out.TaskName,
		Status:         out.Status,
		Reason:         out.Reason,
		StartTime:      response.DateTime(out.StartTime),
		LeaveTime:      response.DateTime(out.LeaveTime),
		TravelMinutes:  out.TravelMinutes,
		MatchedKeyword: out.MatchedKeyword,
		Tracker:        out.Tracker,
		Notifications:  out.Notifications,
	}
}

type taskFieldsResp struct {
	TaskID   string                `json:"taskId"`
	TaskName string                `json:"taskName"`
	Fields   []clickup.CustomField `json:"fields"`
}

func newTaskFieldsResp(out leave.TaskFieldsOutput) taskFieldsResp {
	return taskFieldsResp{
		TaskID:   out.TaskID,
		TaskName: out.TaskName,
		Fields:   out.Fields,
	}
}
