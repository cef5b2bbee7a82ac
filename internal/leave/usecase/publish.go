package usecase

import (
	"context"
	"fmt"

	"billing-automation/internal/leave"
	"billing-automation/pkg/clickup"
	"billing-automation/pkg/gcalendar"
	"billing-automation/pkg/metrics"
	"billing-automation/pkg/pushcut"
)

const clockLayout = "15:04"

func (uc *implUseCase) writeBack(ctx context.Context, task *clickup.Task, out leave.ProcessOutput) leave.SinkResult {
	var (
		res = leave.SinkResult{Attempted: true}
		err error
	)

	switch uc.cfg.Strategy {
	case leave.StrategySubtask:
		var sub *clickup.Task
		ms := out.LeaveTime.UnixMilli()
		sub, err = uc.tracker.CreateTask(ctx, task.List.ID, clickup.CreateTaskRequest{
			Name:          "Leave for " + task.Name,
			Description:   uc.message(out),
			Parent:        task.ID,
			StartDate:     ms,
			StartDateTime: true,
			DueDate:       ms,
			DueDateTime:   true,
		})
		if err == nil {
			res.Detail = "subtask " + sub.ID
		}
	default:
		if uc.cfg.LeaveFieldID == "" {
			metrics.IntegrationCalls.WithLabelValues("clickup", metrics.OutcomeSkipped).Inc()
			return leave.SinkResult{Detail: "leave field id not configured"}
		}
		err = uc.tracker.SetDateField(ctx, task.ID, uc.cfg.LeaveFieldID, out.LeaveTime)
		if err == nil {
			res.Detail = "field " + uc.cfg.LeaveFieldID
		}
	}

	metrics.IntegrationCalls.WithLabelValues("clickup", metrics.Outcome(err)).Inc()
	if err != nil {
		uc.l.Errorf(ctx, "leave.usecase.writeBack: task=%s strategy=%s: %v", task.ID, uc.cfg.Strategy, err)
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}

func (uc *implUseCase) push(ctx context.Context, out leave.ProcessOutput) leave.SinkResult {
	if uc.sinks.Push == nil || uc.cfg.PushcutNotification == "" {
		return skipped("pushcut", "PushCut not configured")
	}

	n := pushcut.Notification{
		Title: "Time to leave",
		Text:  uc.message(out),
		Input: out.TaskID,
	}
	if d := out.LeaveTime.Sub(uc.now()); d > 0 {
		n.DelaySeconds = int64(d.Seconds())
	}

	err := uc.sinks.Push.Trigger(ctx, uc.cfg.PushcutNotification, n)
	return uc.record(ctx, "pushcut", err, "")
}

func (uc *implUseCase) chat(ctx context.Context, out leave.ProcessOutput) leave.SinkResult {
	if uc.sinks.Chat == nil || uc.cfg.TelegramChatID == "" {
		return skipped("telegram", "Telegram not configured")
	}
	err := uc.sinks.Chat.SendMessage(ctx, uc.cfg.TelegramChatID, uc.message(out))
	return uc.record(ctx, "telegram", err, "")
}

func (uc *implUseCase) calendar(ctx context.Context, out leave.ProcessOutput) leave.SinkResult {
	if uc.sinks.Calendar == nil {
		return skipped("calendar", "Google Calendar not configured")
	}
	ev, err := uc.sinks.Calendar.UpsertReminder(ctx, gcalendar.Reminder{
		CalendarID:  uc.cfg.CalendarID,
		SourceID:    out.TaskID,
		Summary:     "Leave for " + out.TaskName,
		Description: uc.message(out),
		LeaveAt:     out.LeaveTime,
		Timezone:    uc.cfg.Location.String(),
	})
	detail := ""
	if err == nil {
		detail = ev.ID
	}
	return uc.record(ctx, "calendar", err, detail)
}

func (uc *implUseCase) record(ctx context.Context, name string, err error, detail string) leave.SinkResult {
	metrics.IntegrationCalls.WithLabelValues(name, metrics.Outcome(err)).Inc()
	if err != nil {
		uc.l.Warnf(ctx, "leave.usecase.%s: %v", name, err)
		return leave.SinkResult{Attempted: true, Error: err.Error()}
	}
	return leave.SinkResult{Attempted: true, Success: true, Detail: detail}
}

func skipped(name, reason string) leave.SinkResult {
	metrics.IntegrationCalls.WithLabelValues(name, metrics.OutcomeSkipped).Inc()
	return leave.SinkResult{Detail: reason}
}

// message renders the human readable leave notice in the configured timezone.
func (uc *implUseCase) message(out leave.ProcessOutput) string {
	loc := uc.cfg.Location
	msg := fmt.Sprintf("Leave at %s for %q (starts %s, %d min travel)",
		out.LeaveTime.In(loc).Format(clockLayout),
		out.TaskName,
		out.StartTime.In(loc).Format(clockLayout),
		out.TravelMinutes)
	if out.MatchedKeyword != "" {
		msg += fmt.Sprintf(", matched %q", out.MatchedKeyword)
	}
	return msg
}
