package usecase

import (
	"context"
	"fmt"
	"time"

	"billing-automation/internal/leave"
	"billing-automation/internal/model"
	"billing-automation/pkg/clickup"
	"billing-automation/pkg/metrics"
)

func (uc *implUseCase) Process(ctx context.Context, trigger model.LeaveTrigger) (leave.ProcessOutput, error) {
	source := string(trigger.Source)
	if trigger.TaskID == "" {
		return leave.ProcessOutput{}, leave.ErrMissingTaskID
	}

	task, err := uc.tracker.GetTask(ctx, trigger.TaskID)
	if err != nil {
		uc.l.Errorf(ctx, "leave.usecase.Process: get task %s: %v", trigger.TaskID, err)
		metrics.LeaveComputations.WithLabelValues(source, metrics.OutcomeFailure).Inc()
		return leave.ProcessOutput{}, fmt.Errorf("%w: %v", leave.ErrTaskLookupFailed, err)
	}

	out := leave.ProcessOutput{
		TaskID:   task.ID,
		TaskName: task.Name,
	}

	if !leave.HasGateTag(task.TagNames(), leave.GateKeyword) {
		return uc.skip(ctx, source, out, "task has no "+leave.GateKeyword+" tag"), nil
	}

	start, ok := task.Start()
	if trigger.StartOverride != nil {
		start, ok = trigger.StartOverride.UTC(), true
	}
	if !ok {
		return uc.skip(ctx, source, out, "task has no start date"), nil
	}

	minutes, keyword := leave.Estimate(uc.cfg.Rules, uc.cfg.DefaultMinutes, task.Name, task.Description)
	out.Status = leave.StatusProcessed
	out.StartTime = start
	out.TravelMinutes = minutes
	out.MatchedKeyword = keyword
	out.LeaveTime = leave.LeaveTime(start, minutes)

	uc.l.Infof(ctx, "leave.usecase.Process: task=%s start=%s travel=%dm keyword=%q leave=%s",
		task.ID, start.Format(time.RFC3339), minutes, keyword, out.LeaveTime.Format(time.RFC3339))

	out.Tracker = uc.writeBack(ctx, task, out)
	out.Notifications = map[string]leave.SinkResult{
		"pushcut":  uc.push(ctx, out),
		"telegram": uc.chat(ctx, out),
		"calendar": uc.calendar(ctx, out),
	}

	outcome := metrics.OutcomeSuccess
	if out.Tracker.Attempted && !out.Tracker.Success {
		outcome = metrics.OutcomeFailure
	}
	metrics.LeaveComputations.WithLabelValues(source, outcome).Inc()
	return out, nil
}

func (uc *implUseCase) skip(ctx context.Context, source string, out leave.ProcessOutput, reason string) leave.ProcessOutput {
	uc.l.Infof(ctx, "leave.usecase.Process: skipping task %s: %s", out.TaskID, reason)
	metrics.LeaveComputations.WithLabelValues(source, metrics.OutcomeSkipped).Inc()
	out.Status = leave.StatusSkipped
	out.Reason = reason
	return out
}

func (uc *implUseCase) TaskFields(ctx context.Context, taskID string) (leave.TaskFieldsOutput, error) {
	if taskID == "" {
		return leave.TaskFieldsOutput{}, leave.ErrMissingTaskID
	}
	task, err := uc.tracker.GetTask(ctx, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "leave.usecase.TaskFields: get task %s: %v", taskID, err)
		return leave.TaskFieldsOutput{}, fmt.Errorf("%w: %v", leave.ErrTaskLookupFailed, err)
	}
	fields := task.CustomFields
	if fields == nil {
		fields = []clickup.CustomField{}
	}
	return leave.TaskFieldsOutput{
		TaskID:   task.ID,
		TaskName: task.Name,
		Fields:   fields,
	}, nil
}
