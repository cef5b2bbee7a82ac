package usecase

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"billing-automation/internal/billing"
	"billing-automation/pkg/datemath"
	"billing-automation/pkg/metrics"
	"billing-automation/pkg/response"
)

func newExecutionID() string {
	return uuid.NewString()
}

func (uc *implUseCase) storeRecord(ctx context.Context, out billing.CalculateOutput) billing.IntegrationResult {
	if uc.records == nil {
		metrics.IntegrationCalls.WithLabelValues("airtable", metrics.OutcomeSkipped).Inc()
		return notConfigured("Airtable")
	}

	calculated := out.CalculatedDate.Format(datemath.DateLayout)
	input, _ := json.Marshal(map[string]any{
		"date":  out.OriginalDate.Format(datemath.DateLayout),
		"delay": out.Delay.Original,
	})
	output, _ := json.Marshal(map[string]any{
		"calculatedDate": calculated,
		"dayOfMonth":     out.DayOfMonth(),
		"delay":          out.Delay,
	})

	fields := map[string]any{
		"Execution ID":            "billing_" + out.ContactID + "_" + uc.newID(),
		"Script Name":             billing.ScriptName,
		"Contact ID":              out.ContactID,
		"Status":                  "Success",
		"Input Data":              string(input),
		"Output Data":             string(output),
		"Timestamp":               uc.now().UTC().Format(response.DateTimeFormat),
		"Calculated Billing Date": calculated,
	}

	res := billing.IntegrationResult{Attempted: true}
	rec, err := uc.records.CreateRecord(ctx, fields)
	metrics.IntegrationCalls.WithLabelValues("airtable", metrics.Outcome(err)).Inc()
	if err != nil {
		uc.l.Errorf(ctx, "billing.usecase.storeRecord: %v", err)
		res.Error = err.Error()
		return res
	}

	res.Success = true
	res.RecordID = rec.ID
	return res
}

func (uc *implUseCase) sendWebhook(ctx context.Context, out billing.CalculateOutput) billing.IntegrationResult {
	if uc.notifier == nil {
		metrics.IntegrationCalls.WithLabelValues("webhook", metrics.OutcomeSkipped).Inc()
		return notConfigured("Webhook")
	}

	payload := map[string]any{
		"contactId":             out.ContactID,
		"calculatedBillingDate": out.CalculatedDate.Format(datemath.DateLayout),
		"dayOfMonth":            out.DayOfMonth(),
		"originalDate":          out.OriginalDate.Format(datemath.DateLayout),
		"delay":                 out.Delay,
		"timestamp":             uc.now().UTC().Format(response.DateTimeFormat),
		"source":                billing.Source,
	}

	res := billing.IntegrationResult{Attempted: true}
	resp, err := uc.notifier.Post(ctx, payload)
	metrics.IntegrationCalls.WithLabelValues("webhook", metrics.Outcome(err)).Inc()
	if err != nil {
		uc.l.Errorf(ctx, "billing.usecase.sendWebhook: %v", err)
		res.Error = err.Error()
		return res
	}

	res.Success = true
	res.Response = resp
	return res
}
