package http

import (
	"fmt"

	"billing-automation/internal/billing"
	"billing-automation/internal/goal"
	"billing-automation/internal/model"
	"billing-automation/pkg/datemath"
	"billing-automation/pkg/response"
)

// --- Request DTOs ---

type calculateReq struct {
	ContactID         model.FlexibleID `json:"contactId"`
	Date              string           `json:"date"`
	Delay             string           `json:"delay"`
	SkipWebhook       bool             `json:"skipWebhook"`
	SkipAirtable      bool             `json:"skipAirtable"`
	SkipKeapGoals     bool             `json:"skipKeapGoals"`
	SuccessCallName   string           `json:"successCallName"`
	ErrorCallName     string           `json:"errorCallName"`
	Integration       string           `json:"integration"`
	KeapSuccessGoalID model.FlexibleID `json:"keapSuccessGoalId"`
	KeapErrorGoalID   model.FlexibleID `json:"keapErrorGoalId"`
}

func (r calculateReq) toInput() billing.CalculateInput {
	return billing.CalculateInput{
		ContactID:    r.ContactID.String(),
		Date:         r.Date,
		Delay:        r.Delay,
		SkipWebhook:  r.SkipWebhook,
		SkipAirtable: r.SkipAirtable,
		SkipGoals:    r.SkipKeapGoals,
		Goal: goal.Config{
			SuccessCallName: r.SuccessCallName,
			ErrorCallName:   r.ErrorCallName,
			Integration:     r.Integration,
			SuccessGoalID:   r.KeapSuccessGoalID.String(),
			ErrorGoalID:     r.KeapErrorGoalID.String(),
		},
	}
}

var calculateExample = map[string]any{
	"contactId":       "12345",
	"date":            "2024-01-10",
	"delay":           "5 days 2 months",
	"successCallName": "billing_calculator_success",
	"errorCallName":   "billing_calculator_error",
}

var dateExample = map[string]any{
	"contactId": "12345",
	"date":      "2024-01-10",
}

// --- Response DTOs ---

type calculateResp struct {
	Success        bool           `json:"success"`
	ContactID      string         `json:"contactId"`
	OriginalDate   response.Date  `json:"originalDate"`
	Delay          datemath.Delay `json:"delay"`
	CalculatedDate response.Date  `json:"calculatedDate"`
	DayOfMonth     int            `json:"dayOfMonth"`
	Message        string         `json:"message"`
	Integrations   integrations   `json:"integrations"`
}

type integrations struct {
	Airtable billing.IntegrationResult `json:"airtable"`
	Webhook  billing.IntegrationResult `json:"webhook"`
	KeapGoal goal.Result               `json:"keapGoal"`
}

func newCalculateResp(out billing.CalculateOutput) calculateResp {
	return calculateResp{
		Success:        true,
		ContactID:      out.ContactID,
		OriginalDate:   response.Date(out.OriginalDate),
		Delay:          out.Delay,
		CalculatedDate: response.Date(out.CalculatedDate),
		DayOfMonth:     out.DayOfMonth(),
		Message:        fmt.Sprintf("Billing date calculated for contact %s", out.ContactID),
		Integrations: integrations{
			Airtable: out.Integrations.Airtable,
			Webhook:  out.Integrations.Webhook,
			KeapGoal: out.Integrations.KeapGoal,
		},
	}
}
