package model

import (
	"encoding/json"
	"testing"
)

func TestFlexibleIDUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FlexibleID
		wantErr bool
	}{
		{"String", `{"id":"12345"}`, "12345", false},
		{"Number", `{"id":12345}`, "12345", false},
		{"Null", `{"id":null}`, "", false},
		{"Missing", `{}`, "", false},
		{"Boolean", `{"id":true}`, "", true},
		{"Object", `{"id":{}}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				ID FlexibleID `json:"id"`
			}
			err := json.Unmarshal([]byte(tt.input), &v)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.ID != tt.want {
				t.Errorf("expected %q, got %q", tt.want, v.ID)
			}
		})
	}
}
