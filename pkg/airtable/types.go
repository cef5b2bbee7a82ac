package airtable

const DefaultBaseURL = "https://api.airtable.com/v0"

// Record is one Airtable row.
type Record struct {
	ID          string         `json:"id,omitempty"`
	CreatedTime string         `json:"createdTime,omitempty"`
	Fields      map[string]any `json:"fields"`
}

type createRequest struct {
	Records []Record `json:"records"`
}

type createResponse struct {
	Records []Record `json:"records"`
}
