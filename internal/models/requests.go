package models

// CreateRecordData is the payload for capturing weather at a location.
type CreateRecordData struct {
	Location string `json:"location" binding:"required"`
	Notes    string `json:"notes"`
}

// UpdateRecordData carries the mutable fields of a stored record.
// The identifier itself never changes.
type UpdateRecordData struct {
	LocationName *string `json:"location_name"`
	Notes        *string `json:"notes"`
}

// ChatRequest is the assistant input: free text plus an optional location
// whose current weather is attached as context.
type ChatRequest struct {
	Question string `json:"question" binding:"required"`
	Location string `json:"location"`
}

// ChatResponse is the assistant's answer.
type ChatResponse struct {
	Answer string `json:"answer"`
	Source string `json:"source"`
}
