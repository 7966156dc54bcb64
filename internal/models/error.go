package models

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Note not found
	Detail string `json:"detail"`
}

// FieldError describes one invalid request field.
// swagger:model FieldError
type FieldError struct {
	// Location of the field, e.g. ["body", "title"]
	Loc []string `json:"loc"`

	// Human readable message
	// example: Field required
	Msg string `json:"msg"`

	// Error kind
	// example: missing
	Type string `json:"type"`
}

// ValidationErrorResponse is returned with 422 for malformed request bodies
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
}
