package models

// APIResponse is the envelope wrapping every response body
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// NewSuccessResponse wraps data in a successful envelope
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse wraps an API error in a failed envelope.
// errs carries individual messages, e.g. one per failed validation rule.
func NewErrorResponse(apiErr APIError, errs ...string) APIResponse {
	return APIResponse{
		Success: false,
		Message: apiErr.Message,
		Error:   &apiErr,
		Errors:  errs,
	}
}
