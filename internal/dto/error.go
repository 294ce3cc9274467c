package dto

// ErrorResponse is the body of every failed request.
// @Description Error response
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Error   string                 `json:"error"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrorResponse lists field-level failures.
type ValidationErrorResponse struct {
	ErrorResponse
	Errors interface{} `json:"errors"`
}

type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
