package handlers

// ErrorResponse is the JSON error body emitted outside huma's error model,
// for example by the recovery and rate-limit middleware.
type ErrorResponse struct {
	Error string `json:"error" example:"internal server error"`
}

// StatusResponse is the body of the health and readiness probes.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
