package response

// ErrorBody is the error payload every failing route returns.
type ErrorBody struct {
	Error string `json:"error"`
}

// HealthBody is the payload for GET /api/health.
type HealthBody struct {
	Status string `json:"status"`
}
