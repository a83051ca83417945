package http

// ErrorBody is the JSON body of every failed API request.
type ErrorBody struct {
	Error string `json:"error" example:"connection refused"`
}

// HealthBody is the JSON body of the health endpoint.
type HealthBody struct {
	Status string `json:"status" example:"healthy"`
	Error  string `json:"error,omitempty"`
}
