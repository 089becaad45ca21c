package dto

// GreetingResponse is returned by the root endpoint.
type GreetingResponse struct {
	Msg string `json:"msg"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}
