package types

// MessageResponse is the body of /register answers and of every error.
type MessageResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type HealthResponse struct {
	OK bool `json:"ok"`
	DB bool `json:"db"`
}
