package api

// CreateAnalysisRequest represents the JSON request payload for starting an
// analysis from a video URL. Uploads use multipart form data instead.
type CreateAnalysisRequest struct {
	VideoURL string `json:"video_url"`
}

// TokenRequest represents the request payload for issuing an API token
type TokenRequest struct {
	ClientID string `json:"client_id" validate:"required"`
}

// TokenResponse represents the response payload for an issued API token
type TokenResponse struct {
	Token string `json:"token"`
}

// AccentInfo describes one supported accent classification
type AccentInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
