package websocket

// MessageType defines the type of WebSocket message
type MessageType string

// Supported message types
const (
	MessageTypeProgress MessageType = "progress"
	MessageTypeError    MessageType = "error"
	MessageTypePing     MessageType = "ping"
	MessageTypePong     MessageType = "pong"
)

// BaseMessage defines the common structure for all WebSocket messages
type BaseMessage struct {
	Type      MessageType `json:"type"`
	Timestamp string      `json:"timestamp"`
}

// ProgressMessage reports a pipeline stage change for a running analysis
type ProgressMessage struct {
	BaseMessage
	AnalysisID string `json:"analysis_id"`
	Stage      string `json:"stage"`
	Detail     string `json:"detail,omitempty"`
}

// ErrorMessage reports a hub-level problem to the client
type ErrorMessage struct {
	BaseMessage
	Message string `json:"message"`
}
