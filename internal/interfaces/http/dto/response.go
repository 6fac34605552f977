package dto

// MessageResponse is the success body for mutations: {"message": "..."}
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the failure body for every endpoint: {"error": "..."}
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewMessageResponse creates a mutation success body
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// NewErrorResponse creates a failure body
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
