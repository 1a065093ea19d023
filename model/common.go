package model

// Response is the common envelope for JSON API calls.
type Response struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"Update successful"`
	Count   int    `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}
