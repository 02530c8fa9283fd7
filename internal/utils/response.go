package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

type Payload struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// JSONResponse sends a JSON response with given status, success flag, and payload
func JSONResponse(w http.ResponseWriter, status int, payload Payload) {
	JSON(w, status, payload)
}

// ErrorResponse sends {success: false, error: message}.
func ErrorResponse(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Payload{Success: false, Error: message})
}

// JSON writes any value as the response body.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
