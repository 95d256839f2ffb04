package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the single error shape on the wire: {"error": msg}
type ErrorResponse struct {
	Error string `json:"error"`
}

// ResponseJSON writes data as JSON with the given status code
func ResponseJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// ResponseError writes {"error": message} with the given status code
func ResponseError(w http.ResponseWriter, code int, message string) {
	ResponseJSON(w, code, ErrorResponse{Error: message})
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusBadRequest, message)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusNotFound, message)
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusConflict, message)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusInternalServerError, message)
}
