package utils

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

type ItemResponse struct {
	Item any `json:"item"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// ResponseJSON writes body as JSON with the given status code
func ResponseJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseOK(w http.ResponseWriter, body any) {
	ResponseJSON(w, http.StatusOK, body)
}

// returns 200 OK with {"item": ...}
func ResponseItem(w http.ResponseWriter, item any) {
	ResponseJSON(w, http.StatusOK, ItemResponse{Item: item})
}

// returns 201 Created with {"item": ...}
func ResponseCreated(w http.ResponseWriter, item any) {
	ResponseJSON(w, http.StatusCreated, ItemResponse{Item: item})
}

// returns 200 OK with {"success": true}
func ResponseDeleted(w http.ResponseWriter) {
	ResponseJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// ------------- Error responses -------------

func ResponseError(w http.ResponseWriter, code int, message string, details any) {
	ResponseJSON(w, code, ErrorResponse{Error: message, Details: details})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, details any) {
	ResponseError(w, http.StatusBadRequest, message, details)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusUnauthorized, message, nil)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusNotFound, message, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter) {
	ResponseError(w, http.StatusInternalServerError, "Internal server error", nil)
}
