package utils

import (
	"encoding/json"
	"net/http"
)

// Every handler answers with one discriminated envelope:
//
//	{"success": true,  "data": <payload>}
//	{"success": false, "error": {"code": ..., "message": ...}}
//
// so clients never have to guess between raw rows, bare message
// objects and raw store errors.

// Error codes used across the handler surface.
const (
	CodeBadRequest      = "BAD_REQUEST"
	CodeValidation      = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeDBError         = "DB_ERROR"
	CodeFeatureDisabled = "FEATURE_DISABLED"
)

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

func Error(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

// Message answers a write with a confirmation text only.
func Message(w http.ResponseWriter, status int, text string) {
	JSON(w, status, map[string]interface{}{"message": text})
}

// Created answers a successful insert with the new row id.
func Created(w http.ResponseWriter, text string, id interface{}) {
	JSON(w, http.StatusCreated, map[string]interface{}{
		"message": text,
		"id":      id,
	})
}
