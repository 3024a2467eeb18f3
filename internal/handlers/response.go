package handlers

import (
	"encoding/json"
	"net/http"

	"fitplan-api/pkg/lambda"
)

// Response messages
const (
	MsgNotAuthenticated = "User not authenticated"
	MsgUserIDMismatch   = "User ID mismatch"
	MsgMissingFields    = "Missing required fields"
	MsgInvalidBody      = "Invalid request body"
	MsgUserNotFound     = "User not found"
	MsgRoutinesNotFound = "User routines not found"
	MsgRecipesNotFound  = "User recipes not found"
	MsgDataCreated      = "User data created successfully"
	MsgRouteNotFound    = "Route not found"
	MsgInternalError    = "Internal Server Error"
)

const (
	contentTypeHeaderName = "Content-Type"
	contentTypeJSON       = "application/json"
)

// respond serializes payload as the JSON body; string payloads become JSON strings
func respond(status int, payload interface{}) *lambda.Response {
	body, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(MsgInternalError)
	}

	return &lambda.Response{
		StatusCode: status,
		Headers:    map[string]string{contentTypeHeaderName: contentTypeJSON},
		Body:       body,
	}
}

// JSONResponse builds a response for callers outside the dispatcher, such as transport adapters
func JSONResponse(status int, payload interface{}) *lambda.Response {
	return respond(status, payload)
}
