package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Code    string         `json:"code,omitempty"`
	Message string         `json:"message,omitempty"`
	Data    any            `json:"data,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
	Error   *ErrorDetail   `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// HTTPError pairs a status code with a stable machine-readable key.
type HTTPError struct {
	Code    int
	Key     string
	Message string // optional, defaults to the status text
}

func (e HTTPError) Error() string {
	return e.Key
}

// ValidationError maps request fields to their problems.
type ValidationError map[string][]string

func (v ValidationError) Error() string {
	return "validation_error"
}

func (v ValidationError) add(field, msg string) {
	v[field] = append(v[field], msg)
}

func respond(w http.ResponseWriter, r *http.Request, status int, body Envelope) {
	render.Status(r, status)
	render.JSON(w, r, body)
}

func ok(w http.ResponseWriter, r *http.Request, data any) {
	respond(w, r, http.StatusOK, Envelope{Code: "ok", Data: data})
}

// done is a 200 carrying a human-readable confirmation.
func done(w http.ResponseWriter, r *http.Request, msg string, data any) {
	respond(w, r, http.StatusOK, Envelope{Code: "ok", Message: msg, Data: data})
}

func created(w http.ResponseWriter, r *http.Request, msg string, data any) {
	respond(w, r, http.StatusCreated, Envelope{Code: "created", Message: msg, Data: data})
}

func okWithMeta(w http.ResponseWriter, r *http.Request, data any, meta map[string]any) {
	respond(w, r, http.StatusOK, Envelope{Code: "ok", Data: data, Meta: meta})
}

// fail renders err. HTTPError and ValidationError keep their status and key;
// anything else is a 500 with a generic message.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	var (
		httpErr HTTPError
		valErr  ValidationError
	)
	switch {
	case errors.As(err, &valErr):
		respond(w, r, http.StatusUnprocessableEntity, Envelope{
			Code:  "validation_error",
			Error: &ErrorDetail{Code: "validation_error", Message: "request is invalid", Details: valErr},
		})
	case errors.As(err, &httpErr):
		msg := httpErr.Message
		if msg == "" {
			msg = http.StatusText(httpErr.Code)
		}
		respond(w, r, httpErr.Code, Envelope{
			Code:  httpErr.Key,
			Error: &ErrorDetail{Code: httpErr.Key, Message: msg},
		})
	default:
		respond(w, r, http.StatusInternalServerError, Envelope{
			Code:  ErrInternal.Key,
			Error: &ErrorDetail{Code: ErrInternal.Key, Message: http.StatusText(http.StatusInternalServerError)},
		})
	}
}
