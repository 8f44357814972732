package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/devconnect-app/backend/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	r.WriteJSONStatus(w, http.StatusOK, data)
}

// WriteJSONStatus marshals data first so an encoding failure can still
// produce a clean 500 instead of a half-written body.
func (r Responder) WriteJSONStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError maps an *ApiErr onto its status code and a short {msg} body.
// Anything else is logged and surfaces as a generic 500; internal details
// never reach the client.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.WriteJSONStatus(w, http.StatusInternalServerError, msgResponse{Msg: "Server error"})
		return
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Str("cause", apiErr.GetFullError()).Msg(apiErr.Error())
		r.WriteJSONStatus(w, apiErr.StatusCode, msgResponse{Msg: "Server error"})
		return
	}

	if apiErr.Cause != nil {
		r.logger.Warn().Str("cause", apiErr.GetFullError()).Msg(apiErr.Error())
	}
	r.WriteJSONStatus(w, apiErr.StatusCode, msgResponse{Msg: apiErr.Error()})
}
