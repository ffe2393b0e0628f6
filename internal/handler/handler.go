package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"product-api/internal/model"

	"github.com/rs/zerolog"
)

// statusByCode maps domain error codes to HTTP status codes.
var statusByCode = map[string]int{
	model.ErrCodeMissingField:      http.StatusBadRequest,
	model.ErrCodeInvalidFieldType:  http.StatusBadRequest,
	model.ErrCodeMissingQuery:      http.StatusBadRequest,
	model.ErrCodeInvalidPagination: http.StatusBadRequest,
	model.ErrCodeProductNotFound:   http.StatusNotFound,
}

// writeJSON writes a JSON response with the given status code.
// The status line is already sent when encoding fails, so the error is only logged.
func writeJSON(w http.ResponseWriter, status int, data interface{}, logger zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error().Err(err).Int("status", status).Msg("failed to encode response")
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Warn().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message}, logger)
}

// writeServiceError translates an error returned by the service layer.
// Domain errors keep their message; anything else becomes a generic 500
// and the detail stays in the log.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		if status, ok := statusByCode[domainErr.Code]; ok {
			writeError(w, status, domainErr.Message, logger)
			return
		}
	}

	logger.Error().Err(err).Msg("unhandled service error")
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: model.MsgInternalError}, logger)
}
