package api

import (
	"net/http"

	"github.com/codecompass/codecompass/internal/errors"
	"github.com/codecompass/codecompass/internal/logger"
)

// handleError centralizes error handling for HTTP responses
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.NewInternalError(err)
	}

	if appErr.Status >= 500 {
		log.Error("server error: %v", appErr)
	} else {
		log.Warn("client error: %v", appErr)
	}

	http.Error(w, appErr.Message, appErr.Status)
}

// errorDetail extracts the message to surface to the user: the underlying
// collaborator error verbatim when present, the AppError message otherwise.
func errorDetail(err error) string {
	if appErr, ok := err.(*errors.AppError); ok {
		if appErr.Err != nil {
			return appErr.Err.Error()
		}
		return appErr.Message
	}
	return err.Error()
}
