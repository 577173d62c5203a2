package server

import (
	"encoding/json"
	"net/http"

	interrors "github.com/jrsteele09/go-saas-server/internal/errors"
	"github.com/rs/zerolog/log"
)

// errorResponse is the JSON envelope for all error replies.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("[writeJSON] encode response")
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// writeServiceError maps domain sentinel errors to HTTP status codes.
// Unrecognised errors are logged and reported as a generic 500 so internal
// detail never leaks to clients.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case interrors.Is(err, interrors.ErrEmailTaken),
		interrors.Is(err, interrors.ErrAlreadyExists),
		interrors.Is(err, interrors.ErrPlanExists),
		interrors.Is(err, interrors.ErrCategoryExists),
		interrors.Is(err, interrors.ErrSKUExists),
		interrors.Is(err, interrors.ErrProductNotFound):
		writeError(w, http.StatusBadRequest, rootMessage(err))
	case interrors.Is(err, interrors.ErrInvalidCredentials),
		interrors.Is(err, interrors.ErrMissingToken),
		interrors.Is(err, interrors.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, rootMessage(err))
	case interrors.Is(err, interrors.ErrNotMember),
		interrors.Is(err, interrors.ErrInsufficientRole):
		writeError(w, http.StatusForbidden, rootMessage(err))
	case interrors.Is(err, interrors.ErrOrgNotFound),
		interrors.Is(err, interrors.ErrAccountNotFound),
		interrors.Is(err, interrors.ErrPlanNotFound),
		interrors.Is(err, interrors.ErrNotFound):
		writeError(w, http.StatusNotFound, rootMessage(err))
	case interrors.Is(err, interrors.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, rootMessage(err))
	default:
		log.Error().Err(err).Msg("[writeServiceError] unhandled service error")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// rootMessage unwraps to the sentinel so the client sees the stable message
// rather than the wrapped call-site context.
func rootMessage(err error) string {
	for {
		unwrapped := interrors.Unwrap(err)
		if unwrapped == nil {
			return err.Error()
		}
		err = unwrapped
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
