package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsandoval/travel-companion/backend/internal/domain"
)

// errorResponse is the envelope for every non-2xx response: a human-readable
// error string plus a machine-readable code. Both are part of the wire
// contract.
type errorResponse struct {
	Error string      `json:"error"`
	Code  domain.Code `json:"code"`
}

// writeJSON encodes v as the response body with the given status.
// Encoding failures are logged, not surfaced — the header is already written.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError writes the standard error envelope.
func writeError(w http.ResponseWriter, status int, code domain.Code, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}

// writeServiceError maps a service-layer error onto the wire. Coded errors
// carry their own code and kind; a bare domain.ErrNotFound takes the
// operation-specific code and message supplied by the caller (the handler is
// the layer that knows what was being looked up); anything else is a 500
// with the underlying description attached for diagnostics.
func writeServiceError(w http.ResponseWriter, err error, notFoundCode domain.Code, notFoundMsg string) {
	var ce *domain.CodedError
	if errors.As(err, &ce) {
		writeError(w, statusForKind(ce), ce.Code, ce.Msg)
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, notFoundCode, notFoundMsg)
		return
	}
	writeInternalError(w, err)
}

// writeInternalError writes the uniform 500 envelope for unexpected failures.
func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, domain.CodeInternalError,
		"Internal server error: "+err.Error())
}

// statusForKind resolves the HTTP status for a coded error via its sentinel kind.
func statusForKind(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody decodes the request body into dst, writing the error response
// itself on failure. Returns false when the caller should stop. Malformed
// JSON and type mismatches are client errors; a body cut off by the
// max-body-size middleware is reported as 413.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, domain.CodeRequestTooLarge,
				"Request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, domain.CodeInvalidRequestBody, "Invalid request body")
		return false
	}
	return true
}

// pathID parses the named chi URL parameter as an integer id.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
