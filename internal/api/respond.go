package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/framegrid/framegrid/pkg/errors"
	"github.com/framegrid/framegrid/pkg/store"
)

type errorPayload struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured error codes to HTTP statuses. Unrecognized
// errors become 500s with their message intact - the API is operator-facing
// and hides nothing.
func writeError(w http.ResponseWriter, err error) {
	if stderrors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorPayload{errorDetail{
			Code:    string(errors.ErrCodePlanNotFound),
			Message: err.Error(),
		}})
		return
	}

	code := errors.GetCode(err)
	writeJSON(w, statusFor(code), errorPayload{errorDetail{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidConfig,
		errors.ErrCodeInvalidPolygon, errors.ErrCodeInvalidDocument,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPlanID:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodePlanNotFound,
		errors.ErrCodeColumnNotFound, errors.ErrCodeBeamNotFound,
		errors.ErrCodeSessionNotFound:
		return http.StatusNotFound
	case errors.ErrCodeConflict:
		return http.StatusConflict
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody decodes a JSON request body into v, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return false
	}
	return true
}
