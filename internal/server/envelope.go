package server

import (
	"encoding/json"
	"net/http"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/sf-asset-bridge/internal/apperr"
)

// ErrorResponse is the error envelope returned for all failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

// writeError maps an error to its envelope and status code. Unrecognized
// errors become a 500 with a generic message; the cause stays in logs
// only.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	ae := apperr.As(err)
	if ae == nil {
		ae = apperr.Wrap(apperr.KindInternal, "An unexpected error occurred", err)
	}

	writeJSON(w, apperr.HTTPStatus(ae.Kind), ErrorResponse{
		Error:   string(ae.Kind),
		Message: ae.Message,
		Details: eris.ToString(err, false),
		Field:   ae.Field,
	})
}
