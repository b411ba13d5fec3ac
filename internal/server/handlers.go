package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/sells-group/sf-asset-bridge/internal/apperr"
	"github.com/sells-group/sf-asset-bridge/internal/match"
)

// MatchRequest is the POST /match request body. All fields must be
// present, but empty values are allowed — emptiness is a validation
// outcome the pipeline reports, not a transport error. Pointers
// distinguish absent from empty. The GUID is passed through without
// affecting matching.
type MatchRequest struct {
	AssetClassificationGUID2 *string `json:"asset_classification_guid2"`
	AssetClassificationName  *string `json:"asset_classification_name"`
	ManufacturerName         *string `json:"manufacturer_name"`
	ModelNumber              *string `json:"model_number"`
}

func (s *Server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Salesforce AI Bridge is running"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, apperr.Wrap(apperr.KindValidation, "invalid request body", err))
		return
	}
	if err := validateRequest(req); err != nil {
		writeError(w, r, err)
		return
	}

	in := match.Input{
		ClassificationGUID: *req.AssetClassificationGUID2,
		Classification:     *req.AssetClassificationName,
		Manufacturer:       *req.ManufacturerName,
		ModelNumber:        *req.ModelNumber,
	}

	st, err := s.svc.Process(r.Context(), in)
	if err != nil {
		zap.L().Error("match processing failed",
			zap.String("request_id", RequestID(r.Context())),
			zap.Error(err),
		)
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, match.Project(st, in))
}

// validateRequest enforces presence of all request fields.
func validateRequest(req MatchRequest) error {
	checks := []struct {
		value *string
		field string
	}{
		{req.AssetClassificationGUID2, "asset_classification_guid2"},
		{req.AssetClassificationName, "asset_classification_name"},
		{req.ManufacturerName, "manufacturer_name"},
		{req.ModelNumber, "model_number"},
	}
	for _, c := range checks {
		if c.value == nil {
			return apperr.Validation("field is required", c.field)
		}
	}
	return nil
}
