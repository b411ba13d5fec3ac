package match

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/sf-asset-bridge/internal/apperr"
	"github.com/sells-group/sf-asset-bridge/internal/cache"
	"github.com/sells-group/sf-asset-bridge/pkg/salesforce"
)

// Input is the asset data submitted for matching. ClassificationGUID is
// carried through to the response layer but plays no part in matching.
type Input struct {
	ClassificationGUID string
	Classification     string
	Manufacturer       string
	ModelNumber        string
}

// Response is the projection of a finalized State returned to callers.
type Response struct {
	AssetClassification string `json:"asset_classification"`
	Manufacturer        string `json:"manufacturer"`
	ModelNumber         string `json:"model_number"`
	ProductLine         string `json:"product_line"`
	Explanation         string `json:"explanation"`
}

// Service orchestrates validation, enrichment, product-line detection and
// explanation generation. Constructed once at startup and shared across
// requests; the response cache is its only mutable state.
type Service struct {
	matcher  *Matcher
	enricher salesforce.Enricher
	cache    *cache.LRU[string, *State]
}

// NewService creates the orchestrator with its collaborators.
func NewService(matcher *Matcher, enricher salesforce.Enricher, cacheSize int) *Service {
	return &Service{
		matcher:  matcher,
		enricher: enricher,
		cache:    cache.New[string, *State](cacheSize),
	}
}

// CacheStats returns response-cache statistics.
func (s *Service) CacheStats() cache.Stats {
	return s.cache.Stats()
}

// Process runs the full validation-and-enrichment pipeline for one asset
// and returns the finalized state. Cache failures never fail a request;
// enrichment failures surface as a processing error.
func (s *Service) Process(ctx context.Context, in Input) (*State, error) {
	log := zap.L().With(
		zap.String("manufacturer", in.Manufacturer),
		zap.String("model_number", in.ModelNumber),
	)

	key := CacheKey(in)
	if cached, ok := s.cache.Get(key); ok {
		log.Info("cache hit, returning cached response", zap.String("key", key))
		return cached.Clone(), nil
	}
	log.Debug("cache miss, processing new request", zap.String("key", key))

	st := NewState()
	CheckManufacturer(in.Manufacturer, st)
	CheckModelNumber(in.ModelNumber, st)
	CheckClassification(in.Classification, st)
	s.matcher.Detect(in.Manufacturer, in.ModelNumber, st)

	if st.IsValid() {
		explanation := Explain(st)
		log.Info("asset data valid", zap.String("explanation", explanation))
	} else {
		if err := s.enrich(ctx, in, st, log); err != nil {
			return nil, err
		}
	}

	// Best effort: a failed cache write must not fail the request.
	s.cache.Set(key, st.Clone())

	return st, nil
}

// enrich runs the external enrichment round trip for failed fields,
// applies the results, and re-derives product line and explanation.
func (s *Service) enrich(ctx context.Context, in Input, st *State, log *zap.Logger) error {
	failed := st.Failed()
	log.Info("asset data invalid, enriching", zap.Strings("failed_fields", failed))

	result, err := s.enricher.EnrichFailed(ctx, failed)
	if err != nil {
		if ae := apperr.As(err); ae != nil {
			return err
		}
		return apperr.Wrap(apperr.KindProcessing, "failed to enrich asset data", err)
	}
	if result == nil {
		return apperr.New(apperr.KindProcessing, "enrichment returned no result")
	}

	// Only fields that originally failed are overwritten. Enrichment data
	// for other fields is ignored, and fields missing from the result
	// stay failed.
	for _, field := range failed {
		enrichment, ok := result.Enriched[field]
		if !ok {
			continue
		}
		st.Insert(field, StatusOK,
			fmt.Sprintf("Enriched via Salesforce: %s", enrichment.Source),
			enrichment.EnhancedValue)
	}

	s.matcher.Detect(
		st.Value(FieldManufacturer, in.Manufacturer),
		st.Value(FieldModelNumber, in.ModelNumber),
		st,
	)

	explanation := Explain(st)
	log.Info("enrichment complete",
		zap.Int("fields_enriched", result.Summary.FieldsEnriched),
		zap.Float64("avg_confidence", result.Summary.AvgConfidence),
		zap.String("explanation", explanation),
	)
	return nil
}

// Project builds the response shape from a finalized state, falling back
// to the original inputs for fields the state never tracked.
func Project(st *State, in Input) Response {
	return Response{
		AssetClassification: st.Value(FieldClassification, in.Classification),
		Manufacturer:        st.Value(FieldManufacturer, in.Manufacturer),
		ModelNumber:         st.Value(FieldModelNumber, in.ModelNumber),
		ProductLine:         st.Value(FieldProductLine, ""),
		Explanation:         st.Value(FieldExplanation, ""),
	}
}

// CacheKey builds the deterministic cache key from normalized inputs.
// Case and surrounding whitespace do not affect the key.
func CacheKey(in Input) string {
	norm := func(v string) string {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return norm(in.Classification) + "|" + norm(in.Manufacturer) + "|" + norm(in.ModelNumber)
}
