// Package salesforce provides the enrichment collaborator contract for
// failed asset validations, plus a randomized mock implementation that
// simulates Salesforce record lookups.
package salesforce

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Enrichment is the replacement data returned for a single failed field.
type Enrichment struct {
	EnhancedValue  string         `json:"enhanced_value"`
	Confidence     float64        `json:"confidence"`
	Source         string         `json:"source"`
	AdditionalData map[string]any `json:"additional_data"`
}

// Summary aggregates an enrichment round trip.
type Summary struct {
	FieldsEnriched int     `json:"fields_enriched"`
	AvgConfidence  float64 `json:"avg_confidence"`
	Explanation    string  `json:"explanation"`
}

// Result holds per-field enrichments plus a summary. A field requested
// for enrichment may be absent from Enriched; callers must leave such
// fields failed.
type Result struct {
	Enriched map[string]Enrichment `json:"enriched_data"`
	Summary  Summary               `json:"summary"`
}

// Enricher supplies replacement values for fields that failed validation.
type Enricher interface {
	// EnrichFailed looks up enrichment data for the given field names.
	EnrichFailed(ctx context.Context, fields []string) (*Result, error)
}

// summarize builds the Summary for a set of enrichments.
func summarize(enriched map[string]Enrichment) Summary {
	var total float64
	sourceSet := make(map[string]bool)
	for _, e := range enriched {
		total += e.Confidence
		sourceSet[e.Source] = true
	}

	var avg float64
	if len(enriched) > 0 {
		avg = total / float64(len(enriched))
	}

	sources := make([]string, 0, len(sourceSet))
	for s := range sourceSet {
		sources = append(sources, s)
	}
	sort.Strings(sources)

	return Summary{
		FieldsEnriched: len(enriched),
		AvgConfidence:  avg,
		Explanation: fmt.Sprintf(
			"Enriched %d fields using %s with average confidence of %.2f. Enhanced data includes detailed specifications, vendor information, and technical parameters.",
			len(enriched), strings.Join(sources, ", "), avg),
	}
}
