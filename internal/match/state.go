// Package match implements the asset validation and product-line matching
// pipeline: per-field validators, pattern-based product-line detection,
// enrichment of failed fields, and explanation generation.
package match

// Tracked field names. Validators and the matcher write records under
// these keys; the enrichment dispatch is closed over the same set.
const (
	FieldManufacturer   = "manufacturer"
	FieldModelNumber    = "model_number"
	FieldClassification = "asset_classification"
	FieldProductLine    = "product_line"
	FieldExplanation    = "explanation"
)

// Status classifies a single field's validation outcome.
type Status string

const (
	StatusOK        Status = "ok"
	StatusMissing   Status = "missing"
	StatusInvalid   Status = "invalid"
	StatusGeneric   Status = "generic"
	StatusNotFound  Status = "not_found"
	StatusGenerated Status = "generated"
)

// Record describes one field's validation outcome.
type Record struct {
	Status Status `json:"status"`
	Reason string `json:"reason"`
	Value  string `json:"value"`
}

// State is the request-scoped bag of field validation records. It
// preserves insertion order so failure listings and enrichment passes are
// deterministic. A State is owned by exactly one in-flight request and is
// never shared; the cache stores clones, not live instances.
type State struct {
	records map[string]Record
	order   []string
}

// NewState creates an empty State.
func NewState() *State {
	return &State{records: make(map[string]Record)}
}

// Insert records a validation outcome for a field, overwriting any
// previous record. First insertion fixes the field's position in
// iteration order.
func (s *State) Insert(field string, status Status, reason, value string) {
	if _, ok := s.records[field]; !ok {
		s.order = append(s.order, field)
	}
	s.records[field] = Record{Status: status, Reason: reason, Value: value}
}

// Get returns the record for a field. A field is absent until first
// validated.
func (s *State) Get(field string) (Record, bool) {
	r, ok := s.records[field]
	return r, ok
}

// Value returns the tracked value for a field, or fallback if the field
// has no record.
func (s *State) Value(field, fallback string) string {
	if r, ok := s.records[field]; ok {
		return r.Value
	}
	return fallback
}

// Fields returns the tracked field names in insertion order.
func (s *State) Fields() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Failed returns the names of fields whose status is not "ok", in
// insertion order. The explanation record does not count against
// validity.
func (s *State) Failed() []string {
	var failed []string
	for _, f := range s.order {
		r := s.records[f]
		if r.Status != StatusOK && r.Status != StatusGenerated {
			failed = append(failed, f)
		}
	}
	return failed
}

// IsValid reports whether every tracked field passed validation.
func (s *State) IsValid() bool {
	return len(s.Failed()) == 0
}

// Clone returns a deep copy. Used when writing to and reading from the
// shared cache so no live request state leaks across requests.
func (s *State) Clone() *State {
	cp := &State{
		records: make(map[string]Record, len(s.records)),
		order:   make([]string, len(s.order)),
	}
	copy(cp.order, s.order)
	for k, v := range s.records {
		cp.records[k] = v
	}
	return cp
}
