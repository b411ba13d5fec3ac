package match

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed patterns.yaml
var patternsYAML []byte

// prefixLen is the number of leading model-number characters used by the
// heuristic fallback.
const prefixLen = 4

// Pattern maps a model-number substring to its canonical product-line
// label.
type Pattern struct {
	Match string `yaml:"match"`
	Line  string `yaml:"line"`
}

// ManufacturerPatterns holds the ordered pattern list for one
// manufacturer.
type ManufacturerPatterns struct {
	Manufacturer string    `yaml:"manufacturer"`
	Patterns     []Pattern `yaml:"patterns"`
}

// Matcher infers product lines from manufacturer and model number using a
// per-manufacturer pattern table with a positional prefix fallback.
type Matcher struct {
	byManufacturer map[string][]Pattern
}

// NewMatcher builds a Matcher from the embedded pattern table.
func NewMatcher() (*Matcher, error) {
	return newMatcherFromYAML(patternsYAML)
}

func newMatcherFromYAML(data []byte) (*Matcher, error) {
	var table []ManufacturerPatterns
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, eris.Wrap(err, "match: parse pattern table")
	}

	m := &Matcher{byManufacturer: make(map[string][]Pattern, len(table))}
	for _, entry := range table {
		key := strings.ToLower(entry.Manufacturer)
		if key == "" || len(entry.Patterns) == 0 {
			return nil, eris.New("match: pattern table entry missing manufacturer or patterns")
		}
		m.byManufacturer[key] = entry.Patterns
	}
	return m, nil
}

// Detect infers the product line and records the outcome under
// "product_line". Known manufacturers are matched against their pattern
// list in order; otherwise a model-number prefix containing at least one
// letter is used as a heuristic code. Detect is idempotent for identical
// inputs.
func (m *Matcher) Detect(manufacturer, modelNumber string, st *State) {
	manufacturerLower := strings.ToLower(manufacturer)
	modelLower := strings.ToLower(modelNumber)

	if patterns, ok := m.byManufacturer[manufacturerLower]; ok {
		for _, p := range patterns {
			if strings.Contains(modelLower, p.Match) {
				st.Insert(FieldProductLine, StatusOK,
					fmt.Sprintf("Found product line '%s' from pattern '%s'", p.Line, p.Match), p.Line)
				return
			}
		}
	}

	if prefix, ok := heuristicPrefix(modelNumber); ok {
		st.Insert(FieldProductLine, StatusOK,
			fmt.Sprintf("Extracted potential product line '%s' from model prefix", prefix), prefix)
		return
	}

	st.Insert(FieldProductLine, StatusNotFound, "No specific product line match found", "")
}

// heuristicPrefix returns the upper-cased leading prefix of the model
// number if it contains at least one letter.
func heuristicPrefix(modelNumber string) (string, bool) {
	runes := []rune(modelNumber)
	if len(runes) <= prefixLen-1 {
		return "", false
	}
	prefix := strings.ToUpper(string(runes[:prefixLen]))
	for _, r := range prefix {
		if unicode.IsLetter(r) {
			return prefix, true
		}
	}
	return "", false
}
