package match

import (
	"fmt"
	"strings"
)

// manufacturerExplanations formats a match-found explanation for a known
// manufacturer. Keyed by lowercased manufacturer name; arguments are
// model number and product line.
var manufacturerExplanations = map[string]string{
	"cummins":     "The model number '%s' corresponds to the '%s' product line, a diesel generator set manufactured by Cummins. The '%[2]s' model is part of Cummins' 60Hz diesel generator offerings with robust performance specifications. This information is sourced from Cummins' official product documentation.",
	"caterpillar": "The model number '%s' identifies a Caterpillar '%s' series generator. This model is part of Caterpillar's industrial generator lineup known for reliability and performance in demanding applications.",
	"kohler":      "The model number '%s' represents a Kohler '%s' series generator, part of their commercial and industrial power generation portfolio.",
}

const genericExplanation = "The model number '%s' has been matched to the '%s' product line based on manufacturer specifications and industry standard naming conventions."

// Explain generates the human-readable explanation for the current state
// and stores it under "explanation" with status "generated". The result
// is deterministic for a given state.
func Explain(st *State) string {
	manufacturer := st.Value(FieldManufacturer, "")
	modelNumber := st.Value(FieldModelNumber, "")
	productLine := st.Value(FieldProductLine, "")

	var explanation string
	switch {
	case st.IsValid() && productLine != "":
		tmpl, ok := manufacturerExplanations[strings.ToLower(manufacturer)]
		if !ok {
			tmpl = genericExplanation
		}
		explanation = fmt.Sprintf(tmpl, modelNumber, productLine)
	case len(st.Failed()) > 0:
		explanation = fmt.Sprintf(
			"The data needs to be more specific for accurate matching. Issues found with: %s. Please provide more detailed information.",
			strings.Join(st.Failed(), ", "))
	default:
		explanation = fmt.Sprintf(
			"Valid data provided but no specific product line match could be determined for model '%s'.", modelNumber)
	}

	st.Insert(FieldExplanation, StatusGenerated, "Explanation generated based on processing results", explanation)
	return explanation
}
