package match

import (
	"strings"
	"unicode/utf8"
)

// genericManufacturers are placeholder names that carry no identifying
// information.
var genericManufacturers = map[string]bool{
	"to be determined": true,
	"unknown":          true,
}

// genericModelNumbers are values too generic to identify a product line
// (bare power ratings and the word "generator").
var genericModelNumbers = map[string]bool{
	"450":       true,
	"500":       true,
	"600":       true,
	"1000":      true,
	"2000":      true,
	"generator": true,
}

// minFieldLen is the minimum trimmed length for model numbers and asset
// classifications.
const minFieldLen = 3

// CheckManufacturer validates a manufacturer name and records the outcome.
// Checks run in order: missing, generic placeholder, ok.
func CheckManufacturer(manufacturer string, st *State) {
	if strings.TrimSpace(manufacturer) == "" {
		st.Insert(FieldManufacturer, StatusMissing, "Manufacturer is empty or missing", "")
		return
	}
	if genericManufacturers[strings.ToLower(strings.TrimSpace(manufacturer))] {
		st.Insert(FieldManufacturer, StatusGeneric, "Manufacturer is generic placeholder", manufacturer)
		return
	}
	st.Insert(FieldManufacturer, StatusOK, "Valid manufacturer provided", manufacturer)
}

// CheckModelNumber validates a model number and records the outcome.
// Checks run in order: missing, too short, generic, ok.
func CheckModelNumber(modelNumber string, st *State) {
	trimmed := strings.TrimSpace(modelNumber)
	if trimmed == "" {
		st.Insert(FieldModelNumber, StatusMissing, "Model number is empty or missing", "")
		return
	}
	if utf8.RuneCountInString(trimmed) < minFieldLen {
		st.Insert(FieldModelNumber, StatusInvalid, "Model number too short (minimum 3 characters)", modelNumber)
		return
	}
	if genericModelNumbers[strings.ToLower(trimmed)] {
		st.Insert(FieldModelNumber, StatusGeneric, "Model number '"+modelNumber+"' is too generic", modelNumber)
		return
	}
	st.Insert(FieldModelNumber, StatusOK, "Valid model number provided", modelNumber)
}

// CheckClassification validates an asset classification and records the
// outcome. Checks run in order: missing, too short, ok.
func CheckClassification(classification string, st *State) {
	trimmed := strings.TrimSpace(classification)
	if trimmed == "" {
		st.Insert(FieldClassification, StatusMissing, "Asset classification is empty or missing", "")
		return
	}
	if utf8.RuneCountInString(trimmed) < minFieldLen {
		st.Insert(FieldClassification, StatusInvalid, "Asset classification too short (minimum 3 characters)", classification)
		return
	}
	st.Insert(FieldClassification, StatusOK, "Valid asset classification provided", classification)
}
