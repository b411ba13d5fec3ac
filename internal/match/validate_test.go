package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckManufacturer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Status
	}{
		{"valid", "Cummins", StatusOK},
		{"valid other", "Custom Manufacturer Inc.", StatusOK},
		{"empty", "", StatusMissing},
		{"whitespace only", "   ", StatusMissing},
		{"generic lowercase", "to be determined", StatusGeneric},
		{"generic mixed case", "To Be Determined", StatusGeneric},
		{"generic uppercase", "TO BE DETERMINED", StatusGeneric},
		{"generic padded", "  Unknown  ", StatusGeneric},
		{"unknown uppercase", "UNKNOWN", StatusGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState()
			CheckManufacturer(tt.input, st)

			rec, ok := st.Get(FieldManufacturer)
			assert.True(t, ok)
			assert.Equal(t, tt.want, rec.Status)
		})
	}
}

func TestCheckManufacturer_StoresOriginalValue(t *testing.T) {
	st := NewState()
	CheckManufacturer("  Cummins  ", st)

	rec, _ := st.Get(FieldManufacturer)
	assert.Equal(t, "  Cummins  ", rec.Value, "value is stored untrimmed")

	st = NewState()
	CheckManufacturer("  ", st)
	rec, _ = st.Get(FieldManufacturer)
	assert.Equal(t, "", rec.Value, "missing stores empty string")
}

func TestCheckModelNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Status
	}{
		{"valid", "DQKAB-10679833", StatusOK},
		{"valid short-ish", "QSK", StatusOK},
		{"empty", "", StatusMissing},
		{"whitespace only", " \t ", StatusMissing},
		{"one char", "X", StatusInvalid},
		{"two chars", "AB", StatusInvalid},
		{"two chars padded", "  AB  ", StatusInvalid},
		{"generic 450", "450", StatusGeneric},
		{"generic 2000", "2000", StatusGeneric},
		{"generic word", "Generator", StatusGeneric},
		{"generic padded", " generator ", StatusGeneric},
		{"not generic substring", "4500", StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState()
			CheckModelNumber(tt.input, st)

			rec, ok := st.Get(FieldModelNumber)
			assert.True(t, ok)
			assert.Equal(t, tt.want, rec.Status)
		})
	}
}

func TestCheckClassification(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Status
	}{
		{"valid", "Generator (Diesel)", StatusOK},
		{"empty", "", StatusMissing},
		{"whitespace only", "   ", StatusMissing},
		{"too short", "AB", StatusInvalid},
		{"exactly three", "Gen", StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState()
			CheckClassification(tt.input, st)

			rec, ok := st.Get(FieldClassification)
			assert.True(t, ok)
			assert.Equal(t, tt.want, rec.Status)
		})
	}
}
