package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_InsertAndGet(t *testing.T) {
	st := NewState()

	_, ok := st.Get(FieldManufacturer)
	assert.False(t, ok)

	st.Insert(FieldManufacturer, StatusOK, "Valid manufacturer provided", "Cummins")

	rec, ok := st.Get(FieldManufacturer)
	assert.True(t, ok)
	assert.Equal(t, StatusOK, rec.Status)
	assert.Equal(t, "Cummins", rec.Value)
}

func TestState_InsertOverwritesKeepingOrder(t *testing.T) {
	st := NewState()
	st.Insert(FieldManufacturer, StatusGeneric, "placeholder", "Unknown")
	st.Insert(FieldModelNumber, StatusOK, "ok", "QSK19")
	st.Insert(FieldManufacturer, StatusOK, "enriched", "Cummins Power Generation")

	assert.Equal(t, []string{FieldManufacturer, FieldModelNumber}, st.Fields())

	rec, _ := st.Get(FieldManufacturer)
	assert.Equal(t, StatusOK, rec.Status)
	assert.Equal(t, "Cummins Power Generation", rec.Value)
}

func TestState_FailedPreservesInsertionOrder(t *testing.T) {
	st := NewState()
	st.Insert(FieldManufacturer, StatusGeneric, "", "Unknown")
	st.Insert(FieldModelNumber, StatusOK, "", "QSK19")
	st.Insert(FieldClassification, StatusMissing, "", "")
	st.Insert(FieldProductLine, StatusNotFound, "", "")

	assert.Equal(t, []string{FieldManufacturer, FieldClassification, FieldProductLine}, st.Failed())
}

func TestState_IsValid(t *testing.T) {
	st := NewState()
	assert.True(t, st.IsValid(), "empty state has no failures")

	st.Insert(FieldManufacturer, StatusOK, "", "Cummins")
	assert.True(t, st.IsValid())

	st.Insert(FieldModelNumber, StatusInvalid, "", "x")
	assert.False(t, st.IsValid())

	st.Insert(FieldModelNumber, StatusOK, "", "QSK19")
	assert.True(t, st.IsValid())
}

func TestState_ExplanationDoesNotCountAsFailed(t *testing.T) {
	st := NewState()
	st.Insert(FieldManufacturer, StatusOK, "", "Cummins")
	st.Insert(FieldExplanation, StatusGenerated, "", "some text")

	assert.True(t, st.IsValid())
	assert.Empty(t, st.Failed())
}

func TestState_CloneIsIndependent(t *testing.T) {
	st := NewState()
	st.Insert(FieldManufacturer, StatusOK, "", "Cummins")

	cp := st.Clone()
	cp.Insert(FieldManufacturer, StatusGeneric, "", "Unknown")
	cp.Insert(FieldModelNumber, StatusOK, "", "QSK19")

	rec, _ := st.Get(FieldManufacturer)
	assert.Equal(t, StatusOK, rec.Status)
	_, ok := st.Get(FieldModelNumber)
	assert.False(t, ok)
}

func TestState_ValueFallback(t *testing.T) {
	st := NewState()
	assert.Equal(t, "fallback", st.Value(FieldManufacturer, "fallback"))

	st.Insert(FieldManufacturer, StatusMissing, "", "")
	assert.Equal(t, "", st.Value(FieldManufacturer, "fallback"), "tracked empty value wins over fallback")
}
