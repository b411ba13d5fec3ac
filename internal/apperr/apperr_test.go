package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindProcessing, http.StatusUnprocessableEntity},
		{KindConnection, http.StatusServiceUnavailable},
		{KindEnrichment, http.StatusBadGateway},
		{KindCache, http.StatusInternalServerError},
		{KindRateLimit, http.StatusTooManyRequests},
		{KindInternal, http.StatusInternalServerError},
		{Kind("something else"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.kind), string(tt.kind))
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindProcessing, KindOf(New(KindProcessing, "failed")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))

	// Kind survives wrapping.
	wrapped := eris.Wrap(New(KindEnrichment, "unavailable"), "pipeline: enrich")
	assert.Equal(t, KindEnrichment, KindOf(wrapped))
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := Wrap(KindConnection, "salesforce unreachable", cause)

	assert.Equal(t, "salesforce unreachable: dial tcp: refused", err.Error())
	assert.ErrorIs(t, err, cause)

	plain := New(KindCache, "eviction failed")
	assert.Equal(t, "eviction failed", plain.Error())
	assert.Nil(t, plain.Unwrap())
}

func TestValidationField(t *testing.T) {
	err := Validation("field is required", "manufacturer_name")
	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, "manufacturer_name", err.Field)

	got := As(error(err))
	assert.NotNil(t, got)
	assert.Equal(t, "manufacturer_name", got.Field)
}
