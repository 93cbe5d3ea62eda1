package validation

import (
	"strings"
	"testing"

	domainerrors "jelpi/internal/domain/errors"
	"jelpi/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDeviceID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: "ACT-123456", want: true},
		{id: " jlp001 ", want: true},
		{id: strings.Repeat("A", 32), want: true},
		{id: "", want: false},
		{id: "   ", want: false},
		{id: "JLP 001", want: false},
		{id: "JLP/001", want: false},
		{id: "JLPñ01", want: false},
		{id: strings.Repeat("A", 33), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDeviceID(tt.id))
		})
	}
}

func TestIsPhone(t *testing.T) {
	assert.True(t, IsPhone("555-123-4567"))
	assert.True(t, IsPhone("+52 (55) 1234 5678"))
	assert.False(t, IsPhone("12345"))
	assert.False(t, IsPhone("55+51234567"))
	assert.False(t, IsPhone("call me"))
}

func TestNew_ReportsWireNames(t *testing.T) {
	type request struct {
		ID    string `json:"id" validate:"required,deviceid"`
		Phone string `json:"telefono" validate:"required,phone"`
	}

	err := FromError(New().Struct(&request{ID: "   ", Phone: "123"}))

	verr, ok := errors.AsTarget[*domainerrors.ValidationError](err)
	require.True(t, ok)
	assert.True(t, verr.HasField("id"))
	assert.True(t, verr.HasField("telefono"))
	assert.NoError(t, FromError(nil))
}
