package validation

import (
	"testing"

	"team-scheduler/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    string `json:"name" validate:"required"`
	View    string `json:"view" validate:"omitempty,oneof=day month"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	StartAt string `json:"startAt" validate:"required,timestamp"`
}

type query struct {
	MemberID string `query:"memberId" validate:"required"`
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	assert.Nil(t, v.Struct(&sample{Name: "a", View: "day", Date: "2025-01-02", StartAt: "2025-01-02T09:00"}))

	appErr := v.Struct(&sample{View: "week", Date: "02/01/2025", StartAt: "tomorrow"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)

	details, ok := appErr.Details.([]FieldError)
	require.True(t, ok)
	fields := map[string]string{}
	for _, d := range details {
		fields[d.Field] = d.Message
	}
	assert.Equal(t, "is required", fields["name"])
	assert.Equal(t, "must be one of [day month]", fields["view"])
	assert.Equal(t, "must be a valid timestamp", fields["startAt"])
	assert.Contains(t, fields, "date")
}

func TestValidator_QueryTagNames(t *testing.T) {
	fields := New().Fields(&query{})
	require.Len(t, fields, 1)
	assert.Equal(t, "memberId", fields[0].Field)
}

func TestNewError(t *testing.T) {
	assert.Nil(t, NewError(nil))

	appErr := Field("endAt", "must be after startAt")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	assert.Equal(t, []FieldError{{Field: "endAt", Message: "must be after startAt"}}, appErr.Details)
}
