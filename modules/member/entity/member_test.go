package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayLabel(t *testing.T) {
	code, slug, email := "AG-1", "thu", "thu@example.com"

	tests := []struct {
		name   string
		member Member
		label  string
	}{
		{"agent code first", Member{ID: 1, AgentCode: &code, Slug: &slug, Email: &email}, "AG-1"},
		{"then slug", Member{ID: 1, Slug: &slug, Email: &email}, "thu"},
		{"then email", Member{ID: 1, Email: &email}, "thu@example.com"},
		{"then id", Member{ID: 15}, "15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.label, DisplayLabel(&tt.member))
		})
	}
}

func TestName_IgnoresEmail(t *testing.T) {
	email := "x@example.com"
	assert.Nil(t, (&Member{ID: 1, Email: &email}).Name())
}
