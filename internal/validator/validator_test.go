package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enumProbe struct {
	Role          string `json:"role" validate:"omitempty,is-user-role"`
	Category      string `json:"category" validate:"omitempty,is-job-category"`
	Status        string `json:"status" validate:"omitempty,is-application-status"`
	InterviewType string `json:"interviewType" validate:"omitempty,is-interview-type"`
	CompanySize   string `json:"companySize" validate:"omitempty,is-company-size"`
}

func TestEnumRulesAcceptValidValues(t *testing.T) {
	v := New()

	err := v.Validate(enumProbe{
		Role:          "employer",
		Category:      "full-time",
		Status:        "under-review",
		InterviewType: "in-person",
		CompanySize:   "51-200",
	})
	assert.NoError(t, err)
}

func TestEnumRulesAcceptEmpty(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(enumProbe{}))
}

func TestEnumRulesRejectUnknownValues(t *testing.T) {
	v := New()

	err := v.Validate(enumProbe{
		Role:     "superuser",
		Category: "gig",
		Status:   "hired",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "role")
	assert.Contains(t, vErr.Errors, "category")
	assert.Contains(t, vErr.Errors, "status")
	assert.NotContains(t, vErr.Errors, "interviewType")
}

type boundsProbe struct {
	Title string `json:"title" validate:"required,min=5,max=100"`
	Email string `json:"email" validate:"required,email"`
}

func TestFieldNamesComeFromJSONTags(t *testing.T) {
	v := New()

	err := v.Validate(boundsProbe{Title: "abc", Email: "nope"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "title")
	assert.Contains(t, vErr.Errors, "email")
}
