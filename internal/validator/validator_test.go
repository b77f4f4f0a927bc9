package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleProfile struct {
	Firstname string   `json:"firstname" validate:"required"`
	Bio       string   `json:"bio" validate:"max=10"`
	Skills    []string `json:"skills" validate:"required,min=1,dive,notblank"`
}

type sampleSwipe struct {
	Action string `json:"action" validate:"required,is-swipe-action"`
}

type sampleProject struct {
	Status string `json:"status" validate:"omitempty,is-project-status"`
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()
	v := New()

	err := v.Validate(&sampleProfile{Firstname: "Mia", Bio: "short", Skills: []string{"Go"}})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	t.Parallel()
	v := New()

	err := v.Validate(&sampleProfile{Bio: "way too long bio", Skills: []string{"Go"}})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "firstname")
	assert.Contains(t, vErr.Errors, "bio")
	assert.NotContains(t, vErr.Errors, "Firstname")
}

func TestValidate_NotBlank(t *testing.T) {
	t.Parallel()
	v := New()

	err := v.Validate(&sampleProfile{Firstname: "Mia", Skills: []string{"  "}})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.NotEmpty(t, vErr.Errors)
}

func TestValidate_SwipeAction(t *testing.T) {
	t.Parallel()
	v := New()

	assert.NoError(t, v.Validate(&sampleSwipe{Action: "like"}))
	assert.NoError(t, v.Validate(&sampleSwipe{Action: "dislike"}))
	assert.Error(t, v.Validate(&sampleSwipe{Action: "superlike"}))
}

func TestValidate_ProjectStatus(t *testing.T) {
	t.Parallel()
	v := New()

	assert.NoError(t, v.Validate(&sampleProject{}))
	assert.NoError(t, v.Validate(&sampleProject{Status: "in-progress"}))
	assert.Error(t, v.Validate(&sampleProject{Status: "archived"}))
}
