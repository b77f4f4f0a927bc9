package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectStringArrays(t *testing.T) {
	t.Parallel()
	p := &Project{}

	assert.Empty(t, p.GetSkillsNeeded())

	p.SetSkillsNeeded([]string{"Go", "React"})
	assert.Equal(t, []string{"Go", "React"}, p.GetSkillsNeeded())

	p.SetSkillsNeeded(nil)
	assert.Empty(t, p.GetSkillsNeeded())
}

func TestHasCollaborator(t *testing.T) {
	t.Parallel()
	p := &Project{}
	assert.False(t, p.HasCollaborator("user-1"))

	p.SetCollaborators([]string{"user-1", "user-2"})
	assert.True(t, p.HasCollaborator("user-1"))
	assert.False(t, p.HasCollaborator("user-3"))
}

func TestProfileExperienceRoundTrip(t *testing.T) {
	t.Parallel()
	profile := &UserProfile{}
	assert.Empty(t, profile.GetExperience())

	profile.SetExperience([]Experience{
		{CompanyName: "Acme", Title: "Engineer", Description: "APIs"},
	})

	got := profile.GetExperience()
	assert.Len(t, got, 1)
	assert.Equal(t, "Acme", got[0].CompanyName)
}
