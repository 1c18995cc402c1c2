package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatus_Valid(t *testing.T) {
	for _, status := range ApplicationStatuses {
		assert.True(t, status.Valid(), status)
	}
	assert.False(t, ApplicationStatus("Ghosted").Valid())
	assert.False(t, ApplicationStatus("").Valid())
}

func TestRoundType_Valid(t *testing.T) {
	assert.True(t, RoundOnSite.Valid())
	assert.False(t, RoundType("Coffee Chat").Valid())
}

func TestExperienceLevel_Valid(t *testing.T) {
	assert.True(t, ExperiencePrincipal.Valid())
	assert.False(t, ExperienceLevel("Junior").Valid())
}

func TestUpdatableFieldsExcludeOwner(t *testing.T) {
	for _, list := range [][]string{
		ApplicationUpdatableFields.Fields(),
		ContactUpdatableFields.Fields(),
		InterviewRoundUpdatableFields.Fields(),
		UserProfileFields.Fields(),
	} {
		assert.NotContains(t, list, "userId")
		assert.NotContains(t, list, "_id")
	}
}

func TestUser_Identity(t *testing.T) {
	user := &User{ID: "u1", Email: "a@b.co", FirstName: "Ada", LastName: "Lovelace"}

	assert.Equal(t, Identity{UserID: "u1", Email: "a@b.co", FirstName: "Ada", LastName: "Lovelace"}, user.Identity())
}
