package user

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meritlives/tools-core/internal/models"
)

func strptr(s string) *string { return &s }

func TestApplyProfileUpdates(t *testing.T) {
	user := &models.UserModel{
		Name:     "Ada",
		Company:  "Initech",
		Bio:      "old bio",
		Timezone: "UTC",
		Language: "en",
	}

	applyProfileUpdates(user, UpdateProfileDTO{
		Name:    strptr("Ada Lovelace"),
		Company: strptr(""),
		Bio:     strptr("new bio"),
	})

	assert.Equal(t, "Ada Lovelace", user.Name)
	assert.Equal(t, "", user.Company, "company may be cleared")
	assert.Equal(t, "new bio", user.Bio)
	assert.Equal(t, "UTC", user.Timezone, "absent fields untouched")
	assert.Equal(t, "en", user.Language)
}

func TestApplyProfileUpdatesIgnoresBlankName(t *testing.T) {
	user := &models.UserModel{Name: "Ada", Timezone: "UTC", Language: "en"}

	applyProfileUpdates(user, UpdateProfileDTO{
		Name:     strptr("   "),
		Timezone: strptr(""),
		Language: strptr("fr"),
	})

	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "UTC", user.Timezone)
	assert.Equal(t, "fr", user.Language)
}
