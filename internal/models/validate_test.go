package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/review-catalog/internal/models"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{"simple name", "alice", nil},
		{"name with allowed symbols", "user.name+tag@host-1", nil},
		{"reserved me", "me", models.ErrReservedUsername},
		{"spaces rejected", "bad name", models.ErrInvalidUsername},
		{"empty rejected", "", models.ErrInvalidUsername},
		{"slash rejected", "a/b", models.ErrInvalidUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := models.ValidateUsername(tt.username)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		wantErr bool
	}{
		{"simple slug", "books", false},
		{"slug with dash and digits", "sci-fi_2", false},
		{"cyrillic rejected", "книги", true},
		{"spaces rejected", "two words", true},
		{"empty rejected", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := models.ValidateSlug(tt.slug)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidSlug)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, models.RoleUser.Valid())
	assert.True(t, models.RoleModerator.Valid())
	assert.True(t, models.RoleAdmin.Valid())
	assert.False(t, models.Role("root").Valid())
	assert.False(t, models.Role("").Valid())
}
