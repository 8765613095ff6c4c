package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovativeGem/userkit/pkg/validator"
)

func TestApply_AllPass(t *testing.T) {
	t.Parallel()

	err := validator.Apply(
		validator.RequiredString("username", "user1"),
		validator.ValidEmail("email", "user1@mail.com"),
	)
	assert.NoError(t, err)
}

func TestApply_CollectsAllFailures(t *testing.T) {
	t.Parallel()

	err := validator.Apply(
		validator.RequiredString("username", ""),
		validator.ValidEmail("email", "not-an-email"),
		validator.MinLenString("password", "abc", 6),
	)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{"username", "email", "password"}, verrs.Fields())
	assert.True(t, verrs.Has("username"))
	assert.False(t, verrs.Has("image"))
	assert.Equal(t, "field is required", verrs.Get("username"))
}

func TestValidationErrors_ByField(t *testing.T) {
	t.Parallel()

	err := validator.Apply(
		validator.RequiredString("username", ""),
		validator.MinLenString("username", "", 4),
	)

	verrs := validator.Extract(err)
	require.NotNil(t, verrs)

	byField := verrs.ByField()
	assert.Len(t, byField, 1)
	assert.Equal(t, "field is required", byField["username"], "first failure per field wins")
}

func TestExtract_NonValidationError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.Extract(nil))
	assert.Nil(t, validator.Extract(errors.New("plain failure")))
}
