package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wikikit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("joins field messages", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "target", Message: "bad range"})

		assert.Equal(t, "validation failed: email: is required; target: bad range", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "message", Message: "too long"})
	errs.Add(validator.ValidationError{Field: "target", Message: "bad range"})
	errs.Add(validator.ValidationError{Field: "message", Message: "is required"})

	assert.True(t, errs.Has("message"))
	assert.False(t, errs.Has("email"))
	assert.Equal(t, []string{"too long", "is required"}, errs.Get("message"))
	assert.Nil(t, errs.Get("email"))
	assert.Equal(t, []string{"message", "target"}, errs.Fields())
	assert.Equal(t, map[string][]string{
		"message": {"too long", "is required"},
		"target":  {"bad range"},
	}, errs.Map())
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("message", "hello"),
			validator.ValidEmail("email", "user@example.org"),
		)
		assert.NoError(t, err)
	})

	t.Run("returns nil without rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("message", "  "),
			validator.ValidEmail("email", "nope"),
			validator.ValidIPv4("target", "10.0.0.1", false),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"message", "email"}, verrs.Fields())
		assert.Equal(t, "validation.required", verrs[0].TranslationKey)
		assert.Equal(t, "message", verrs[0].TranslationValues["field"])
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("unrelated error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("wrapped validation error", func(t *testing.T) {
		inner := validator.Apply(validator.RequiredString("message", ""))
		err := fmt.Errorf("notify: %w", inner)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.True(t, validator.IsValidationError(err))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}
