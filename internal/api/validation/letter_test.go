package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	RegisterLetterValidators(v)
	return v
}

func TestValidateLetterID(t *testing.T) {
	v := newTestValidator(t)

	valid := []string{
		"ltr_abc123def456",
		"ltr_0f8fad5b-d9cb-469f-a165-70867728950e",
	}
	for _, id := range valid {
		assert.NoError(t, v.Var(id, "letter_id"), "id %q", id)
	}

	invalid := []string{
		"",
		"ltr_short",
		"rsm_abc123def456",
		"abc123def456",
		"ltr_has spaces in it",
		"ltr_under_scores_not_ok",
	}
	for _, id := range invalid {
		assert.Error(t, v.Var(id, "letter_id"), "id %q", id)
	}
}

func TestLetterIDPattern(t *testing.T) {
	require.True(t, LetterIDPattern.MatchString("ltr_abcdefghij"))
	require.False(t, LetterIDPattern.MatchString("ltr_ABC!DEF#GHI"))
}
