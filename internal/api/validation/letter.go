package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// LetterIDPattern validates letter IDs with format: ltr_ followed by alphanumeric chars and hyphens
var LetterIDPattern = regexp.MustCompile(`^ltr_[a-zA-Z0-9-]{10,50}$`)

// ValidateLetterID validates that the letter ID follows the expected format
func ValidateLetterID(fl validator.FieldLevel) bool {
	letterID := fl.Field().String()
	return LetterIDPattern.MatchString(letterID)
}

// RegisterLetterValidators registers all letter-related custom validators.
// Template style is intentionally not validated here: unknown styles are
// coerced to professional downstream rather than rejected.
func RegisterLetterValidators(v *validator.Validate) {
	v.RegisterValidation("letter_id", ValidateLetterID)
}
