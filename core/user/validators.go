package user

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Luna-Breeze/question-answer-system/core"
)

var roleTag = "role"

func init() {
	_ = core.Validate.RegisterValidation(roleTag, roleValidation)
	core.RegisterCustomTranslation(roleTag, "{0} must be one of "+roleList())
}

func roleList() string {
	names := make([]string, 0, len(Roles))
	for _, r := range Roles {
		names = append(names, string(r))
	}
	return strings.Join(names, " or ")
}

// roleValidation checks that the field holds one of Roles.
func roleValidation(fl validator.FieldLevel) bool {
	if r, ok := fl.Field().Interface().(Role); ok {
		return r.Valid()
	}
	return false
}

// Validate checks the credentials can be stored in the flat files.
func (c Credentials) Validate() error { return core.ValidateStruct(c) }
