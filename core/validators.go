package core

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/pkg/errors"
)

var (
	Validate   *validator.Validate
	Translator ut.Translator

	// custom validation tags & texts
	flatTokenTag  = "flattoken"
	flatTokenText = "{0} must not contain '|', ',' or line breaks"

	flatTextTag  = "flattext"
	flatTextText = "{0} must not contain '|' or line breaks"

	requiredTag  = "required"
	requiredText = "{0} is required"
)

// Instantiate the validator for use.
func init() {
	Validate = validator.New()

	// Register the english error messages for validation errors.
	_en := en.New()
	uni := ut.New(_en, _en)
	Translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(Validate, Translator)

	// Use JSON tag names for errors instead of Go struct names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = Validate.RegisterValidation(flatTokenTag, flatTokenValidation)
	RegisterCustomTranslation(flatTokenTag, flatTokenText)

	_ = Validate.RegisterValidation(flatTextTag, flatTextValidation)
	RegisterCustomTranslation(flatTextTag, flatTextText)

	RegisterCustomTranslation(requiredTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = Validate.RegisterTranslation(
		tag, Translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// ValidateStruct runs the struct validations on `s` and converts failures into a *ValidationError.
func ValidateStruct(s interface{}) error {
	return ValidationErrorFrom(Validate.Struct(s))
}

// ValidationErrorFrom converts validator.ValidationErrors into a *ValidationError
// holding one translated FieldError per failed field. Other errors are returned as is.
func ValidationErrorFrom(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	flds := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		flds = append(flds, FieldError{Field: fe.Field(), Error: fe.Translate(Translator)})
	}
	return NewValidationError(errors.New(flds[0].Error), flds...)
}

// Custom Global Validators

// flatTokenValidation rejects values the flat files use as separators (IDs, course lists).
func flatTokenValidation(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "|,\r\n")
}

// flatTextValidation rejects the field separator and line breaks (names, passwords).
func flatTextValidation(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "|\r\n")
}
