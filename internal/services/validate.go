package services

import (
	"fmt"
	"reflect"
	"strings"

	"wardrobe/internal/models"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Validator instances cache
// struct metadata, so a single one serves every service.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Violations report the wire name of the field, so "ID" surfaces
	// as "id". Fields hidden from JSON fall back to the Go name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return ""
		}
		return name
	})
	// "required" accepts whitespace-only strings; names must have
	// content after trimming.
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	return v
}

// checkStruct runs tag validation on a record and converts the result
// into a *models.ValidationError carrying every violation found.
func checkStruct(record interface{}) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	violations := make([]models.Violation, 0, len(verrs))
	for _, e := range verrs {
		// e.Field() is already the json name; the lower-casing only
		// applies to json:"-" fields reported by their Go name.
		violations = append(violations, models.Violation{
			Field:   strings.ToLower(e.Field()[:1]) + e.Field()[1:],
			Message: violationMessage(e),
		})
	}
	return &models.ValidationError{Violations: violations}
}

func violationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "must be present"
	case "notblank":
		return "must not be blank"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", e.Param())
	case "email":
		return "must be a well-formed email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "uuid":
		return "must be a well-formed identifier"
	default:
		return fmt.Sprintf("failed on the %q rule", e.Tag())
	}
}
