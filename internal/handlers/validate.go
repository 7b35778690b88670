package handlers

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var phoneRe = regexp.MustCompile(`^[+\d][\d\s()-]{4,}$`)

func newValidator() *validator.Validate {
	v := validator.New()
	// error details are keyed by the wire field name, not the Go one
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("phoneformat", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	return v
}

// validationDetails flattens validator errors into a field → message map.
func validationDetails(err error) map[string]string {
	details := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return details
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			details[fe.Field()] = "is required"
		case "min":
			details[fe.Field()] = "is too short"
		case "gt":
			details[fe.Field()] = "must be positive"
		case "phoneformat":
			details[fe.Field()] = "is not a valid phone number"
		default:
			details[fe.Field()] = "is invalid"
		}
	}
	return details
}

func (h *Handler) invalid(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "validation failed",
		"details": validationDetails(err),
	})
}
