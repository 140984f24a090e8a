package utils

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their json names so errors line up with request bodies.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("money", validateMoney); err != nil {
		panic(err)
	}
	return v
}

// MaxMoney is the largest amount a NUMERIC(12, 2) column holds.
const MaxMoney = 9999999999.99

// validateMoney accepts amounts that survive NUMERIC(12, 2) unchanged.
func validateMoney(fl validator.FieldLevel) bool {
	bitSize := 64
	switch fl.Field().Kind() {
	case reflect.Float32:
		bitSize = 32
	case reflect.Float64:
	default:
		return false
	}
	amount := fl.Field().Float()
	if math.IsNaN(amount) || math.IsInf(amount, 0) || math.Abs(amount) > MaxMoney {
		return false
	}
	// Shortest round-trip form, so 19.99 stays "19.99".
	_, decimals, _ := strings.Cut(strconv.FormatFloat(amount, 'f', -1, bitSize), ".")
	return len(decimals) <= 2
}

// RegisterValidation adds a custom tag to the shared validator.
func RegisterValidation(tag string, fn validator.Func) error {
	return validate.RegisterValidation(tag, fn)
}

func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getErrorMessage(err)
		}
	}

	return errors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Minimum length is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", err.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s characters", err.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "uuid", "uuid4":
		return "Must be a valid UUID"
	case "datetime":
		return fmt.Sprintf("Must match the layout %s", err.Param())
	case "numeric":
		return "Must contain digits only"
	case "url":
		return "Must be a valid URL"
	case "money":
		return fmt.Sprintf("Must be at most %.2f with no more than 2 decimal places", MaxMoney)
	case "slot":
		return "Must look like 8am-9am with the end after the start"
	case "unique":
		return "Must not contain duplicates"
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// formats validation errors map into single string
func FormatValidationErrors(errors map[string]string) string {
	fields := make([]string, 0, len(errors))
	for field := range errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, errors[field]))
	}
	return strings.Join(msgs, "; ")
}
