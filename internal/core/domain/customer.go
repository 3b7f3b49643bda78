package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldStreet      = "street"
	FieldHouseNumber = "houseNumber"
	FieldCity        = "city"
	FieldPhone       = "phone"

	// FieldPizzas carries the empty-cart guard message.
	FieldPizzas = "pizzas"
)

const (
	PhoneLength = 10
	CustomerTTL = 7 * 24 * time.Hour
)

// CustomerFields lists the customer fields in form order. They double as the
// client storage keys.
var CustomerFields = []string{
	FieldFirstName,
	FieldLastName,
	FieldStreet,
	FieldHouseNumber,
	FieldCity,
	FieldPhone,
}

var fieldMessages = map[string]string{
	FieldFirstName:   "The first name is required",
	FieldLastName:    "The last name is required",
	FieldStreet:      "The street is required",
	FieldHouseNumber: "The house number is required",
	FieldCity:        "The city is required",
	FieldPhone:       "The phone number is required and must be 10 digits",
}

type Customer struct {
	FirstName   string `json:"firstName" validate:"notblank"`
	LastName    string `json:"lastName" validate:"notblank"`
	Street      string `json:"street" validate:"notblank"`
	HouseNumber string `json:"houseNumber" validate:"notblank"`
	City        string `json:"city" validate:"notblank"`
	Phone       string `json:"phone" validate:"notblank,len=10"`
}

var customerValidator = newCustomerValidator()

func newCustomerValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Validate checks every field and returns all failures at once.
func (c Customer) Validate() ValidationErrors {
	errs := ValidationErrors{}

	err := customerValidator.Struct(c)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Only reachable on a programming error in the struct tags.
		panic(err)
	}
	for _, fe := range fieldErrs {
		errs[fe.Field()] = fieldMessages[fe.Field()]
	}
	return errs
}

func (c Customer) Field(name string) (string, error) {
	switch name {
	case FieldFirstName:
		return c.FirstName, nil
	case FieldLastName:
		return c.LastName, nil
	case FieldStreet:
		return c.Street, nil
	case FieldHouseNumber:
		return c.HouseNumber, nil
	case FieldCity:
		return c.City, nil
	case FieldPhone:
		return c.Phone, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownField, name)
}

func (c *Customer) SetField(name, value string) error {
	switch name {
	case FieldFirstName:
		c.FirstName = value
	case FieldLastName:
		c.LastName = value
	case FieldStreet:
		c.Street = value
	case FieldHouseNumber:
		c.HouseNumber = value
	case FieldCity:
		c.City = value
	case FieldPhone:
		c.Phone = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return nil
}
