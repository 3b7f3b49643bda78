package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer() Customer {
	return Customer{
		FirstName:   "Odaya",
		LastName:    "Cohen",
		Street:      "Jaffa",
		HouseNumber: "7",
		City:        "Jerusalem",
		Phone:       "1234567890",
	}
}

func TestCustomer_Validate_Empty(t *testing.T) {
	errs := Customer{}.Validate()

	assert.Len(t, errs, 6)
	for _, f := range CustomerFields {
		assert.Contains(t, errs, f)
	}
	assert.Equal(t, "The first name is required", errs[FieldFirstName])
	assert.Equal(t, "The phone number is required and must be 10 digits", errs[FieldPhone])
}

func TestCustomer_Validate_Valid(t *testing.T) {
	errs := validCustomer().Validate()
	assert.True(t, errs.Valid())
}

func TestCustomer_Validate_BlankAfterTrim(t *testing.T) {
	c := validCustomer()
	c.City = "   "
	c.Street = "\t"

	errs := c.Validate()
	assert.Len(t, errs, 2)
	assert.Equal(t, "The city is required", errs[FieldCity])
	assert.Equal(t, "The street is required", errs[FieldStreet])
}

func TestCustomer_Validate_PhoneLength(t *testing.T) {
	tests := []struct {
		phone   string
		wantErr bool
	}{
		{"12345", true},
		{"12345678901", true},
		{"1234567890", false},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			c := validCustomer()
			c.Phone = tt.phone

			errs := c.Validate()
			_, hasPhoneErr := errs[FieldPhone]
			assert.Equal(t, tt.wantErr, hasPhoneErr)
			if tt.wantErr {
				assert.Len(t, errs, 1)
			}
		})
	}
}

func TestCustomer_Fields(t *testing.T) {
	var c Customer
	for i, f := range CustomerFields {
		require.NoError(t, c.SetField(f, string(rune('a'+i))))
	}

	got, err := c.Field(FieldHouseNumber)
	require.NoError(t, err)
	assert.Equal(t, "d", got)
	assert.Equal(t, "f", c.Phone)

	assert.ErrorIs(t, c.SetField("zip", "1"), ErrUnknownField)
	_, err = c.Field("zip")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{FieldPhone: "bad", FieldCity: "missing"}
	assert.Equal(t, "validation failed: city: missing; phone: bad", errs.Error())
	assert.False(t, errs.Valid())
}
