package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email string   `json:"email" validate:"required,email"`
	Date  string   `json:"date" validate:"required,datetime=2006-01-02"`
	Price *float64 `json:"price" validate:"required,gte=0"`
	Tags  []string `json:"tags,omitempty" validate:"omitempty,unique"`
}

func TestValidateStructUsesJSONNames(t *testing.T) {
	negative := -5.0
	errs := ValidateStruct(sampleRequest{
		Email: "nope",
		Date:  "2025/01/10",
		Price: &negative,
		Tags:  []string{"a", "a"},
	})

	assert.Equal(t, "Invalid email format", errs["email"])
	assert.Equal(t, "Must match the layout 2006-01-02", errs["date"])
	assert.Equal(t, "Must be greater than or equal to 0", errs["price"])
	assert.Equal(t, "Must not contain duplicates", errs["tags"])
}

func TestValidateStructPasses(t *testing.T) {
	zero := 0.0
	assert.Empty(t, ValidateStruct(sampleRequest{Email: "a@b.co", Date: "2025-01-10", Price: &zero}))
}

func TestMoneyTag(t *testing.T) {
	type body struct {
		Price *float64 `json:"price" validate:"required,gte=0,money"`
	}

	tests := []struct {
		amount float64
		valid  bool
	}{
		{0, true},
		{40, true},
		{19.99, true},
		{0.1, true},
		{MaxMoney, true},
		{55.555, false},
		{0.001, false},
		{1e11, false},
		{10000000000, false},
	}

	for _, tt := range tests {
		amount := tt.amount
		errs := ValidateStruct(body{Price: &amount})
		if tt.valid {
			assert.Empty(t, errs, "%v", tt.amount)
			continue
		}
		assert.Contains(t, errs["price"], "2 decimal places", "%v", tt.amount)
	}
}

func TestFormatValidationErrorsIsSorted(t *testing.T) {
	got := FormatValidationErrors(map[string]string{"slot": "required", "date": "bad"})
	assert.Equal(t, "date: bad; slot: required", got)
}
