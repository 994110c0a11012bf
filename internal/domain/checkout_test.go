package domain

import (
	"testing"

	"github.com/msr-works/storefront-backend/pkg/e"
	"github.com/stretchr/testify/assert"
)

func validOrderForm() *OrderForm {
	return &OrderForm{
		FullName:      "Asha Verma",
		Email:         "asha@example.com",
		Phone:         "+91 98765 43210",
		Address:       "12 MG Road",
		City:          "Lucknow",
		State:         "Uttar Pradesh",
		ZipCode:       "226001",
		PaymentMethod: "card",
	}
}

func TestCheckoutValidator_ValidateRegion(t *testing.T) {
	v := NewCheckoutValidator(nil)

	tests := []struct {
		name    string
		region  string
		wantErr error
	}{
		{"supported region", "Uttar Pradesh", nil},
		{"empty region does not block yet", "", nil},
		{"unsupported region", "Delhi", e.ErrUnsupportedRegion},
		{"case sensitive", "uttar pradesh", e.ErrUnsupportedRegion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRegion(tt.region)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCheckoutValidator_CustomRule(t *testing.T) {
	v := NewCheckoutValidator(func(region string) bool {
		return region == "Uttar Pradesh" || region == "Delhi"
	})

	assert.NoError(t, v.ValidateRegion("Delhi"))
	assert.ErrorIs(t, v.ValidateRegion("Goa"), e.ErrUnsupportedRegion)
}

func TestCheckoutValidator_ValidateForm(t *testing.T) {
	v := NewCheckoutValidator(nil)

	assert.NoError(t, v.ValidateForm(validOrderForm()))

	missingEmail := validOrderForm()
	missingEmail.Email = ""
	assert.ErrorIs(t, v.ValidateForm(missingEmail), e.ErrMissingFields)

	blankPhone := validOrderForm()
	blankPhone.Phone = "   "
	assert.ErrorIs(t, v.ValidateForm(blankPhone), e.ErrMissingFields)
}
