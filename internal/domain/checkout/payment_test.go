package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayment() PaymentDetails {
	return PaymentDetails{
		CardholderName: "Alex Morgan",
		CardNumber:     "4111111111111111",
		Expiry:         "12/27",
		CVV:            "123",
	}
}

func TestValidatePaymentAccepted(t *testing.T) {
	assert.Nil(t, ValidatePayment(validPayment()))

	fourDigitCVV := validPayment()
	fourDigitCVV.CVV = "1234"
	assert.Nil(t, ValidatePayment(fourDigitCVV))
}

func TestValidatePaymentRejections(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*PaymentDetails)
		wantField   string
		wantMessage string
	}{
		{
			name:        "missing cardholder name",
			mutate:      func(d *PaymentDetails) { d.CardholderName = "" },
			wantField:   "cardholder_name",
			wantMessage: "Cardholder name is required",
		},
		{
			name:        "card number too short",
			mutate:      func(d *PaymentDetails) { d.CardNumber = "411111111111" },
			wantField:   "card_number",
			wantMessage: "Card number must be 16 digits",
		},
		{
			name:      "card number with letters",
			mutate:    func(d *PaymentDetails) { d.CardNumber = "4111x11111111111" },
			wantField: "card_number",
		},
		{
			name:        "expiry without slash",
			mutate:      func(d *PaymentDetails) { d.Expiry = "1227" },
			wantField:   "expiry",
			wantMessage: "Expiry must be MM/YY format",
		},
		{
			name:      "expiry month out of range",
			mutate:    func(d *PaymentDetails) { d.Expiry = "13/27" },
			wantField: "expiry",
		},
		{
			name:        "cvv too short",
			mutate:      func(d *PaymentDetails) { d.CVV = "12" },
			wantField:   "cvv",
			wantMessage: "CVV must be 3-4 digits",
		},
		{
			name:      "cvv too long",
			mutate:    func(d *PaymentDetails) { d.CVV = "12345" },
			wantField: "cvv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := validPayment()
			tt.mutate(&details)

			fieldErrs := ValidatePayment(details)
			require.NotEmpty(t, fieldErrs)

			fields := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				fields = append(fields, fe.Field)
				if fe.Field == tt.wantField && tt.wantMessage != "" {
					assert.Equal(t, tt.wantMessage, fe.Message)
				}
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestValidatePaymentReportsEveryFailingField(t *testing.T) {
	fieldErrs := ValidatePayment(PaymentDetails{})
	assert.Len(t, fieldErrs, 4)
}
