// internal/domain/checkout/payment.go
package checkout

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// PaymentDetails carries the card fields entered at checkout. The values
// are format-checked and then discarded; nothing is charged or stored.
type PaymentDetails struct {
	CardholderName string `json:"cardholder_name" validate:"required,min=2"`
	CardNumber     string `json:"card_number" validate:"required,len=16,numeric"`
	Expiry         string `json:"expiry" validate:"required,expiry"`
	CVV            string `json:"cvv" validate:"required,numeric,min=3,max=4"`
}

// FieldError is a single validation failure keyed by the JSON field name.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	expiryPattern   = regexp.MustCompile(`^(0[1-9]|1[0-2])\/\d{2}$`)
	paymentValidate = newPaymentValidator()
)

func newPaymentValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("expiry", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidatePayment format-checks the card fields and returns one error
// per failing field, or nil when everything passes.
func ValidatePayment(d PaymentDetails) []FieldError {
	err := paymentValidate.Struct(d)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "payment", Message: "Invalid payment details"}}
	}

	fieldErrs := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   jsonFieldName(fe.StructField()),
			Message: messageFor(fe.StructField()),
		})
	}
	return fieldErrs
}

func jsonFieldName(structField string) string {
	switch structField {
	case "CardholderName":
		return "cardholder_name"
	case "CardNumber":
		return "card_number"
	case "Expiry":
		return "expiry"
	case "CVV":
		return "cvv"
	}
	return structField
}

func messageFor(structField string) string {
	switch structField {
	case "CardholderName":
		return "Cardholder name is required"
	case "CardNumber":
		return "Card number must be 16 digits"
	case "Expiry":
		return "Expiry must be MM/YY format"
	case "CVV":
		return "CVV must be 3-4 digits"
	}
	return "Invalid value"
}
