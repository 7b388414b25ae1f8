package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payments-review/review"
)

func TestToFieldValues(t *testing.T) {
	values, err := ToFieldValues([]Field{
		{Field: "recipient", Value: "Jane Doe"},
		{Field: "AMOUNT", Value: "1"},
	})
	require.NoError(t, err)
	assert.Equal(t, []review.FieldValue{
		{Kind: review.FieldRecipient, Raw: "Jane Doe"},
		{Kind: review.FieldAmount, Raw: "1"},
	}, values)

	_, err = ToFieldValues([]Field{{Field: "bic"}})
	assert.ErrorContains(t, err, `unknown field "bic"`)
}

func TestFromResults(t *testing.T) {
	got := FromResults([]review.ValidationResult{
		{Kind: review.FieldIban, Error: review.ErrorInvalidFormat},
		{Kind: review.FieldPurpose, Valid: true},
	})
	assert.Equal(t, []FieldResult{
		{Field: "iban", Valid: false, Error: "invalid_format"},
		{Field: "purpose", Valid: true},
	}, got)
}

func TestFromAmount(t *testing.T) {
	assert.Equal(t, AmountResponse{Display: "0.00 EUR", Value: "0.00", Currency: "EUR"}, FromAmount(review.Normalize("")))
}
