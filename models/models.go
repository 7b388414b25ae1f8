package models

import (
	"fmt"

	"payments-review/review"
)

// Field is one form input as sent by the client
type Field struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// FieldResult is the validation outcome of one form input
type FieldResult struct {
	Field string `json:"field"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// PrefillRequest carries the extractions of a scanned document
type PrefillRequest struct {
	Extractions []review.Extraction `json:"extractions"`
}

// PrefillResponse holds the form fields filled from the extractions
type PrefillResponse struct {
	Fields []Field `json:"fields"`
}

// ValidateResponse is returned when a single field finished editing. Value
// holds the text the field should show afterwards.
type ValidateResponse struct {
	FieldResult
	Value string `json:"value"`
}

// AmountRequest asks for a normalized amount from user input or from an
// extraction string like "12.50:EUR"
type AmountRequest struct {
	Raw        string `json:"raw"`
	Extraction string `json:"extraction"`
}

// AmountResponse is a normalized amount
type AmountResponse struct {
	Display  string `json:"display"`
	Value    string `json:"value"`
	Currency string `json:"currency"`
	Payable  bool   `json:"payable"`
}

// SubmitRequest carries the whole form
type SubmitRequest struct {
	Fields []Field `json:"fields" binding:"required"`
}

// SubmitResponse reports the outcome of a submission
type SubmitResponse struct {
	Status    string                `json:"status"`
	RequestID string                `json:"request_id,omitempty"`
	Payment   *review.PaymentRecord `json:"payment,omitempty"`
	Results   []FieldResult         `json:"results,omitempty"`
	Notice    string                `json:"notice,omitempty"`
}

// ProvidersResponse is the payload of the payment provider source
type ProvidersResponse struct {
	Providers []review.PaymentProvider `json:"providers"`
}

// PaymentRequestResponse is returned by the payment request endpoint
type PaymentRequestResponse struct {
	ID string `json:"id"`
}

// ToFieldValues converts wire fields to the review form representation
func ToFieldValues(fields []Field) ([]review.FieldValue, error) {
	out := make([]review.FieldValue, 0, len(fields))
	for _, f := range fields {
		kind, ok := review.ParseFieldKind(f.Field)
		if !ok {
			return nil, fmt.Errorf("unknown field %q", f.Field)
		}
		out = append(out, review.FieldValue{Kind: kind, Raw: f.Value})
	}
	return out, nil
}

// FromFieldValues converts form fields to their wire representation
func FromFieldValues(values []review.FieldValue) []Field {
	out := make([]Field, 0, len(values))
	for _, v := range values {
		out = append(out, Field{Field: v.Kind.String(), Value: v.Raw})
	}
	return out
}

// FromResult converts a validation result to its wire representation
func FromResult(r review.ValidationResult) FieldResult {
	return FieldResult{Field: r.Kind.String(), Valid: r.Valid, Error: r.Error.String()}
}

// FromResults converts validation results to their wire representation
func FromResults(results []review.ValidationResult) []FieldResult {
	out := make([]FieldResult, 0, len(results))
	for _, r := range results {
		out = append(out, FromResult(r))
	}
	return out
}

// FromAmount converts a normalized amount to its wire representation
func FromAmount(m review.MonetaryAmount) AmountResponse {
	return AmountResponse{
		Display:  m.String(),
		Value:    m.ValueString(),
		Currency: m.Currency,
		Payable:  m.IsPositive(),
	}
}
