package review

import "errors"

// ErrNoProviderSelected is returned when no payment provider is available.
var ErrNoProviderSelected = errors.New("no payment provider selected")

// PaymentProvider is a banking app able to receive a payment request
type PaymentProvider struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name"`
	AppScheme string `json:"app_scheme" validate:"required"`
}

// PaymentRecord is the payment handed over to the selected provider
type PaymentRecord struct {
	Recipient      string `json:"recipient"`
	IBAN           string `json:"iban"`
	BIC            string `json:"bic"`
	Amount         string `json:"amount"`
	Purpose        string `json:"purpose"`
	ProviderScheme string `json:"payment_provider_scheme"`
	ProviderID     string `json:"payment_provider_id"`
}

// Assemble builds the payment record for the first provider in the list.
// Callers are expected to have checked ValidateAll beforehand.
func Assemble(fields []FieldValue, providers []PaymentProvider) (PaymentRecord, error) {
	if len(providers) == 0 {
		return PaymentRecord{}, ErrNoProviderSelected
	}
	provider := providers[0]

	return PaymentRecord{
		Recipient:      valueOf(fields, FieldRecipient),
		IBAN:           valueOf(fields, FieldIban),
		Amount:         Normalize(valueOf(fields, FieldAmount)).String(),
		Purpose:        valueOf(fields, FieldPurpose),
		ProviderScheme: provider.AppScheme,
		ProviderID:     provider.ID,
	}, nil
}
