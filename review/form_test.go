package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bankApp = []PaymentProvider{{ID: "P1", AppScheme: "bankapp://"}}

func TestPrefillFields(t *testing.T) {
	fields := PrefillFields([]Extraction{
		{Name: ExtractionIban, Value: "DE89370400440532013000"},
		{Name: ExtractionRecipient, Value: "Jane Doe"},
		{Name: ExtractionAmount, Value: "12.5:EUR"},
		{Name: ExtractionPurpose, Value: "Invoice #4"},
		{Name: "bic", Value: "COBADEFFXXX"},
	})

	assert.Equal(t, []FieldValue{
		{Kind: FieldRecipient, Raw: "Jane Doe"},
		{Kind: FieldIban, Raw: "DE89370400440532013000"},
		{Kind: FieldAmount, Raw: "12.50 EUR"},
		{Kind: FieldPurpose, Raw: "Invoice #4"},
	}, fields)
}

func TestPrefillFields_MissingExtractions(t *testing.T) {
	fields := PrefillFields(nil)
	require.Len(t, fields, 4)
	assert.Equal(t, "", fields[0].Raw)
	assert.Equal(t, "0.00 EUR", fields[2].Raw)
	assert.False(t, ValidateAll(fields))
}

func TestForm_EditCycle(t *testing.T) {
	form := NewForm()

	res := form.EndEdit(FieldIban, "DE00123456780000000000")
	assert.False(t, res.Valid)
	errKind, shown := form.Indicator(FieldIban)
	assert.True(t, shown)
	assert.Equal(t, ErrorInvalidFormat, errKind)

	form.BeginEdit(FieldIban)
	_, shown = form.Indicator(FieldIban)
	assert.False(t, shown)

	res = form.EndEdit(FieldIban, "DE89370400440532013000")
	assert.True(t, res.Valid)
	_, shown = form.Indicator(FieldIban)
	assert.False(t, shown)
}

func TestForm_UnknownKindLeavesFormUntouched(t *testing.T) {
	form := NewForm(FieldValue{Kind: FieldKind(99), Raw: "x"})
	unknown := FieldKind(99)

	form.BeginEdit(unknown)
	res := form.EndEdit(unknown, "x")
	assert.False(t, res.Valid)
	assert.False(t, form.HasErrors())
	_, shown := form.Indicator(unknown)
	assert.False(t, shown)
	assert.Empty(t, form.Value(unknown))

	fields := append(completeFields(), FieldValue{Kind: unknown, Raw: "x"})
	record, _, err := NewForm(fields...).Submit(bankApp)
	require.NoError(t, err)
	assert.Equal(t, "P1", record.ProviderID)
}

func TestForm_EndEditRewritesAmount(t *testing.T) {
	form := NewForm()

	res := form.EndEdit(FieldAmount, "12,5")
	assert.True(t, res.Valid)
	assert.Equal(t, "12.50 EUR", form.Value(FieldAmount))

	res = form.EndEdit(FieldAmount, "nothing")
	assert.False(t, res.Valid)
	assert.Equal(t, "0.00 EUR", form.Value(FieldAmount))
	errKind, shown := form.Indicator(FieldAmount)
	assert.True(t, shown)
	assert.Equal(t, ErrorEmpty, errKind)
}

func TestForm_Submit(t *testing.T) {
	form := NewForm(completeFields()...)

	record, results, err := form.Submit(bankApp)
	require.NoError(t, err)
	assert.Len(t, results, 4)
	assert.Equal(t, "100.00 EUR", record.Amount)
	assert.Equal(t, "P1", record.ProviderID)
	assert.False(t, form.HasErrors())
}

func TestForm_SubmitInvalid(t *testing.T) {
	fields := completeFields()
	fields[0].Raw = "  "
	form := NewForm(fields...)

	_, results, err := form.Submit(bankApp)
	assert.ErrorIs(t, err, ErrFieldsInvalid)
	require.Len(t, results, 4)
	assert.False(t, results[0].Valid)
	assert.True(t, results[1].Valid)

	// each field is either flagged or clear, matching its result
	for _, r := range results {
		_, shown := form.Indicator(r.Kind)
		assert.Equal(t, !r.Valid, shown, "field %s", r.Kind)
	}
}

func TestForm_SubmitWithoutProvider(t *testing.T) {
	form := NewForm(completeFields()...)

	_, results, err := form.Submit(nil)
	assert.ErrorIs(t, err, ErrNoProviderSelected)
	assert.Len(t, results, 4)
	assert.False(t, form.HasErrors())
}

func TestForm_PrefillClearsIndicators(t *testing.T) {
	form := NewForm()
	form.EndEdit(FieldRecipient, "")
	require.True(t, form.HasErrors())

	form.Prefill([]Extraction{{Name: ExtractionRecipient, Value: "Jane Doe"}})
	assert.False(t, form.HasErrors())
	assert.Equal(t, "Jane Doe", form.Value(FieldRecipient))
}
