package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeFields() []FieldValue {
	return []FieldValue{
		{Kind: FieldRecipient, Raw: "Jane Doe"},
		{Kind: FieldIban, Raw: "DE89370400440532013000"},
		{Kind: FieldAmount, Raw: "100.00"},
		{Kind: FieldPurpose, Raw: "Invoice #4"},
	}
}

func TestIsValidIBAN(t *testing.T) {
	tests := []struct {
		iban string
		want bool
	}{
		{"DE89370400440532013000", true},
		{"de89 3704 0044 0532 0130 00", true},
		{"GB82WEST12345698765432", true},
		{"NL91ABNA0417164300", true},
		{"FR1420041010050500013M02606", true},
		{"DE00123456780000000000", false},
		{"DE8937040044053201300", false},
		{"ZZ89370400440532013000", false},
		{"DE89-3704-0044-0532-0130", false},
		{"DE", false},
	}
	for _, tt := range tests {
		t.Run(tt.iban, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidIBAN(tt.iban))
		})
	}
}

func TestValidate_Iban(t *testing.T) {
	res := Validate(FieldIban, "DE89370400440532013000")
	assert.True(t, res.Valid)
	assert.Equal(t, ErrorNone, res.Error)

	res = Validate(FieldIban, "DE00123456780000000000")
	assert.False(t, res.Valid)
	assert.Equal(t, ErrorInvalidFormat, res.Error)

	for _, s := range []string{"", "   ", "\t\n", "\u200b"} {
		res = Validate(FieldIban, s)
		assert.False(t, res.Valid)
		assert.Equal(t, ErrorEmpty, res.Error, "input %q", s)
	}
}

func TestValidate_TextFields(t *testing.T) {
	for _, kind := range []FieldKind{FieldRecipient, FieldPurpose} {
		assert.True(t, Validate(kind, "Jane Doe").Valid)
		assert.True(t, Validate(kind, "  x ").Valid)

		for _, s := range []string{"", " ", " \u200b\ufeff"} {
			res := Validate(kind, s)
			assert.False(t, res.Valid)
			assert.Equal(t, ErrorEmpty, res.Error, "%s input %q", kind, s)
		}
	}
}

func TestValidate_Amount(t *testing.T) {
	assert.True(t, Validate(FieldAmount, "12.50").Valid)
	assert.True(t, Validate(FieldAmount, "12.50 EUR").Valid)
	assert.True(t, Validate(FieldAmount, "0.01").Valid)

	for _, s := range []string{"", "0", "0.00 EUR", "-3", "abc", "0.004"} {
		res := Validate(FieldAmount, s)
		assert.False(t, res.Valid, "input %q", s)
		assert.Equal(t, ErrorEmpty, res.Error, "input %q", s)
	}
}

func TestValidate_UnknownKind(t *testing.T) {
	res := Validate(FieldKind(42), "x")
	assert.False(t, res.Valid)
}

func TestValidateAll(t *testing.T) {
	assert.True(t, ValidateAll(completeFields()))

	for i := range completeFields() {
		fields := completeFields()
		fields[i].Raw = ""
		assert.False(t, ValidateAll(fields), "field %s emptied", fields[i].Kind)
	}

	// a missing field is never valid
	assert.False(t, ValidateAll(completeFields()[:3]))
	assert.False(t, ValidateAll(nil))
}

func TestValidateFields_KeepsOrder(t *testing.T) {
	fields := completeFields()
	fields[1].Raw = "DE00123456780000000000"

	results := ValidateFields(fields)
	require.Len(t, results, 4)
	for i, r := range results {
		assert.Equal(t, fields[i].Kind, r.Kind)
	}
	assert.Equal(t, ErrorInvalidFormat, results[1].Error)
}

func TestParseFieldKind(t *testing.T) {
	for _, k := range FieldKinds {
		got, ok := ParseFieldKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, got)
	}
	got, ok := ParseFieldKind(" IBAN ")
	assert.True(t, ok)
	assert.Equal(t, FieldIban, got)

	_, ok = ParseFieldKind("bic")
	assert.False(t, ok)
}
