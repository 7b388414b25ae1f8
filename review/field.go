package review

import (
	"strings"
	"unicode"
)

// FieldKind identifies one of the review form inputs
type FieldKind int

const (
	FieldRecipient FieldKind = iota + 1
	FieldIban
	FieldAmount
	FieldPurpose
)

// FieldKinds lists every field of the form in display order
var FieldKinds = []FieldKind{FieldRecipient, FieldIban, FieldAmount, FieldPurpose}

func (k FieldKind) String() string {
	switch k {
	case FieldRecipient:
		return "recipient"
	case FieldIban:
		return "iban"
	case FieldAmount:
		return "amount"
	case FieldPurpose:
		return "purpose"
	}
	return "unknown"
}

func (k FieldKind) known() bool {
	return k >= FieldRecipient && k <= FieldPurpose
}

// ParseFieldKind maps a wire name back to its FieldKind
func ParseFieldKind(name string) (FieldKind, bool) {
	for _, k := range FieldKinds {
		if k.String() == strings.ToLower(strings.TrimSpace(name)) {
			return k, true
		}
	}
	return 0, false
}

// ErrorKind classifies a failed validation
type ErrorKind int

const (
	ErrorNone ErrorKind = iota
	ErrorEmpty
	ErrorInvalidFormat
)

func (e ErrorKind) String() string {
	switch e {
	case ErrorEmpty:
		return "empty"
	case ErrorInvalidFormat:
		return "invalid_format"
	}
	return ""
}

// FieldValue is the raw text of one form input
type FieldValue struct {
	Kind FieldKind
	Raw  string
}

// ValidationResult is the outcome of validating a single field
type ValidationResult struct {
	Kind  FieldKind
	Valid bool
	Error ErrorKind
}

func valid(kind FieldKind) ValidationResult {
	return ValidationResult{Kind: kind, Valid: true}
}

func invalid(kind FieldKind, errKind ErrorKind) ValidationResult {
	return ValidationResult{Kind: kind, Error: errKind}
}

// IsReallyEmpty reports whether s holds nothing but whitespace and
// invisible formatting characters.
func IsReallyEmpty(s string) bool {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.Is(unicode.Cf, r)
	}) == ""
}
