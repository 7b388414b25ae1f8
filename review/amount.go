package review

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// DefaultCurrency is the only currency the review form deals in.
const DefaultCurrency = "EUR"

const amountPrecision = 2

// maxAmountLength bounds the text accepted as an amount.
const maxAmountLength = 256

// maxAmount is the first magnitude no longer accepted; larger values are
// treated as unparseable.
var maxAmount = decimal.New(1, 15)

// machineNumber is the plain decimal notation of extraction strings.
var machineNumber = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)

// MonetaryAmount is a normalized amount with its ISO 4217 currency code
type MonetaryAmount struct {
	Value    decimal.Decimal
	Currency string
}

// ZeroAmount returns a zero amount in the given currency
func ZeroAmount(currencyCode string) MonetaryAmount {
	return MonetaryAmount{Value: decimal.Zero, Currency: currencyCode}
}

// String is the display form, e.g. "12.50 EUR"
func (m MonetaryAmount) String() string {
	return m.ValueString() + " " + m.Currency
}

// ValueString is the display form without the currency, e.g. "12.50"
func (m MonetaryAmount) ValueString() string {
	return m.Value.StringFixed(amountPrecision)
}

// IsPositive reports whether the amount is payable
func (m MonetaryAmount) IsPositive() bool {
	return m.Value.IsPositive()
}

// Equal compares value and currency
func (m MonetaryAmount) Equal(o MonetaryAmount) bool {
	return m.Currency == o.Currency && m.Value.Equal(o.Value)
}

// Normalize parses raw user input as a EUR amount
func Normalize(raw string) MonetaryAmount {
	return NormalizeIn(raw, DefaultCurrency)
}

// NormalizeIn parses raw user input as an amount in currencyCode. Text that
// cannot be parsed yields zero. An unknown currency code falls back to EUR.
func NormalizeIn(raw, currencyCode string) MonetaryAmount {
	code, ok := isoCode(currencyCode)
	if !ok {
		code = DefaultCurrency
	}

	number, ok := canonicalNumber(raw)
	if !ok {
		return ZeroAmount(code)
	}
	value, err := decimal.NewFromString(number)
	if err != nil {
		return ZeroAmount(code)
	}
	return bounded(value, code)
}

// FromExtraction parses the machine format "<number>:<currency>" produced by
// document extraction, e.g. "12.50:EUR". Malformed input yields a zero EUR
// amount.
func FromExtraction(s string) MonetaryAmount {
	if len(s) > maxAmountLength {
		return ZeroAmount(DefaultCurrency)
	}
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return ZeroAmount(DefaultCurrency)
	}
	code, ok := isoCode(parts[1])
	if !ok {
		return ZeroAmount(DefaultCurrency)
	}
	number := strings.TrimSpace(parts[0])
	if !machineNumber.MatchString(number) {
		return ZeroAmount(DefaultCurrency)
	}
	value, err := decimal.NewFromString(number)
	if err != nil {
		return ZeroAmount(DefaultCurrency)
	}
	return bounded(value, code)
}

func bounded(value decimal.Decimal, code string) MonetaryAmount {
	value = value.Round(amountPrecision)
	if value.Abs().GreaterThanOrEqual(maxAmount) {
		return ZeroAmount(code)
	}
	return MonetaryAmount{Value: value, Currency: code}
}

func isoCode(code string) (string, bool) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return "", false
	}
	return unit.String(), true
}

// canonicalNumber turns locale formatted input ("1.234,50 €", "1,234.50",
// "12,5") into the "1234.50" form decimal understands. Only digits, grouping
// and decimal separators and a leading sign may remain once the currency is
// trimmed; exponents and anything else are rejected.
func canonicalNumber(raw string) (string, bool) {
	if len(raw) > maxAmountLength {
		return "", false
	}
	s := strings.TrimLeftFunc(raw, func(r rune) bool {
		return !unicode.IsDigit(r) && !strings.ContainsRune("+-.,", r)
	})
	s = strings.TrimRightFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '\'' {
			return -1
		}
		return r
	}, s)

	body := strings.TrimLeft(s, "+-")
	if len(s)-len(body) > 1 {
		return "", false
	}
	for _, r := range body {
		if (r < '0' || r > '9') && r != '.' && r != ',' {
			return "", false
		}
	}

	dot := strings.LastIndexByte(s, '.')
	comma := strings.LastIndexByte(s, ',')
	switch {
	case dot >= 0 && comma >= 0:
		if comma > dot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		if strings.Count(s, ",") == 1 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case dot >= 0:
		if strings.Count(s, ".") > 1 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}
	return s, true
}
