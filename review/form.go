package review

import "errors"

// ErrFieldsInvalid is returned by Form.Submit while any field fails validation.
var ErrFieldsInvalid = errors.New("payment fields are invalid")

// Extraction names used to prefill the form.
const (
	ExtractionRecipient = "paymentRecipient"
	ExtractionIban      = "iban"
	ExtractionPurpose   = "paymentPurpose"
	ExtractionAmount    = "amountToPay"
)

// Extraction is a named value recognised on the scanned document
type Extraction struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PrefillFields maps document extractions onto the form fields. The amount
// is converted from its machine format to the display string.
func PrefillFields(extractions []Extraction) []FieldValue {
	lookup := func(name string) (string, bool) {
		for _, e := range extractions {
			if e.Name == name {
				return e.Value, true
			}
		}
		return "", false
	}

	recipient, _ := lookup(ExtractionRecipient)
	iban, _ := lookup(ExtractionIban)
	purpose, _ := lookup(ExtractionPurpose)
	amount, ok := lookup(ExtractionAmount)
	if !ok {
		amount = "0.00:" + DefaultCurrency
	}

	return []FieldValue{
		{Kind: FieldRecipient, Raw: recipient},
		{Kind: FieldIban, Raw: iban},
		{Kind: FieldAmount, Raw: FromExtraction(amount).String()},
		{Kind: FieldPurpose, Raw: purpose},
	}
}

// Form holds the current text of every field together with its error
// indicator. An indicator is either shown with an error kind or hidden.
type Form struct {
	values     map[FieldKind]string
	indicators map[FieldKind]ErrorKind
}

// NewForm creates a form with all indicators hidden
func NewForm(fields ...FieldValue) *Form {
	f := &Form{
		values:     make(map[FieldKind]string, len(FieldKinds)),
		indicators: make(map[FieldKind]ErrorKind, len(FieldKinds)),
	}
	for _, v := range fields {
		if v.Kind.known() {
			f.values[v.Kind] = v.Raw
		}
	}
	return f
}

// Prefill replaces the field values with the document extractions and hides
// every indicator.
func (f *Form) Prefill(extractions []Extraction) {
	for _, v := range PrefillFields(extractions) {
		f.values[v.Kind] = v.Raw
	}
	clear(f.indicators)
}

// Value returns the current text of a field
func (f *Form) Value(kind FieldKind) string {
	return f.values[kind]
}

// Values returns every field in display order
func (f *Form) Values() []FieldValue {
	out := make([]FieldValue, 0, len(FieldKinds))
	for _, k := range FieldKinds {
		out = append(out, FieldValue{Kind: k, Raw: f.values[k]})
	}
	return out
}

// Indicator reports whether the error indicator of a field is shown, and
// with which error.
func (f *Form) Indicator(kind FieldKind) (ErrorKind, bool) {
	e, shown := f.indicators[kind]
	return e, shown
}

// HasErrors reports whether any indicator is shown
func (f *Form) HasErrors() bool {
	return len(f.indicators) > 0
}

// BeginEdit hides the indicator of the field being edited.
func (f *Form) BeginEdit(kind FieldKind) {
	delete(f.indicators, kind)
}

// EndEdit stores the edited text and updates the field indicator. Amounts are
// rewritten to their display form first. A kind outside FieldKinds is
// reported invalid and leaves the form untouched.
func (f *Form) EndEdit(kind FieldKind, raw string) ValidationResult {
	if !kind.known() {
		return Validate(kind, raw)
	}
	if kind == FieldAmount {
		raw = Normalize(raw).String()
	}
	f.values[kind] = raw
	return f.check(kind)
}

func (f *Form) check(kind FieldKind) ValidationResult {
	res := Validate(kind, f.values[kind])
	if res.Valid {
		delete(f.indicators, kind)
	} else {
		f.indicators[kind] = res.Error
	}
	return res
}

// Submit validates every field and assembles the payment record once no
// indicator is shown. The results of the validation pass are always returned.
func (f *Form) Submit(providers []PaymentProvider) (PaymentRecord, []ValidationResult, error) {
	results := make([]ValidationResult, 0, len(FieldKinds))
	for _, k := range FieldKinds {
		results = append(results, f.check(k))
	}
	if f.HasErrors() {
		return PaymentRecord{}, results, ErrFieldsInvalid
	}

	record, err := Assemble(f.Values(), providers)
	return record, results, err
}
