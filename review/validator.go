package review

// Validate checks a single field value.
func Validate(kind FieldKind, raw string) ValidationResult {
	switch kind {
	case FieldIban:
		if raw == "" || IsReallyEmpty(raw) {
			return invalid(kind, ErrorEmpty)
		}
		if !IsValidIBAN(raw) {
			return invalid(kind, ErrorInvalidFormat)
		}
		return valid(kind)
	case FieldAmount:
		if raw != "" && Normalize(raw).IsPositive() {
			return valid(kind)
		}
		return invalid(kind, ErrorEmpty)
	case FieldRecipient, FieldPurpose:
		if IsReallyEmpty(raw) {
			return invalid(kind, ErrorEmpty)
		}
		return valid(kind)
	}
	return invalid(kind, ErrorInvalidFormat)
}

// ValidateFields validates each value and returns the results in input order.
func ValidateFields(fields []FieldValue) []ValidationResult {
	results := make([]ValidationResult, 0, len(fields))
	for _, f := range fields {
		results = append(results, Validate(f.Kind, f.Raw))
	}
	return results
}

// ValidateAll reports whether every field of the form is present and valid.
func ValidateAll(fields []FieldValue) bool {
	seen := make(map[FieldKind]bool, len(FieldKinds))
	for _, r := range ValidateFields(fields) {
		if !r.Valid {
			return false
		}
		seen[r.Kind] = true
	}
	for _, k := range FieldKinds {
		if !seen[k] {
			return false
		}
	}
	return true
}

func valueOf(fields []FieldValue, kind FieldKind) string {
	for _, f := range fields {
		if f.Kind == kind {
			return f.Raw
		}
	}
	return ""
}
