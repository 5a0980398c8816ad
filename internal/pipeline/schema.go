package pipeline

// BuildResultJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. Extraction output is validated against it before it is
// persisted on the job row.
func BuildResultJSONSchema() map[string]any {
	props := map[string]any{
		"vendor_name":    map[string]any{"type": "string", "minLength": 1, "maxLength": 50},
		"amount":         map[string]any{"type": "number", "exclusiveMinimum": 0.0, "exclusiveMaximum": 100000.0},
		"document_date":  dateProp(),
		"due_date":       dateProp(),
		"is_bill":        map[string]any{"type": "boolean"},
		"card_type":      map[string]any{"type": "string", "enum": []string{"AMEX", "VISA", "MASTERCARD", "DISCOVER"}},
		"card_last_four": map[string]any{"type": "string", "pattern": `^\d{4}$`},
		"confidence_score": map[string]any{
			"type": "number", "minimum": 0.0, "maximum": 1.0,
		},
		"raw_text": map[string]any{"type": "string"},
	}
	required := []string{"is_bill", "confidence_score", "raw_text"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func dateProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^\d{4}-\d{2}-\d{2}$`,
	}
}
