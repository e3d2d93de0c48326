// Package validator checks the shape of an inbound notification body before it is routed.
package validator

import (
	"fmt"

	"github.com/ilindan-dev/sns-notifier/internal/domain/model"
)

// requiredFields are checked in order; the first failure wins.
var requiredFields = []string{"message", "type"}

// Validate checks that body is an object carrying string "message" and "type" fields.
// Channel-specific fields are deliberately not inspected here.
func Validate(body any) model.ValidationResult {
	fields, ok := body.(map[string]any)
	if !ok {
		return fail(model.KindInvalidFormat, "", "Invalid request format")
	}

	for _, field := range requiredFields {
		v, present := fields[field]
		if !present {
			return fail(model.KindMissingField, field, fmt.Sprintf("Missing required field: %s", field))
		}
		if _, isString := v.(string); !isString {
			return fail(model.KindInvalidFieldType, field, fmt.Sprintf("Invalid type for field: %s", field))
		}
	}

	return model.ValidationResult{OK: true}
}

func fail(kind model.ValidationKind, field, msg string) model.ValidationResult {
	return model.ValidationResult{Kind: kind, Field: field, ErrorMessage: msg}
}
