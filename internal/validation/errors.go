// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package validation

import (
	"strings"

	"github.com/tomtom215/tunematch/internal/models"
)

// ErrorCode is the API error code for every failure reported here.
const ErrorCode = "VALIDATION_ERROR"

// ValidationError is one failed rule on one field.
type ValidationError struct {
	field   string
	tag     string
	param   string
	value   interface{}
	message string
}

// Field is the query parameter name of the failing field.
func (e *ValidationError) Field() string { return e.field }

// Tag is the failing rule, e.g. "required" or "max".
func (e *ValidationError) Tag() string { return e.tag }

// Param is the rule argument, "100" for max=100.
func (e *ValidationError) Param() string { return e.param }

// Value is the rejected input.
func (e *ValidationError) Value() interface{} { return e.value }

func (e *ValidationError) Error() string { return e.message }

// RequestValidationError collects every failed rule for one request.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the individual failures in field order.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	var sb strings.Builder
	for i := range ve.errors {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(ve.errors[i].message)
	}
	return sb.String()
}

// ToAPIError shapes the failures for the response envelope. A single failure
// keeps its message as-is so clients can show it directly; several are
// joined and listed under details.fields.
func (ve *RequestValidationError) ToAPIError() *models.APIError {
	switch len(ve.errors) {
	case 0:
		return &models.APIError{Code: ErrorCode, Message: "Validation failed"}
	case 1:
		e := &ve.errors[0]
		return &models.APIError{
			Code:    ErrorCode,
			Message: e.message,
			Details: map[string]interface{}{
				"field": e.field,
				"tag":   e.tag,
				"value": e.value,
			},
		}
	}

	fields := make([]map[string]interface{}, 0, len(ve.errors))
	parts := make([]string, 0, len(ve.errors))
	for i := range ve.errors {
		e := &ve.errors[i]
		fields = append(fields, map[string]interface{}{
			"field":   e.field,
			"tag":     e.tag,
			"message": e.message,
		})
		parts = append(parts, e.field+": "+e.message)
	}
	return &models.APIError{
		Code:    ErrorCode,
		Message: strings.Join(parts, "; "),
		Details: map[string]interface{}{"fields": fields},
	}
}
