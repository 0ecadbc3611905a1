// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used in the service layer, never in handlers or storage.
// Business logic only ever operates on semantically valid records.
package validate

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/taibuivan/hojadevida/internal/platform/apperr"
)

// MinBirthYear is the earliest accepted birth year.
const MinBirthYear = 1900

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError

	// Now overrides the clock used by the date rules. Zero means [time.Now].
	Now time.Time
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// Positive fails unless value is strictly greater than zero.
func (v *Validator) Positive(field string, value int) *Validator {
	if value <= 0 {
		v.add(field, "Must be greater than zero")
	}
	return v
}

// NonNegative fails if value is below zero.
func (v *Validator) NonNegative(field string, value float64) *Validator {
	if value < 0 {
		v.add(field, "Must not be negative")
	}
	return v
}

// Email fails if the value is not a valid RFC 5322 email address.
// Empty values pass; combine with [Validator.Required] when mandatory.
func (v *Validator) Email(field, value string) *Validator {
	if value == "" {
		return v
	}
	if _, err := mail.ParseAddress(value); err != nil {
		v.add(field, "Must be a valid email address")
	}
	return v
}

// URL fails if a non-empty value is not an absolute http(s) URL.
func (v *Validator) URL(field, value string) *Validator {
	if value == "" {
		return v
	}
	parsed, err := url.Parse(value)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		v.add(field, "Must be a valid http(s) URL")
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// # Dates

// RequiredDate fails if the date is the zero value.
func (v *Validator) RequiredDate(field string, value time.Time) *Validator {
	if value.IsZero() {
		v.add(field, "This field is required")
	}
	return v
}

// NotFuture fails if the calendar day of value is after today.
// Nil dates pass.
func (v *Validator) NotFuture(field string, value *time.Time) *Validator {
	if value == nil || value.IsZero() {
		return v
	}
	if dayOf(*value).After(dayOf(v.now())) {
		v.add(field, "Date cannot be in the future")
	}
	return v
}

// DateOrder fails if end precedes start. Either side may be nil.
func (v *Validator) DateOrder(field string, start, end *time.Time) *Validator {
	if start == nil || end == nil || start.IsZero() || end.IsZero() {
		return v
	}
	if dayOf(*end).Before(dayOf(*start)) {
		v.add(field, "End date cannot be before the start date")
	}
	return v
}

// BirthDate applies the birth date rules: not in the future and a year no
// earlier than [MinBirthYear].
func (v *Validator) BirthDate(field string, value *time.Time) *Validator {
	if value == nil || value.IsZero() {
		return v
	}
	if value.Year() < MinBirthYear {
		v.add(field, fmt.Sprintf("Year must be %d or later", MinBirthYear))
	}
	return v.NotFuture(field, value)
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("hours", hours > 1000, "Must be at most 1000")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method. Call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

func (v *Validator) now() time.Time {
	if v.Now.IsZero() {
		return time.Now()
	}
	return v.Now
}

// dayOf truncates t to its calendar day in UTC.
func dayOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
