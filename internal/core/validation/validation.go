// Package validation collects field-level request errors.
package validation

import (
	"regexp"
	"strings"

	"warehouse-gateway/internal/core/apperror"
	"warehouse-gateway/internal/core/i18n"
)

// Errors maps a field name to its first failure message.
type Errors map[string]string

// Add records msg for field unless the field already failed.
func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// Check records msg for field when ok is false.
func (e Errors) Check(ok bool, field, msg string) {
	if !ok {
		e.Add(field, msg)
	}
}

// Required records msg when value is blank.
func (e Errors) Required(value, field, msg string) {
	e.Check(strings.TrimSpace(value) != "", field, msg)
}

// MaxLength records msg when value is longer than n characters.
func (e Errors) MaxLength(value string, n int, field, msg string) {
	e.Check(len([]rune(value)) <= n, field, msg)
}

// Matches records msg when value does not match re.
func (e Errors) Matches(value string, re *regexp.Regexp, field, msg string) {
	e.Check(re.MatchString(value), field, msg)
}

// Err returns a validation error carrying every recorded field, or nil.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return apperror.Validation(i18n.T(i18n.ValidationFailed), map[string]string(e))
}

// Pagination is the page cursor of a list request.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Check validates both fields are at least 1.
func (p Pagination) Check(errs Errors) {
	errs.Check(p.Limit >= 1, "limit", "Limit must be at least 1")
	errs.Check(p.Page >= 1, "page", "Page must be at least 1")
}
