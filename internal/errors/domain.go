package errors

import (
	"fmt"
	"sort"
	"strings"
)

// DomainError is a business rule violation identified by a stable code.
type DomainError struct {
	Code    string
	Message string
	Details map[string]string
}

func (e *DomainError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}

	fields := make([]string, 0, len(e.Details))
	for field := range e.Details {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s %s", field, e.Details[field]))
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(parts, "; "))
}

// Is matches any DomainError carrying the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// WithDetails returns a copy of e carrying field-level messages.
func (e *DomainError) WithDetails(details map[string]string) *DomainError {
	copied := make(map[string]string, len(details))
	for k, v := range details {
		copied[k] = v
	}
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: copied,
	}
}
