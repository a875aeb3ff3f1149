package service

import (
	"fmt"
	"net/mail"
	"sort"
	"strings"
)

// ValidationError reports every violated field of a request payload, not
// just the first, so the caller can fix them all in one round trip. It is
// always recoverable by correcting the payload.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// fieldErrors accumulates violations and builds a ValidationError.
type fieldErrors map[string]string

func (f fieldErrors) add(field, msg string) { f[field] = msg }

// err returns nil when no field was violated. The nil-interface dance
// matters: returning a typed nil *ValidationError as error would be non-nil.
func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

// ValidateAllocationCreate checks a candidate allocation-create payload.
// All three fields must be positive integers. Pure function, no side effects.
func ValidateAllocationCreate(clientID, assetID, quantity int64) error {
	errs := fieldErrors{}
	if clientID <= 0 {
		errs.add("clientId", "Client ID must be a positive integer")
	}
	if assetID <= 0 {
		errs.add("assetId", "Asset ID must be a positive integer")
	}
	if quantity <= 0 {
		errs.add("quantity", "Quantity must be a positive integer")
	}
	return errs.err()
}

// ValidateAllocationUpdate checks a candidate allocation-update payload.
// Quantity is optional; absence means "no change" and is valid.
func ValidateAllocationUpdate(quantity *int64) error {
	errs := fieldErrors{}
	if quantity != nil && *quantity <= 0 {
		errs.add("quantity", "Quantity must be a positive integer")
	}
	return errs.err()
}

const (
	clientNameMinLen = 2
	clientNameMaxLen = 50
)

func validClientName(name string) bool {
	n := len(strings.TrimSpace(name))
	return n >= clientNameMinLen && n <= clientNameMaxLen
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// ValidateClientCreate checks a candidate client-create payload.
func ValidateClientCreate(name, email string) error {
	errs := fieldErrors{}
	if !validClientName(name) {
		errs.add("name", fmt.Sprintf("Name must be between %d and %d characters", clientNameMinLen, clientNameMaxLen))
	}
	if !validEmail(email) {
		errs.add("email", "Invalid email format")
	}
	return errs.err()
}

// ValidateClientUpdate checks a candidate client-update payload; each field
// is optional and only validated when supplied.
func ValidateClientUpdate(name, email *string) error {
	errs := fieldErrors{}
	if name != nil && !validClientName(*name) {
		errs.add("name", fmt.Sprintf("Name must be between %d and %d characters", clientNameMinLen, clientNameMaxLen))
	}
	if email != nil && !validEmail(*email) {
		errs.add("email", "Invalid email format")
	}
	return errs.err()
}
