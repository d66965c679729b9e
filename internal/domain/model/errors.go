package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pricing engine. Every calculation failure wraps
// exactly one of these so callers can classify errors with errors.Is.
var (
	// ErrValidation indicates a missing or malformed request field,
	// rejected before any catalog access.
	ErrValidation = errors.New("validation error")
	// ErrSelectionInvalid indicates a selection referencing an unavailable,
	// not-found, or inapplicable customization.
	ErrSelectionInvalid = errors.New("selection invalid")
	// ErrPricingRuleNotFound indicates a missing crust/size pricing row.
	ErrPricingRuleNotFound = errors.New("pricing rule not found")
	// ErrAccessDenied indicates the variant belongs to a different
	// restaurant than the one in the request.
	ErrAccessDenied = errors.New("access denied")
	// ErrCatalogUnavailable indicates the catalog accessor failed.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrAssemblyInvariant indicates an internal defect: the computed
	// breakdown does not sum to the final price.
	ErrAssemblyInvariant = errors.New("assembly invariant violation")
)

// PricingError carries the failure classification together with the field or
// selection that caused it.
type PricingError struct {
	kind   error
	Field  string
	Detail string
}

// Error implements the error interface.
func (e *PricingError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.kind.Error(), e.Field, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.kind.Error(), e.Detail)
}

// Unwrap exposes the sentinel kind for errors.Is.
func (e *PricingError) Unwrap() error {
	return e.kind
}

// NewValidationError builds a request validation failure for a field.
func NewValidationError(field, detail string) error {
	return &PricingError{kind: ErrValidation, Field: field, Detail: detail}
}

// NewSelectionInvalidError builds a failure identifying the offending
// selection's customization id.
func NewSelectionInvalidError(customizationID, detail string) error {
	return &PricingError{kind: ErrSelectionInvalid, Field: customizationID, Detail: detail}
}

// NewPricingRuleNotFoundError builds a missing-pricing-row failure.
func NewPricingRuleNotFoundError(detail string) error {
	return &PricingError{kind: ErrPricingRuleNotFound, Detail: detail}
}

// NewAccessDeniedError builds a cross-restaurant access failure.
func NewAccessDeniedError(detail string) error {
	return &PricingError{kind: ErrAccessDenied, Detail: detail}
}

// NewCatalogUnavailableError wraps a catalog transport failure.
func NewCatalogUnavailableError(cause error) error {
	detail := ""
	if cause != nil {
		detail = cause.Error()
	}
	return &PricingError{kind: ErrCatalogUnavailable, Detail: detail}
}

// NewAssemblyInvariantError builds an internal breakdown-sum defect.
func NewAssemblyInvariantError(detail string) error {
	return &PricingError{kind: ErrAssemblyInvariant, Detail: detail}
}
