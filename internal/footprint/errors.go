package footprint

import "errors"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Invalid-input errors. These indicate a mistake in caller-supplied data
// and are rejected before any calculation proceeds.
var (
	// ErrEmployeesNotPositive indicates an employee count of zero or less.
	// Per-employee intensity is undefined without a positive headcount.
	ErrEmployeesNotPositive = constError("employee count must be positive")

	// ErrNegativeQuantity indicates a negative activity quantity.
	ErrNegativeQuantity = constError("activity quantity cannot be negative")

	// ErrNonFiniteQuantity indicates a NaN or infinite activity quantity.
	ErrNonFiniteQuantity = constError("activity quantity must be finite")

	// ErrInvalidPeriod indicates a reporting period that ends before it starts.
	ErrInvalidPeriod = constError("reporting period end precedes start")
)

// Reference-data errors. These indicate a gap or defect in the factor
// dataset rather than a user mistake, and are signaled distinctly so
// callers can fall back instead of surfacing a validation failure.
var (
	// ErrFactorNotFound indicates the factor table has no entry for a
	// declared activity kind.
	ErrFactorNotFound = constError("no emission factor for activity kind")

	// ErrUnknownActivityKind indicates a factor declared for a kind
	// outside the closed activity enumeration.
	ErrUnknownActivityKind = constError("unrecognized activity kind")

	// ErrDuplicateFactor indicates two factors for the same kind within
	// one dataset.
	ErrDuplicateFactor = constError("duplicate emission factor for activity kind")

	// ErrInvalidCoefficient indicates a negative or non-finite conversion
	// coefficient.
	ErrInvalidCoefficient = constError("emission factor coefficient must be finite and non-negative")

	// ErrScopeMismatch indicates a factor whose declared scope disagrees
	// with the activity kind's scope.
	ErrScopeMismatch = constError("emission factor scope does not match activity kind")
)

// IsInvalidInput reports whether err belongs to the invalid-input family.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrEmployeesNotPositive) ||
		errors.Is(err, ErrNegativeQuantity) ||
		errors.Is(err, ErrNonFiniteQuantity) ||
		errors.Is(err, ErrInvalidPeriod)
}

// IsReferenceGap reports whether err belongs to the reference-data family.
func IsReferenceGap(err error) bool {
	return errors.Is(err, ErrFactorNotFound) ||
		errors.Is(err, ErrUnknownActivityKind) ||
		errors.Is(err, ErrDuplicateFactor) ||
		errors.Is(err, ErrInvalidCoefficient) ||
		errors.Is(err, ErrScopeMismatch)
}
