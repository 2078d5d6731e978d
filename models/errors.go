package models

import (
	"errors"
	"fmt"
)

// Error taxonomy shared across services and controllers. Controllers match
// with errors.Is and map to HTTP status codes; services wrap these with
// field-level detail via fmt.Errorf("%w: ...").
var (
	// ErrValidation covers malformed or missing request fields (bad dates,
	// missing pieces/size). Never retried, surfaced with detail.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound covers unknown or inactive foods and missing nutrition
	// records.
	ErrNotFound = errors.New("not found")

	// ErrInvalidQuantity is the resolver's rejection of a quantity that does
	// not match the food's portion type.
	ErrInvalidQuantity = fmt.Errorf("%w: invalid quantity", ErrValidation)

	// ErrInvalidPortionType signals a data-integrity violation: a food whose
	// portion type is outside the closed enum. Should be unreachable.
	ErrInvalidPortionType = errors.New("invalid portion type")
)
