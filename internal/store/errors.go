package store

import (
	"errors"
	"fmt"
)

var (
	// ErrItemNotFound is returned when an item lookup misses
	ErrItemNotFound = errors.New("item not found")

	// ErrMerchantNotFound is returned when a merchant lookup misses
	ErrMerchantNotFound = errors.New("merchant not found")
)

// SearchRejectedError is returned by FindItems when no search mode applies to
// the supplied parameter combination. The boundary maps the reason to a status
// code and error body.
type SearchRejectedError struct {
	Reason RejectReason
}

func (e *SearchRejectedError) Error() string {
	return fmt.Sprintf("item search rejected: %s", e.Reason)
}
