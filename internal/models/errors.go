package models

import "errors"

var (
	// ErrNotFound is returned by point lookups and PayInvoice when no record
	// carries the given identifier or business key.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateInvoice is returned by CreateInvoice when the invoice
	// number is already taken. Invoice numbers are unique across the store.
	ErrDuplicateInvoice = errors.New("invoice number already exists")
)
