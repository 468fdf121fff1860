package domain

import (
	"github.com/allisson/paymentfields/internal/errors"
)

var (
	// ErrUnknownKind indicates the requested field kind is not supported.
	ErrUnknownKind = errors.Wrap(errors.ErrInvalidInput, "unknown field kind")

	// ErrUnknownBrand indicates the card brand name is not recognized.
	ErrUnknownBrand = errors.Wrap(errors.ErrInvalidInput, "unknown card brand")

	// ErrInvalidCardNumber indicates a card number containing characters other than digits
	// and separators.
	ErrInvalidCardNumber = errors.Wrap(errors.ErrInvalidInput, "invalid card number")

	// ErrInvalidForm indicates a missing form.
	ErrInvalidForm = errors.Wrap(errors.ErrInvalidInput, "invalid form")

	// ErrUnknownCountry indicates the country code is not present in the catalog.
	ErrUnknownCountry = errors.Wrap(errors.ErrNotFound, "unknown country")

	// ErrInvalidCatalog indicates the metadata catalog could not be decoded or is inconsistent.
	ErrInvalidCatalog = errors.New("invalid metadata catalog")
)
