package service

import (
	"github.com/allisson/paymentfields/internal/field/domain"
	"github.com/allisson/paymentfields/internal/field/metadata"
)

// NewField creates the field implementation for a kind.
func NewField(kind domain.Kind, catalog *metadata.Catalog) (Field, error) {
	switch kind {
	case domain.KindCardNumber:
		return NewCardNumberField(catalog), nil
	case domain.KindExpiry:
		return NewExpiryField(), nil
	case domain.KindCVC:
		return NewCVCField(catalog), nil
	case domain.KindBSB:
		return NewBSBField(catalog), nil
	case domain.KindPostalCode:
		return NewPostalCodeField(catalog), nil
	case domain.KindPhone:
		return NewPhoneField(catalog), nil
	default:
		return nil, domain.ErrUnknownKind
	}
}

// FieldSet holds one field implementation per kind, all sharing the same catalog.
type FieldSet map[domain.Kind]Field

// NewFieldSet creates the implementations of every supported kind.
func NewFieldSet(catalog *metadata.Catalog) FieldSet {
	set := make(FieldSet, len(domain.Kinds))
	for _, kind := range domain.Kinds {
		f, _ := NewField(kind, catalog)
		set[kind] = f
	}
	return set
}

// Get returns the field implementation of a kind.
func (s FieldSet) Get(kind domain.Kind) (Field, error) {
	f, ok := s[kind]
	if !ok {
		return nil, domain.ErrUnknownKind
	}
	return f, nil
}
