package app

import (
	"fmt"
	"sync"

	fieldHTTP "github.com/allisson/paymentfields/internal/field/http"
	fieldUseCase "github.com/allisson/paymentfields/internal/field/usecase"
)

// fieldComponents groups the lazily built components of the field engine.
type fieldComponents struct {
	useCase        fieldUseCase.FieldUseCase
	fieldHandler   *fieldHTTP.FieldHandler
	catalogHandler *fieldHTTP.CatalogHandler

	useCaseInit        sync.Once
	fieldHandlerInit   sync.Once
	catalogHandlerInit sync.Once
}

// FieldUseCase returns the field use case instance.
func (c *Container) FieldUseCase() (fieldUseCase.FieldUseCase, error) {
	var err error
	c.field.useCaseInit.Do(func() {
		c.field.useCase, err = c.initFieldUseCase()
		if err != nil {
			c.initErrors["fieldUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["fieldUseCase"]; exists {
		return nil, storedErr
	}
	return c.field.useCase, nil
}

// FieldHandler returns the field HTTP handler instance.
func (c *Container) FieldHandler() (*fieldHTTP.FieldHandler, error) {
	var err error
	c.field.fieldHandlerInit.Do(func() {
		c.field.fieldHandler, err = c.initFieldHandler()
		if err != nil {
			c.initErrors["fieldHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["fieldHandler"]; exists {
		return nil, storedErr
	}
	return c.field.fieldHandler, nil
}

// CatalogHandler returns the catalog HTTP handler instance.
func (c *Container) CatalogHandler() (*fieldHTTP.CatalogHandler, error) {
	var err error
	c.field.catalogHandlerInit.Do(func() {
		c.field.catalogHandler, err = c.initCatalogHandler()
		if err != nil {
			c.initErrors["catalogHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["catalogHandler"]; exists {
		return nil, storedErr
	}
	return c.field.catalogHandler, nil
}

// initFieldUseCase creates the field use case with all its dependencies.
func (c *Container) initFieldUseCase() (fieldUseCase.FieldUseCase, error) {
	catalog, err := c.Catalog()
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog for field use case: %w", err)
	}

	baseUseCase := fieldUseCase.NewFieldUseCase(catalog, c.config.DefaultCountry)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		fieldMetrics, err := c.FieldMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get field metrics for field use case: %w", err)
		}
		return fieldUseCase.NewFieldUseCaseWithMetrics(baseUseCase, fieldMetrics), nil
	}

	return baseUseCase, nil
}

// initFieldHandler creates the field HTTP handler with all its dependencies.
func (c *Container) initFieldHandler() (*fieldHTTP.FieldHandler, error) {
	useCase, err := c.FieldUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get field use case for field handler: %w", err)
	}
	return fieldHTTP.NewFieldHandler(useCase, c.Logger()), nil
}

// initCatalogHandler creates the catalog HTTP handler with all its dependencies.
func (c *Container) initCatalogHandler() (*fieldHTTP.CatalogHandler, error) {
	useCase, err := c.FieldUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get field use case for catalog handler: %w", err)
	}
	return fieldHTTP.NewCatalogHandler(useCase, c.Logger()), nil
}
