package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"

	"github.com/allisson/paymentfields/internal/field/domain"
	"github.com/allisson/paymentfields/internal/field/http/dto"
	fieldUseCase "github.com/allisson/paymentfields/internal/field/usecase"
	"github.com/allisson/paymentfields/internal/httputil"
	customValidation "github.com/allisson/paymentfields/internal/validation"
)

// CatalogHandler handles HTTP requests for the brand and country metadata.
type CatalogHandler struct {
	fieldUseCase fieldUseCase.FieldUseCase
	logger       *slog.Logger
}

// NewCatalogHandler creates a new catalog handler with required dependencies.
func NewCatalogHandler(fieldUseCase fieldUseCase.FieldUseCase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		fieldUseCase: fieldUseCase,
		logger:       logger,
	}
}

// ListBrandsHandler lists every known card brand.
// GET /v1/brands
func (h *CatalogHandler) ListBrandsHandler(c *gin.Context) {
	brands, err := h.fieldUseCase.ListBrands(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapBrandsToListResponse(brands))
}

// DetectBrandHandler returns the brand of a (possibly partial) card number.
// GET /v1/brands/detect?number=
// Returns 200 OK with the brand rule; the unknown brand is reported while the number is
// ambiguous.
func (h *CatalogHandler) DetectBrandHandler(c *gin.Context) {
	var req dto.DetectBrandRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	rule, err := h.fieldUseCase.DetectBrand(c.Request.Context(), req.Number)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Debug("brand detected",
		logValue(domain.KindCardNumber, req.Number),
		slog.String("brand", string(rule.Brand)),
	)

	c.JSON(http.StatusOK, dto.MapBrandToResponse(rule))
}

// ListCountriesHandler lists every catalog country.
// GET /v1/countries
func (h *CatalogHandler) ListCountriesHandler(c *gin.Context) {
	countries, err := h.fieldUseCase.ListCountries(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCountriesToListResponse(countries))
}

// GetCountryHandler returns the rules of one country.
// GET /v1/countries/:code
// Returns 404 Not Found for codes outside the catalog.
func (h *CatalogHandler) GetCountryHandler(c *gin.Context) {
	code := c.Param("code")
	if err := validation.Validate(code, validation.Required, customValidation.CountryCode); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	country, err := h.fieldUseCase.GetCountry(c.Request.Context(), code)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, country)
}
