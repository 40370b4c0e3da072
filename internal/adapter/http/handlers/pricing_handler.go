package handlers

import (
	"errors"
	"log"
	"net/http"

	request "buhuchet_site/internal/adapter/http/dto/request"
	response "buhuchet_site/internal/adapter/http/dto/response"
	"buhuchet_site/internal/usecase"
	"buhuchet_site/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload   = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errInvalidPricingPayload = pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing payload", http.StatusBadRequest)
)

// PricingHandler serves the price calculator and its admin settings.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// GetPricing returns the current catalog and multiplier tables.
func (h *PricingHandler) GetPricing(c *gin.Context) {
	cfg, err := h.usecase.GetConfig(c.Request.Context())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// Quote computes the monthly price for the calculator form.
func (h *PricingHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	req, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Quote(c.Request.Context(), req)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// SavePricing replaces the pricing document.
func (h *PricingHandler) SavePricing(c *gin.Context) {
	var payload request.PricingConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	cfg, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	cfg, err = h.usecase.SaveConfig(c.Request.Context(), cfg)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[http][pricing] config saved services=%d", len(cfg.Services))
	c.JSON(http.StatusOK, cfg)
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPricingConfig):
		return pkg.NewDomainError("INVALID_PRICING_CONFIG", err.Error(), err, http.StatusBadRequest)
	default:
		log.Printf("[http][pricing] internal error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
