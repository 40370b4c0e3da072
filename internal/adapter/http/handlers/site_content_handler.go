package handlers

import (
	"errors"
	"log"
	"net/http"

	request "buhuchet_site/internal/adapter/http/dto/request"
	"buhuchet_site/internal/usecase"
	"buhuchet_site/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSitePayload = pkg.NewDomainErrorSimple("INVALID_SITE_INPUT", "Invalid site content payload", http.StatusBadRequest)
)

type SiteContentHandler struct {
	usecase usecase.ISiteContentUseCase
}

func NewSiteContentHandler(uc usecase.ISiteContentUseCase) *SiteContentHandler {
	return &SiteContentHandler{usecase: uc}
}

func (h *SiteContentHandler) Get(c *gin.Context) {
	content, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		appErr := mapSiteContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, content)
}

// Patch updates only the fields present in the body.
func (h *SiteContentHandler) Patch(c *gin.Context) {
	var payload request.SiteContentPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSitePayload.HTTPStatus, errInvalidSitePayload.ToHTTPError())
		return
	}

	content, err := h.usecase.Patch(c.Request.Context(), payload.ToPatch())
	if err != nil {
		appErr := mapSiteContentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, content)
}

func mapSiteContentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	default:
		log.Printf("[http][site] internal error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
