package handlers

import (
	"errors"
	"log"
	"net/http"

	response "buhuchet_site/internal/adapter/http/dto/response"
	"buhuchet_site/internal/usecase"
	"buhuchet_site/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errResetNotConfirmed = pkg.NewDomainErrorSimple("RESET_NOT_CONFIRMED", "Full reset deletes every review; repeat with ?confirm=true", http.StatusBadRequest)
)

// ReviewSyncHandler triggers review ingestion from the external source.

type ReviewSyncHandler struct {
	usecase usecase.IReviewSyncUseCase
}

func NewReviewSyncHandler(uc usecase.IReviewSyncUseCase) *ReviewSyncHandler {
	return &ReviewSyncHandler{usecase: uc}
}

// Sync imports reviews that are not stored yet.
func (h *ReviewSyncHandler) Sync(c *gin.Context) {
	result, err := h.usecase.Sync(c.Request.Context())
	if err != nil {
		appErr := mapReviewSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSyncResult(result))
}

// Reset wipes every review and re-imports the source plus the seed set.
// The caller must pass confirm=true.
func (h *ReviewSyncHandler) Reset(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(errResetNotConfirmed.HTTPStatus, errResetNotConfirmed.ToHTTPError())
		return
	}

	result, err := h.usecase.FullReset(c.Request.Context())
	if err != nil {
		appErr := mapReviewSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[http][review-sync] reset deleted=%d total=%d", result.Deleted, result.Total)
	c.JSON(http.StatusOK, response.FromResetResult(result))
}

func mapReviewSyncError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoReviewsExtracted):
		return pkg.NewDomainError("NO_REVIEWS_EXTRACTED", "No reviews found on the source page", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrFetchFailed):
		return pkg.NewDomainError("REVIEW_SOURCE_UNAVAILABLE", "Review source is unavailable", err, http.StatusBadGateway)
	default:
		log.Printf("[http][review-sync] internal error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
