package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "buhuchet_site/internal/adapter/http/dto/request"
	response "buhuchet_site/internal/adapter/http/dto/response"
	"buhuchet_site/internal/domain/entities"
	"buhuchet_site/internal/usecase"
	"buhuchet_site/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidReviewPayload = pkg.NewDomainErrorSimple("INVALID_REVIEW_INPUT", "Invalid review payload", http.StatusBadRequest)
)

// ReviewHandler serves the public review block and the review admin screens.

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// ListPublished returns the reviews shown on the site, featured first.
func (h *ReviewHandler) ListPublished(c *gin.Context) {
	reviews, err := h.usecase.ListPublished(c.Request.Context())
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPublishedReviews(reviews))
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReviews(reviews))
}

func (h *ReviewHandler) Get(c *gin.Context) {
	review, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReview(review))
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var payload request.CreateReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	review, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[http][review] created id=%s", review.ID)
	c.JSON(http.StatusCreated, response.FromReview(review))
}

func (h *ReviewHandler) Update(c *gin.Context) {
	var payload request.UpdateReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	review, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReview(review))
}

func (h *ReviewHandler) SetPublished(c *gin.Context) {
	var payload request.PublishReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}
	h.toggle(c, *payload.Published, h.usecase.SetPublished)
}

func (h *ReviewHandler) SetFeatured(c *gin.Context) {
	var payload request.FeatureReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}
	h.toggle(c, *payload.Featured, h.usecase.SetFeatured)
}

func (h *ReviewHandler) toggle(
	c *gin.Context,
	value bool,
	setter func(ctx context.Context, id string, value bool) (entities.Review, error),
) {
	review, err := setter(c.Request.Context(), c.Param("id"), value)
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReview(review))
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[http][review] deleted id=%s", id)
	c.Status(http.StatusNoContent)
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReviewID), errors.Is(err, usecase.ErrInvalidReviewName), errors.Is(err, usecase.ErrInvalidReviewScore), errors.Is(err, usecase.ErrInvalidInput):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReviewNotFound):
		return pkg.NewDomainErrorSimple("REVIEW_NOT_FOUND", "Review not found", http.StatusNotFound)
	default:
		log.Printf("[http][review] internal error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
