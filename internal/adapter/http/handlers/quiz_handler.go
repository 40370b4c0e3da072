package handlers

import (
	"errors"
	"net/http"

	request "buhuchet_site/internal/adapter/http/dto/request"
	response "buhuchet_site/internal/adapter/http/dto/response"
	"buhuchet_site/internal/usecase"
	"buhuchet_site/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuizPayload = pkg.NewDomainErrorSimple("INVALID_QUIZ_INPUT", "Invalid quiz payload", http.StatusBadRequest)
)

type QuizHandler struct {
	usecase usecase.IQuizUseCase
}

func NewQuizHandler(uc usecase.IQuizUseCase) *QuizHandler {
	return &QuizHandler{usecase: uc}
}

// Discount reports the accumulated quiz discount after N answered steps.
func (h *QuizHandler) Discount(c *gin.Context) {
	var payload request.QuizDiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuizPayload.HTTPStatus, errInvalidQuizPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Evaluate(*payload.AnsweredSteps)
	if err != nil {
		appErr := mapQuizError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuizResult(result))
}

func mapQuizError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
