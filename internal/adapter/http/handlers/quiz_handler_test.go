package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"buhuchet_site/internal/adapter/http/handlers/mocks"
	"buhuchet_site/internal/domain/entities"
	"buhuchet_site/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuizHandler_Discount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		body       string
		setup      func(uc *mocks.MockIQuizUseCase)
		wantStatus int
	}{
		{
			name:       "missing answered_steps",
			body:       `{}`,
			setup:      func(uc *mocks.MockIQuizUseCase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "negative steps",
			body: `{"answered_steps":-1}`,
			setup: func(uc *mocks.MockIQuizUseCase) {
				uc.EXPECT().Evaluate(-1).Return(entities.QuizResult{}, usecase.ErrInvalidInput)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "zero steps",
			body: `{"answered_steps":0}`,
			setup: func(uc *mocks.MockIQuizUseCase) {
				uc.EXPECT().Evaluate(0).Return(entities.QuizResult{MaxDiscount: 10000}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "two steps",
			body: `{"answered_steps":2}`,
			setup: func(uc *mocks.MockIQuizUseCase) {
				uc.EXPECT().Evaluate(2).Return(entities.QuizResult{AnsweredSteps: 2, Discount: 5000, MaxDiscount: 10000, FirstBonusUnlocked: true}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIQuizUseCase(ctrl)
			tt.setup(uc)
			h := NewQuizHandler(uc)

			r := gin.New()
			r.POST("/v1/quiz/discount", h.Discount)

			w := doJSON(r, http.MethodPost, "/v1/quiz/discount", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}

	t.Run("response shape", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuizUseCase(ctrl)
		uc.EXPECT().Evaluate(4).Return(entities.QuizResult{AnsweredSteps: 4, Discount: 10000, MaxDiscount: 10000, FirstBonusUnlocked: true, SecondBonusUnlocked: true}, nil)
		h := NewQuizHandler(uc)

		r := gin.New()
		r.POST("/v1/quiz/discount", h.Discount)

		w := doJSON(r, http.MethodPost, "/v1/quiz/discount", `{"answered_steps":4}`)
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["discount"] != float64(10000) || body["second_bonus_unlocked"] != true {
			t.Fatalf("unexpected response: %v", body)
		}
	})
}
