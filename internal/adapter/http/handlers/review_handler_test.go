package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"buhuchet_site/internal/adapter/http/handlers/mocks"
	"buhuchet_site/internal/domain/entities"
	"buhuchet_site/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newReviewRouter(t *testing.T) (*gin.Engine, *mocks.MockIReviewUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIReviewUseCase(ctrl)
	h := NewReviewHandler(uc)

	r := gin.New()
	r.GET("/v1/reviews", h.ListPublished)
	r.GET("/v1/admin/reviews", h.List)
	r.POST("/v1/admin/reviews", h.Create)
	r.GET("/v1/admin/reviews/:id", h.Get)
	r.PATCH("/v1/admin/reviews/:id", h.Update)
	r.DELETE("/v1/admin/reviews/:id", h.Delete)
	r.PATCH("/v1/admin/reviews/:id/publish", h.SetPublished)
	r.PATCH("/v1/admin/reviews/:id/feature", h.SetFeatured)
	return r, uc
}

func TestReviewHandler_ListPublished(t *testing.T) {
	r, uc := newReviewRouter(t)
	now := time.Now().UTC()
	notes := "internal"
	uc.EXPECT().ListPublished(gomock.Any()).Return([]entities.Review{
		{ID: "r-1", Name: "Анна", Rating: 5, IsPublished: true, IsFeatured: true, PublishedAt: &now, AdminNotes: &notes},
	}, nil)

	w := doJSON(r, http.MethodGet, "/v1/reviews", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(body) != 1 || body[0]["id"] != "r-1" {
		t.Fatalf("unexpected body: %v", body)
	}
	if _, ok := body[0]["admin_notes"]; ok {
		t.Fatalf("public listing must not expose admin notes: %v", body[0])
	}
}

func TestReviewHandler_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		r, _ := newReviewRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/admin/reviews", `{"text":"hi"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid rating", func(t *testing.T) {
		r, uc := newReviewRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Review{}, usecase.ErrInvalidReviewScore)

		w := doJSON(r, http.MethodPost, "/v1/admin/reviews", `{"name":"Анна","rating":9}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success defaults rating", func(t *testing.T) {
		r, uc := newReviewRouter(t)
		uc.EXPECT().Create(gomock.Any(), usecase.ReviewInput{Name: "Анна", Text: "Спасибо", Rating: 5, IsPublished: true}).
			Return(entities.Review{ID: "r-1", Name: "Анна", Text: "Спасибо", Rating: 5, Source: entities.ReviewSourceManual, IsPublished: true}, nil)

		w := doJSON(r, http.MethodPost, "/v1/admin/reviews", `{"name":"Анна","text":"Спасибо","is_published":true}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestReviewHandler_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newReviewRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Review{}, usecase.ErrReviewNotFound)

		w := doJSON(r, http.MethodGet, "/v1/admin/reviews/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		r, uc := newReviewRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.Review{}, fmt.Errorf("%w: timeout", usecase.ErrStoreFailure))

		w := doJSON(r, http.MethodGet, "/v1/admin/reviews/r-1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestReviewHandler_Update(t *testing.T) {
	r, uc := newReviewRouter(t)
	uc.EXPECT().Update(gomock.Any(), "r-1", gomock.Any()).DoAndReturn(func(_ any, _ string, p usecase.ReviewPatch) (entities.Review, error) {
		if p.Name != nil || p.Text == nil || *p.Text != "новый текст" {
			t.Fatalf("unexpected patch: %+v", p)
		}
		return entities.Review{ID: "r-1", Text: *p.Text}, nil
	})

	w := doJSON(r, http.MethodPatch, "/v1/admin/reviews/r-1", `{"text":"новый текст"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestReviewHandler_Toggles(t *testing.T) {
	t.Run("publish requires flag", func(t *testing.T) {
		r, _ := newReviewRouter(t)
		w := doJSON(r, http.MethodPatch, "/v1/admin/reviews/r-1/publish", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unpublish", func(t *testing.T) {
		r, uc := newReviewRouter(t)
		uc.EXPECT().SetPublished(gomock.Any(), "r-1", false).Return(entities.Review{ID: "r-1"}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/admin/reviews/r-1/publish", `{"published":false}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("feature missing review", func(t *testing.T) {
		r, uc := newReviewRouter(t)
		uc.EXPECT().SetFeatured(gomock.Any(), "nope", true).Return(entities.Review{}, usecase.ErrReviewNotFound)

		w := doJSON(r, http.MethodPatch, "/v1/admin/reviews/nope/feature", `{"featured":true}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestReviewHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newReviewRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "r-1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/v1/admin/reviews/r-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newReviewRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "r-1").Return(usecase.ErrReviewNotFound)

		w := doJSON(r, http.MethodDelete, "/v1/admin/reviews/r-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
