package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"buhuchet_site/internal/adapter/http/handlers/mocks"
	"buhuchet_site/internal/domain/entities"
	"buhuchet_site/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSiteContentHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockISiteContentUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockISiteContentUseCase(ctrl)
		h := NewSiteContentHandler(uc)
		r := gin.New()
		r.GET("/v1/site", h.Get)
		r.PATCH("/v1/admin/site", h.Patch)
		return r, uc
	}

	t.Run("get", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Get(gomock.Any()).Return(entities.DefaultSiteContent(), nil)

		w := doJSON(r, http.MethodGet, "/v1/site", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("patch invalid json", func(t *testing.T) {
		r, _ := newRouter(t)
		w := doJSON(r, http.MethodPatch, "/v1/admin/site", `{"hero":`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("patch invalid nav item", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Patch(gomock.Any(), gomock.Any()).Return(entities.SiteContent{}, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, entities.ErrInvalidNavItem))

		w := doJSON(r, http.MethodPatch, "/v1/admin/site", `{"navigation":[{"label":"","url":"/"}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("patch hero title", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Patch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, p entities.SiteContentPatch) (entities.SiteContent, error) {
			if p.HeroTitle == nil || *p.HeroTitle != "Бухгалтерия под ключ" || p.Navigation != nil {
				t.Fatalf("unexpected patch: %+v", p)
			}
			content := entities.DefaultSiteContent()
			content.Hero.Title = *p.HeroTitle
			return content, nil
		})

		w := doJSON(r, http.MethodPatch, "/v1/admin/site", `{"hero":{"title":"Бухгалтерия под ключ"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().Get(gomock.Any()).Return(entities.SiteContent{}, usecase.ErrStoreFailure)

		w := doJSON(r, http.MethodGet, "/v1/site", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
