package reviewsource

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"buhuchet_site/internal/domain/entities"
	"buhuchet_site/internal/usecase/interfaces"

	"github.com/stretchr/testify/require"
)

const reviewsPage = `<!doctype html>
<html><body>
<div class="business-review-view">
  <div class="business-review-view__author"><span itemprop="name">Анна  Петрова</span></div>
  <meta itemprop="ratingValue" content="4.0">
  <span class="business-review-view__date">12 марта 2026</span>
  <div class="business-review-view__body-text">  Всё сделали быстро.  </div>
</div>
<div class="business-review-view">
  <div class="business-review-view__author-name">Игорь</div>
  <span itemprop="ratingValue">9</span>
  <div class="business-review-view__body-text">Рекомендую</div>
</div>
<div class="business-review-view">
  <span itemprop="ratingValue">abc</span>
</div>
</body></html>`

func TestParseReviews(t *testing.T) {
	reviews, err := ParseReviews([]byte(reviewsPage))
	require.NoError(t, err)
	require.Equal(t, []entities.ParsedReview{
		{Name: "Анна Петрова", Text: "Всё сделали быстро.", Rating: 4, PostedAt: "12 марта 2026"},
		{Name: "Игорь", Text: "Рекомендую", Rating: 5},
		{Name: "Гость", Text: "", Rating: 5},
	}, reviews)
}

func TestParseReviews_NoCards(t *testing.T) {
	_, err := ParseReviews([]byte(`<html><body><p>captcha</p></body></html>`))
	require.ErrorIs(t, err, interfaces.ErrReviewSourceEmpty)
}

func TestYandexSource_FetchReviews(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(reviewsPage))
	}))
	defer srv.Close()

	src := NewYandexSource(srv.URL, "test-agent")
	require.Equal(t, "yandex", src.Name())

	reviews, err := src.FetchReviews(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	require.Equal(t, "test-agent", gotUA)
}

func TestYandexSource_FetchReviews_Errors(t *testing.T) {
	t.Run("non-2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		_, err := NewYandexSource(srv.URL, "").FetchReviews(context.Background())
		require.True(t, errors.Is(err, interfaces.ErrReviewSourceUnavailable))
	})

	t.Run("unreachable host", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		_, err := NewYandexSource(url, "").FetchReviews(context.Background())
		require.ErrorIs(t, err, interfaces.ErrReviewSourceUnavailable)
	})

	t.Run("missing url", func(t *testing.T) {
		_, err := NewYandexSource("", "").FetchReviews(context.Background())
		require.ErrorIs(t, err, interfaces.ErrReviewSourceUnavailable)
	})

	t.Run("page without cards", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html><body></body></html>`))
		}))
		defer srv.Close()

		_, err := NewYandexSource(srv.URL, "").FetchReviews(context.Background())
		require.ErrorIs(t, err, interfaces.ErrReviewSourceEmpty)
	})
}
