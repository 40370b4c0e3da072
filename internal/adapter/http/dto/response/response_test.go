package response

import (
	"testing"
	"time"

	"buhuchet_site/internal/domain/entities"
)

func TestFromReview(t *testing.T) {
	now := time.Now().UTC()
	notes := "seed review"
	r := entities.Review{
		ID:          "r-1",
		Name:        "Анна",
		Rating:      4,
		Text:        "Спасибо",
		Source:      entities.ReviewSourceManual,
		IsPublished: true,
		PublishedAt: &now,
		CreatedAt:   now,
		AdminNotes:  &notes,
	}

	res := FromReview(r)
	if res.ID != "r-1" || res.Source != "manual" || res.Rating != 4 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.AdminNotes == nil || *res.AdminNotes != notes {
		t.Fatalf("unexpected notes: %+v", res)
	}

	public := FromPublishedReviews([]entities.Review{r})
	if len(public) != 1 || public[0].Name != "Анна" || !public[0].PublishedAt.Equal(now) {
		t.Fatalf("unexpected public view: %+v", public)
	}
}

func TestFromReviews_Empty(t *testing.T) {
	if res := FromReviews(nil); res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", res)
	}
}

func TestFromQuote(t *testing.T) {
	if res := FromQuote(entities.QuoteResult{TotalPrice: 4500}); res.Total != 4500 {
		t.Fatalf("unexpected total: %+v", res)
	}
}
