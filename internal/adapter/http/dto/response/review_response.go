package response

import (
	"time"

	"buhuchet_site/internal/domain/entities"
)

// ReviewResponse is the admin view of a review, notes included.
type ReviewResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Rating      int        `json:"rating"`
	Text        string     `json:"text"`
	Source      string     `json:"source"`
	IsPublished bool       `json:"is_published"`
	IsFeatured  bool       `json:"is_featured"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	AdminNotes  *string    `json:"admin_notes"`
}

// PublicReviewResponse is what the site's review block renders.
type PublicReviewResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Rating      int        `json:"rating"`
	Text        string     `json:"text"`
	IsFeatured  bool       `json:"is_featured"`
	PublishedAt *time.Time `json:"published_at"`
}

func FromReview(r entities.Review) ReviewResponse {
	return ReviewResponse{
		ID:          r.ID,
		Name:        r.Name,
		Rating:      r.Rating,
		Text:        r.Text,
		Source:      string(r.Source),
		IsPublished: r.IsPublished,
		IsFeatured:  r.IsFeatured,
		PublishedAt: r.PublishedAt,
		CreatedAt:   r.CreatedAt,
		AdminNotes:  r.AdminNotes,
	}
}

func FromReviews(reviews []entities.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, FromReview(r))
	}
	return out
}

func FromPublishedReviews(reviews []entities.Review) []PublicReviewResponse {
	out := make([]PublicReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, PublicReviewResponse{
			ID:          r.ID,
			Name:        r.Name,
			Rating:      r.Rating,
			Text:        r.Text,
			IsFeatured:  r.IsFeatured,
			PublishedAt: r.PublishedAt,
		})
	}
	return out
}
