package request

import (
	"buhuchet_site/internal/domain/entities"
	"buhuchet_site/internal/usecase"
)

// CreateReviewRequest adds a review by hand from the admin panel.
// Rating defaults to 5 when omitted.
type CreateReviewRequest struct {
	Name        string  `json:"name" binding:"required"`
	Text        string  `json:"text"`
	Rating      *int    `json:"rating"`
	IsPublished bool    `json:"is_published"`
	IsFeatured  bool    `json:"is_featured"`
	AdminNotes  *string `json:"admin_notes"`
}

func (r CreateReviewRequest) ToInput() usecase.ReviewInput {
	rating := entities.DefaultRating
	if r.Rating != nil {
		rating = *r.Rating
	}
	return usecase.ReviewInput{
		Name:        r.Name,
		Text:        r.Text,
		Rating:      rating,
		IsPublished: r.IsPublished,
		IsFeatured:  r.IsFeatured,
		AdminNotes:  r.AdminNotes,
	}
}

type UpdateReviewRequest struct {
	Name       *string `json:"name"`
	Text       *string `json:"text"`
	Rating     *int    `json:"rating"`
	AdminNotes *string `json:"admin_notes"`
}

func (r UpdateReviewRequest) ToPatch() usecase.ReviewPatch {
	return usecase.ReviewPatch{
		Name:       r.Name,
		Text:       r.Text,
		Rating:     r.Rating,
		AdminNotes: r.AdminNotes,
	}
}

type PublishReviewRequest struct {
	Published *bool `json:"published" binding:"required"`
}

type FeatureReviewRequest struct {
	Featured *bool `json:"featured" binding:"required"`
}
