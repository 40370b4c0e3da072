package entities

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// ReviewSource tells where a review came from.
type ReviewSource string

const (
	ReviewSourceManual  ReviewSource = "manual"
	ReviewSourceScraped ReviewSource = "scraped"
)

const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 5

	DefaultReviewAuthor = "Гость"
)

// Review is a customer review shown on the public site.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (source-index): source
//
// Publication:
//   - PublishedAt is set the first time IsPublished goes false -> true and is
//     kept afterwards, even when the review is unpublished again.
//     Only deleting the review (or a full reset of the store) drops it.
type Review struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Rating      int          `json:"rating"`
	Text        string       `json:"text"`
	Source      ReviewSource `json:"source"`
	IsPublished bool         `json:"is_published"`
	IsFeatured  bool         `json:"is_featured"`
	PublishedAt *time.Time   `json:"published_at,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	AdminNotes  *string      `json:"admin_notes,omitempty"`
}

// Publish applies an is_published change. The first transition to published
// stamps PublishedAt with now.
func (r *Review) Publish(published bool, now time.Time) {
	if published && !r.IsPublished && r.PublishedAt == nil {
		t := now.UTC()
		r.PublishedAt = &t
	}
	r.IsPublished = published
}

// DedupKey is the (name, text) pair used to recognise an already imported review.
type DedupKey struct {
	Name string
	Text string
}

func (r Review) DedupKey() DedupKey {
	return DedupKey{Name: r.Name, Text: r.Text}
}

// ParsedReview is a review card extracted from an external page, before it is
// turned into a Review.
type ParsedReview struct {
	Name     string
	Text     string
	Rating   int
	PostedAt string
}

func (p ParsedReview) DedupKey() DedupKey {
	return DedupKey{Name: p.Name, Text: p.Text}
}

// NormalizeRating turns the rating text of a review card into 1..5.
// Leading integers are accepted ("4.0" -> 4); anything non-numeric, NaN and
// Inf included, falls back to DefaultRating. Out-of-range numbers saturate.
func NormalizeRating(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultRating
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil && !errors.Is(ferr, strconv.ErrRange) {
			return DefaultRating
		}
		switch {
		case math.IsNaN(f), ferr == nil && math.IsInf(f, 0):
			return DefaultRating
		case f > MaxRating:
			return MaxRating
		case f < MinRating:
			return MinRating
		}
		n = int(f)
	}
	return ClampRating(n)
}

func ClampRating(n int) int {
	return min(max(n, MinRating), MaxRating)
}
