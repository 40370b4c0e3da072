package reviewsource

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"buhuchet_site/internal/domain/entities"
	"buhuchet_site/internal/usecase/interfaces"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

const (
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
	defaultTimeout   = 30 * time.Second
)

// Yandex Maps review card markup.
const (
	cardSelector       = ".business-review-view"
	authorSelector     = `.business-review-view__author [itemprop="name"]`
	authorNameSelector = ".business-review-view__author-name"
	bodySelector       = ".business-review-view__body-text"
	ratingSelector     = `[itemprop="ratingValue"]`
	dateSelector       = ".business-review-view__date"
)

// YandexSource scrapes the public review page of a Yandex Maps organization.
type YandexSource struct {
	url    string
	client *resty.Client
}

var _ interfaces.IReviewSource = (*YandexSource)(nil)

// NewYandexSourceFromEnv reads REVIEWS_SOURCE_URL and REVIEWS_SOURCE_USER_AGENT.
func NewYandexSourceFromEnv() *YandexSource {
	return NewYandexSource(
		os.Getenv("REVIEWS_SOURCE_URL"),
		getenvDefault("REVIEWS_SOURCE_USER_AGENT", defaultUserAgent),
	)
}

func NewYandexSource(url, userAgent string) *YandexSource {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	client := resty.New()
	client.SetHeader("User-Agent", userAgent)
	client.SetHeader("Accept-Language", "ru-RU,ru;q=0.9")
	client.SetTimeout(defaultTimeout)

	return &YandexSource{url: url, client: client}
}

func (s *YandexSource) Name() string {
	return "yandex"
}

func (s *YandexSource) FetchReviews(ctx context.Context) ([]entities.ParsedReview, error) {
	if s.url == "" {
		return nil, fmt.Errorf("%w: REVIEWS_SOURCE_URL is not set", interfaces.ErrReviewSourceUnavailable)
	}

	res, err := s.client.R().
		SetContext(ctx).
		Get(s.url)
	if err != nil {
		log.Printf("[reviewsource][yandex] request failed url=%s err=%v", s.url, err)
		return nil, fmt.Errorf("%w: %v", interfaces.ErrReviewSourceUnavailable, err)
	}
	if res.IsError() {
		log.Printf("[reviewsource][yandex] unexpected status url=%s status=%d", s.url, res.StatusCode())
		return nil, fmt.Errorf("%w: status %d", interfaces.ErrReviewSourceUnavailable, res.StatusCode())
	}

	reviews, err := ParseReviews(res.Body())
	if err != nil {
		return nil, err
	}
	log.Printf("[reviewsource][yandex] fetched reviews=%d", len(reviews))
	return reviews, nil
}

// ParseReviews extracts every review card from a Yandex Maps reviews page.
// Missing fields fall back to the defaults: author "Гость", empty text, rating 5.
func ParseReviews(html []byte) ([]entities.ParsedReview, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrReviewSourceUnavailable, err)
	}

	cards := doc.Find(cardSelector)
	if cards.Length() == 0 {
		return nil, interfaces.ErrReviewSourceEmpty
	}

	out := make([]entities.ParsedReview, 0, cards.Length())
	cards.Each(func(_ int, card *goquery.Selection) {
		out = append(out, parseCard(card))
	})
	return out, nil
}

func parseCard(card *goquery.Selection) entities.ParsedReview {
	name := text(card.Find(authorSelector))
	if name == "" {
		name = text(card.Find(authorNameSelector))
	}
	if name == "" {
		name = entities.DefaultReviewAuthor
	}

	rating := card.Find(ratingSelector).First()
	rawRating, ok := rating.Attr("content")
	if !ok || strings.TrimSpace(rawRating) == "" {
		rawRating = text(rating)
	}

	return entities.ParsedReview{
		Name:     name,
		Text:     strings.TrimSpace(card.Find(bodySelector).First().Text()),
		Rating:   entities.NormalizeRating(rawRating),
		PostedAt: text(card.Find(dateSelector)),
	}
}

func text(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.First().Text()), " ")
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
