package response

import "buhuchet_site/internal/domain/entities"

type QuoteResponse struct {
	Total int64 `json:"total"`
}

func FromQuote(q entities.QuoteResult) QuoteResponse {
	return QuoteResponse{Total: q.TotalPrice}
}
