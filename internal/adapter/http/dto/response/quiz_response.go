package response

import "buhuchet_site/internal/domain/entities"

type QuizDiscountResponse struct {
	AnsweredSteps       int   `json:"answered_steps"`
	Discount            int64 `json:"discount"`
	MaxDiscount         int64 `json:"max_discount"`
	FirstBonusUnlocked  bool  `json:"first_bonus_unlocked"`
	SecondBonusUnlocked bool  `json:"second_bonus_unlocked"`
}

func FromQuizResult(r entities.QuizResult) QuizDiscountResponse {
	return QuizDiscountResponse{
		AnsweredSteps:       r.AnsweredSteps,
		Discount:            r.Discount,
		MaxDiscount:         r.MaxDiscount,
		FirstBonusUnlocked:  r.FirstBonusUnlocked,
		SecondBonusUnlocked: r.SecondBonusUnlocked,
	}
}
