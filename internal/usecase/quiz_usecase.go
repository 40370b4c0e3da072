package usecase

import (
	"fmt"

	"buhuchet_site/internal/domain/entities"
)

// IQuizUseCase scores the lead-capture quiz.
//
// Only the number of answered steps matters; answer content never changes the
// discount.

type IQuizUseCase interface {
	Evaluate(answeredSteps int) (entities.QuizResult, error)
}

type QuizUseCase struct{}

var _ IQuizUseCase = (*QuizUseCase)(nil)

func NewQuizUseCase() *QuizUseCase {
	return &QuizUseCase{}
}

// QuizDiscount is min(steps * step value, cap).
func QuizDiscount(answeredSteps int) int64 {
	if answeredSteps <= 0 {
		return 0
	}
	if int64(answeredSteps) >= entities.QuizDiscountCap/entities.QuizStepValue {
		return entities.QuizDiscountCap
	}
	return int64(answeredSteps) * entities.QuizStepValue
}

func (u *QuizUseCase) Evaluate(answeredSteps int) (entities.QuizResult, error) {
	if answeredSteps < 0 {
		return entities.QuizResult{}, fmt.Errorf("%w: answered steps must not be negative", ErrInvalidInput)
	}

	return entities.QuizResult{
		AnsweredSteps:       answeredSteps,
		Discount:            QuizDiscount(answeredSteps),
		MaxDiscount:         entities.QuizDiscountCap,
		FirstBonusUnlocked:  answeredSteps >= entities.QuizFirstBonusAtSteps,
		SecondBonusUnlocked: answeredSteps >= entities.QuizSecondBonusAtSteps,
	}, nil
}
