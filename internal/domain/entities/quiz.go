package entities

// Lead quiz discount rules.
const (
	QuizStepValue   int64 = 2500
	QuizDiscountCap int64 = 10000
)

// Answered-step thresholds that unlock the quiz bonuses.
const (
	QuizFirstBonusAtSteps  = 2
	QuizSecondBonusAtSteps = 4
)

// QuizResult is the discount state after a number of answered quiz steps.
type QuizResult struct {
	AnsweredSteps       int   `json:"answered_steps"`
	Discount            int64 `json:"discount"`
	MaxDiscount         int64 `json:"max_discount"`
	FirstBonusUnlocked  bool  `json:"first_bonus_unlocked"`
	SecondBonusUnlocked bool  `json:"second_bonus_unlocked"`
}
