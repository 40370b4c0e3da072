package request

type QuizDiscountRequest struct {
	AnsweredSteps *int `json:"answered_steps" binding:"required"`
}
