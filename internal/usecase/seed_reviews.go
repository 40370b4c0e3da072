package usecase

// SeedReview is a hand-written review restored by a full reset.
type SeedReview struct {
	Name     string
	Text     string
	Rating   int
	Featured bool
}

// DefaultSeedReviews are ordered newest first: the first one gets the most
// recent synthetic publication date.
func DefaultSeedReviews() []SeedReview {
	return []SeedReview{
		{
			Name:     "Анна Смирнова",
			Text:     "Передали бухгалтерию ООО на аутсорс год назад. Отчётность сдаётся вовремя, на вопросы отвечают в тот же день.",
			Rating:   5,
			Featured: true,
		},
		{
			Name:   "Игорь Петров",
			Text:   "Помогли перейти с ОСН на УСН и разобраться с налоговой. Рекомендую.",
			Rating: 5,
		},
		{
			Name:   "Мария Кузнецова",
			Text:   "Зарплату и кадровые документы ведут без ошибок. Удобно, что всё можно согласовать в мессенджере.",
			Rating: 5,
		},
		{
			Name:   "Дмитрий Волков",
			Text:   "Зарегистрировали ИП за несколько дней, подсказали с выбором системы налогообложения.",
			Rating: 4,
		},
		{
			Name:   "Елена Соколова",
			Text:   "Консультация по декларации 3-НДФЛ была полезной, цена соответствует качеству.",
			Rating: 5,
		},
	}
}
