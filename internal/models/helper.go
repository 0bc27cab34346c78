package models

import "errors"

var ErrHelperNotFound = errors.New("helper not found")

const (
	// streakBonusEvery - каждый N-й зачет в серии дает бонус
	streakBonusEvery = 3
	StreakBonus      = 5
)

// Tier - ранг помощника в таблице лидеров
type Tier string

const (
	TierHero   Tier = "Hero"
	TierGold   Tier = "Gold"
	TierSilver Tier = "Silver"
	TierBronze Tier = "Bronze"
	TierNewbie Tier = "Newbie"
)

type Helper struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Streak int    `json:"streak"`
}

// Award начисляет очки и увеличивает серию, каждый третий зачет добавляет бонус
func (h *Helper) Award(points int) {
	h.Streak++
	h.Points += CreditedPoints(points, h.Streak)
}

// CreditedPoints - сколько очков фактически получает помощник за зачет с номером streak
func CreditedPoints(points, streak int) int {
	if points < 0 {
		points = 0
	}
	if streak > 0 && streak%streakBonusEvery == 0 {
		points += StreakBonus
	}
	return points
}

// Rank переводит сумму очков в ранг
func Rank(points int) Tier {
	switch {
	case points >= 60:
		return TierHero
	case points >= 40:
		return TierGold
	case points >= 20:
		return TierSilver
	case points >= 10:
		return TierBronze
	}
	return TierNewbie
}
