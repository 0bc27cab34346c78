package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelperAward_StreakBonusEveryThird(t *testing.T) {
	h := &Helper{Name: "Riya"}

	h.Award(15)
	assert.Equal(t, 15, h.Points)
	assert.Equal(t, 1, h.Streak)

	h.Award(15)
	assert.Equal(t, 30, h.Points)
	assert.Equal(t, 2, h.Streak)

	// третий зачет: 15 + бонус 5
	h.Award(15)
	assert.Equal(t, 50, h.Points)
	assert.Equal(t, 3, h.Streak)

	h.Award(15)
	h.Award(15)
	h.Award(15)
	assert.Equal(t, 50+15*3+StreakBonus, h.Points)
	assert.Equal(t, 6, h.Streak)
}

func TestHelperAward_NegativePointsIgnored(t *testing.T) {
	h := &Helper{Name: "Neha", Points: 10}
	h.Award(-20)
	assert.Equal(t, 10, h.Points)
	assert.Equal(t, 1, h.Streak)
}

func TestRank_Tiers(t *testing.T) {
	cases := map[int]Tier{
		0:   TierNewbie,
		9:   TierNewbie,
		10:  TierBronze,
		19:  TierBronze,
		20:  TierSilver,
		39:  TierSilver,
		40:  TierGold,
		59:  TierGold,
		60:  TierHero,
		500: TierHero,
	}
	for points, want := range cases {
		assert.Equal(t, want, Rank(points), "points=%d", points)
	}
}

func TestRank_Monotonic(t *testing.T) {
	order := map[Tier]int{TierNewbie: 0, TierBronze: 1, TierSilver: 2, TierGold: 3, TierHero: 4}
	seen := map[Tier]bool{}
	prev := order[Rank(0)]
	for p := 0; p <= 100; p++ {
		cur := order[Rank(p)]
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
		seen[Rank(p)] = true
	}
	assert.Len(t, seen, 5)
}

func TestCreditedPoints(t *testing.T) {
	assert.Equal(t, 15, CreditedPoints(15, 1))
	assert.Equal(t, 15, CreditedPoints(15, 2))
	assert.Equal(t, 20, CreditedPoints(15, 3))
	assert.Equal(t, 20, CreditedPoints(15, 6))
	assert.Equal(t, 0, CreditedPoints(-3, 1))
	assert.Equal(t, 0, CreditedPoints(0, 0))
}
