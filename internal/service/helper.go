package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/shenikar/resqnet/internal/models"
	"github.com/sirupsen/logrus"
)

// HelperRepository определяет контракт для хранилища помощников
type HelperRepository interface {
	Award(ctx context.Context, name string, points int) (*models.Helper, error)
	ListHelpers(ctx context.Context) ([]*models.Helper, error)
}

// HelperService определяет контракт для начисления очков и таблицы лидеров
type HelperService interface {
	AwardPoints(ctx context.Context, name string, points int) (bool, error)
	Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
}

type helperService struct {
	repo    HelperRepository
	logger  *logrus.Logger
	metrics Metrics
}

func NewHelperService(repo HelperRepository, logger *logrus.Logger, metrics Metrics) HelperService {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &helperService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
	}
}

// AwardPoints начисляет очки помощнику. Неизвестное имя - не ошибка, просто ничего не происходит
func (s *helperService) AwardPoints(ctx context.Context, name string, points int) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "helper",
		"method":  "AwardPoints",
		"helper":  name,
		"points":  points,
	})

	helper, err := s.repo.Award(ctx, name, points)
	if err != nil {
		if errors.Is(err, models.ErrHelperNotFound) {
			log.Debug("No helper matches the name, award skipped")
			return false, nil
		}
		log.WithError(err).Error("Failed to award points in repository")
		return false, fmt.Errorf("service: could not award points: %w", err)
	}

	s.metrics.PointsAwarded(helper.Name, models.CreditedPoints(points, helper.Streak))

	log.WithFields(logrus.Fields{
		"total":  helper.Points,
		"streak": helper.Streak,
	}).Info("Points awarded")
	return true, nil
}

// Leaderboard возвращает помощников по убыванию очков, при равенстве сохраняется порядок засева
func (s *helperService) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	helpers, err := s.repo.ListHelpers(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "helper",
			"method":  "Leaderboard",
		}).WithError(err).Error("Failed to list helpers from repository")
		return nil, fmt.Errorf("service: could not list helpers: %w", err)
	}

	slices.SortStableFunc(helpers, func(a, b *models.Helper) int {
		return b.Points - a.Points
	})

	entries := make([]models.LeaderboardEntry, len(helpers))
	for i, h := range helpers {
		entries[i] = models.LeaderboardEntry{
			Position: i + 1,
			Name:     h.Name,
			Points:   h.Points,
			Streak:   h.Streak,
			Tier:     models.Rank(h.Points),
		}
	}
	return entries, nil
}
