package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shenikar/resqnet/internal/models"
	"github.com/shenikar/resqnet/internal/repository"
	"github.com/shenikar/resqnet/internal/service"
	"github.com/shenikar/resqnet/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func TestAwardPoints_ThreeAwardsGiveBonus(t *testing.T) {
	// Подготовка
	repo := repository.NewHelperRepository([]string{"Aarav", "Neha", "Riya", "Vikram"})
	svc := service.NewHelperService(repo, newTestLogger(), nil)
	ctx := context.Background()

	// Действие
	for i := 0; i < 3; i++ {
		credited, err := svc.AwardPoints(ctx, "Riya", 15)
		require.NoError(t, err)
		assert.True(t, credited)
	}

	// Проверки: 15 + 15 + (15 + 5)
	board, err := svc.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Riya", board[0].Name)
	assert.Equal(t, 50, board[0].Points)
	assert.Equal(t, 3, board[0].Streak)
	assert.Equal(t, models.TierGold, board[0].Tier)
}

func TestAwardPoints_UnknownNameIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockHelperRepository(ctrl)
	svc := service.NewHelperService(repoMock, newTestLogger(), nil)
	ctx := context.Background()

	repoMock.EXPECT().
		Award(ctx, "Responder", 15).
		Return(nil, models.ErrHelperNotFound).
		Times(1)

	credited, err := svc.AwardPoints(ctx, "Responder", 15)

	require.NoError(t, err)
	assert.False(t, credited)
}

func TestAwardPoints_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockHelperRepository(ctrl)
	svc := service.NewHelperService(repoMock, newTestLogger(), nil)
	ctx := context.Background()

	repoMock.EXPECT().Award(ctx, "Riya", 15).Return(nil, errors.New("boom")).Times(1)

	credited, err := svc.AwardPoints(ctx, "Riya", 15)

	require.Error(t, err)
	assert.False(t, credited)
	assert.ErrorContains(t, err, "could not award points")
}

func TestLeaderboard_SortedByPointsStable(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockHelperRepository(ctrl)
	svc := service.NewHelperService(repoMock, newTestLogger(), nil)
	ctx := context.Background()

	repoMock.EXPECT().ListHelpers(ctx).Return([]*models.Helper{
		{Name: "Aarav", Points: 10},
		{Name: "Neha", Points: 65, Streak: 4},
		{Name: "Riya", Points: 10},
		{Name: "Vikram", Points: 0},
	}, nil).Times(1)

	board, err := svc.Leaderboard(ctx)

	require.NoError(t, err)
	require.Len(t, board, 4)
	assert.Equal(t, []string{"Neha", "Aarav", "Riya", "Vikram"},
		[]string{board[0].Name, board[1].Name, board[2].Name, board[3].Name})
	assert.Equal(t, models.TierHero, board[0].Tier)
	assert.Equal(t, models.TierBronze, board[1].Tier)
	assert.Equal(t, models.TierNewbie, board[3].Tier)
	assert.Equal(t, 1, board[0].Position)
	assert.Equal(t, 4, board[3].Position)
}

func TestLeaderboard_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockHelperRepository(ctrl)
	svc := service.NewHelperService(repoMock, newTestLogger(), nil)

	repoMock.EXPECT().ListHelpers(gomock.Any()).Return(nil, errors.New("boom")).Times(1)

	board, err := svc.Leaderboard(context.Background())
	require.Error(t, err)
	assert.Nil(t, board)
}
