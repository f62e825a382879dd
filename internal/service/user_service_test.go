package service

import (
	"context"
	"errors"
	"testing"

	"bezbot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserServiceMocks() (*MockUserRepository, *MockAttemptRepository, *MockAnalyticsRepository, domain.UserService) {
	users := new(MockUserRepository)
	attempts := new(MockAttemptRepository)
	analytics := new(MockAnalyticsRepository)
	return users, attempts, analytics, NewUserService(users, attempts, analytics)
}

func TestCreateUser(t *testing.T) {
	users, _, _, svc := newUserServiceMocks()
	users.On("CreateUser", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	created, err := svc.CreateUser(context.Background(), &domain.User{
		Name:       "Ivan",
		Job:        "Crane operator",
		Experience: 4,
	})

	require.NoError(t, err)
	assert.Equal(t, "Ivan", created.Name)
	users.AssertExpectations(t)
}

func TestCreateUserValidation(t *testing.T) {
	users, _, _, svc := newUserServiceMocks()

	_, err := svc.CreateUser(context.Background(), &domain.User{Job: "Welder"})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)
	users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestGetUserNotFound(t *testing.T) {
	users, _, _, svc := newUserServiceMocks()
	users.On("GetUserByID", mock.Anything, "missing").Return(nil, nil)

	_, err := svc.GetUser(context.Background(), "missing")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrNotFound, domainErr.Code)
}

func TestRecordTestAttemptUnknownUser(t *testing.T) {
	users, attempts, _, svc := newUserServiceMocks()
	users.On("GetUserByID", mock.Anything, "ghost").Return(nil, nil)

	_, err := svc.RecordTestAttempt(context.Background(), &domain.TestAttempt{
		UserID:   "ghost",
		Module:   "3",
		Corrects: 4,
	})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrNotFound, domainErr.Code)
	attempts.AssertNotCalled(t, "CreateTestAttempt", mock.Anything, mock.Anything)
}

func TestRecordTestAttempt(t *testing.T) {
	users, attempts, _, svc := newUserServiceMocks()
	users.On("GetUserByID", mock.Anything, "user1").Return(&domain.User{ID: "user1", Name: "Ivan", Job: "Welder"}, nil)
	attempts.On("CreateTestAttempt", mock.Anything, mock.AnythingOfType("*domain.TestAttempt")).Return(nil)

	recorded, err := svc.RecordTestAttempt(context.Background(), &domain.TestAttempt{
		UserID:   "user1",
		Module:   "3",
		Corrects: 4,
	})

	require.NoError(t, err)
	assert.Equal(t, 4, recorded.Corrects)
	attempts.AssertExpectations(t)
}

func TestRecordScenarioAttempt(t *testing.T) {
	users, attempts, _, svc := newUserServiceMocks()
	users.On("GetUserByID", mock.Anything, "user1").Return(&domain.User{ID: "user1", Name: "Ivan", Job: "Welder"}, nil)
	attempts.On("CreateScenarioAttempt", mock.Anything, mock.AnythingOfType("*domain.ScenarioAttempt")).Return(nil)

	recorded, err := svc.RecordScenarioAttempt(context.Background(), &domain.ScenarioAttempt{
		UserID:    "user1",
		IsCorrect: true,
	})

	require.NoError(t, err)
	assert.True(t, recorded.IsCorrect)
}

func TestGetUserStats(t *testing.T) {
	users, _, analytics, svc := newUserServiceMocks()
	users.On("GetUserByID", mock.Anything, "user1").Return(&domain.User{
		ID: "user1", Name: "Ivan", Job: "Welder", Experience: 4,
	}, nil)
	analytics.On("GetUserModuleStats", mock.Anything, "user1").Return([]domain.ModuleStat{
		{Module: "1", TestCount: 2, TotalCorrects: 7, AvgCorrects: 3.5},
		{Module: "2", TestCount: 1, TotalCorrects: 5, AvgCorrects: 5.0},
	}, nil)
	analytics.On("GetUserScenarioOutcome", mock.Anything, "user1").Return(4, 3, nil)

	stats, err := svc.GetUserStats(context.Background(), "user1")

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalTests)
	assert.Equal(t, 12, stats.TotalCorrects)
	assert.Equal(t, 4.0, stats.AvgCorrects)
	assert.Equal(t, 4, stats.TotalScenarios)
	assert.Equal(t, 75.0, stats.SuccessRatePercent)
	assert.Len(t, stats.Modules, 2)
}

func TestGetUserStatsNoAttempts(t *testing.T) {
	users, _, analytics, svc := newUserServiceMocks()
	users.On("GetUserByID", mock.Anything, "user1").Return(&domain.User{
		ID: "user1", Name: "Ivan", Job: "Welder",
	}, nil)
	analytics.On("GetUserModuleStats", mock.Anything, "user1").Return([]domain.ModuleStat{}, nil)
	analytics.On("GetUserScenarioOutcome", mock.Anything, "user1").Return(0, 0, nil)

	stats, err := svc.GetUserStats(context.Background(), "user1")

	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalTests)
	assert.Equal(t, 0.0, stats.AvgCorrects)
	assert.Equal(t, 0.0, stats.SuccessRatePercent)
}

func TestGetGlobalStats(t *testing.T) {
	_, _, analytics, svc := newUserServiceMocks()
	modules := []domain.ModuleStat{
		{Module: "4", TestCount: 3, TotalCorrects: 3, AvgCorrects: 1.0},
		{Module: "1", TestCount: 2, TotalCorrects: 4, AvgCorrects: 2.0},
		{Module: "2", TestCount: 2, TotalCorrects: 6, AvgCorrects: 3.0},
		{Module: "6", TestCount: 1, TotalCorrects: 3, AvgCorrects: 3.0},
		{Module: "3", TestCount: 1, TotalCorrects: 4, AvgCorrects: 4.0},
		{Module: "5", TestCount: 1, TotalCorrects: 5, AvgCorrects: 5.0},
	}
	analytics.On("GetTotals", mock.Anything).Return(10, 10, 8, nil)
	analytics.On("GetModuleStats", mock.Anything).Return(modules, nil)
	analytics.On("GetScenarioOutcome", mock.Anything).Return(8, 6, nil)
	analytics.On("GetUsersPerformance", mock.Anything).Return([]domain.UserPerformance{
		{UserID: "user1", Name: "Ivan", ScenariosTotal: 3, ScenariosCorrect: 3, SuccessRatePercent: 100.0},
		{UserID: "user2", Name: "Olga", ScenariosTotal: 5, ScenariosCorrect: 3, SuccessRatePercent: 60.0},
	}, nil)

	stats, err := svc.GetGlobalStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 10, stats.UsersTotal)
	assert.Equal(t, 8, stats.ScenariosTotal)
	assert.Equal(t, 75.0, stats.SuccessRatePercent)
	// The hardest-modules view keeps the first five rows, which arrive
	// ordered by average corrects ascending.
	require.Len(t, stats.HardestModules, 5)
	assert.Equal(t, "4", stats.HardestModules[0].Module)
	assert.Len(t, stats.Modules, 6)
	require.Len(t, stats.UsersPerformance, 2)
	assert.Equal(t, "user1", stats.UsersPerformance[0].UserID)
}

func TestGetGlobalStatsRepositoryFailure(t *testing.T) {
	_, _, analytics, svc := newUserServiceMocks()
	analytics.On("GetTotals", mock.Anything).Return(0, 0, 0, errors.New("db down"))

	_, err := svc.GetGlobalStats(context.Background())

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrInternal, domainErr.Code)
}
