package service

import (
	"context"
	"fmt"

	"bezbot/internal/domain"
	"bezbot/internal/repository"
	"bezbot/internal/util"
)

// userService implements domain.UserService over the sqlx repositories.
type userService struct {
	users     repository.UserRepository
	attempts  repository.AttemptRepository
	analytics repository.AnalyticsRepository
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository, attempts repository.AttemptRepository, analytics repository.AnalyticsRepository) domain.UserService {
	return &userService{
		users:     users,
		attempts:  attempts,
		analytics: analytics,
	}
}

func (s *userService) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, domain.NewInternalError("failed to create user", err)
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("user %s not found", id))
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list users", err)
	}
	return users, nil
}

func (s *userService) RecordTestAttempt(ctx context.Context, attempt *domain.TestAttempt) (*domain.TestAttempt, error) {
	if err := attempt.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.GetUser(ctx, attempt.UserID); err != nil {
		return nil, err
	}
	if err := s.attempts.CreateTestAttempt(ctx, attempt); err != nil {
		return nil, domain.NewInternalError("failed to record test attempt", err)
	}
	return attempt, nil
}

func (s *userService) GetTestAttempt(ctx context.Context, id string) (*domain.TestAttempt, error) {
	attempt, err := s.attempts.GetTestAttemptByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get test attempt", err)
	}
	if attempt == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("test attempt %s not found", id))
	}
	return attempt, nil
}

func (s *userService) RecordScenarioAttempt(ctx context.Context, attempt *domain.ScenarioAttempt) (*domain.ScenarioAttempt, error) {
	if err := attempt.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.GetUser(ctx, attempt.UserID); err != nil {
		return nil, err
	}
	if err := s.attempts.CreateScenarioAttempt(ctx, attempt); err != nil {
		return nil, domain.NewInternalError("failed to record scenario attempt", err)
	}
	return attempt, nil
}

func (s *userService) GetScenarioAttempt(ctx context.Context, id string) (*domain.ScenarioAttempt, error) {
	attempt, err := s.attempts.GetScenarioAttemptByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("failed to get scenario attempt", err)
	}
	if attempt == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("scenario attempt %s not found", id))
	}
	return attempt, nil
}

// GetUserStats recomputes the per-user analytics view from the raw rows.
func (s *userService) GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	modules, err := s.analytics.GetUserModuleStats(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to compute user stats", err)
	}

	totalTests := 0
	totalCorrects := 0
	for i := range modules {
		modules[i].AvgCorrects = util.Round1(modules[i].AvgCorrects)
		totalTests += modules[i].TestCount
		totalCorrects += modules[i].TotalCorrects
	}

	avgCorrects := 0.0
	if totalTests > 0 {
		avgCorrects = util.Round1(float64(totalCorrects) / float64(totalTests))
	}

	scenarioTotal, scenarioCorrect, err := s.analytics.GetUserScenarioOutcome(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to compute user stats", err)
	}

	return &domain.UserStats{
		UserID:             user.ID,
		Name:               user.Name,
		Job:                user.Job,
		Experience:         user.Experience,
		TotalTests:         totalTests,
		TotalCorrects:      totalCorrects,
		AvgCorrects:        avgCorrects,
		TotalScenarios:     scenarioTotal,
		SuccessRatePercent: util.SuccessRatePercent(scenarioCorrect, scenarioTotal),
		Modules:            modules,
	}, nil
}

// hardestModulesLimit bounds the "hardest modules" slice of the global view.
const hardestModulesLimit = 5

// GetGlobalStats recomputes the cross-user analytics view from the raw rows.
func (s *userService) GetGlobalStats(ctx context.Context) (*domain.GlobalStats, error) {
	usersTotal, testsTotal, scenariosTotal, err := s.analytics.GetTotals(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to compute global stats", err)
	}

	modules, err := s.analytics.GetModuleStats(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to compute global stats", err)
	}
	for i := range modules {
		modules[i].AvgCorrects = util.Round1(modules[i].AvgCorrects)
	}

	// Modules arrive hardest-first from the repository.
	hardest := modules
	if len(hardest) > hardestModulesLimit {
		hardest = hardest[:hardestModulesLimit]
	}

	scenarioTotal, scenarioCorrect, err := s.analytics.GetScenarioOutcome(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to compute global stats", err)
	}

	performance, err := s.analytics.GetUsersPerformance(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to compute global stats", err)
	}
	for i := range performance {
		performance[i].SuccessRatePercent = util.Round1(performance[i].SuccessRatePercent)
	}

	return &domain.GlobalStats{
		UsersTotal:         usersTotal,
		TestsTotal:         testsTotal,
		ScenariosTotal:     scenariosTotal,
		ScenariosCorrect:   scenarioCorrect,
		SuccessRatePercent: util.SuccessRatePercent(scenarioCorrect, scenarioTotal),
		Modules:            modules,
		HardestModules:     hardest,
		UsersPerformance:   performance,
	}, nil
}
