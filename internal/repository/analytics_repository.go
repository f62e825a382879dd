package repository

import (
	"context"
	"fmt"

	"bezbot/internal/domain"

	"github.com/jmoiron/sqlx"
)

// AnalyticsRepository exposes the read-only aggregate queries behind the
// stats endpoints. Everything is recomputed per request; there is no
// materialized state to keep consistent.
type AnalyticsRepository interface {
	GetUserModuleStats(ctx context.Context, userID string) ([]domain.ModuleStat, error)
	GetUserScenarioOutcome(ctx context.Context, userID string) (total int, correct int, err error)

	GetTotals(ctx context.Context) (users int, tests int, scenarios int, err error)
	GetModuleStats(ctx context.Context) ([]domain.ModuleStat, error)
	GetScenarioOutcome(ctx context.Context) (total int, correct int, err error)
	GetUsersPerformance(ctx context.Context) ([]domain.UserPerformance, error)
}

type sqlxAnalyticsRepository struct {
	db *sqlx.DB
}

// NewSQLXAnalyticsRepository creates a new instance of sqlxAnalyticsRepository.
func NewSQLXAnalyticsRepository(db *sqlx.DB) AnalyticsRepository {
	return &sqlxAnalyticsRepository{db: db}
}

type moduleStatRow struct {
	Module        string  `db:"module"`
	TestCount     int     `db:"test_count"`
	TotalCorrects int     `db:"total_corrects"`
	AvgCorrects   float64 `db:"avg_corrects"`
}

func toModuleStats(rows []moduleStatRow) []domain.ModuleStat {
	stats := make([]domain.ModuleStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, domain.ModuleStat{
			Module:        row.Module,
			TestCount:     row.TestCount,
			TotalCorrects: row.TotalCorrects,
			AvgCorrects:   row.AvgCorrects,
		})
	}
	return stats
}

// GetUserModuleStats aggregates one user's test attempts per module.
func (r *sqlxAnalyticsRepository) GetUserModuleStats(ctx context.Context, userID string) ([]domain.ModuleStat, error) {
	var rows []moduleStatRow
	query := `SELECT
	              module,
	              COUNT(*) AS test_count,
	              COALESCE(SUM(corrects), 0) AS total_corrects,
	              COALESCE(AVG(corrects), 0) AS avg_corrects
	          FROM tests
	          WHERE user_id = ?
	          GROUP BY module
	          ORDER BY module`

	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to aggregate user module stats: %w", err)
	}
	return toModuleStats(rows), nil
}

type scenarioOutcomeRow struct {
	Total   int `db:"total"`
	Correct int `db:"correct"`
}

// GetUserScenarioOutcome counts one user's scenario attempts and successes.
func (r *sqlxAnalyticsRepository) GetUserScenarioOutcome(ctx context.Context, userID string) (int, int, error) {
	var row scenarioOutcomeRow
	query := `SELECT
	              COUNT(*) AS total,
	              COALESCE(SUM(is_correct), 0) AS correct
	          FROM scenarios
	          WHERE user_id = ?`

	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate user scenario outcome: %w", err)
	}
	return row.Total, row.Correct, nil
}

type totalsRow struct {
	Users     int `db:"users_total"`
	Tests     int `db:"tests_total"`
	Scenarios int `db:"scenarios_total"`
}

// GetTotals returns the overall row counts.
func (r *sqlxAnalyticsRepository) GetTotals(ctx context.Context) (int, int, int, error) {
	var row totalsRow
	query := `SELECT
	              (SELECT COUNT(*) FROM users) AS users_total,
	              (SELECT COUNT(*) FROM tests) AS tests_total,
	              (SELECT COUNT(*) FROM scenarios) AS scenarios_total`

	if err := r.db.GetContext(ctx, &row, query); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count totals: %w", err)
	}
	return row.Users, row.Tests, row.Scenarios, nil
}

// GetModuleStats aggregates test attempts per module across all users,
// hardest module (lowest average corrects) first.
func (r *sqlxAnalyticsRepository) GetModuleStats(ctx context.Context) ([]domain.ModuleStat, error) {
	var rows []moduleStatRow
	query := `SELECT
	              module,
	              COUNT(*) AS test_count,
	              COALESCE(SUM(corrects), 0) AS total_corrects,
	              COALESCE(AVG(corrects), 0) AS avg_corrects
	          FROM tests
	          GROUP BY module
	          ORDER BY avg_corrects ASC`

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to aggregate module stats: %w", err)
	}
	return toModuleStats(rows), nil
}

// GetScenarioOutcome counts scenario attempts and successes across all users.
func (r *sqlxAnalyticsRepository) GetScenarioOutcome(ctx context.Context) (int, int, error) {
	var row scenarioOutcomeRow
	query := `SELECT
	              COUNT(*) AS total,
	              COALESCE(SUM(is_correct), 0) AS correct
	          FROM scenarios`

	if err := r.db.GetContext(ctx, &row, query); err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate scenario outcome: %w", err)
	}
	return row.Total, row.Correct, nil
}

type performanceRow struct {
	UserID           string  `db:"user_id"`
	Name             string  `db:"name"`
	Job              string  `db:"job"`
	ScenariosTotal   int     `db:"scenarios_total"`
	ScenariosCorrect int     `db:"scenarios_correct"`
	SuccessRate      float64 `db:"success_rate"`
}

// GetUsersPerformance builds the scenario leaderboard, best success rate
// first. Users without scenario attempts are not ranked.
func (r *sqlxAnalyticsRepository) GetUsersPerformance(ctx context.Context) ([]domain.UserPerformance, error) {
	var rows []performanceRow
	query := `SELECT
	              u.id AS user_id,
	              u.name AS name,
	              u.job AS job,
	              COUNT(s.id) AS scenarios_total,
	              COALESCE(SUM(s.is_correct), 0) AS scenarios_correct,
	              (COALESCE(SUM(s.is_correct), 0) / COUNT(s.id)) * 100 AS success_rate
	          FROM users u
	          JOIN scenarios s ON u.id = s.user_id
	          GROUP BY u.id, u.name, u.job
	          ORDER BY success_rate DESC`

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to build users performance: %w", err)
	}

	performance := make([]domain.UserPerformance, 0, len(rows))
	for _, row := range rows {
		performance = append(performance, domain.UserPerformance{
			UserID:             row.UserID,
			Name:               row.Name,
			Job:                row.Job,
			ScenariosTotal:     row.ScenariosTotal,
			ScenariosCorrect:   row.ScenariosCorrect,
			SuccessRatePercent: row.SuccessRate,
		})
	}
	return performance, nil
}
