package handler

import (
	"bezbot/internal/domain"
	"bezbot/internal/dto"
	"bezbot/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles trainee records, attempt recording and analytics.
type UserHandler struct {
	users     domain.UserService
	validator *validation.Validator
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(users domain.UserService) *UserHandler {
	return &UserHandler{
		users:     users,
		validator: validation.NewValidator(),
	}
}

// CreateUser godoc
// @Summary Register a trainee
// @Description Creates a new trainee record
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateCreateUser(req); len(errs) > 0 {
		return errs
	}

	user, err := h.users.CreateUser(c.UserContext(), &domain.User{
		Name:       req.Name,
		Job:        req.Job,
		Experience: req.Experience,
		Email:      req.Email,
		Phone:      req.Phone,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromUser(user))
}

// GetUser godoc
// @Summary Get a trainee
// @Description Returns a trainee record by id
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.users.GetUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.FromUser(user))
}

// ListUsers godoc
// @Summary List trainees
// @Description Returns all trainee records
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, dto.FromUser(user))
	}
	return c.JSON(out)
}

// CreateTestAttempt godoc
// @Summary Record a test attempt
// @Description Records a completed quiz for a training module
// @Tags tests
// @Accept json
// @Produce json
// @Param request body dto.TestAttemptRequest true "Attempt details"
// @Success 201 {object} dto.TestAttemptResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /tests [post]
func (h *UserHandler) CreateTestAttempt(c *fiber.Ctx) error {
	var req dto.TestAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateTestAttempt(req); len(errs) > 0 {
		return errs
	}

	attempt, err := h.users.RecordTestAttempt(c.UserContext(), &domain.TestAttempt{
		UserID:   req.UserID,
		Module:   req.Module,
		Corrects: req.Corrects,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromTestAttempt(attempt))
}

// GetTestAttempt godoc
// @Summary Get a test attempt
// @Description Returns a recorded test attempt by id
// @Tags tests
// @Produce json
// @Param id path string true "Attempt ID"
// @Success 200 {object} dto.TestAttemptResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /tests/{id} [get]
func (h *UserHandler) GetTestAttempt(c *fiber.Ctx) error {
	attempt, err := h.users.GetTestAttempt(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.FromTestAttempt(attempt))
}

// CreateScenarioAttempt godoc
// @Summary Record a scenario attempt
// @Description Records an answered workplace scenario
// @Tags scenarios
// @Accept json
// @Produce json
// @Param request body dto.ScenarioAttemptRequest true "Attempt details"
// @Success 201 {object} dto.ScenarioAttemptResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /scenarios [post]
func (h *UserHandler) CreateScenarioAttempt(c *fiber.Ctx) error {
	var req dto.ScenarioAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateScenarioAttempt(req); len(errs) > 0 {
		return errs
	}

	attempt, err := h.users.RecordScenarioAttempt(c.UserContext(), &domain.ScenarioAttempt{
		UserID:    req.UserID,
		IsCorrect: req.IsCorrect,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromScenarioAttempt(attempt))
}

// GetScenarioAttempt godoc
// @Summary Get a scenario attempt
// @Description Returns a recorded scenario attempt by id
// @Tags scenarios
// @Produce json
// @Param id path string true "Attempt ID"
// @Success 200 {object} dto.ScenarioAttemptResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /scenarios/{id} [get]
func (h *UserHandler) GetScenarioAttempt(c *fiber.Ctx) error {
	attempt, err := h.users.GetScenarioAttempt(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.FromScenarioAttempt(attempt))
}

// GetUserStats godoc
// @Summary Per-user analytics
// @Description Returns per-module averages and scenario success rate for a trainee
// @Tags analytics
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} domain.UserStats
// @Failure 404 {object} middleware.ErrorResponse
// @Router /users/{id}/stats [get]
func (h *UserHandler) GetUserStats(c *fiber.Ctx) error {
	stats, err := h.users.GetUserStats(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// GetGlobalStats godoc
// @Summary Cross-user analytics
// @Description Returns totals, hardest modules and the scenario leaderboard
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.GlobalStats
// @Router /stats [get]
func (h *UserHandler) GetGlobalStats(c *fiber.Ctx) error {
	stats, err := h.users.GetGlobalStats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
