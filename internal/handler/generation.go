package handler

import (
	"bezbot/internal/domain"
	"bezbot/internal/dto"
	"bezbot/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GenerationHandler handles quiz and scenario generation requests.
type GenerationHandler struct {
	generation domain.GenerationService
	contexts   domain.ContextProvider
	validator  *validation.Validator
}

// NewGenerationHandler creates a new GenerationHandler instance
func NewGenerationHandler(generation domain.GenerationService, contexts domain.ContextProvider) *GenerationHandler {
	return &GenerationHandler{
		generation: generation,
		contexts:   contexts,
		validator:  validation.NewValidator(),
	}
}

// GetQuiz godoc
// @Summary Generate a quiz for a training module
// @Description Generates a multiple-choice quiz from the module's training material
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Module selection"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /get_quiz [post]
func (h *GenerationHandler) GetQuiz(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	if errs := h.validator.ValidateModuleID(req.ID); len(errs) > 0 {
		return errs
	}

	moduleContext, err := h.contexts.GetContextByModule(c.UserContext(), req.ID)
	if err != nil {
		return err
	}

	items := h.generation.GenerateQuiz(c.UserContext(), moduleContext)
	return c.JSON(dto.QuizResponse{Quiz: dto.FromChoiceItems(items)})
}

// GetScenario godoc
// @Summary Generate a workplace scenario
// @Description Generates one situational safety task with four action options
// @Tags generation
// @Accept json
// @Produce json
// @Success 200 {object} dto.ScenarioResponse
// @Router /get_scenario [post]
func (h *GenerationHandler) GetScenario(c *fiber.Ctx) error {
	item := h.generation.GenerateScenario(c.UserContext())
	return c.JSON(dto.ScenarioResponse{
		Scenario: dto.FromChoiceItems([]domain.ChoiceItem{item}),
	})
}
