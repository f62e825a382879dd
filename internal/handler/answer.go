package handler

import (
	"bezbot/internal/domain"
	"bezbot/internal/dto"
	"bezbot/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AnswerHandler handles free-form Q&A requests.
type AnswerHandler struct {
	answers   domain.AnswerService
	validator *validation.Validator
}

// NewAnswerHandler creates a new AnswerHandler instance
func NewAnswerHandler(answers domain.AnswerService) *AnswerHandler {
	return &AnswerHandler{
		answers:   answers,
		validator: validation.NewValidator(),
	}
}

// GetAnswer godoc
// @Summary Answer a question
// @Description Answers a free-form question over the knowledge base
// @Tags answer
// @Accept json
// @Produce json
// @Param request body dto.QuestionRequest true "Question"
// @Success 200 {object} dto.AnswerResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /get_answer [post]
func (h *AnswerHandler) GetAnswer(c *fiber.Ctx) error {
	var req dto.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	if errs := h.validator.ValidateQuestion(req.Question); len(errs) > 0 {
		return errs
	}

	answer, err := h.answers.AnswerQuestion(c.UserContext(), req.Question)
	if err != nil {
		return err
	}
	return c.JSON(dto.AnswerResponse{Answer: answer})
}
