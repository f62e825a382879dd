package handler

import (
	"io"

	"bezbot/internal/domain"
	"bezbot/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// SpeechHandler handles audio transcription requests.
type SpeechHandler struct {
	transcriber domain.Transcriber
}

// NewSpeechHandler creates a new SpeechHandler instance
func NewSpeechHandler(transcriber domain.Transcriber) *SpeechHandler {
	return &SpeechHandler{transcriber: transcriber}
}

// SpeechToText godoc
// @Summary Transcribe uploaded audio
// @Description Converts an uploaded audio file into text
// @Tags speech
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file"
// @Success 200 {object} dto.SpeechResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /speech_to_text [post]
func (h *SpeechHandler) SpeechToText(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domain.NewInvalidInputError("audio file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewInvalidInputError("failed to open uploaded file")
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return domain.NewInternalError("failed to read uploaded file", err)
	}

	text, err := h.transcriber.Transcribe(c.UserContext(), audio)
	if err != nil {
		return err
	}
	return c.JSON(dto.SpeechResponse{Text: text})
}
