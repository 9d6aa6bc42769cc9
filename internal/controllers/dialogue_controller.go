package controllers

import (
	"github.com/autoflow/autoflow/internal/metrics"
	"github.com/autoflow/autoflow/pkg/dialogue"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
)

// DialogueController serves the diagnostic conversation.
type DialogueController struct {
	troubleshooter *dialogue.Troubleshooter
}

type DialogueControllerDependencies struct {
	Troubleshooter *dialogue.Troubleshooter
}

func NewDialogueController(deps DialogueControllerDependencies) *DialogueController {
	return &DialogueController{
		troubleshooter: deps.Troubleshooter,
	}
}

type DialogueStepRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

type DialogueStepResponse struct {
	SessionID string `json:"session_id"`
	dialogue.Reply
}

// Step feeds one user message into the diagnostic dialogue. A missing session
// id starts a new conversation.
func (c *DialogueController) Step(ctx fiber.Ctx) error {
	var req DialogueStepRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Message is required")
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = xid.New().String()
	}

	reply, err := c.troubleshooter.Step(ctx.RequestCtx(), sessionID, req.Message)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Dialogue step failed")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to process message")
	}

	metrics.DialogueStepsTotal.Inc()

	return ctx.JSON(DialogueStepResponse{
		SessionID: sessionID,
		Reply:     reply,
	})
}
