package controller

import (
	"net/http"

	"github.com/cafeorigenes/origenes-api/internal/command"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

type AIChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type AIChatResponse struct {
	Reply string `json:"reply"`
}

// AIChat handles POST /api/ai/chat.
type AIChat struct {
	Command *command.ChatWithAssistant
}

func (c AIChat) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body AIChatRequest
	if err := decodeBody(r, &body); err != nil {
		logger.InfoContext(ctx, "unable to parse request body", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "No message provided")
		return
	}

	reply, err := c.Command.Execute(ctx, body.Message)
	if err != nil {
		logger.ErrorContext(ctx, "unable to get assistant reply", "error", err)
		writeMessage(ctx, w, http.StatusInternalServerError, "Unable to reach the assistant")
		return
	}

	writeJSON(ctx, w, http.StatusOK, AIChatResponse{Reply: reply})
}
