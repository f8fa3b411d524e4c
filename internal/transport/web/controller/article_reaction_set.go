package controller

import (
	"net/http"

	"github.com/cafeorigenes/origenes-api/internal/command"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

// ArticleReactionSetRequest describes a reader moving from OldReaction to NewReaction.
// Either may be null.
type ArticleReactionSetRequest struct {
	NewReaction *domain.ReactionKind `json:"newReaction"`
	OldReaction *domain.ReactionKind `json:"oldReaction"`
}

// ArticleReactionSet handles POST /api/articles/{id}/reaction and returns the updated counts.
type ArticleReactionSet struct {
	Command *command.ChangeArticleReaction
}

func (c ArticleReactionSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	articleID, err := pathID(r, "id")
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse article ID", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "Invalid article ID")
		return
	}

	var body ArticleReactionSetRequest
	if err := decodeBody(r, &body); err != nil {
		logger.InfoContext(ctx, "unable to parse request body", "error", err)
		writeMessage(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	reactions, err := c.Command.Execute(ctx, command.ChangeArticleReactionRequest{
		ArticleID:   articleID,
		NewReaction: body.NewReaction,
		OldReaction: body.OldReaction,
	})
	if err != nil {
		writeError(ctx, w, err, "change article reaction")
		return
	}

	writeJSON(ctx, w, http.StatusOK, reactions)
}
