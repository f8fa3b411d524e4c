package command

import (
	"context"
	"fmt"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

type ChangeArticleReactionRequest struct {
	ArticleID   int64
	NewReaction *domain.ReactionKind
	OldReaction *domain.ReactionKind
}

// ChangeArticleReaction moves a reader's reaction on an article and returns the updated counts.
type ChangeArticleReaction struct {
	Changer datasources.ArticleReactionChanger
}

var _ Command[ChangeArticleReactionRequest, domain.Reactions] = (*ChangeArticleReaction)(nil)

func (c *ChangeArticleReaction) Execute(
	ctx context.Context, req ChangeArticleReactionRequest,
) (domain.Reactions, error) {
	change, err := domain.NewReactionChange(req.NewReaction, req.OldReaction)
	if err != nil {
		return nil, err
	}

	reactions, err := c.Changer.ChangeArticleReactions(ctx, req.ArticleID, change)
	if err != nil {
		return nil, fmt.Errorf("changing article reactions: %w", err)
	}
	return reactions, nil
}
