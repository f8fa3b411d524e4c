package datasources

import (
	"context"
	"errors"
)

// ErrChatUnavailable is returned by NullChatModel.
var ErrChatUnavailable = errors.New("no chat model configured")

// ChatModel generates a reply for a fully assembled prompt.
type ChatModel interface {
	GenerateReply(ctx context.Context, prompt string) (string, error)
}

// NullChatModel is a null implementation of ChatModel.
type NullChatModel struct{}

var _ ChatModel = NullChatModel{}

func (NullChatModel) GenerateReply(_ context.Context, _ string) (string, error) {
	return "", ErrChatUnavailable
}
