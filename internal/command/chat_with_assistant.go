package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/cafeorigenes/origenes-api/internal/datasources"
)

const chatContextArticles = 5

// ChatWithAssistant answers a reader's question through the configured chat model, giving it the
// latest published titles as context.
type ChatWithAssistant struct {
	Titles datasources.LatestArticleTitleLister
	Model  datasources.ChatModel
}

var _ Command[string, string] = (*ChatWithAssistant)(nil)

func (c *ChatWithAssistant) Execute(ctx context.Context, message string) (string, error) {
	titles, err := c.Titles.ListLatestPublishedTitles(ctx, chatContextArticles)
	if err != nil {
		return "", fmt.Errorf("listing latest titles: %w", err)
	}

	reply, err := c.Model.GenerateReply(ctx, buildChatPrompt(titles, message))
	if err != nil {
		return "", fmt.Errorf("generating reply: %w", err)
	}
	return reply, nil
}

func buildChatPrompt(titles []string, message string) string {
	var b strings.Builder

	b.WriteString("You are 'Orígenes IA', a friendly and passionate coffee expert built into a blog called \"Orígenes\".\n\n")
	b.WriteString("BLOG CONTEXT:\nThese are some of the latest articles published on the blog:\n")
	for _, title := range titles {
		b.WriteString("- ")
		b.WriteString(title)
		b.WriteString("\n")
	}
	b.WriteString("\nINSTRUCTIONS:\n")
	b.WriteString("- Answer the reader's question from your general coffee knowledge and, where relevant, " +
		"mention the blog's articles as context.\n")
	b.WriteString("- If the reader asks what is on the blog, answer from the list of articles above.\n")
	b.WriteString("- Always be kind and conversational.\n")
	b.WriteString("- Do NOT mention that you are a language model. You are 'Orígenes IA'.\n")
	b.WriteString("- If you do not know the answer, say something like \"That's a great question, " +
		"but I don't have that information right now.\"\n\n")
	b.WriteString("READER'S QUESTION:\n")
	fmt.Fprintf(&b, "%q\n", message)

	return b.String()
}
