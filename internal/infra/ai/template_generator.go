package ai

import (
	"context"
	"errors"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var generateTimeout = 60 * time.Second

const systemPrompt = "You generate note templates for a collaborative note-taking app. " +
	"Answer with the template body only, in markdown, with no preamble."

// TemplateGenerator produces document content from a prompt through the
// OpenAI chat completion API.
type TemplateGenerator struct {
	Client openai.Client
	Model  string
}

func NewTemplateGenerator(apiKey string) *TemplateGenerator {
	return &TemplateGenerator{
		Client: openai.NewClient(option.WithAPIKey(apiKey)),
		Model:  openai.ChatModelGPT4oMini,
	}
}

func (g *TemplateGenerator) Generate(prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	completion, err := g.Client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}
