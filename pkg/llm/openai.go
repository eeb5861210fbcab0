package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// Request is one tutor turn. ImageJPEG, when set, is attached to the user message.
type Request struct {
	System    string
	Prompt    string
	ImageJPEG []byte
}

// Generator is the external model. The API key is passed per call because it
// is edited at runtime through site settings.
type Generator interface {
	Complete(ctx context.Context, apiKey string, req Request) (string, error)
	Illustrate(ctx context.Context, apiKey, prompt string) ([]byte, error)
}

type OpenAILLM struct {
	baseURL    string
	model      string
	imageModel string
}

// NewOpenAILLM targets api.openai.com unless baseURL points at a compatible server.
func NewOpenAILLM(baseURL, model, imageModel string) *OpenAILLM {
	return &OpenAILLM{baseURL: baseURL, model: model, imageModel: imageModel}
}

func (l *OpenAILLM) client(apiKey string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if l.baseURL != "" {
		cfg.BaseURL = l.baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

func (l *OpenAILLM) Complete(ctx context.Context, apiKey string, req Request) (string, error) {
	user := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if len(req.ImageJPEG) > 0 {
		user.MultiContent = []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: req.Prompt},
			{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(req.ImageJPEG),
					Detail: openai.ImageURLDetailAuto,
				},
			},
		}
	} else {
		user.Content = req.Prompt
	}

	resp, err := l.client(apiKey).CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: l.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			user,
		},
	})
	if err != nil {
		return "", fmt.Errorf("error creating chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Illustrate returns the raw bytes of one generated image.
func (l *OpenAILLM) Illustrate(ctx context.Context, apiKey, prompt string) ([]byte, error) {
	resp, err := l.client(apiKey).CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          l.imageModel,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating image: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, errors.New("image generation returned no data")
	}
	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("decode generated image: %w", err)
	}
	return data, nil
}
