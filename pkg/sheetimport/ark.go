package sheetimport

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
)

const (
	defaultArkBaseURL = "https://ark.cn-beijing.volces.com/api/v3"
	defaultArkModel   = "doubao-1.5-vision-pro-32k-250115"
)

func init() {
	RegisterProvider("ark", func(_ context.Context, apiKey string) (Provider, error) {
		client := openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(defaultArkBaseURL),
		)
		return &ArkProvider{Client: &client, Model: defaultArkModel}, nil
	})
}

// ArkProvider recognizes sheets through Volcengine Ark's
// OpenAI-compatible chat completion endpoint.
type ArkProvider struct {
	Client *openai.Client
	Model  string
}

func (a *ArkProvider) Name() string { return "ark" }

func (a *ArkProvider) Recognize(ctx context.Context, pages []Page) (*Recognition, error) {
	contents := []openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(recognitionPrompt),
	}
	for _, p := range pages {
		url := fmt.Sprintf("data:%s;base64,%s", p.MIMEType, base64.StdEncoding.EncodeToString(p.Data))
		contents = append(contents, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
			URL: url,
		}))
	}

	params := openai.ChatCompletionNewParams{
		Model:    a.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(contents)},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        "sheet_recognition",
					Description: param.NewOpt("Transcription of one jianpu sheet"),
					Schema:      arkRecognitionSchema(),
					Strict:      param.NewOpt(true),
				},
			},
		},
	}
	resp, err := a.Client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("ark: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("ark: no choices")
	}

	var rec Recognition
	if err := repairUnmarshal([]byte(resp.Choices[0].Message.Content), &rec); err != nil {
		return nil, fmt.Errorf("ark: decode response: %w", err)
	}
	return &rec, nil
}

func arkRecognitionSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":   map[string]any{"type": "string"},
			"bpm":    map[string]any{"type": "integer"},
			"jianpu": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"notes":  map[string]any{"type": "string"},
		},
		"required":             []string{"name", "bpm", "jianpu", "notes"},
		"additionalProperties": false,
	}
}
