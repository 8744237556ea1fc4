package sheetimport

import (
	"context"
	"fmt"
	"strings"

	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

func init() {
	RegisterProvider("gemini", func(ctx context.Context, apiKey string) (Provider, error) {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey: apiKey,
		})
		if err != nil {
			return nil, err
		}
		return &GeminiProvider{Client: client, Model: defaultGeminiModel}, nil
	})
}

// GeminiProvider recognizes sheets with the Google Gemini API.
type GeminiProvider struct {
	Client *genai.Client
	Model  string
}

func (g *GeminiProvider) Name() string { return "gemini" }

func (g *GeminiProvider) Recognize(ctx context.Context, pages []Page) (*Recognition, error) {
	parts := []*genai.Part{genai.NewPartFromText(recognitionPrompt)}
	for _, p := range pages {
		parts = append(parts, genai.NewPartFromBytes(p.Data, p.MIMEType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   geminiRecognitionSchema(),
	}
	resp, err := g.Client.Models.GenerateContent(ctx, g.Model, contents, cfg)
	if err != nil {
		if e, ok := err.(*apierror.APIError); ok {
			err = e.Unwrap()
		}
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("gemini: no candidates")
	}
	cand := resp.Candidates[0]
	if cand.FinishReason != genai.FinishReasonStop {
		return nil, fmt.Errorf("gemini: unexpected finish reason: %s", cand.FinishReason)
	}

	var sb strings.Builder
	for _, p := range cand.Content.Parts {
		if p.Text != "" {
			sb.WriteString(p.Text)
		}
	}
	var rec Recognition
	if err := repairUnmarshal([]byte(sb.String()), &rec); err != nil {
		return nil, fmt.Errorf("gemini: decode response: %w", err)
	}
	return &rec, nil
}

func geminiRecognitionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name": {
				Type:        genai.TypeString,
				Description: "Title of the piece, empty if not shown",
			},
			"bpm": {
				Type:        genai.TypeInteger,
				Description: "Tempo in beats per minute",
			},
			"jianpu": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "One line of transcribed notation per element",
			},
			"notes": {
				Type:        genai.TypeString,
				Description: "Transcription caveats and tempo reasoning",
			},
		},
		Required: []string{"bpm", "jianpu"},
	}
}
