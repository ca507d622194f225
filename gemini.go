package xword

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

const (
	defaultRegion = "europe-west1"
	defaultModel  = "gemini-2.5-flash"
)

// GeminiClient wraps the Google GenAI client for VertexAI.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates a client using Application Default Credentials.
// Set GOOGLE_APPLICATION_CREDENTIALS to the service account key file path.
func NewGeminiClient(ctx context.Context, projectID, region string) (*GeminiClient, error) {
	if region == "" {
		region = defaultRegion
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: defaultModel,
	}, nil
}

// Close releases resources held by the client.
func (g *GeminiClient) Close() error {
	return nil
}

const extractPrompt = `You are given a photo of a crossword puzzle page.

Transcribe it into exactly this JSON structure:
{
  "dimensions": {"width": <number of columns>, "height": <number of rows>},
  "puzzle": [
    ["#", 1, 2],
    [3, 0, 0],
    ...
  ],
  "clues": {
    "across": [[<clue number>, "<clue text>"], ...],
    "down": [[<clue number>, "<clue text>"], ...]
  },
  "title": "<the printed title, omit if none>"
}

Rules:
- "puzzle" has one array per grid row, top to bottom, left to right.
- A black square is the string "#".
- A white square with a printed clue number is that number.
- A white square without a number is 0.
- Clue lists keep the printed order.
- Answer ONLY with the JSON, no commentary and no markdown.`

// ExtractDocument sends a puzzle photo to Gemini Flash and returns the
// transcription as a raw source document. The result has not been
// validated; callers run it through the normal conversion pipeline.
func (g *GeminiClient) ExtractDocument(ctx context.Context, imageData []byte, mimeType string) (*Document, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		[]*genai.Content{{
			Role: "user",
			Parts: []*genai.Part{
				{Text: extractPrompt},
				{InlineData: &genai.Blob{MIMEType: mimeType, Data: imageData}},
			},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.1)),
			TopP:             genai.Ptr(float32(1)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}

	var doc Document
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("parse document JSON: %w\nraw response: %s", err, text)
	}

	return &doc, nil
}
