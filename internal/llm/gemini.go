package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const defaultGeminiURL = "https://generativelanguage.googleapis.com"

// geminiClient implements the Client interface for the Gemini API.
type geminiClient struct {
	httpClient  *http.Client
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	maxTokens   int
}

// newGeminiClient creates a new Gemini API client.
func newGeminiClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	cfg = withDefaults(cfg, "gemini-2.5-flash")
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGeminiURL
	}

	return &geminiClient{
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		baseURL:     cfg.BaseURL,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		httpClient:  newHTTPClient(cfg.Timeout),
	}, nil
}

// geminiResponse represents the generateContent response structure.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Role  string `json:"role"`
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

// Complete sends a generateContent request with a response schema.
func (c *geminiClient) Complete(ctx context.Context, req Request) (string, error) {
	requestBody := map[string]any{
		"contents": []map[string]any{
			{
				"role":  "user",
				"parts": []map[string]string{{"text": req.Prompt}},
			},
		},
		"generationConfig": map[string]any{
			"temperature":      c.temperature,
			"maxOutputTokens":  c.maxTokens,
			"responseMimeType": "application/json",
			"responseSchema":   geminiSchema(req.Schema),
		},
	}
	if req.System != "" {
		requestBody["systemInstruction"] = map[string]any{
			"parts": []map[string]string{{"text": req.System}},
		}
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	headers := map[string]string{"x-goog-api-key": c.apiKey}

	var response geminiResponse
	if err := postJSON(ctx, c.httpClient, "gemini", url, headers, requestBody, &response); err != nil {
		return "", err
	}

	if len(response.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}

	var text strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("empty candidate (finish reason %q)", response.Candidates[0].FinishReason)
	}

	return text.String(), nil
}

// geminiSchema renders the schema in Gemini's OpenAPI subset.
func geminiSchema(s Schema) map[string]any {
	properties := make(map[string]any, len(s.Properties))
	required := make([]string, 0, len(s.Properties))
	for _, p := range s.Properties {
		prop := map[string]any{
			"type":        strings.ToUpper(string(p.Type)),
			"description": p.Description,
		}
		if len(p.Enum) > 0 {
			prop["enum"] = p.Enum
		}
		properties[p.Name] = prop
		required = append(required, p.Name)
	}

	return map[string]any{
		"type":       "OBJECT",
		"properties": properties,
		"required":   required,
	}
}
