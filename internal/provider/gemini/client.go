// Package gemini calls the Google generative-language REST API for the two AI
// collaborators: food photo analysis and coach advice. Both calls are bounded
// by the client timeout and a caller context; neither is retried here.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 30 * time.Second
)

// ErrAnalysis wraps every food-analysis failure, transport or parse alike.
// Callers surface a retry prompt instead of inspecting the cause.
var ErrAnalysis = errors.New("food image analysis failed")

// AdviceFallback is returned by HealthAdvice when the API cannot be reached
// or answers garbage. Graceful degradation is the contract: the coach never
// propagates an error to the user.
const AdviceFallback = "I'm having trouble connecting to the server. Please try again."

const adviceEmptyReply = "I couldn't generate a response right now."

type Client struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// FoodAnalysis is the structured estimate for one photographed portion.
type FoodAnalysis struct {
	FoodName   string  `json:"foodName"`
	Calories   float64 `json:"calories"`
	ProteinG   float64 `json:"protein"`
	FiberG     float64 `json:"fiber"`
	CarbsG     float64 `json:"carbs"`
	FatG       float64 `json:"fat"`
	Confidence float64 `json:"confidence"`
}

type generateRequest struct {
	Contents         []contentBlock    `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type contentBlock struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMIMEType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

const analyzeInstruction = "Analyze this image of food. Estimate the nutritional content for the entire visible portion. Be precise with fiber and protein."

// analyzeSchema constrains the model to the exact response record; every
// numeric field is required so a thin answer fails the whole call.
const analyzeSchema = `{
  "type": "OBJECT",
  "properties": {
    "foodName": {"type": "STRING", "description": "Short descriptive name of the dish"},
    "calories": {"type": "NUMBER", "description": "Total estimated calories (kcal)"},
    "protein": {"type": "NUMBER", "description": "Total protein in grams"},
    "fiber": {"type": "NUMBER", "description": "Total fiber in grams"},
    "carbs": {"type": "NUMBER", "description": "Total carbohydrates in grams"},
    "fat": {"type": "NUMBER", "description": "Total fat in grams"},
    "confidence": {"type": "NUMBER", "description": "Confidence score between 0 and 100"}
  },
  "required": ["foodName", "calories", "protein", "fiber", "carbs", "fat", "confidence"]
}`

// AnalyzeFoodImage sends one image and returns the structured nutrition
// estimate. All six numeric fields plus the name must be present in the model
// reply or the call fails with ErrAnalysis.
func (c *Client) AnalyzeFoodImage(ctx context.Context, image []byte, mimeType string) (FoodAnalysis, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	req := generateRequest{
		Contents: []contentBlock{{Parts: []part{
			{InlineData: &inlineData{
				MimeType: mimeType,
				Data:     base64.StdEncoding.EncodeToString(image),
			}},
			{Text: analyzeInstruction},
		}}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   json.RawMessage(analyzeSchema),
		},
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return FoodAnalysis{}, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}

	var parsed struct {
		FoodName   string   `json:"foodName"`
		Calories   *float64 `json:"calories"`
		Protein    *float64 `json:"protein"`
		Fiber      *float64 `json:"fiber"`
		Carbs      *float64 `json:"carbs"`
		Fat        *float64 `json:"fat"`
		Confidence *float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return FoodAnalysis{}, fmt.Errorf("%w: decode analysis: %w", ErrAnalysis, err)
	}
	if strings.TrimSpace(parsed.FoodName) == "" {
		return FoodAnalysis{}, fmt.Errorf("%w: response missing foodName", ErrAnalysis)
	}
	required := map[string]*float64{
		"calories":   parsed.Calories,
		"protein":    parsed.Protein,
		"fiber":      parsed.Fiber,
		"carbs":      parsed.Carbs,
		"fat":        parsed.Fat,
		"confidence": parsed.Confidence,
	}
	for field, value := range required {
		if value == nil {
			return FoodAnalysis{}, fmt.Errorf("%w: response missing %s", ErrAnalysis, field)
		}
	}

	return FoodAnalysis{
		FoodName:   strings.TrimSpace(parsed.FoodName),
		Calories:   *parsed.Calories,
		ProteinG:   *parsed.Protein,
		FiberG:     *parsed.Fiber,
		CarbsG:     *parsed.Carbs,
		FatG:       *parsed.Fat,
		Confidence: *parsed.Confidence,
	}, nil
}

const advicePromptFormat = `You are an expert health coach for a GLP-1 medication user.

User Context:
%s

User Question: %q

Provide a helpful, encouraging, and concise answer (max 3 sentences). Focus on protein, fiber, hydration, and medication adherence.`

// HealthAdvice asks the coach a question against the given context block.
// Any failure degrades to AdviceFallback; the cause is logged, not returned.
func (c *Client) HealthAdvice(ctx context.Context, userContext, question string) string {
	req := generateRequest{
		Contents: []contentBlock{{Parts: []part{
			{Text: fmt.Sprintf(advicePromptFormat, userContext, question)},
		}}},
	}
	text, err := c.generate(ctx, req)
	if err != nil {
		c.logger().Warn("health advice request failed", "error", err)
		return AdviceFallback
	}
	if strings.TrimSpace(text) == "" {
		return adviceEmptyReply
	}
	return text
}

func (c *Client) generate(ctx context.Context, reqBody generateRequest) (string, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return "", fmt.Errorf("missing Gemini API key")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := c.Model
	if model == "" {
		model = defaultModel
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal Gemini payload: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", baseURL, model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create Gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute Gemini request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read Gemini response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("Gemini request failed with status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode Gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("Gemini response has no candidates")
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
