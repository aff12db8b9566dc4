package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func candidateReply(text string) string {
	reply := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{map[string]any{"text": text}},
				},
			},
		},
	}
	data, _ := json.Marshal(reply)
	return string(data)
}

func TestAnalyzeFoodImageSuccess(t *testing.T) {
	t.Parallel()

	image := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-2.5-flash:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key in query: %s", r.URL.RawQuery)
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		parts := req.Contents[0].Parts
		if parts[0].InlineData == nil || parts[0].InlineData.Data != base64.StdEncoding.EncodeToString(image) {
			t.Error("expected base64 image as first part")
		}
		if req.GenerationConfig == nil || req.GenerationConfig.ResponseMIMEType != "application/json" {
			t.Error("expected structured JSON generation config")
		}
		w.Write([]byte(candidateReply(`{"foodName":"Grilled Salmon Bowl","calories":520,"protein":42,"fiber":6,"carbs":38,"fat":22,"confidence":85}`)))
	}))
	defer server.Close()

	client := &Client{APIKey: "test-key", BaseURL: server.URL}
	analysis, err := client.AnalyzeFoodImage(context.Background(), image, "image/jpeg")
	if err != nil {
		t.Fatalf("AnalyzeFoodImage: %v", err)
	}
	if analysis.FoodName != "Grilled Salmon Bowl" {
		t.Errorf("unexpected food name %q", analysis.FoodName)
	}
	if analysis.Calories != 520 || analysis.ProteinG != 42 || analysis.FiberG != 6 {
		t.Errorf("unexpected macros: %+v", analysis)
	}
	if analysis.Confidence != 85 {
		t.Errorf("unexpected confidence %.0f", analysis.Confidence)
	}
}

func TestAnalyzeFoodImageMissingFieldFails(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No fiber estimate in the reply.
		w.Write([]byte(candidateReply(`{"foodName":"Toast","calories":180,"protein":5,"carbs":30,"fat":3,"confidence":70}`)))
	}))
	defer server.Close()

	client := &Client{APIKey: "test-key", BaseURL: server.URL}
	_, err := client.AnalyzeFoodImage(context.Background(), []byte("img"), "image/png")
	if !errors.Is(err, ErrAnalysis) {
		t.Fatalf("expected ErrAnalysis, got %v", err)
	}
	if !strings.Contains(err.Error(), "fiber") {
		t.Errorf("expected the missing field to be named, got %v", err)
	}
}

func TestAnalyzeFoodImageServerErrorFails(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := &Client{APIKey: "test-key", BaseURL: server.URL}
	_, err := client.AnalyzeFoodImage(context.Background(), []byte("img"), "")
	if !errors.Is(err, ErrAnalysis) {
		t.Fatalf("expected ErrAnalysis, got %v", err)
	}
}

func TestAnalyzeFoodImageRequiresAPIKey(t *testing.T) {
	t.Parallel()

	client := &Client{}
	_, err := client.AnalyzeFoodImage(context.Background(), []byte("img"), "")
	if !errors.Is(err, ErrAnalysis) {
		t.Fatalf("expected ErrAnalysis without a key, got %v", err)
	}
}

func TestHealthAdviceReturnsAnswer(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		prompt := req.Contents[0].Parts[0].Text
		if !strings.Contains(prompt, "What should I eat for breakfast?") {
			t.Errorf("question missing from prompt: %q", prompt)
		}
		if !strings.Contains(prompt, "Protein today: 40g") {
			t.Errorf("user context missing from prompt: %q", prompt)
		}
		w.Write([]byte(candidateReply("Start with Greek yogurt and berries for protein and fiber.")))
	}))
	defer server.Close()

	client := &Client{APIKey: "test-key", BaseURL: server.URL}
	answer := client.HealthAdvice(context.Background(), "Protein today: 40g", "What should I eat for breakfast?")
	if answer != "Start with Greek yogurt and berries for protein and fiber." {
		t.Fatalf("unexpected answer %q", answer)
	}
}

func TestHealthAdviceDegradesToFallback(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := &Client{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if answer := client.HealthAdvice(context.Background(), "", "hello?"); answer != AdviceFallback {
		t.Fatalf("expected fallback message, got %q", answer)
	}
}

func TestHealthAdviceEmptyReply(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateReply("   ")))
	}))
	defer server.Close()

	client := &Client{APIKey: "test-key", BaseURL: server.URL}
	if answer := client.HealthAdvice(context.Background(), "", "hello?"); answer != adviceEmptyReply {
		t.Fatalf("expected empty-reply message, got %q", answer)
	}
}
