// Package groq is the adapter for the external language/speech service.
// All transport failures are re-raised as the unified external-service
// error kind so callers never branch on HTTP specifics.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Daksharma90/AI-Interviewer/pkg/apperr"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// Config carries the client settings. BaseURL is overridable for tests.
type Config struct {
	APIKey   string
	Model    string
	STTModel string
	TTSModel string
	TTSVoice string
	BaseURL  string
	Timeout  time.Duration
}

type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

type ChatRequest struct {
	Model          string              `json:"model"`
	Messages       []map[string]string `json:"messages"`
	MaxTokens      int                 `json:"max_tokens,omitempty"`
	Temperature    float32             `json:"temperature,omitempty"`
	ResponseFormat *ResponseFormat     `json:"response_format,omitempty"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type ChatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Chat sends a chat-completions request and returns the first choice's
// content.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	if req.Model == "" {
		req.Model = c.cfg.Model
	}

	url := c.cfg.BaseURL + "/chat/completions"
	b, _ := json.Marshal(req)
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", apperr.External("language", err)
	}
	r.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	r.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(r)
	if err != nil {
		return "", apperr.External("language", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return "", apperr.External("language", fmt.Errorf("groq api status %d: %s", resp.StatusCode, string(bodyBytes)))
	}

	var ch ChatResponse
	if err := json.Unmarshal(bodyBytes, &ch); err != nil {
		return "", apperr.External("language", fmt.Errorf("decode error: %w, body: %s", err, string(bodyBytes)))
	}

	if ch.Error != nil {
		return "", apperr.External("language", fmt.Errorf("api error: %s", ch.Error.Message))
	}

	if len(ch.Choices) == 0 {
		return "", apperr.External("language", fmt.Errorf("no choices returned"))
	}
	return ch.Choices[0].Message.Content, nil
}

// GenerateText generates free-form text for the given prompt.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.Chat(ctx, ChatRequest{
		Messages:    []map[string]string{{"role": "user", "content": prompt}},
		MaxTokens:   500,
		Temperature: 0.7,
	})
}

// GenerateJSON generates a structured response in JSON mode. The raw
// string is returned; callers own parse-or-degrade.
func (c *Client) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return c.Chat(ctx, ChatRequest{
		Messages:       []map[string]string{{"role": "user", "content": prompt}},
		MaxTokens:      1500,
		Temperature:    0.7,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	})
}
