package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Oracle is the generation capability consumed by the headline and image
// services. A single attempt is made per call; retry policy, if any, belongs
// to the caller.
type Oracle interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error)
	GenerateImage(ctx context.Context, prompt, size, quality string) (string, error)
}

// OpenAIClient talks to the OpenAI REST API.
type OpenAIClient struct {
	baseURL    string
	apiKey     string
	chatModel  string
	imageModel string
	httpClient *http.Client
	log        *zap.Logger
}

func NewOpenAIClient(baseURL, apiKey, chatModel, imageModel string, timeout time.Duration, log *zap.Logger) *OpenAIClient {
	return &OpenAIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		chatModel:  chatModel,
		imageModel: imageModel,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete runs one chat completion and returns the raw assistant text. An
// empty completion is returned as-is, not as an error; callers decide what an
// unusable payload means for them.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	reqBody := chatCompletionRequest{
		Model: c.chatModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: temperature,
	}

	var resp chatCompletionResponse
	if err := c.post(ctx, "/chat/completions", reqBody, &resp); err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

type imageGenerationRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
}

type imageGenerationResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// GenerateImage requests one image and returns its hosted URL.
func (c *OpenAIClient) GenerateImage(ctx context.Context, prompt, size, quality string) (string, error) {
	reqBody := imageGenerationRequest{
		Model:   c.imageModel,
		Prompt:  prompt,
		N:       1,
		Size:    size,
		Quality: quality,
	}

	var resp imageGenerationResponse
	if err := c.post(ctx, "/images/generations", reqBody, &resp); err != nil {
		return "", err
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", fmt.Errorf("no image URL in response")
	}
	return resp.Data[0].URL, nil
}

func (c *OpenAIClient) post(ctx context.Context, path string, reqBody, out any) error {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("openai unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Warn("openai request failed",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("openai returned %d: %s", resp.StatusCode, string(b))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
