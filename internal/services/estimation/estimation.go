package estimation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/teemo-ai/estimation-server/internal/config"

	"go.uber.org/zap"
)

var (
	// ErrUpstream is returned when the Gemini API call itself fails
	// (network, auth, quota).
	ErrUpstream = errors.New("upstream estimation request failed")
	// ErrNoJSON is returned when no JSON object can be extracted from the
	// model's response.
	ErrNoJSON = errors.New("no JSON object found in model response")

	ErrNoAPIKey = errors.New("gemini API key is not configured")
)

// Result is the model-produced resource estimate. Its schema is owned by
// the model, not by this service.
type Result map[string]any

type Options struct {
	// APIKey overrides the configured key for a single request.
	APIKey string
	Debug  bool
}

type Estimator interface {
	Estimate(ctx context.Context, params string, opts Options) (Result, error)
}

// Client calls Gemini synchronously to produce a training-resource estimate
// for a model-configuration text blob.
type Client struct {
	cfg    *config.GeminiConfig
	logger *zap.Logger
}

func NewClient(cfg *config.GeminiConfig, logger *zap.Logger) *Client {
	return &Client{cfg: cfg, logger: logger}
}

func (c *Client) Estimate(ctx context.Context, params string, opts Options) (Result, error) {
	apiKey := opts.APIKey
	if apiKey == "" {
		apiKey = c.cfg.APIKey
	}
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}

	userPrompt, err := BuildUserPrompt(params)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	if c.cfg.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	text, err := c.generateWithRetries(ctx, apiKey, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if opts.Debug {
		c.logger.Debug("raw model response", zap.String("text", text))
	}

	result, err := ExtractJSONObject(text)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// generateWithRetries retries transient upstream failures with doubling
// backoff. MaxAttempts of 1 (the default) means a single attempt and no
// retry.
func (c *Client) generateWithRetries(ctx context.Context, apiKey, userPrompt string) (string, error) {
	maxAttempts := c.cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error
	backOff := time.Second
	for i := 0; i < maxAttempts; i++ {
		var text string
		text, err = c.generate(ctx, apiKey, userPrompt)
		if err == nil {
			return text, nil
		}

		if ctx.Err() != nil {
			return "", err
		}

		c.logger.Warn("gemini request failed",
			zap.Int("attempt", i+1), zap.Error(err))

		if i < maxAttempts-1 {
			select {
			case <-ctx.Done():
				return "", err
			case <-time.After(backOff):
			}
			backOff *= 2
		}
	}

	return "", err
}

func (c *Client) generate(ctx context.Context, apiKey, userPrompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", err
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(systemPrompt)}, genai.RoleUser),
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(userPrompt)}, genai.RoleUser),
	}

	temperature := float32(0.2)
	topP := float32(0.7)
	topK := float32(20)
	generateConfig := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		TopP:             &topP,
		TopK:             &topK,
		MaxOutputTokens:  int32(c.cfg.MaxOutputTokens),
		ResponseMIMEType: "application/json",
	}

	res, err := client.Models.GenerateContent(ctx, c.cfg.Model, contents, generateConfig)
	if err != nil {
		return "", err
	}

	return res.Text(), nil
}
