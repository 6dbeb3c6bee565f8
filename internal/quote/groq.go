package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/motibot/motibot/internal/config"
	"github.com/motibot/motibot/internal/logger"
)

// requestTimeout bounds the upstream call. Only this outbound HTTP request
// carries an explicit timeout; nothing wraps the invocation as a whole.
const requestTimeout = 30 * time.Second

// GroqGenerator implements Generator against an OpenAI-compatible
// chat-completions endpoint.
type GroqGenerator struct {
	cfg    config.GroqConfig
	client *http.Client
	log    *logger.Logger
	now    func() time.Time
}

// NewGroqGenerator creates a new GroqGenerator.
func NewGroqGenerator(cfg config.GroqConfig, log *logger.Logger) *GroqGenerator {
	return &GroqGenerator{
		cfg:    cfg,
		client: &http.Client{},
		log:    log.WithComponent("quote"),
		now:    time.Now,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate requests one fresh quote from the configured model and returns
// the sanitized text.
func (g *GroqGenerator) Generate(ctx context.Context) (string, error) {
	if g.cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	payload := chatRequest{
		Model: g.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(g.now())},
		},
		Temperature: g.cfg.Temperature,
		MaxTokens:   g.cfg.MaxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	g.log.Debug().Str("model", g.cfg.Model).Msg("calling Groq API")

	resp, err := g.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	var data chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(data.Choices) == 0 {
		return "", ErrMalformedResponse
	}

	text := Sanitize(data.Choices[0].Message.Content)
	if text == "" {
		return "", ErrMalformedResponse
	}

	g.log.Info().Str("quote", text).Msg("generated quote")
	return text, nil
}
