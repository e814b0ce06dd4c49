package ai

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/recera/gai/core"
	"github.com/recera/gai/middleware"
	"github.com/recera/gai/providers/anthropic"
	"github.com/recera/gai/providers/gemini"
	"github.com/recera/gai/providers/groq"
	"github.com/recera/gai/providers/ollama"
	"github.com/recera/gai/providers/openai"
	"go.uber.org/zap"

	"github.com/probello/quill/internal/cache"
	"github.com/probello/quill/internal/config"
	"github.com/probello/quill/internal/redact"
)

// Client sends prompts to the configured AI provider.
type Client struct {
	provider core.Provider
	cfg      config.Config
	model    string
	log      *zap.Logger
	cache    *cache.Cache
}

// Result is the outcome of one blocking request.
type Result struct {
	Text         string
	InputTokens  int
	OutputTokens int
	Cached       bool
	ElapsedMs    int64
}

// New builds a Client from the resolved config: credentials are
// validated, the provider is constructed, and the library's retry and
// rate-limit middleware are applied.
func New(cfg config.Config, log *zap.Logger) (*Client, error) {
	if err := RequireCredentials(cfg.Provider, os.LookupEnv); err != nil {
		return nil, err
	}

	model := ModelName(cfg.Provider, cfg.Model, cfg.LightModel)
	provider, err := buildProvider(cfg, model)
	if err != nil {
		return nil, err
	}

	provider = middleware.Chain(
		middleware.WithRetry(middleware.RetryOpts{
			MaxAttempts: 3,
			BaseDelay:   time.Second,
			MaxDelay:    10 * time.Second,
			Jitter:      true,
		}),
		middleware.WithRateLimit(middleware.RateLimitOpts{
			RPS:   cfg.RateLimit.RPS,
			Burst: cfg.RateLimit.Burst,
		}),
	)(provider)

	c, err := cache.New(cfg.Cache.Enabled, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
	if err != nil {
		return nil, fmt.Errorf("opening response cache: %w", err)
	}

	log.Debug("ai client ready",
		zap.String("provider", cfg.Provider),
		zap.String("model", model),
		zap.Bool("cache", c.Enabled()),
	)

	return &Client{
		provider: provider,
		cfg:      cfg,
		model:    model,
		log:      log,
		cache:    c,
	}, nil
}

// Model returns the resolved model name.
func (c *Client) Model() string { return c.model }

// Cache returns the response cache, for the cache subcommands.
func (c *Client) Cache() *cache.Cache { return c.cache }

func buildProvider(cfg config.Config, model string) (core.Provider, error) {
	switch cfg.Provider {
	case "openai":
		opts := []openai.Option{
			openai.WithAPIKey(os.Getenv("OPENAI_API_KEY")),
			openai.WithModel(model),
		}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		return openai.New(opts...), nil
	case "anthropic":
		opts := []anthropic.Option{
			anthropic.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
			anthropic.WithModel(model),
		}
		if cfg.BaseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(cfg.BaseURL))
		}
		return anthropic.New(opts...), nil
	case "gemini", "google":
		opts := []gemini.Option{
			gemini.WithAPIKey(os.Getenv("GOOGLE_API_KEY")),
			gemini.WithModel(model),
		}
		if cfg.BaseURL != "" {
			opts = append(opts, gemini.WithBaseURL(cfg.BaseURL))
		}
		return gemini.New(opts...), nil
	case "groq":
		opts := []groq.Option{
			groq.WithAPIKey(os.Getenv("GROQ_API_KEY")),
			groq.WithModel(model),
		}
		if cfg.BaseURL != "" {
			opts = append(opts, groq.WithBaseURL(cfg.BaseURL))
		}
		return groq.New(opts...), nil
	case "ollama":
		opts := []ollama.Option{
			ollama.WithModel(model),
		}
		if cfg.BaseURL != "" {
			opts = append(opts, ollama.WithBaseURL(cfg.BaseURL))
		}
		return ollama.New(opts...), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}

func (c *Client) request(system, prompt string) core.Request {
	return core.Request{
		Messages: []core.Message{
			{Role: core.System, Parts: []core.Part{core.Text{Text: system}}},
			{Role: core.User, Parts: []core.Part{core.Text{Text: prompt}}},
		},
		Temperature: float32(c.cfg.Temperature),
		MaxTokens:   c.cfg.MaxTokens,
	}
}

// Generate sends one prompt and blocks for the full response. Identical
// requests within the cache TTL answer from disk.
func (c *Client) Generate(ctx context.Context, system, prompt string) (Result, error) {
	if c.cfg.RedactSecrets {
		prompt = redact.Prompt(prompt)
	}

	key := cache.Key(c.cfg.Provider, c.model, system, prompt)
	if text, ok := c.cache.Get(key); ok {
		c.log.Debug("cache hit", zap.String("model", c.model))
		return Result{Text: text, Cached: true}, nil
	}

	start := time.Now()
	res, err := c.provider.GenerateText(ctx, c.request(system, prompt))
	if err != nil {
		return Result{}, fmt.Errorf("generating response: %w", err)
	}

	if err := c.cache.Put(key, res.Text); err != nil {
		c.log.Warn("cache write failed", zap.Error(err))
	}

	return Result{
		Text:         res.Text,
		InputTokens:  res.Usage.InputTokens,
		OutputTokens: res.Usage.OutputTokens,
		ElapsedMs:    time.Since(start).Milliseconds(),
	}, nil
}

// Stream sends one prompt and writes text deltas to w as they arrive.
// Streamed responses bypass the cache.
func (c *Client) Stream(ctx context.Context, system, prompt string, w io.Writer) error {
	if c.cfg.RedactSecrets {
		prompt = redact.Prompt(prompt)
	}

	req := c.request(system, prompt)
	req.Stream = true

	stream, err := c.provider.StreamText(ctx, req)
	if err != nil {
		return fmt.Errorf("starting stream: %w", err)
	}
	defer stream.Close()

	for event := range stream.Events() {
		switch event.Type {
		case core.EventTextDelta:
			if _, err := io.WriteString(w, event.TextDelta); err != nil {
				return err
			}
		case core.EventError:
			return fmt.Errorf("streaming response: %w", event.Err)
		case core.EventFinish:
			if event.Usage != nil {
				c.log.Debug("stream finished",
					zap.Int("inputTokens", event.Usage.InputTokens),
					zap.Int("outputTokens", event.Usage.OutputTokens),
				)
			}
		}
	}
	return nil
}
