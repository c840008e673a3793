// Package narrator asks an OpenAI-compatible chat completion endpoint to
// comment on a comparison. It never fails loudly: without a credential it is
// simply unavailable, and any request failure yields no text.
package narrator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"indicomp/internal/config"
	"indicomp/internal/logger"
	"indicomp/internal/models"
)

// Defaults applied when Options leaves a field unset.
const (
	DefaultBaseURL     = "https://api.mistral.ai/v1/"
	DefaultModel       = "mistral-medium"
	DefaultMaxTokens   = 1000
	DefaultTemperature = 0.7
	DefaultTimeout     = 30 * time.Second
	DefaultAPIKeyEnv   = "MISTRAL_API_KEY"
)

// maxFindings caps KeyFindings.
const maxFindings = 5

var (
	ErrUnavailable   = errors.New("narrator: no api key configured")
	ErrEmptyResponse = errors.New("narrator: response has no content")
)

// Options configures a Narrator. A nil Temperature uses DefaultTemperature;
// zero is a valid setting.
type Options struct {
	HTTPClient  *http.Client
	Logger      *logger.Logger
	Temperature *float64
	APIKey      string
	APIKeyEnv   string
	BaseURL     string
	Model       string
	Timeout     time.Duration
	MaxTokens   int64
}

// Narrator generates free-text commentary for a dataset.
type Narrator struct {
	client      openai.Client
	logger      *logger.Logger
	apiKeyEnv   string
	model       string
	timeout     time.Duration
	maxTokens   int64
	temperature float64
	available   bool
}

// New creates a narrator. An empty APIKey produces an unavailable narrator
// that never makes a request.
func New(opts Options) *Narrator {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	if opts.Model == "" {
		opts.Model = DefaultModel
	}

	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}

	temperature := DefaultTemperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}

	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	if opts.APIKeyEnv == "" {
		opts.APIKeyEnv = DefaultAPIKeyEnv
	}

	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}

	key := strings.TrimSpace(opts.APIKey)

	n := &Narrator{
		logger:      opts.Logger.With("component", "narrator"),
		apiKeyEnv:   opts.APIKeyEnv,
		model:       opts.Model,
		timeout:     opts.Timeout,
		maxTokens:   opts.MaxTokens,
		temperature: temperature,
		available:   key != "",
	}

	if !n.available {
		return n
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(key),
		option.WithBaseURL(opts.BaseURL),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(opts.Timeout),
	}
	if opts.HTTPClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(opts.HTTPClient))
	}

	n.client = openai.NewClient(reqOpts...)

	return n
}

// NewFromConfig creates a narrator from the narrator config section and a
// resolved credential.
func NewFromConfig(cfg config.NarratorConfig, apiKey string, log *logger.Logger) *Narrator {
	temperature := cfg.Temperature

	return New(Options{
		APIKey:      apiKey,
		APIKeyEnv:   cfg.APIKeyEnv,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Timeout:     cfg.Timeout(),
		MaxTokens:   int64(cfg.MaxTokens),
		Temperature: &temperature,
		Logger:      log,
	})
}

// IsAvailable reports whether a credential is configured.
func (n *Narrator) IsAvailable() bool {
	return n != nil && n.available
}

// Status is a one-line description for the UI.
func (n *Narrator) Status() string {
	if n.IsAvailable() {
		return "Mistral AI connected (" + n.model + ")"
	}

	env := DefaultAPIKeyEnv
	if n != nil {
		env = n.apiKeyEnv
	}

	return fmt.Sprintf("Add %s to your environment or .env file to enable insights", env)
}

// GenerateInsights returns the model's analysis of the dataset. The second
// result is false when the narrator is unavailable or the request failed.
func (n *Narrator) GenerateInsights(ctx context.Context, ds *models.Dataset, entities, indicators []string, scopeLabel string) (string, bool) {
	if !n.IsAvailable() {
		return "", false
	}

	text, err := n.complete(ctx, BuildPrompt(ds, entities, indicators, scopeLabel))
	if err != nil {
		n.logger.Warn("Insight generation failed", "error", err)

		return "", false
	}

	return text, true
}

// KeyFindings asks for bullet-point findings and returns at most five
// bullet lines. Unavailability or failure yields nil.
func (n *Narrator) KeyFindings(ctx context.Context, ds *models.Dataset, entities, indicators []string, scopeLabel string) []string {
	if !n.IsAvailable() {
		return nil
	}

	text, err := n.complete(ctx, buildFindingsPrompt(ds, entities, indicators, scopeLabel))
	if err != nil {
		n.logger.Warn("Key findings request failed", "error", err)

		return nil
	}

	return bullets(text, maxFindings)
}

func (n *Narrator) complete(ctx context.Context, prompt string) (string, error) {
	if !n.available {
		return "", ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	start := time.Now()

	resp, err := n.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(n.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(n.maxTokens),
		Temperature: openai.Float(n.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}

	n.logger.Debug("Chat completion received",
		"model", resp.Model,
		"elapsed", time.Since(start),
		"completion_tokens", resp.Usage.CompletionTokens,
	)

	return text, nil
}
