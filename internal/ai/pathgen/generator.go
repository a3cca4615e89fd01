// Package pathgen generates learning paths with an OpenAI chat model.
package pathgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Abraxas-365/pathway/guidance/learningpath"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared/constant"
)

// ErrNotConfigured is returned when no usable API key was provided
var ErrNotConfigured = errors.New("OpenAI API key not configured")

const generatedBy = "OpenAI"

type Config struct {
	APIKey      string
	Model       string
	MaxTokens   int64
	Temperature float64
	// Options are appended to the client options, e.g. a base URL in tests
	Options []option.RequestOption
}

type Generator struct {
	client     *openai.Client
	model      string
	maxTokens  int64
	temp       float64
	configured bool
	now        func() time.Time
}

func NewGenerator(cfg Config) *Generator {
	g := &Generator{
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
		temp:       cfg.Temperature,
		configured: usableKey(cfg.APIKey),
		now:        time.Now,
	}
	if !g.configured {
		return g
	}

	opts := append([]option.RequestOption{option.WithAPIKey(cfg.APIKey)}, cfg.Options...)
	client := openai.NewClient(opts...)
	g.client = &client
	return g
}

// usableKey treats the placeholder shipped in sample env files as missing
func usableKey(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && key != "your-openai-api-key-here"
}

func (g *Generator) Configured() bool {
	return g.configured
}

// GeneratePlan asks the model for a plan in JSON mode and tags it with its origin
func (g *Generator) GeneratePlan(ctx context.Context, req learningpath.GenerateRequest) (*learningpath.Plan, error) {
	if !g.configured {
		return nil, ErrNotConfigured
	}

	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt(req)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{
				Type: constant.JSONObject("json_object"),
			},
		},
		Temperature: openai.Float(g.temp),
		MaxTokens:   openai.Int(g.maxTokens),
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", describe(err))
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("no response from openai")
	}

	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	var plan learningpath.Plan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		return nil, fmt.Errorf("failed to parse learning path JSON: %w", err)
	}
	if len(plan.LearningPhases) == 0 {
		return nil, errors.New("openai returned a plan without learning phases")
	}

	now := g.now().UTC()
	plan.CareerPath = req.CareerPath
	plan.GeneratedBy = generatedBy
	plan.GeneratedAt = &now
	return &plan, nil
}

// Status sends a tiny completion to check the key and model work
func (g *Generator) Status(ctx context.Context) learningpath.AIStatus {
	if !g.configured {
		return learningpath.AIStatus{Message: ErrNotConfigured.Error()}
	}

	_, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(g.model),
		Messages:  []openai.ChatCompletionMessageParamUnion{openai.UserMessage("test")},
		MaxTokens: openai.Int(5),
	})
	if err != nil {
		return learningpath.AIStatus{
			Configured: true,
			Message:    "OpenAI service error: " + describe(err).Error(),
		}
	}

	return learningpath.AIStatus{
		Configured: true,
		Working:    true,
		Model:      g.model,
		Message:    "OpenAI service is operational",
	}
}

// describe maps the API error codes worth surfacing to readable messages
func describe(err error) error {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return err
	}
	switch apiErr.Code {
	case "insufficient_quota":
		return fmt.Errorf("OpenAI API quota exceeded: %w", err)
	case "invalid_api_key":
		return fmt.Errorf("invalid OpenAI API key: %w", err)
	}
	return err
}
