package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/sirupsen/logrus"
)

// DefaultGeneratorModel is used when no model is configured
const DefaultGeneratorModel = "gpt-4o"

// GeneratorConfig holds the chat completion client configuration
type GeneratorConfig struct {
	APIKey       string
	Organization string
	Model        string
	BaseURL      string
}

// chatCompleter is the slice of the OpenAI client used for generation
type chatCompleter interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// openAIGenerator implements ContentGenerator with OpenAI chat completions
type openAIGenerator struct {
	completions chatCompleter
	model       string
	observer    GenerationObserver
	logger      *logrus.Logger
}

// NewOpenAIGenerator creates a new content generator.
// Extra request options are appended after the configured ones.
func NewOpenAIGenerator(config *GeneratorConfig, observer GenerationObserver, logger *logrus.Logger, opts ...option.RequestOption) ContentGenerator {
	if logger == nil {
		logger = logrus.New()
	}
	if config == nil {
		config = &GeneratorConfig{}
	}

	clientOpts := []option.RequestOption{option.WithAPIKey(config.APIKey)}
	if config.Organization != "" {
		clientOpts = append(clientOpts, option.WithOrganization(config.Organization))
	}
	if config.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(config.BaseURL))
	}
	clientOpts = append(clientOpts, opts...)

	model := config.Model
	if model == "" {
		model = DefaultGeneratorModel
	}

	client := openai.NewClient(clientOpts...)

	return &openAIGenerator{
		completions: &client.Chat.Completions,
		model:       model,
		observer:    observer,
		logger:      logger,
	}
}

// GenerateRoutine returns a JSON routine for the given physical data and weekly training days
func (g *openAIGenerator) GenerateRoutine(ctx context.Context, age int, weight, height float64, objective string, trainingDays int) (string, error) {
	prompt := routinePrompt(age, weight, height, objective, trainingDays)
	return g.complete(ctx, "routines", routineSystemMessage, prompt, routineSchemaName, routineSchema())
}

// GenerateRecipes returns a JSON meal plan for the given physical data
func (g *openAIGenerator) GenerateRecipes(ctx context.Context, age int, weight, height float64, objective string) (string, error) {
	prompt := recipePrompt(age, weight, height, objective)
	return g.complete(ctx, "recipes", recipeSystemMessage, prompt, recipeSchemaName, recipeSchema())
}

func (g *openAIGenerator) complete(ctx context.Context, kind, system, prompt, schemaName string, schema map[string]any) (content string, err error) {
	start := time.Now()
	defer func() {
		if g.observer != nil {
			g.observer.ObserveGeneration(kind, time.Since(start), err)
		}
	}()

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   schemaName,
					Schema: schema,
				},
			},
		},
	}

	completion, err := g.completions.New(ctx, params)
	if err != nil {
		fields := logrus.Fields{"kind": kind, "model": g.model}
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			fields["status_code"] = apiErr.StatusCode
		}
		g.logger.WithFields(fields).WithError(err).Error("Content generation failed")
		return "", fmt.Errorf("%s generation failed: %w", kind, ErrGeneration)
	}

	if len(completion.Choices) == 0 {
		g.logger.WithField("kind", kind).Error("Content generation returned no choices")
		return "", fmt.Errorf("%s generation returned no choices: %w", kind, ErrGeneration)
	}

	g.logger.WithFields(logrus.Fields{
		"kind":     kind,
		"duration": time.Since(start),
	}).Debug("Content generated")

	return completion.Choices[0].Message.Content, nil
}
