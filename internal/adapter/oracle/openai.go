package oracle

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"naira-rate-service/internal/domain/model"
	"naira-rate-service/internal/domain/ports"
	"naira-rate-service/pkg/logger"
)

// OpenAIOracle is the fallback provider. The chat completion API carries no
// search grounding, so answers never include citations.
type OpenAIOracle struct {
	client *openai.Client
	model  string
	log    *logger.Logger
}

func NewOpenAIOracle(apiKey, model string, log *logger.Logger) *OpenAIOracle {
	return &OpenAIOracle{
		client: openai.NewClient(apiKey),
		model:  model,
		log:    log,
	}
}

func (o *OpenAIOracle) Query(ctx context.Context, prompt string) (model.OracleAnswer, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			converted := &APIError{
				StatusCode: apiErr.HTTPStatusCode,
				Message:    apiErr.Message,
			}
			if code, ok := apiErr.Code.(float64); ok {
				converted.Code = int(code)
			}
			return model.OracleAnswer{}, converted
		}
		return model.OracleAnswer{}, fmt.Errorf("%w: %v", ports.ErrOracleUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return model.OracleAnswer{}, fmt.Errorf("%w: empty choice list", ports.ErrOracleUnavailable)
	}

	o.log.Debug("Oracle answered", "oracle", o.Name())
	return model.OracleAnswer{Text: resp.Choices[0].Message.Content}, nil
}

func (o *OpenAIOracle) Name() string {
	return "openai"
}

var _ ports.Oracle = (*OpenAIOracle)(nil)
