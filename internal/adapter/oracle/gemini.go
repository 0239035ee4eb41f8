package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"naira-rate-service/internal/domain/model"
	"naira-rate-service/internal/domain/ports"
	"naira-rate-service/pkg/logger"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiOracle answers through the Gemini REST API with the Google Search
// grounding tool enabled, so answers come back with web citations attached.
type GeminiOracle struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        *logger.Logger
}

func NewGeminiOracle(baseURL, apiKey, model string, timeout time.Duration, log *logger.Logger) *GeminiOracle {
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	return &GeminiOracle{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
	Tools    []geminiTool    `json:"tools,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiTool struct {
	GoogleSearch *struct{} `json:"google_search,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		GroundingMetadata struct {
			GroundingChunks []struct {
				Web struct {
					Title string `json:"title"`
					URI   string `json:"uri"`
				} `json:"web"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (g *GeminiOracle) Query(ctx context.Context, prompt string) (model.OracleAnswer, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)

	payload := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		Tools: []geminiTool{
			{GoogleSearch: &struct{}{}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return model.OracleAnswer{}, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return model.OracleAnswer{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return model.OracleAnswer{}, fmt.Errorf("%w: failed to send request: %v", ports.ErrOracleUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr geminiErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error.Message == "" {
			return model.OracleAnswer{}, &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
		}
		return model.OracleAnswer{}, &APIError{
			StatusCode: resp.StatusCode,
			Code:       apiErr.Error.Code,
			Message:    apiErr.Error.Message,
		}
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return model.OracleAnswer{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Candidates) == 0 {
		return model.OracleAnswer{}, fmt.Errorf("%w: empty candidate list", ports.ErrOracleUnavailable)
	}

	candidate := result.Candidates[0]

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		text.WriteString(part.Text)
	}

	answer := model.OracleAnswer{Text: text.String()}
	for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
		if chunk.Web.Title == "" || chunk.Web.URI == "" {
			continue
		}
		answer.Citations = append(answer.Citations, model.Citation{
			Title: chunk.Web.Title,
			URI:   chunk.Web.URI,
		})
	}

	g.log.Debug("Oracle answered", "oracle", g.Name(), "citations", len(answer.Citations))
	return answer, nil
}

func (g *GeminiOracle) Name() string {
	return "gemini"
}

var _ ports.Oracle = (*GeminiOracle)(nil)
