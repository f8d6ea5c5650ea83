package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"quartermaster/internal/models"
)

// LLMSuggester ranks low-stock items by asking a language model for an
// urgency score per item. Like every suggester it is advisory only; any
// parsing or transport failure leaves the local ranking in charge.
type LLMSuggester struct {
	model llms.LLM
}

// NewLLMSuggester wraps an existing model.
func NewLLMSuggester(model llms.LLM) *LLMSuggester {
	return &LLMSuggester{model: model}
}

// NewOpenAISuggester initializes an OpenAI-backed suggester.
func NewOpenAISuggester(apiKey, modelName string) (*LLMSuggester, error) {
	llm, err := openai.New(
		openai.WithModel(modelName),
		openai.WithToken(apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
	}
	return &LLMSuggester{model: llm}, nil
}

const rankingPrompt = `You are a restaurant procurement assistant. Given the
inventory items below, return a JSON array ranking them by restocking
urgency. Each element must be {"item_id": string, "urgency_score": number}
with scores between 0 and 1, highest for the most urgent item. Return only
the JSON array.

Items:
%s`

// RankSuggestions asks the model for scores and parses its JSON reply.
func (s *LLMSuggester) RankSuggestions(ctx context.Context, items []models.InventoryItem) ([]models.RankedSuggestion, error) {
	var sb strings.Builder
	for _, item := range items {
		fmt.Fprintf(&sb, "- id=%s name=%q stock=%.2f reorder_point=%.2f safety_stock=%.2f\n",
			item.ItemID, item.Name, item.CurrentStock, item.ReorderPoint, item.SafetyStock)
	}

	completion, err := llms.GenerateFromSinglePrompt(ctx, s.model, fmt.Sprintf(rankingPrompt, sb.String()))
	if err != nil {
		return nil, fmt.Errorf("suggestion model call failed: %w", err)
	}

	return parseRanking(completion)
}

// parseRanking extracts the JSON array from the completion, tolerating
// surrounding prose or markdown fences.
func parseRanking(completion string) ([]models.RankedSuggestion, error) {
	start := strings.Index(completion, "[")
	end := strings.LastIndex(completion, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in model reply")
	}

	var ranked []models.RankedSuggestion
	if err := json.Unmarshal([]byte(completion[start:end+1]), &ranked); err != nil {
		return nil, fmt.Errorf("failed to parse model ranking: %w", err)
	}
	return ranked, nil
}
