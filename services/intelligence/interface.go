package intelligence

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"casabot/models"

	"go.uber.org/zap"
)

// Resolver turns free text into a structured intent. Implementations never
// fail: an unusable upstream answer degrades to the rule-based parser, and at
// worst the result is the fallback intent.
type Resolver interface {
	Resolve(ctx context.Context, text string, sess models.SessionContext) models.Intent
}

// llmClient is the slice of GeminiClient the resolver needs.
type llmClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

const resolverPrompt = `You are an intent parser for a real estate chatbot.
Task: extract one intent and filters as minified JSON.
Intents: browse, search, detail, book, my_bookings, cancel, fallback.
Filters: price_max, price_min, bedrooms, bathrooms, neighborhood (area), property_type, property_id, booking_id.
Use conversation context if present (last area/type/budget).
Answer ONLY JSON like {"name":"search","filters":{...}} with no prose.`

// DefaultResolver tries Gemini first and falls back to pattern matching.
type DefaultResolver struct {
	llm     llmClient
	timeout time.Duration
	logger  *zap.Logger
}

// NewDefaultResolver wires the Gemini-backed resolver. A nil llm skips the
// remote call entirely (useful in tests and degraded deployments).
func NewDefaultResolver(llm llmClient, logger *zap.Logger) *DefaultResolver {
	return &DefaultResolver{llm: llm, timeout: 20 * time.Second, logger: logger}
}

func (r *DefaultResolver) Resolve(ctx context.Context, text string, sess models.SessionContext) models.Intent {
	if r.llm != nil {
		if intent, ok := r.resolveWithLLM(ctx, text, sess); ok {
			return intent
		}
	}
	return RuleResolve(text)
}

func (r *DefaultResolver) resolveWithLLM(ctx context.Context, text string, sess models.SessionContext) (models.Intent, bool) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	ctxJSON, _ := json.Marshal(sess)
	prompt := resolverPrompt + "\nContext:" + string(ctxJSON) + "\nUser:" + text

	raw, err := r.llm.GenerateContent(ctx, prompt)
	if err != nil {
		r.logger.Debug("NLU call failed, using rule parser", zap.Error(err))
		return models.Intent{}, false
	}
	intent, ok := ParseIntentJSON(raw)
	if !ok {
		r.logger.Debug("NLU returned unusable payload, using rule parser",
			zap.String("payload", raw))
	}
	return intent, ok
}

// ParseIntentJSON validates the model's answer at the resolver boundary:
// strict JSON, a known intent name, nothing else accepted.
func ParseIntentJSON(raw string) (models.Intent, bool) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var intent models.Intent
	if err := json.Unmarshal([]byte(raw), &intent); err != nil {
		return models.Intent{}, false
	}
	if !models.ValidIntentName(intent.Name) {
		return models.Intent{}, false
	}
	return intent, true
}
