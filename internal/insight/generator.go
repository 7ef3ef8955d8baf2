package insight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/MrJamesThe3rd/ascend/internal/goal"
	"github.com/MrJamesThe3rd/ascend/internal/habit"
	"github.com/MrJamesThe3rd/ascend/internal/journal"
	"github.com/MrJamesThe3rd/ascend/internal/transaction"
)

const (
	FallbackSummary      = "Unable to generate AI summary at this time. Keep focusing on your personal growth!"
	FallbackProductivity = 75
	FallbackWellbeing    = "Good"
)

var (
	FallbackRecommendations     = []string{"Continue building consistent habits", "Set specific, measurable goals"}
	FallbackGoalRecommendations = []string{
		"Break down large goals into smaller, manageable tasks",
		"Set specific deadlines for each goal",
		"Track progress daily",
	}
)

var wellbeingLevels = map[string]struct{}{"Poor": {}, "Fair": {}, "Good": {}, "Excellent": {}}

// Input is what the generator sees of a user. CompletedToday is keyed by habit id.
type Input struct {
	Habits         []*habit.Habit
	CompletedToday map[string]bool
	Goals          []*goal.Goal
	Journal        []*journal.Entry
	Transactions   []*transaction.Transaction
}

type Summary struct {
	Summary         string   `json:"summary"`
	Productivity    int      `json:"productivity"`
	Wellbeing       string   `json:"wellbeing"`
	Recommendations []string `json:"recommendations"`
}

// Generator never fails: implementations degrade to the fallback values.
type Generator interface {
	DailySummary(ctx context.Context, in Input) Summary
	GoalRecommendations(ctx context.Context, in Input) []string
}

func FallbackDailySummary() Summary {
	return Summary{
		Summary:         FallbackSummary,
		Productivity:    FallbackProductivity,
		Wellbeing:       FallbackWellbeing,
		Recommendations: append([]string(nil), FallbackRecommendations...),
	}
}

// Fallback is used when no model is configured.
type Fallback struct{}

func (Fallback) DailySummary(context.Context, Input) Summary { return FallbackDailySummary() }

func (Fallback) GoalRecommendations(context.Context, Input) []string {
	return append([]string(nil), FallbackGoalRecommendations...)
}

type AnthropicGenerator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
}

func NewAnthropicGenerator(apiKey, model string, maxTokens int64, timeout time.Duration, opts ...option.RequestOption) *AnthropicGenerator {
	opts = append([]option.RequestOption{option.WithMaxRetries(0), option.WithAPIKey(apiKey)}, opts...)

	return &AnthropicGenerator{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
		timeout:   timeout,
	}
}

func (g *AnthropicGenerator) DailySummary(ctx context.Context, in Input) Summary {
	var reply Summary
	if err := g.complete(ctx, summarySystemPrompt, summaryPrompt(in), &reply); err != nil {
		slog.WarnContext(ctx, "daily summary generation failed, using fallback", "error", err)
		return FallbackDailySummary()
	}

	return normalizeSummary(reply)
}

func (g *AnthropicGenerator) GoalRecommendations(ctx context.Context, in Input) []string {
	var reply struct {
		Recommendations []string `json:"recommendations"`
	}

	if err := g.complete(ctx, goalsSystemPrompt, goalsPrompt(in), &reply); err != nil {
		slog.WarnContext(ctx, "goal recommendations failed, using fallback", "error", err)
		return append([]string(nil), FallbackGoalRecommendations...)
	}

	recs := cleanList(reply.Recommendations)
	if len(recs) == 0 {
		return append([]string(nil), FallbackGoalRecommendations...)
	}

	return recs
}

func (g *AnthropicGenerator) complete(ctx context.Context, system, prompt string, out any) error {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return fmt.Errorf("llm api call: %w", err)
	}

	if len(msg.Content) == 0 {
		return errors.New("empty response")
	}

	raw, err := extractJSON(msg.Content[0].Text)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// extractJSON returns the text between the first '{' and the last '}'.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")

	if start == -1 || end <= start {
		return "", errors.New("no JSON object found in response")
	}

	return s[start : end+1], nil
}

// normalizeSummary replaces missing or out of range fields one by one.
func normalizeSummary(s Summary) Summary {
	s.Summary = strings.TrimSpace(s.Summary)
	if s.Summary == "" {
		s.Summary = FallbackSummary
	}

	switch {
	case s.Productivity == 0:
		s.Productivity = FallbackProductivity
	case s.Productivity < 1:
		s.Productivity = 1
	case s.Productivity > 100:
		s.Productivity = 100
	}

	if _, ok := wellbeingLevels[s.Wellbeing]; !ok {
		s.Wellbeing = FallbackWellbeing
	}

	s.Recommendations = cleanList(s.Recommendations)
	if len(s.Recommendations) == 0 {
		s.Recommendations = append([]string(nil), FallbackRecommendations...)
	}

	return s
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))

	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}
