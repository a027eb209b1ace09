// Package sentiment infers a mood label and structured preferences from
// free-text café search requests.
package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"matcha-match-be/internal/constant"
	"matcha-match-be/pkg/llm"
)

// Result is the outcome of one extraction. Preferences carries the raw
// pre-normalization values keyed by preference type.
type Result struct {
	Sentiment   string            `json:"sentiment"`
	Confidence  float64           `json:"confidence"`
	Preferences map[string]string `json:"preferences"`
}

// Keyword sets for the deterministic fallback. Priority order is fixed:
// happy beats stressed beats social beats focused.
var (
	happyWords    = []string{"happy", "excited", "great", "awesome", "love", "enjoy"}
	stressedWords = []string{"stressed", "busy", "work", "study", "quiet", "peaceful"}
	socialWords   = []string{"friends", "meet", "social", "fun", "party", "group"}
	focusedWords  = []string{"study", "work", "focus", "quiet", "concentration"}

	cheapWords   = []string{"cheap", "affordable", "budget"}
	premiumWords = []string{"expensive", "luxury", "premium"}
	quietWords   = []string{"cozy", "quiet", "peaceful"}
	trendyWords  = []string{"trendy", "vibrant", "lively"}
)

// Analyzer extracts sentiment and preferences, delegating to a text provider
// and falling back to keyword rules when the provider fails or replies with
// something unusable.
type Analyzer struct {
	provider llm.TextProvider
}

func NewAnalyzer(provider llm.TextProvider) *Analyzer {
	return &Analyzer{provider: provider}
}

// Analyze never returns an error: any provider failure degrades to the
// deterministic fallback so the chat flow always has a sentiment to work with.
func (a *Analyzer) Analyze(ctx context.Context, text string) Result {
	if a.provider == nil {
		return Fallback(text)
	}

	prompt := fmt.Sprintf(constant.SentimentExtractionPromptV1, text)
	reply, err := a.provider.Generate(ctx, prompt)
	if err != nil {
		return Fallback(text)
	}

	result, ok := parseModelReply(reply)
	if !ok {
		return Fallback(text)
	}
	return result
}

// parseModelReply extracts the first {...} block from the raw reply and
// parses it. Models often wrap the JSON in commentary; everything outside
// the braces is ignored.
func parseModelReply(reply string) (Result, bool) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end < start {
		return Result{}, false
	}

	var parsed struct {
		Sentiment   string            `json:"sentiment"`
		Confidence  float64           `json:"confidence"`
		Preferences map[string]string `json:"preferences"`
	}
	if err := json.Unmarshal([]byte(reply[start:end+1]), &parsed); err != nil {
		return Result{}, false
	}
	if parsed.Sentiment == "" || parsed.Preferences == nil {
		return Result{}, false
	}

	sentiment := strings.ToLower(strings.TrimSpace(parsed.Sentiment))
	if !constant.IsValidMood(sentiment) {
		sentiment = constant.MoodNeutral
	}

	confidence := parsed.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return Result{
		Sentiment:   sentiment,
		Confidence:  confidence,
		Preferences: parsed.Preferences,
	}, true
}

// Fallback is the fully deterministic keyword-based extraction used when the
// text provider is unreachable or its reply is unparsable.
func Fallback(text string) Result {
	lower := strings.ToLower(text)

	sentiment := constant.MoodNeutral
	switch {
	case containsAny(lower, happyWords):
		sentiment = constant.MoodHappy
	case containsAny(lower, stressedWords):
		sentiment = constant.MoodStressed
	case containsAny(lower, socialWords):
		sentiment = constant.MoodSocial
	case containsAny(lower, focusedWords):
		sentiment = constant.MoodFocused
	}

	preferences := map[string]string{
		constant.PreferenceBudget:       "medium",
		constant.PreferenceVibe:         "neutral",
		constant.PreferenceLocation:     "anywhere",
		constant.PreferenceSpecialNeeds: "none",
	}

	if containsAny(lower, cheapWords) {
		preferences[constant.PreferenceBudget] = "low"
	} else if containsAny(lower, premiumWords) {
		preferences[constant.PreferenceBudget] = "high"
	}

	if containsAny(lower, quietWords) {
		preferences[constant.PreferenceVibe] = "quiet"
	} else if containsAny(lower, trendyWords) {
		preferences[constant.PreferenceVibe] = "trendy"
	}

	return Result{
		Sentiment:   sentiment,
		Confidence:  0.6,
		Preferences: preferences,
	}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
