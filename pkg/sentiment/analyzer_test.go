package sentiment

import (
	"context"
	"errors"
	"testing"

	"matcha-match-be/internal/constant"
	"matcha-match-be/pkg/llm"
)

type stubProvider struct {
	reply string
	err   error
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.reply, s.err
}

func TestAnalyzeParsesWrappedJSON(t *testing.T) {
	provider := &stubProvider{
		reply: `Sure! Here is the analysis you asked for:
{"sentiment": "stressed", "confidence": 0.9, "preferences": {"budget": "low", "vibe": "quiet", "location": "nearby", "special_needs": "wifi"}}
Hope that helps!`,
	}
	a := NewAnalyzer(provider)

	got := a.Analyze(context.Background(), "need somewhere cheap and quiet")
	if got.Sentiment != constant.MoodStressed {
		t.Errorf("Sentiment = %q, want %q", got.Sentiment, constant.MoodStressed)
	}
	if got.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want 0.9", got.Confidence)
	}
	if got.Preferences["budget"] != "low" || got.Preferences["vibe"] != "quiet" {
		t.Errorf("Preferences = %v, want budget=low vibe=quiet", got.Preferences)
	}
}

func TestAnalyzeFallsBack(t *testing.T) {
	tests := []struct {
		name     string
		provider *stubProvider
	}{
		{"provider error", &stubProvider{err: errors.New("connection refused")}},
		{"prose reply", &stubProvider{reply: "I cannot produce JSON right now, sorry."}},
		{"malformed json", &stubProvider{reply: `{"sentiment": }`}},
		{"missing keys", &stubProvider{reply: `{"confidence": 0.8}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnalyzer(tt.provider)
			got := a.Analyze(context.Background(), "I'm stressed and need a quiet place to study")

			if got.Sentiment != constant.MoodStressed {
				t.Errorf("Sentiment = %q, want stressed fallback", got.Sentiment)
			}
			if got.Confidence != 0.6 {
				t.Errorf("Confidence = %v, want fallback 0.6", got.Confidence)
			}
			if got.Preferences["vibe"] != "quiet" {
				t.Errorf("vibe = %q, want quiet", got.Preferences["vibe"])
			}
			if got.Preferences["budget"] != "medium" {
				t.Errorf("budget = %q, want medium", got.Preferences["budget"])
			}
		})
	}
}

func TestAnalyzeNormalizesUnknownMood(t *testing.T) {
	provider := &stubProvider{
		reply: `{"sentiment": "ecstatic", "confidence": 1.4, "preferences": {"budget": "high"}}`,
	}
	a := NewAnalyzer(provider)

	got := a.Analyze(context.Background(), "best matcha ever")
	if got.Sentiment != constant.MoodNeutral {
		t.Errorf("Sentiment = %q, want neutral for out-of-set label", got.Sentiment)
	}
	if got.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want clamped to 1.0", got.Confidence)
	}
}

func TestFallbackKeywordPriority(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"happy wins over social", "so happy to meet friends", constant.MoodHappy},
		{"stressed wins over focused", "busy with study today", constant.MoodStressed},
		{"social", "meeting the group for fun", constant.MoodSocial},
		{"focused", "need to focus on concentration", constant.MoodFocused},
		{"neutral default", "matcha please", constant.MoodNeutral},
		{"empty", "", constant.MoodNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fallback(tt.text)
			if got.Sentiment != tt.want {
				t.Errorf("Fallback(%q).Sentiment = %q, want %q", tt.text, got.Sentiment, tt.want)
			}
			if !constant.IsValidMood(got.Sentiment) {
				t.Errorf("Fallback returned invalid mood %q", got.Sentiment)
			}
			if got.Confidence < 0 || got.Confidence > 1 {
				t.Errorf("Confidence %v out of [0,1]", got.Confidence)
			}
		})
	}
}

func TestFallbackBudgetAndVibe(t *testing.T) {
	got := Fallback("looking for a cheap but trendy spot")
	if got.Preferences[constant.PreferenceBudget] != "low" {
		t.Errorf("budget = %q, want low", got.Preferences[constant.PreferenceBudget])
	}
	if got.Preferences[constant.PreferenceVibe] != "trendy" {
		t.Errorf("vibe = %q, want trendy", got.Preferences[constant.PreferenceVibe])
	}

	got = Fallback("something luxury and cozy")
	if got.Preferences[constant.PreferenceBudget] != "high" {
		t.Errorf("budget = %q, want high", got.Preferences[constant.PreferenceBudget])
	}
	if got.Preferences[constant.PreferenceVibe] != "quiet" {
		t.Errorf("vibe = %q, want quiet", got.Preferences[constant.PreferenceVibe])
	}
}
