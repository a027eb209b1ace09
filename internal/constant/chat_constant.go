package constant

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// Mood labels form a closed set. Anything the LLM returns outside this set
// is normalized to MoodNeutral before persistence.
const (
	MoodHappy    = "happy"
	MoodExcited  = "excited"
	MoodCalm     = "calm"
	MoodStressed = "stressed"
	MoodSad      = "sad"
	MoodAngry    = "angry"
	MoodNeutral  = "neutral"
	MoodSocial   = "social"
	MoodFocused  = "focused"
)

// MoodLabels lists every valid mood, used for validation.
var MoodLabels = []string{
	MoodHappy, MoodExcited, MoodCalm, MoodStressed, MoodSad,
	MoodAngry, MoodNeutral, MoodSocial, MoodFocused,
}

func IsValidMood(label string) bool {
	for _, m := range MoodLabels {
		if m == label {
			return true
		}
	}
	return false
}

const (
	PreferenceBudget       = "budget"
	PreferenceVibe         = "vibe"
	PreferenceLocation     = "location"
	PreferenceSpecialNeeds = "special_needs"
)

// SentimentExtractionPromptV1 instructs the model to reply with strict JSON.
// The analyzer tolerates prose around the JSON object; see sentiment.Analyzer.
const SentimentExtractionPromptV1 = `Analyze this café search request: "%s"

Respond with ONLY a JSON object in this exact format:
{
    "sentiment": "one_word_mood",
    "confidence": 0.85,
    "preferences": {
        "budget": "low/medium/high",
        "vibe": "cozy/trendy/quiet/social/study",
        "location": "nearby/anywhere/specific_area",
        "special_needs": "wifi/outdoor_seating/quiet/accessible"
    }
}

Sentiment options: happy, excited, calm, stressed, sad, angry, neutral, social, focused`

// ReplyGenerationPromptV1 produces the assistant's conversational reply.
const ReplyGenerationPromptV1 = `You are a friendly AI assistant helping someone find their perfect matcha café.

User message: "%s"
User mood: %s
User preferences: %s

Respond in a friendly, conversational way. If you can recommend cafés, mention:
- Why this café matches their mood and preferences
- What makes it special
- Any relevant details about atmosphere, pricing, or location

Keep your response warm and helpful, like talking to a friend.`
