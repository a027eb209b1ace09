package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"matcha-match-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatService struct {
	lastRequest *dto.ChatRequest
}

func (s *stubChatService) SendChat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	s.lastRequest = request
	return &dto.ChatResponse{
		Message:         "reply",
		Recommendations: []dto.RecommendationDTO{},
		Sentiment:       dto.SentimentDTO{Mood: "neutral", Confidence: 0.6},
		SessionID:       "session-1",
	}, nil
}

func (s *stubChatService) GetConversation(ctx context.Context, sessionToken string) (*dto.ConversationHistoryResponse, error) {
	return &dto.ConversationHistoryResponse{
		SessionID: sessionToken,
		Messages:  []dto.ConversationMessageDTO{},
	}, nil
}

func (s *stubChatService) GetPreferences(ctx context.Context, sessionToken string) (*dto.PreferencesResponse, error) {
	return &dto.PreferencesResponse{
		SessionID:   sessionToken,
		Preferences: map[string]dto.PreferenceValueDTO{},
	}, nil
}

func newTestApp(svc *stubChatService) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")
	NewChatController(svc).RegisterRoutes(api)
	return app
}

func TestSendChatRejectsMissingMessage(t *testing.T) {
	app := newTestApp(&stubChatService{})

	req := httptest.NewRequest("POST", "/api/ai/chat", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSendChatReturnsEnvelope(t *testing.T) {
	svc := &stubChatService{}
	app := newTestApp(svc)

	body := `{"message": "find me matcha", "session_id": "session-1"}`
	req := httptest.NewRequest("POST", "/api/ai/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool             `json:"success"`
		Message string           `json:"message"`
		Data    dto.ChatResponse `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &envelope))

	assert.True(t, envelope.Success)
	assert.Equal(t, "session-1", envelope.Data.SessionID)
	require.NotNil(t, svc.lastRequest)
	assert.Equal(t, "find me matcha", svc.lastRequest.Message)
}

func TestGetConversationReturnsEmptyForUnknownSession(t *testing.T) {
	app := newTestApp(&stubChatService{})

	req := httptest.NewRequest("GET", "/api/ai/conversation/some-token", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data dto.ConversationHistoryResponse `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, "some-token", envelope.Data.SessionID)
	assert.Empty(t, envelope.Data.Messages)
}

func TestGetPlaceholderServesPNG(t *testing.T) {
	app := newTestApp(&stubChatService{})

	req := httptest.NewRequest("GET", "/api/ai/placeholder/400/300", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(raw, []byte("\x89PNG")), "response is not a PNG")
}
