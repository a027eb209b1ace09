package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"matcha-match-be/internal/constant"
	"matcha-match-be/internal/dto"
	"matcha-match-be/internal/entity"
	"matcha-match-be/internal/pkg/logger"
	"matcha-match-be/internal/repository/memory"
	"matcha-match-be/internal/repository/specification"
	"matcha-match-be/internal/repository/unitofwork"
	"matcha-match-be/pkg/geo"
	"matcha-match-be/pkg/llm"
	"matcha-match-be/pkg/location"
	"matcha-match-be/pkg/match"
	"matcha-match-be/pkg/places"
	"matcha-match-be/pkg/sentiment"

	"github.com/google/uuid"
)

// Confidence stored on extracted preference rows. The extractor's own
// confidence describes the mood, not the individual preference values.
const preferenceConfidence = 0.8

// moodReplies are the assistant's canned responses when the text service
// cannot produce a reply. Keyed by mood, neutral is the catch-all.
var moodReplies = map[string]string{
	constant.MoodHappy:    "I can see you're in a great mood! Let me find you a vibrant, exciting matcha spot that matches your energy.",
	constant.MoodExcited:  "Your enthusiasm is contagious! I'll look for a lively, fun café that can keep up with your excitement.",
	constant.MoodCalm:     "I understand you're looking for a peaceful experience. Let me find you a serene, calming matcha café.",
	constant.MoodStressed: "I can sense you need a peaceful place right now. Let me find you a quiet, relaxing café where you can unwind.",
	constant.MoodSocial:   "Perfect! You're looking for a great place to meet friends. I'll find you a social, welcoming café with great atmosphere.",
	constant.MoodFocused:  "I see you need a place to concentrate. Let me find you a quiet, focused environment perfect for work or study.",
	constant.MoodNeutral:  "I'd love to help you find the perfect matcha café! Let me search for some great options that might interest you.",
}

type IChatService interface {
	SendChat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
	GetConversation(ctx context.Context, sessionToken string) (*dto.ConversationHistoryResponse, error)
	GetPreferences(ctx context.Context, sessionToken string) (*dto.PreferencesResponse, error)
}

type chatService struct {
	uowFactory    unitofwork.RepositoryFactory
	analyzer      *sentiment.Analyzer
	llmProvider   llm.TextProvider
	placesClient  *places.Client
	resolver      *location.Resolver
	ranker        *match.Ranker
	sentimentRepo *memory.SentimentCacheRepository
	log           logger.ILogger
	llmLog        logger.ILogger

	defaultOrigin geo.Coordinates
	searchRadius  int
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	analyzer *sentiment.Analyzer,
	llmProvider llm.TextProvider,
	placesClient *places.Client,
	resolver *location.Resolver,
	ranker *match.Ranker,
	sentimentRepo *memory.SentimentCacheRepository,
	log logger.ILogger,
	llmLog logger.ILogger,
	defaultOrigin geo.Coordinates,
	searchRadius int,
) IChatService {
	return &chatService{
		uowFactory:    uowFactory,
		analyzer:      analyzer,
		llmProvider:   llmProvider,
		placesClient:  placesClient,
		resolver:      resolver,
		ranker:        ranker,
		sentimentRepo: sentimentRepo,
		log:           log,
		llmLog:        llmLog,
		defaultOrigin: defaultOrigin,
		searchRadius:  searchRadius,
	}
}

func (cs *chatService) SendChat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	sessionToken := request.SessionID
	if sessionToken == "" {
		sessionToken = uuid.NewString()
	}

	// Extraction and venue lookup happen before the transaction opens so
	// slow collaborators never hold a database transaction.
	result := cs.analyzer.Analyze(ctx, request.Message)

	origin := cs.resolveOrigin(request)
	recommendations := cs.recommend(ctx, request.Message, origin, result)

	reply := cs.generateReply(ctx, request.Message, result)

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	conversation, err := cs.getOrCreateConversation(ctx, uow, sessionToken)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	userMessage := entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           constant.MessageRoleUser,
		Content:        request.Message,
		CreatedAt:      now,
	}
	if err := uow.MessageRepository().Create(ctx, &userMessage); err != nil {
		return nil, err
	}

	sentimentRow := entity.SentimentResult{
		Id:             uuid.New(),
		MessageId:      userMessage.Id,
		Sentiment:      result.Sentiment,
		Confidence:     result.Confidence,
		RawPreferences: result.Preferences,
		CreatedAt:      now,
	}
	if err := uow.SentimentRepository().Create(ctx, &sentimentRow); err != nil {
		return nil, err
	}

	if err := cs.upsertPreferences(ctx, uow, conversation.Id, result.Preferences, now); err != nil {
		return nil, err
	}

	// Strictly after the user message so created_at ordering alone keeps
	// question before reply, even within one request.
	assistantMessage := entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Role:           constant.MessageRoleAssistant,
		Content:        reply,
		CreatedAt:      now.Add(time.Millisecond),
	}
	if err := uow.MessageRepository().Create(ctx, &assistantMessage); err != nil {
		return nil, err
	}

	if len(recommendations) > 0 {
		rows := make([]*entity.Recommendation, len(recommendations))
		for i, rec := range recommendations {
			rows[i] = &entity.Recommendation{
				Id:               uuid.New(),
				ConversationId:   conversation.Id,
				PlaceId:          rec.Venue.PlaceID,
				PlaceName:        rec.Venue.Name,
				Reason:           rec.Explanation,
				SentimentContext: result.Sentiment,
				Confidence:       result.Confidence,
				CreatedAt:        now,
			}
		}
		if err := uow.RecommendationRepository().CreateBatch(ctx, rows); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	cs.sentimentRepo.Save(sessionToken, &sentimentRow)

	return &dto.ChatResponse{
		Message:         reply,
		Recommendations: toRecommendationDTOs(recommendations),
		Sentiment: dto.SentimentDTO{
			Mood:        result.Sentiment,
			Confidence:  result.Confidence,
			Preferences: result.Preferences,
		},
		SessionID: sessionToken,
	}, nil
}

func (cs *chatService) GetConversation(ctx context.Context, sessionToken string) (*dto.ConversationHistoryResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	response := &dto.ConversationHistoryResponse{
		SessionID: sessionToken,
		Messages:  []dto.ConversationMessageDTO{},
	}

	conversation, err := uow.ConversationRepository().FindOne(ctx, specification.BySessionToken{SessionToken: sessionToken})
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return response, nil
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversation.Id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	userMessageIds := make([]uuid.UUID, 0, len(messages))
	for _, msg := range messages {
		if msg.Role == constant.MessageRoleUser {
			userMessageIds = append(userMessageIds, msg.Id)
		}
	}

	sentimentByMessage := map[uuid.UUID]*entity.SentimentResult{}
	if len(userMessageIds) > 0 {
		results, err := uow.SentimentRepository().FindAll(ctx, specification.ByMessageIDs{MessageIDs: userMessageIds})
		if err != nil {
			return nil, err
		}
		for _, s := range results {
			sentimentByMessage[s.MessageId] = s
		}
	}

	for _, msg := range messages {
		item := dto.ConversationMessageDTO{
			Id:        msg.Id,
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		}
		if s, ok := sentimentByMessage[msg.Id]; ok {
			item.Sentiment = &dto.SentimentDTO{
				Mood:        s.Sentiment,
				Confidence:  s.Confidence,
				Preferences: s.RawPreferences,
			}
		}
		response.Messages = append(response.Messages, item)
	}

	return response, nil
}

func (cs *chatService) GetPreferences(ctx context.Context, sessionToken string) (*dto.PreferencesResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	response := &dto.PreferencesResponse{
		SessionID:   sessionToken,
		Preferences: map[string]dto.PreferenceValueDTO{},
	}

	conversation, err := uow.ConversationRepository().FindOne(ctx, specification.BySessionToken{SessionToken: sessionToken})
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return response, nil
	}

	preferences, err := uow.PreferenceRepository().FindAll(ctx, specification.ByConversationID{ConversationID: conversation.Id})
	if err != nil {
		return nil, err
	}

	for _, p := range preferences {
		response.Preferences[p.Type] = dto.PreferenceValueDTO{
			Value:      p.Value,
			Confidence: p.Confidence,
		}
	}

	return response, nil
}

func (cs *chatService) getOrCreateConversation(ctx context.Context, uow unitofwork.UnitOfWork, sessionToken string) (*entity.Conversation, error) {
	conversation, err := uow.ConversationRepository().FindOne(ctx, specification.BySessionToken{SessionToken: sessionToken})
	if err != nil {
		return nil, err
	}
	if conversation != nil {
		return conversation, nil
	}

	conversation = &entity.Conversation{
		Id:           uuid.New(),
		SessionToken: sessionToken,
		CreatedAt:    time.Now(),
	}
	if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

func (cs *chatService) upsertPreferences(ctx context.Context, uow unitofwork.UnitOfWork, conversationId uuid.UUID, preferences map[string]string, now time.Time) error {
	for prefType, prefValue := range preferences {
		if prefValue == "" || prefValue == "none" {
			continue
		}
		pref := entity.Preference{
			Id:             uuid.New(),
			ConversationId: conversationId,
			Type:           prefType,
			Value:          prefValue,
			Confidence:     preferenceConfidence,
			ExtractedAt:    now,
		}
		if err := uow.PreferenceRepository().Upsert(ctx, &pref); err != nil {
			return err
		}
	}
	return nil
}

// resolveOrigin picks the search origin: an area named in the text wins,
// then browser coordinates from the request, then the configured default.
func (cs *chatService) resolveOrigin(request *dto.ChatRequest) geo.Coordinates {
	if coords := cs.resolver.Resolve(request.Message); coords != nil {
		return *coords
	}
	if request.Lat != nil && request.Lng != nil {
		return geo.Coordinates{Lat: *request.Lat, Lng: *request.Lng}
	}
	return cs.defaultOrigin
}

// recommend fetches candidates and ranks them. Directory failures degrade
// to an empty list; the chat reply still goes out.
func (cs *chatService) recommend(ctx context.Context, message string, origin geo.Coordinates, result sentiment.Result) []match.ScoredVenue {
	venues, err := cs.placesClient.NearbySearch(ctx, origin, cs.searchRadius)
	if err != nil {
		cs.log.Warn("chat", "places lookup failed, returning no recommendations", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	matchCtx := match.Context{
		Mood:        result.Sentiment,
		Preferences: result.Preferences,
		Hour:        time.Now().Hour(),
	}
	return cs.ranker.Rank(venues, origin, matchCtx)
}

// generateReply asks the text service for a conversational reply, falling
// back to the per-mood template when it fails.
func (cs *chatService) generateReply(ctx context.Context, message string, result sentiment.Result) string {
	if cs.llmProvider == nil {
		return fallbackReply(result.Sentiment)
	}

	prefsJSON, _ := json.Marshal(result.Preferences)
	prompt := fmt.Sprintf(constant.ReplyGenerationPromptV1, message, result.Sentiment, string(prefsJSON))

	reply, err := cs.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.7))
	if err != nil || reply == "" {
		cs.llmLog.Warn("llm", "reply generation failed, using mood template", map[string]interface{}{
			"mood":  result.Sentiment,
			"error": fmt.Sprintf("%v", err),
		})
		return fallbackReply(result.Sentiment)
	}

	cs.llmLog.Info("llm", "reply generated", map[string]interface{}{
		"mood":         result.Sentiment,
		"prompt_chars": len(prompt),
		"reply_chars":  len(reply),
	})
	return reply
}

func fallbackReply(mood string) string {
	if reply, ok := moodReplies[mood]; ok {
		return reply
	}
	return moodReplies[constant.MoodNeutral]
}

func toRecommendationDTOs(recommendations []match.ScoredVenue) []dto.RecommendationDTO {
	dtos := make([]dto.RecommendationDTO, len(recommendations))
	for i, rec := range recommendations {
		dtos[i] = dto.RecommendationDTO{
			PlaceID:    rec.Venue.PlaceID,
			Name:       rec.Venue.Name,
			Vicinity:   rec.Venue.Vicinity,
			Rating:     rec.Venue.Rating,
			PriceRange: geo.FormatPriceRange(rec.Venue.PriceLevel),
			Score:      rec.Score,
			DistanceKm: rec.DistanceKm,
			Photos:     rec.Venue.PhotoURLs,
			Reason:     rec.Explanation,
		}
	}
	return dtos
}
