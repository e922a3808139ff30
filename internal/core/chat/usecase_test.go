package chat

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"kisankalyan.app/internal/mocks"
	"kisankalyan.app/internal/ports"
	"kisankalyan.app/pkg/errors"
)

var fixedNow = time.Date(2024, time.July, 15, 10, 30, 0, 0, time.UTC)

type chatMocks struct {
	completion *mocks.CompletionProvider
	history    *mocks.ChatHistoryRepository
	logger     *mocks.Logger
	metrics    *mocks.MetricsCollector
}

func allowLogging(logger *mocks.Logger) {
	for arity := 0; arity <= 4; arity++ {
		fields := make([]interface{}, arity)
		for i := range fields {
			fields[i] = mock.Anything
		}
		logger.EXPECT().Debug(mock.Anything, fields...).Maybe()
		logger.EXPECT().Info(mock.Anything, fields...).Maybe()
		logger.EXPECT().Warn(mock.Anything, fields...).Maybe()
		logger.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
}

func newTestUseCase(t *testing.T) (*UseCase, chatMocks) {
	m := chatMocks{
		completion: mocks.NewCompletionProvider(t),
		history:    mocks.NewChatHistoryRepository(t),
		logger:     mocks.NewLogger(t),
		metrics:    mocks.NewMetricsCollector(t),
	}
	allowLogging(m.logger)
	m.completion.EXPECT().GetProviderName().Return("openai").Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		Completion: m.completion,
		History:    m.history,
		Logger:     m.logger,
		Metrics:    m.metrics,
		Clock:      func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return uc, m
}

func TestNewUseCase_RequiresDependencies(t *testing.T) {
	completion := mocks.NewCompletionProvider(t)
	history := mocks.NewChatHistoryRepository(t)
	logger := mocks.NewLogger(t)
	metrics := mocks.NewMetricsCollector(t)

	tests := []struct {
		name string
		deps UseCaseDependencies
		msg  string
	}{
		{name: "Completion", deps: UseCaseDependencies{History: history, Logger: logger, Metrics: metrics}, msg: "completion provider is required"},
		{name: "History", deps: UseCaseDependencies{Completion: completion, Logger: logger, Metrics: metrics}, msg: "chat history repository is required"},
		{name: "Logger", deps: UseCaseDependencies{Completion: completion, History: history, Metrics: metrics}, msg: "logger is required"},
		{name: "Metrics", deps: UseCaseDependencies{Completion: completion, History: history, Logger: logger}, msg: "metrics is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, err := NewUseCase(tt.deps)
			assert.Nil(t, uc)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestGenerateResponse_NotConfiguredShortCircuitsToFallback(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.completion.EXPECT().IsConfigured().Return(false)
	m.metrics.EXPECT().RecordChatResponse(mock.Anything, "schemes", ports.OutcomeFallback).Once()

	response := uc.GenerateResponse(context.Background(), "What government loan schemes are available?")

	assert.Equal(t, schemesResponse, response)
	m.completion.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestGenerateResponse_Completed(t *testing.T) {
	uc, m := newTestUseCase(t)

	var sent ports.CompletionRequest
	m.completion.EXPECT().IsConfigured().Return(true)
	m.completion.EXPECT().Complete(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, req ports.CompletionRequest) { sent = req }).
		Return("  Irrigate early in the morning.\n", nil)
	m.metrics.EXPECT().RecordChatResponse(mock.Anything, "weather", ports.OutcomeCompleted).Once()

	response := uc.GenerateResponse(context.Background(), "Hot weather this week")

	assert.Equal(t, "Irrigate early in the morning.", response)
	assert.Equal(t, ComposeChatPrompt(TopicWeather, "Hot weather this week"), sent)
}

func TestGenerateResponse_ProviderFailuresFallBack(t *testing.T) {
	tests := []struct {
		name string
		text string
		err  error
	}{
		{name: "ExternalAPIError", err: errors.NewExternalAPIError("status 500", nil)},
		{name: "ConfigurationError", err: errors.NewConfigurationError("invalid key", nil)},
		{name: "PlainError", err: fmt.Errorf("context deadline exceeded")},
		{name: "BlankText", text: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newTestUseCase(t)

			m.completion.EXPECT().IsConfigured().Return(true)
			m.completion.EXPECT().Complete(mock.Anything, mock.Anything).Return(tt.text, tt.err)
			m.metrics.EXPECT().RecordChatResponse(mock.Anything, "crops", ports.OutcomeFallback).Once()

			response := uc.GenerateResponse(context.Background(), "best seed for wheat")

			assert.Equal(t, cropsResponse, response)
		})
	}
}

func TestGenerateResponse_AlwaysNonEmpty(t *testing.T) {
	for _, configured := range []bool{true, false} {
		t.Run(fmt.Sprintf("configured=%v", configured), func(t *testing.T) {
			uc, m := newTestUseCase(t)

			m.completion.EXPECT().IsConfigured().Return(configured)
			if configured {
				m.completion.EXPECT().Complete(mock.Anything, mock.Anything).
					Return("", errors.NewExternalAPIError("timeout", nil))
			}
			m.metrics.EXPECT().RecordChatResponse(mock.Anything, "general", ports.OutcomeFallback)

			assert.NotEmpty(t, uc.GenerateResponse(context.Background(), ""))
		})
	}
}

func TestChat_EmptyMessage(t *testing.T) {
	uc, _ := newTestUseCase(t)

	for _, message := range []string{"", "   "} {
		result, err := uc.Chat(context.Background(), ChatRequest{SessionID: "s-1", Message: message})

		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Contains(t, err.Error(), "No message provided")
	}
}

func TestChat_PersistsExchange(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.completion.EXPECT().IsConfigured().Return(false)
	m.metrics.EXPECT().RecordChatResponse(mock.Anything, "general", ports.OutcomeFallback)
	m.history.EXPECT().Save(mock.Anything, &ports.ChatRecord{
		SessionID:   "session-42",
		UserMessage: "Namaste",
		BotResponse: greetingResponse,
		Timestamp:   fixedNow,
	}).Return(nil).Once()

	result, err := uc.Chat(context.Background(), ChatRequest{SessionID: "session-42", Message: "Namaste"})

	require.NoError(t, err)
	assert.Equal(t, greetingResponse, result.Response)
	assert.Equal(t, TopicGeneral, result.Topic)
	assert.Equal(t, ports.OutcomeFallback, result.Outcome)
}

func TestChat_SaveFailureDoesNotAffectResponse(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.completion.EXPECT().IsConfigured().Return(true)
	m.completion.EXPECT().Complete(mock.Anything, mock.Anything).Return("Apply for PM-KISAN online.", nil)
	m.metrics.EXPECT().RecordChatResponse(mock.Anything, "schemes", ports.OutcomeCompleted)
	m.history.EXPECT().Save(mock.Anything, mock.Anything).
		Return(errors.NewDatabaseError("insert failed", fmt.Errorf("disk full")))

	result, err := uc.Chat(context.Background(), ChatRequest{SessionID: "s", Message: "subsidy help"})

	require.NoError(t, err)
	assert.Equal(t, "Apply for PM-KISAN online.", result.Response)
	assert.Equal(t, ports.OutcomeCompleted, result.Outcome)
}

func TestGetFarmingInformation_Success(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.completion.EXPECT().IsConfigured().Return(true)
	m.completion.EXPECT().Complete(mock.Anything, ComposeInformationPrompt(InformationSchemes, "PM-KISAN")).
		Return(`{"title":"PM-KISAN","summary":"Income support","details":"Rs 6000 a year","recommendation":"Apply online"}`, nil)

	info, err := uc.GetFarmingInformation(context.Background(), InformationRequest{Topic: InformationSchemes, Query: "  PM-KISAN "})

	require.NoError(t, err)
	assert.Equal(t, &FarmingInformation{
		Title:          "PM-KISAN",
		Summary:        "Income support",
		Details:        "Rs 6000 a year",
		Recommendation: "Apply online",
	}, info)
}

func TestGetFarmingInformation_UnknownTopicUsesGeneralPersona(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.completion.EXPECT().IsConfigured().Return(true)
	m.completion.EXPECT().Complete(mock.Anything, ComposeInformationPrompt(InformationGeneral, "goats")).
		Return(`{"title":"Goats"}`, nil)

	info, err := uc.GetFarmingInformation(context.Background(), InformationRequest{Topic: "livestock", Query: "goats"})

	require.NoError(t, err)
	assert.Equal(t, "Goats", info.Title)
}

func TestGetFarmingInformation_Errors(t *testing.T) {
	t.Run("EmptyQuery", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		_, err := uc.GetFarmingInformation(context.Background(), InformationRequest{Topic: InformationLaws, Query: " "})

		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("NotConfigured", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.completion.EXPECT().IsConfigured().Return(false)

		_, err := uc.GetFarmingInformation(context.Background(), InformationRequest{Topic: InformationLaws, Query: "seed act"})

		require.Error(t, err)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "Service unavailable due to configuration issues.")
	})

	t.Run("ProviderFailure", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.completion.EXPECT().IsConfigured().Return(true)
		m.completion.EXPECT().Complete(mock.Anything, mock.Anything).Return("", errors.NewExternalAPIError("status 429", nil))

		_, err := uc.GetFarmingInformation(context.Background(), InformationRequest{Topic: InformationLaws, Query: "seed act"})

		require.Error(t, err)
		assert.True(t, errors.IsExternalAPIError(err))
		assert.Contains(t, err.Error(), "Failed to retrieve information. Please try again later.")
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.completion.EXPECT().IsConfigured().Return(true)
		m.completion.EXPECT().Complete(mock.Anything, mock.Anything).Return("not json", nil)

		_, err := uc.GetFarmingInformation(context.Background(), InformationRequest{Topic: InformationLaws, Query: "seed act"})

		require.Error(t, err)
		assert.True(t, errors.IsExternalAPIError(err))
	})
}

func TestGetHistory(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.history.EXPECT().FindBySession(mock.Anything, "s-1", 20).Return([]*ports.ChatRecord{
		{ID: 2, SessionID: "s-1", UserMessage: "second", BotResponse: "b", Timestamp: fixedNow},
		{ID: 1, SessionID: "s-1", UserMessage: "first", BotResponse: "a", Timestamp: fixedNow.Add(-time.Hour)},
	}, nil)

	entries, err := uc.GetHistory(context.Background(), "s-1", 20)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].UserMessage)
	assert.Equal(t, "first", entries[1].UserMessage)
}

func TestGetHistory_Errors(t *testing.T) {
	uc, m := newTestUseCase(t)

	_, err := uc.GetHistory(context.Background(), "", 20)
	assert.True(t, errors.IsValidationError(err))

	m.history.EXPECT().FindBySession(mock.Anything, "s-1", 5).Return(nil, errors.NewDatabaseError("query failed", nil))

	_, err = uc.GetHistory(context.Background(), "s-1", 5)
	assert.True(t, errors.IsDatabaseError(err))
}
