package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"kisankalyan.app/internal/ports"
	"kisankalyan.app/pkg/errors"
	"kisankalyan.app/pkg/validation"
)

const (
	infoUnavailableMessage = "Service unavailable due to configuration issues."
	infoFailedMessage      = "Failed to retrieve information. Please try again later."

	tracerName = "kisankalyan/internal/core/chat"
)

type UseCase struct {
	completion ports.CompletionProvider
	history    ports.ChatHistoryRepository
	logger     ports.Logger
	metrics    ports.MetricsCollector
	now        func() time.Time
}

type UseCaseDependencies struct {
	Completion ports.CompletionProvider
	History    ports.ChatHistoryRepository
	Logger     ports.Logger
	Metrics    ports.MetricsCollector
	// Clock defaults to time.Now.
	Clock func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Completion == nil {
		return nil, errors.NewValidationError("completion provider is required")
	}
	if deps.History == nil {
		return nil, errors.NewValidationError("chat history repository is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &UseCase{
		completion: deps.Completion,
		history:    deps.History,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		now:        clock,
	}, nil
}

// GenerateResponse answers a message. It never fails: any completion problem
// is absorbed and a canned response is returned instead.
func (uc *UseCase) GenerateResponse(ctx context.Context, message string) string {
	return uc.respond(ctx, message).Response
}

// Chat validates the request, answers it and records the exchange. A failed
// write is logged and does not affect the returned result.
func (uc *UseCase) Chat(ctx context.Context, request ChatRequest) (*ChatResult, error) {
	if !validation.IsNotEmpty(request.Message) {
		return nil, errors.NewValidationError("No message provided")
	}

	result := uc.respond(ctx, request.Message)

	record := &ports.ChatRecord{
		SessionID:   request.SessionID,
		UserMessage: request.Message,
		BotResponse: result.Response,
		Timestamp:   uc.now(),
	}
	if err := uc.history.Save(ctx, record); err != nil {
		uc.logger.Warn("Failed to save chat message",
			ports.F("session_id", request.SessionID),
			ports.F("error", err))
	} else {
		uc.logger.Debug("Chat message saved",
			ports.F("session_id", request.SessionID),
			ports.F("id", record.ID))
	}

	return &result, nil
}

func (uc *UseCase) respond(ctx context.Context, message string) ChatResult {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "chat.respond")
	defer span.End()

	result := uc.answer(ctx, message)
	span.SetAttributes(
		attribute.String("chat.topic", result.Topic.String()),
		attribute.String("chat.outcome", result.Outcome))
	return result
}

func (uc *UseCase) answer(ctx context.Context, message string) ChatResult {
	topic := Classify(message)

	if !uc.completion.IsConfigured() {
		uc.logger.Warn("Completion provider is not configured, using canned response",
			ports.F("provider", uc.completion.GetProviderName()),
			ports.F("topic", topic.String()))
		return uc.fallBack(ctx, topic, message)
	}

	request := ComposeChatPrompt(topic, message)
	text, err := uc.completion.Complete(ctx, request)
	if err == nil {
		text = strings.TrimSpace(text)
		if text == "" {
			err = errors.NewExternalAPIError("completion returned empty text", nil)
		}
	}
	if err != nil {
		uc.logCompletionFailure(topic, err)
		return uc.fallBack(ctx, topic, message)
	}

	uc.metrics.RecordChatResponse(ctx, topic.String(), ports.OutcomeCompleted)
	return ChatResult{Response: text, Topic: topic, Outcome: ports.OutcomeCompleted}
}

func (uc *UseCase) fallBack(ctx context.Context, topic Topic, message string) ChatResult {
	uc.metrics.RecordChatResponse(ctx, topic.String(), ports.OutcomeFallback)
	return ChatResult{Response: FallbackResponse(message), Topic: topic, Outcome: ports.OutcomeFallback}
}

func (uc *UseCase) logCompletionFailure(topic Topic, err error) {
	switch errors.TypeOf(err) {
	case errors.ConfigurationError:
		uc.logger.Warn("Completion provider rejected configuration, using canned response",
			ports.F("topic", topic.String()),
			ports.F("error", err))
	case errors.ExternalAPIError:
		uc.logger.Error("Completion provider failed, using canned response",
			ports.F("topic", topic.String()),
			ports.F("error", err))
	default:
		uc.logger.Error("Unexpected completion failure, using canned response",
			ports.F("topic", topic.String()),
			ports.F("error", err))
	}
}

// GetFarmingInformation returns a structured write-up from the completion
// service. Unlike chat there is no canned answer: a missing credential is a
// ConfigurationError and any other failure an ExternalAPIError.
func (uc *UseCase) GetFarmingInformation(ctx context.Context, request InformationRequest) (*FarmingInformation, error) {
	request.Normalize()
	if request.Query == "" {
		return nil, errors.NewValidationError("query is required")
	}

	if !uc.completion.IsConfigured() {
		uc.logger.Warn("Completion provider is not configured for information lookup",
			ports.F("topic", string(request.Topic)))
		return nil, errors.NewConfigurationError(infoUnavailableMessage, nil)
	}

	text, err := uc.completion.Complete(ctx, ComposeInformationPrompt(request.Topic, request.Query))
	if err != nil {
		uc.logger.Error("Information lookup failed",
			ports.F("topic", string(request.Topic)),
			ports.F("error", err))
		return nil, errors.NewExternalAPIError(infoFailedMessage, err)
	}

	var info FarmingInformation
	if err := json.Unmarshal([]byte(text), &info); err != nil {
		uc.logger.Error("Information lookup returned malformed JSON",
			ports.F("topic", string(request.Topic)),
			ports.F("error", err))
		return nil, errors.NewExternalAPIError(infoFailedMessage, fmt.Errorf("decode information: %w", err))
	}

	return &info, nil
}

// GetHistory returns the session's most recent exchanges, newest first.
func (uc *UseCase) GetHistory(ctx context.Context, sessionID string, limit int) ([]HistoryEntry, error) {
	if !validation.IsNotEmpty(sessionID) {
		return nil, errors.NewValidationError("session id is required")
	}

	records, err := uc.history.FindBySession(ctx, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("find chat history: %w", err)
	}

	entries := make([]HistoryEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, HistoryEntry{
			UserMessage: record.UserMessage,
			BotResponse: record.BotResponse,
			Timestamp:   record.Timestamp,
		})
	}
	return entries, nil
}
