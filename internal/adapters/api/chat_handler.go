package api

import (
	"net/http"
	"strconv"
	"time"

	"log/slog"

	"github.com/gin-gonic/gin"
	"kisankalyan.app/internal/core/chat"
	"kisankalyan.app/pkg/errors"
	"kisankalyan.app/pkg/validation"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// ChatRequest represents the HTTP request for a chat message
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse represents the HTTP response for a chat message
type ChatResponse struct {
	Response string `json:"response"`
}

// InformationRequest represents the HTTP request for a structured lookup
type InformationRequest struct {
	Topic string `json:"topic" binding:"farmingtopic"`
	Query string `json:"query" binding:"required"`
}

// ChatHistoryItem is one past exchange in the history response
type ChatHistoryItem struct {
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	Timestamp   time.Time `json:"timestamp"`
}

// WeatherHistoryItem is one past weather lookup in the history response
type WeatherHistoryItem struct {
	Location    string    `json:"location"`
	Temperature *float64  `json:"temperature"`
	Humidity    *float64  `json:"humidity"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// HistoryResponse represents the HTTP response for session history
type HistoryResponse struct {
	Chat    []ChatHistoryItem    `json:"chat"`
	Weather []WeatherHistoryItem `json:"weather"`
}

// postChat handles POST /api/chat requests
func (s *HTTPServerAdapter) postChat(c *gin.Context) {
	var httpReq ChatRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil || !validation.IsNotEmpty(httpReq.Message) {
		s.handleError(c, errors.NewValidationError("No message provided"))
		return
	}

	result, err := s.chatUseCase.Chat(c.Request.Context(), chat.ChatRequest{
		SessionID: sessionID(c),
		Message:   httpReq.Message,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	slog.Debug("Chat answered", "topic", result.Topic.String(), "outcome", result.Outcome)
	c.JSON(http.StatusOK, ChatResponse{Response: result.Response})
}

// postInformation handles POST /api/farming/information requests
func (s *HTTPServerAdapter) postInformation(c *gin.Context) {
	var httpReq InformationRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		slog.Debug("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	info, err := s.chatUseCase.GetFarmingInformation(c.Request.Context(), chat.InformationRequest{
		Topic: chat.InformationTopic(httpReq.Topic),
		Query: httpReq.Query,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// getHistory handles GET /api/history requests
func (s *HTTPServerAdapter) getHistory(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.handleError(c, errors.NewValidationError("limit must be a number"))
			return
		}
		limit = validation.ClampLimit(parsed, defaultHistoryLimit, maxHistoryLimit)
	}

	ctx := c.Request.Context()
	session := sessionID(c)

	chats, err := s.chatUseCase.GetHistory(ctx, session, limit)
	if err != nil {
		s.handleError(c, err)
		return
	}
	lookups, err := s.weatherUseCase.GetHistory(ctx, session, limit)
	if err != nil {
		s.handleError(c, err)
		return
	}

	response := HistoryResponse{
		Chat:    make([]ChatHistoryItem, 0, len(chats)),
		Weather: make([]WeatherHistoryItem, 0, len(lookups)),
	}
	for _, entry := range chats {
		response.Chat = append(response.Chat, ChatHistoryItem{
			UserMessage: entry.UserMessage,
			BotResponse: entry.BotResponse,
			Timestamp:   entry.Timestamp,
		})
	}
	for _, entry := range lookups {
		response.Weather = append(response.Weather, WeatherHistoryItem{
			Location:    entry.Location,
			Temperature: entry.Temperature,
			Humidity:    entry.Humidity,
			Description: entry.Description,
			Timestamp:   entry.Timestamp,
		})
	}

	c.JSON(http.StatusOK, response)
}
