package ports

import (
	"context"
	"time"
)

// ChatRecord represents one chat exchange for persistence
type ChatRecord struct {
	ID          uint      `json:"id"`
	SessionID   string    `json:"session_id"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	Timestamp   time.Time `json:"timestamp"`
}

// WeatherRecord represents one weather lookup for persistence.
// Temperature and Humidity are nil when the advisory had no measurements.
type WeatherRecord struct {
	ID          uint      `json:"id"`
	SessionID   string    `json:"session_id"`
	Location    string    `json:"location"`
	Temperature *float64  `json:"temperature"`
	Humidity    *float64  `json:"humidity"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// ChatHistoryRepository defines the contract for chat history persistence
type ChatHistoryRepository interface {
	Save(ctx context.Context, record *ChatRecord) error
	FindBySession(ctx context.Context, sessionID string, limit int) ([]*ChatRecord, error)
}

// WeatherHistoryRepository defines the contract for weather lookup persistence
type WeatherHistoryRepository interface {
	Save(ctx context.Context, record *WeatherRecord) error
	FindBySession(ctx context.Context, sessionID string, limit int) ([]*WeatherRecord, error)
}
