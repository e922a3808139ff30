package database

import (
	"context"
	"time"

	"gorm.io/gorm"
	"kisankalyan.app/internal/ports"
	"kisankalyan.app/pkg/errors"
)

// WeatherRequestModel represents one weather lookup. Temperature and humidity
// are NULL when the lookup fell back.
type WeatherRequestModel struct {
	ID          uint      `gorm:"primaryKey"`
	SessionID   string    `gorm:"size:128;index;not null"`
	Location    string    `gorm:"size:128;not null"`
	Temperature *float64
	Humidity    *float64
	Description string    `gorm:"size:128"`
	Timestamp   time.Time `gorm:"index;not null"`
}

func (WeatherRequestModel) TableName() string {
	return "weather_requests"
}

// WeatherHistoryRepositoryAdapter implements the WeatherHistoryRepository port using GORM
type WeatherHistoryRepositoryAdapter struct {
	db *gorm.DB
}

func NewWeatherHistoryRepositoryAdapter(db *gorm.DB) *WeatherHistoryRepositoryAdapter {
	return &WeatherHistoryRepositoryAdapter{db: db}
}

func (r *WeatherHistoryRepositoryAdapter) Save(ctx context.Context, record *ports.WeatherRecord) error {
	if record == nil {
		return errors.NewValidationError("weather record cannot be nil")
	}

	model := &WeatherRequestModel{
		SessionID:   record.SessionID,
		Location:    record.Location,
		Temperature: record.Temperature,
		Humidity:    record.Humidity,
		Description: record.Description,
		Timestamp:   record.Timestamp,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.NewDatabaseError("failed to save weather request", err)
	}

	record.ID = model.ID
	return nil
}

func (r *WeatherHistoryRepositoryAdapter) FindBySession(ctx context.Context, sessionID string, limit int) ([]*ports.WeatherRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	var models []WeatherRequestModel
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp DESC").
		Order("id DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.NewDatabaseError("failed to find weather requests", err)
	}

	records := make([]*ports.WeatherRecord, 0, len(models))
	for _, m := range models {
		records = append(records, &ports.WeatherRecord{
			ID:          m.ID,
			SessionID:   m.SessionID,
			Location:    m.Location,
			Temperature: m.Temperature,
			Humidity:    m.Humidity,
			Description: m.Description,
			Timestamp:   m.Timestamp,
		})
	}
	return records, nil
}
