package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"kisankalyan.app/internal/config"
	"kisankalyan.app/internal/ports"
	"kisankalyan.app/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := Open(config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db))
	return db
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	db, err := Open(config.DatabaseConfig{Driver: "oracle"})
	assert.Nil(t, db)
	assert.True(t, errors.IsConfigurationError(err))
}

func TestPing(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, Ping(context.Background(), db))

	require.NoError(t, Close(db))
	assert.True(t, errors.IsDatabaseError(Ping(context.Background(), db)))
}

func TestRepositories_SatisfyHistoryPorts(t *testing.T) {
	db := setupTestDB(t)

	var chatRepo ports.ChatHistoryRepository = NewChatHistoryRepositoryAdapter(db)
	var weatherRepo ports.WeatherHistoryRepository = NewWeatherHistoryRepositoryAdapter(db)
	ctx := context.Background()

	require.NoError(t, chatRepo.Save(ctx, &ports.ChatRecord{SessionID: "s-1", UserMessage: "hi", BotResponse: "hello", Timestamp: time.Now()}))
	require.NoError(t, weatherRepo.Save(ctx, &ports.WeatherRecord{SessionID: "s-1", Location: "Delhi", Timestamp: time.Now()}))

	chats, err := chatRepo.FindBySession(ctx, "s-1", 5)
	require.NoError(t, err)
	require.Len(t, chats, 1)
	require.NotNil(t, chats[0])
	assert.Equal(t, "hello", chats[0].BotResponse)

	lookups, err := weatherRepo.FindBySession(ctx, "s-1", 5)
	require.NoError(t, err)
	require.Len(t, lookups, 1)
	require.NotNil(t, lookups[0])
	assert.Equal(t, "Delhi", lookups[0].Location)
}

func TestChatHistoryRepository_SaveAndFind(t *testing.T) {
	repo := NewChatHistoryRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, time.July, 15, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		record := &ports.ChatRecord{
			SessionID:   "s-1",
			UserMessage: fmt.Sprintf("question %d", i),
			BotResponse: fmt.Sprintf("answer %d", i),
			Timestamp:   base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Save(ctx, record))
		assert.NotZero(t, record.ID)
	}
	require.NoError(t, repo.Save(ctx, &ports.ChatRecord{SessionID: "s-2", UserMessage: "other", BotResponse: "other", Timestamp: base}))

	records, err := repo.FindBySession(ctx, "s-1", 2)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "question 2", records[0].UserMessage)
	assert.Equal(t, "answer 1", records[1].BotResponse)
	assert.True(t, records[0].Timestamp.Equal(base.Add(2*time.Minute)))
}

func TestChatHistoryRepository_UnknownSessionAndDefaults(t *testing.T) {
	repo := NewChatHistoryRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	records, err := repo.FindBySession(ctx, "nobody", 10)
	require.NoError(t, err)
	assert.Empty(t, records)

	for i := 0; i < 25; i++ {
		require.NoError(t, repo.Save(ctx, &ports.ChatRecord{SessionID: "s-1", UserMessage: "m", BotResponse: "r", Timestamp: time.Now()}))
	}
	records, err = repo.FindBySession(ctx, "s-1", 0)
	require.NoError(t, err)
	assert.Len(t, records, defaultHistoryLimit)

	assert.True(t, errors.IsValidationError(repo.Save(ctx, nil)))
}

func TestWeatherHistoryRepository_SaveAndFind(t *testing.T) {
	repo := NewWeatherHistoryRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, time.July, 15, 10, 0, 0, 0, time.UTC)
	temp, humidity := 36.2, 48.0

	require.NoError(t, repo.Save(ctx, &ports.WeatherRecord{
		SessionID: "s-1", Location: "Delhi", Temperature: &temp, Humidity: &humidity,
		Description: "haze", Timestamp: base,
	}))
	fallback := &ports.WeatherRecord{
		SessionID: "s-1", Location: "Atlantis",
		Description: "Weather data unavailable", Timestamp: base.Add(time.Minute),
	}
	require.NoError(t, repo.Save(ctx, fallback))
	assert.NotZero(t, fallback.ID)

	records, err := repo.FindBySession(ctx, "s-1", 10)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Atlantis", records[0].Location)
	assert.Nil(t, records[0].Temperature)
	assert.Nil(t, records[0].Humidity)
	require.NotNil(t, records[1].Temperature)
	assert.Equal(t, 36.2, *records[1].Temperature)
	assert.Equal(t, 48.0, *records[1].Humidity)
}

func TestWeatherHistoryRepository_ClosedDatabase(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWeatherHistoryRepositoryAdapter(db)
	require.NoError(t, Close(db))

	err := repo.Save(context.Background(), &ports.WeatherRecord{SessionID: "s", Location: "Delhi", Timestamp: time.Now()})
	assert.True(t, errors.IsDatabaseError(err))

	_, err = repo.FindBySession(context.Background(), "s", 5)
	assert.True(t, errors.IsDatabaseError(err))
}
