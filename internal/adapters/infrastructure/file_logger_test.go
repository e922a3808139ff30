package infrastructure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"kisankalyan.app/internal/ports"
	"kisankalyan.app/pkg/errors"
)

func newTestFileLogger(t *testing.T, name string) (*FileLoggerAdapter, string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), name)
	logger, err := NewFileLoggerAdapter(logPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Close() })
	return logger, logPath
}

func readLogLines(t *testing.T, logPath string) []string {
	t.Helper()
	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	trimmed := strings.TrimSpace(string(content))
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func decodeLine(t *testing.T, line string) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
	return entry
}

func TestFileLoggerAdapter_NewFileLoggerAdapter(t *testing.T) {
	tests := []struct {
		name        string
		logPath     func(dir string) string
		expectError bool
	}{
		{
			name:    "valid_path",
			logPath: func(dir string) string { return filepath.Join(dir, "providers.log") },
		},
		{
			name:    "nested_path",
			logPath: func(dir string) string { return filepath.Join(dir, "deep", "nested", "providers.log") },
		},
		{
			name:        "empty_path",
			logPath:     func(string) string { return "" },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logPath := tt.logPath(t.TempDir())
			logger, err := NewFileLoggerAdapter(logPath)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, logger)
				assert.True(t, errors.IsConfigurationError(err))
				assert.Contains(t, err.Error(), "log file path cannot be empty")
				return
			}

			require.NoError(t, err)
			require.NotNil(t, logger)
			defer logger.Close()
			assert.DirExists(t, filepath.Dir(logPath))
			assert.FileExists(t, logPath)
		})
	}
}

func TestFileLoggerAdapter_LogLevels(t *testing.T) {
	tests := []struct {
		level   string
		message string
		fields  []ports.Field
	}{
		{level: "DEBUG", message: "Debug message", fields: []ports.Field{ports.F("key", "value")}},
		{level: "INFO", message: "Info message", fields: []ports.Field{ports.F("provider", "openai")}},
		{level: "WARN", message: "Warning message", fields: []ports.Field{ports.F("location", "Delhi"), ports.F("event", "timeout")}},
		{level: "ERROR", message: "Error message", fields: []ports.Field{ports.F("provider", "openweathermap"), ports.F("duration_ms", 5000)}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, logPath := newTestFileLogger(t, "levels.log")

			switch tt.level {
			case "DEBUG":
				logger.Debug(tt.message, tt.fields...)
			case "INFO":
				logger.Info(tt.message, tt.fields...)
			case "WARN":
				logger.Warn(tt.message, tt.fields...)
			case "ERROR":
				logger.Error(tt.message, tt.fields...)
			}

			lines := readLogLines(t, logPath)
			require.Len(t, lines, 1)
			entry := decodeLine(t, lines[0])

			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, tt.message, entry["message"])
			timestamp, ok := entry["timestamp"].(string)
			require.True(t, ok)
			_, err := time.Parse(time.RFC3339Nano, timestamp)
			assert.NoError(t, err)

			for _, field := range tt.fields {
				if expectedInt, ok := field.Value.(int); ok {
					assert.Equal(t, float64(expectedInt), entry[field.Key])
				} else {
					assert.Equal(t, field.Value, entry[field.Key])
				}
			}
		})
	}
}

func TestFileLoggerAdapter_StructuredLogging(t *testing.T) {
	logger, logPath := newTestFileLogger(t, "structured.log")
	logger.now = func() time.Time { return time.Date(2024, time.July, 15, 10, 30, 0, 0, time.UTC) }

	logger.Info("Weather provider response",
		ports.F("provider", "openweathermap"),
		ports.F("location", "Delhi"),
		ports.F("event", "response"),
		ports.F("duration_ms", 1250),
		ports.F("temperature", 36.5),
		ports.F("humidity", 48.0),
		ports.F("description", "haze"))

	lines := readLogLines(t, logPath)
	require.Len(t, lines, 1)
	entry := decodeLine(t, lines[0])

	assert.Equal(t, "2024-07-15T10:30:00Z", entry["timestamp"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Weather provider response", entry["message"])
	assert.Equal(t, "openweathermap", entry["provider"])
	assert.Equal(t, "Delhi", entry["location"])
	assert.Equal(t, "response", entry["event"])
	assert.Equal(t, float64(1250), entry["duration_ms"])
	assert.Equal(t, 36.5, entry["temperature"])
	assert.Equal(t, 48.0, entry["humidity"])
	assert.Equal(t, "haze", entry["description"])
}

func TestFileLoggerAdapter_ErrorsAndReservedKeys(t *testing.T) {
	logger, logPath := newTestFileLogger(t, "errors.log")

	logger.Error("Completion failed",
		ports.F("error", errors.NewExternalAPIError("request chat completion", fmt.Errorf("dial tcp: refused"))),
		ports.F("level", "spoofed"),
		ports.F("message", "spoofed"))

	entry := decodeLine(t, readLogLines(t, logPath)[0])
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "Completion failed", entry["message"])
	assert.Equal(t, "EXTERNAL_API_ERROR: request chat completion (caused by: dial tcp: refused)", entry["error"])
	assert.Equal(t, "spoofed", entry["field_level"])
	assert.Equal(t, "spoofed", entry["field_message"])
}

func TestFileLoggerAdapter_ConcurrentLogging(t *testing.T) {
	logger, logPath := newTestFileLogger(t, "concurrent.log")

	numGoroutines := 10
	messagesPerGoroutine := 5

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(goroutineID int) {
			defer wg.Done()
			for j := 0; j < messagesPerGoroutine; j++ {
				logger.Info(fmt.Sprintf("Message from goroutine %d", goroutineID),
					ports.F("goroutine_id", goroutineID),
					ports.F("message_id", j))
			}
		}(i)
	}
	wg.Wait()

	lines := readLogLines(t, logPath)
	assert.Len(t, lines, numGoroutines*messagesPerGoroutine)

	for _, line := range lines {
		entry := decodeLine(t, line)
		assert.Equal(t, "INFO", entry["level"])
		assert.Contains(t, entry["message"], "Message from goroutine")
		assert.Contains(t, entry, "goroutine_id")
		assert.Contains(t, entry, "message_id")
	}
}

func TestFileLoggerAdapter_FilePermissions(t *testing.T) {
	logger, logPath := newTestFileLogger(t, "permissions.log")
	logger.Info("Test message")

	fileInfo, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.False(t, fileInfo.IsDir())
	assert.Greater(t, fileInfo.Size(), int64(0))

	if runtime.GOOS != "windows" {
		assert.Zero(t, fileInfo.Mode().Perm()&0133, "log file must not be executable or world-writable")
	}
}

func TestFileLoggerAdapter_AppendsAcrossInstances(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "append.log")

	first, err := NewFileLoggerAdapter(logPath)
	require.NoError(t, err)
	first.Info("First message")
	require.NoError(t, first.Close())

	second, err := NewFileLoggerAdapter(logPath)
	require.NoError(t, err)
	second.Info("Second message")
	require.NoError(t, second.Close())

	lines := readLogLines(t, logPath)
	require.Len(t, lines, 2)
	assert.Equal(t, "First message", decodeLine(t, lines[0])["message"])
	assert.Equal(t, "Second message", decodeLine(t, lines[1])["message"])
}

func TestFileLoggerAdapter_InvalidJSONHandling(t *testing.T) {
	logger, logPath := newTestFileLogger(t, "invalid.log")

	logger.Info("Test message", ports.F("channel", make(chan int)))

	lines := readLogLines(t, logPath)
	require.Len(t, lines, 1)
	entry := decodeLine(t, lines[0])
	assert.Equal(t, "ERROR", entry["level"])
	assert.Contains(t, entry["message"], "failed to marshal log entry")
}

func TestFileLoggerAdapter_WritesAfterCloseAreDropped(t *testing.T) {
	logger, logPath := newTestFileLogger(t, "closed.log")

	logger.Info("kept")
	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())
	logger.Info("dropped")

	lines := readLogLines(t, logPath)
	require.Len(t, lines, 1)
	assert.Equal(t, "kept", decodeLine(t, lines[0])["message"])
}

func BenchmarkFileLoggerAdapter_Info(b *testing.B) {
	logger, err := NewFileLoggerAdapter(filepath.Join(b.TempDir(), "benchmark.log"))
	require.NoError(b, err)
	defer logger.Close()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			logger.Info("Benchmark message",
				ports.F("provider", "openweathermap"),
				ports.F("location", "Delhi"),
				ports.F("temperature", 36.5))
		}
	})
}
