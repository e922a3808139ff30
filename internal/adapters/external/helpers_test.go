package external

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"kisankalyan.app/internal/mocks"
)

// setupLoggerMock returns a logger mock that accepts any call with up to
// eight fields.
func setupLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)
	for arity := 0; arity <= 8; arity++ {
		fields := make([]interface{}, arity)
		for i := range fields {
			fields[i] = mock.Anything
		}
		mockLogger.EXPECT().Debug(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Warn(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Error(mock.Anything, fields...).Maybe()
	}
	return mockLogger
}
