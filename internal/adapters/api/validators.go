package api

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"kisankalyan.app/internal/core/chat"
)

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// registerValidators installs the custom binding tags on gin's validator.
func registerValidators() error {
	validatorsOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		validatorsErr = engine.RegisterValidation("farmingtopic", isFarmingTopic)
	})
	return validatorsErr
}

// isFarmingTopic accepts an empty topic or one of the structured lookup topics.
func isFarmingTopic(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, topic := range chat.InformationTopics {
		if value == string(topic) {
			return true
		}
	}
	return false
}
