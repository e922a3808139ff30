package chat

import "kisankalyan.app/pkg/validation"

// Topic is the coarse category of a farmer's message.
type Topic int

const (
	TopicGeneral Topic = iota
	TopicWeather
	TopicCrops
	TopicSchemes
	TopicLaws
)

// String returns the string representation of the topic
func (t Topic) String() string {
	switch t {
	case TopicWeather:
		return "weather"
	case TopicCrops:
		return "crops"
	case TopicSchemes:
		return "schemes"
	case TopicLaws:
		return "laws"
	default:
		return "general"
	}
}

type topicRule struct {
	topic    Topic
	keywords []string
}

// Evaluated in order; the first rule with a matching keyword wins.
var topicRules = []topicRule{
	{topic: TopicWeather, keywords: []string{"weather", "rain", "forecast", "temperature", "climate", "monsoon", "humidity"}},
	{topic: TopicCrops, keywords: []string{"crop", "plant", "seed", "harvest", "cultivation", "grow", "yield"}},
	{topic: TopicSchemes, keywords: []string{"scheme", "subsidy", "government", "loan", "grant", "support", "policy", "program"}},
	{topic: TopicLaws, keywords: []string{"law", "regulation", "legal", "act", "rule", "compliance", "guideline"}},
}

// Classify maps a message to a topic by case-insensitive substring match.
func Classify(message string) Topic {
	for _, rule := range topicRules {
		if validation.ContainsAny(message, rule.keywords) {
			return rule.topic
		}
	}
	return TopicGeneral
}
