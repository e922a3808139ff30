package chat

import (
	"fmt"

	"kisankalyan.app/internal/ports"
)

const (
	chatTemperature     = 0.7
	chatMaxOutputTokens = 800
)

const systemInstruction = `You are a helpful, empathetic farming assistant dedicated to supporting farmers. Your role is to:
1. Provide accurate, practical information about farming techniques, crops, and best practices
2. Explain government schemes and policies that benefit farmers in a clear, accessible way
3. Clarify farming laws and regulations in simple terms
4. Show empathy and understanding when farmers express challenges or frustrations
5. Offer weather-related advice for farming activities
6. Always be respectful and considerate of traditional farming knowledge

Respond in a warm, supportive tone while maintaining accuracy and providing actionable advice.
Keep responses concise yet comprehensive, focusing on practical information farmers can apply.`

var contextualHints = map[Topic]string{
	TopicWeather: "Focus on weather implications for farming and practical advice related to the current weather conditions.",
	TopicCrops:   "Provide detailed, practical information about crop cultivation, care, and best practices.",
	TopicSchemes: "Explain relevant government schemes for farmers clearly, including eligibility criteria and application process.",
	TopicLaws:    "Explain farming laws and regulations in simple, accessible language, focusing on practical implications.",
}

// ComposeChatPrompt builds the completion request for a chat message.
// TopicGeneral has no hint, so the user content starts with a blank line.
func ComposeChatPrompt(topic Topic, message string) ports.CompletionRequest {
	hint := contextualHints[topic]
	return ports.CompletionRequest{
		SystemInstruction: systemInstruction,
		ContextualHint:    hint,
		UserContent:       fmt.Sprintf("%s\n\nFarmer's message: %s", hint, message),
		Temperature:       chatTemperature,
		MaxOutputTokens:   chatMaxOutputTokens,
	}
}

// InformationTopic selects the expert persona for structured lookups.
type InformationTopic string

const (
	InformationTechniques InformationTopic = "techniques"
	InformationSchemes    InformationTopic = "schemes"
	InformationLaws       InformationTopic = "laws"
	InformationGeneral    InformationTopic = "general"
)

// InformationTopics lists the accepted structured lookup topics.
var InformationTopics = []InformationTopic{
	InformationTechniques, InformationSchemes, InformationLaws, InformationGeneral,
}

var expertPersonas = map[InformationTopic]string{
	InformationTechniques: "You are an expert in farming techniques. Provide detailed, practical information about farming methods, crops, and best practices.",
	InformationSchemes:    "You are an expert in government schemes for farmers. Explain schemes clearly, including eligibility criteria and application processes.",
	InformationLaws:       "You are an expert in agricultural laws and regulations. Explain farming laws in simple, accessible language, focusing on practical implications.",
}

const generalExpertPersona = "You are an expert in farming. Provide accurate, practical information about the requested topic."

// ComposeInformationPrompt builds the JSON-mode request for a structured lookup.
// Temperature and token limits are left to the provider.
func ComposeInformationPrompt(topic InformationTopic, query string) ports.CompletionRequest {
	persona, ok := expertPersonas[topic]
	if !ok {
		persona = generalExpertPersona
	}
	return ports.CompletionRequest{
		SystemInstruction: persona,
		UserContent: fmt.Sprintf("Provide detailed information about: %s\n\n"+
			`Respond with a JSON object with the following structure: {"title": "...", "summary": "...", "details": "...", "recommendation": "..."}`,
			query),
		JSONOutput: true,
	}
}
