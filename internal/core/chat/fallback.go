package chat

import "kisankalyan.app/pkg/validation"

const greetingResponse = "Hello! I'm your farming assistant. I can provide information about farming techniques, crops, government schemes, and weather-related advice. How can I help you today?"

const techniquesResponse = `Here are some common farming techniques:

1. **Organic Farming**: Uses natural methods without synthetic chemicals, focusing on soil health and biodiversity.

2. **Conservation Agriculture**: Minimizes soil disturbance, maintains permanent soil cover, and practices crop rotation.

3. **Precision Farming**: Uses technology to optimize inputs based on field variability.

4. **Integrated Farming**: Combines crop production with livestock, fishery, or poultry for efficient resource use.

5. **Crop Rotation**: Growing different crops in sequence to maintain soil health and prevent pest buildup.

Would you like more specific information about any of these techniques?`

const cropsResponse = `Common crops and growing tips:

1. **Rice**: Requires flooded conditions, transplanting in puddled soil, and proper water management.

2. **Wheat**: Needs well-drained soil, timely sowing, and 4-5 irrigations during the growing season.

3. **Cotton**: Requires deep, well-drained soil, regular pest monitoring, and proper spacing.

4. **Pulses**: Generally drought-resistant, benefit from Rhizobium inoculation, and improve soil fertility.

For specific crop advice, please provide more details about your region and growing conditions.`

const schemesResponse = `Key government schemes for farmers:

1. **PM-KISAN**: Provides income support of ₹6,000 per year to eligible farmer families.

2. **Pradhan Mantri Fasal Bima Yojana**: Crop insurance scheme that covers losses due to natural calamities.

3. **Kisan Credit Card**: Offers credit at subsidized interest rates for cultivation and other farm needs.

4. **Pradhan Mantri Krishi Sinchayee Yojana**: Focuses on improving irrigation efficiency and water conservation.

5. **National Mission for Sustainable Agriculture**: Promotes sustainable farming practices and climate resilience.

For application procedures and eligibility criteria, please contact your local agriculture office.`

const weatherResponse = `Weather plays a crucial role in farming. Here are some general weather-related farming tips:

1. Keep track of local weather forecasts to plan field operations.

2. Avoid applying fertilizers or pesticides before expected rainfall.

3. In high temperatures, ensure adequate irrigation and consider mulching.

4. During high humidity periods, monitor for fungal diseases.

5. Have contingency plans ready for extreme weather events.

For location-specific weather information, please use the weather widget in the sidebar.`

const capabilitiesResponse = `I'm here to help with farming-related questions. I can provide information about:

• Farming techniques and crop information
• Government schemes for farmers
• Farming laws and regulations
• Weather-related farming advice

Please ask a specific question about any of these topics, and I'll do my best to assist you.`

type fallbackGroup struct {
	keywords []string
	response string
}

// Keyword sets overlap, so order matters: the first matching group answers.
var fallbackGroups = []fallbackGroup{
	{keywords: []string{"hello", "hi", "hey", "greetings", "namaste"}, response: greetingResponse},
	{keywords: []string{"technique", "farming method", "how to farm", "cultivat", "agriculture"}, response: techniquesResponse},
	{keywords: []string{"crop", "plant", "seed", "harvest", "grow"}, response: cropsResponse},
	{keywords: []string{"scheme", "subsidy", "government", "loan", "support"}, response: schemesResponse},
	{keywords: []string{"weather", "rain", "climate", "monsoon"}, response: weatherResponse},
}

// FallbackResponse returns a canned answer for the message. It never returns
// an empty string.
func FallbackResponse(message string) string {
	for _, group := range fallbackGroups {
		if validation.ContainsAny(message, group.keywords) {
			return group.response
		}
	}
	return capabilitiesResponse
}
