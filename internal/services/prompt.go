package services

import "fmt"

// Generation parameters for the three completion intents. Response and
// actions run warmer for conversational variation; the summary runs cool
// so repeated submissions summarize consistently.
const (
	responseTemperature = 0.7
	responseMaxTokens   = 200

	summaryTemperature = 0.3
	summaryMaxTokens   = 100

	actionsTemperature = 0.7
	actionsMaxTokens   = 150
)

func buildResponsePrompt(review string, rating int) string {
	return fmt.Sprintf(`You are a helpful customer service representative.
A customer left a %d-star review:

"%s"

Generate a brief, professional response acknowledging their feedback and addressing their concerns if any.
Keep response to 2-3 sentences.`, rating, review)
}

func buildSummaryPrompt(review string) string {
	return fmt.Sprintf(`Summarize this review in 1-2 sentences, highlighting the main points:

"%s"

Summary:`, review)
}

func buildActionsPrompt(review string, rating int) string {
	return fmt.Sprintf(`Based on this %d-star review, suggest 1-2 specific actionable steps the business should take:

"%s"

Return as a simple numbered list.`, rating, review)
}
