package models

// AssistantConfig drives the WhatsApp AI attendant: whether it answers at
// all, how it introduces itself, and which personality traits shape its
// replies. Persisted as a single record under the assistant_config key.
type AssistantConfig struct {
	Active          bool     `json:"active"`
	BotName         string   `json:"bot_name"`
	WelcomeMessage  string   `json:"welcome_message"`
	OffHoursMessage string   `json:"off_hours_message"`
	Personalities   []string `json:"personalities"`
}
