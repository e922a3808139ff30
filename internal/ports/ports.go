package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Chat
	CompletionProvider CompletionProvider
	ChatHistory        ChatHistoryRepository

	// Weather
	WeatherProvider WeatherProvider
	WeatherHistory  WeatherHistoryRepository

	// Reference data
	ReferenceDataset ReferenceDataset

	// Cache
	CacheMetrics CacheMetrics

	// Infrastructure
	Logger   Logger
	Metrics  MetricsCollector
	Database interface{}
}
