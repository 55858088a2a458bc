package config

// LLMConfig holds the connection to the platform's LLM gRPC service
// and the credentials forwarded into sandbox containers.
type LLMConfig struct {
	// Addr is the gRPC address of the LLM service.
	Addr string `yaml:"addr"`

	// Model is the default model for stage execution.
	Model string `yaml:"model"`

	// RoutingModel is the lightweight model for routing decisions and
	// utility calls (compression, extraction). Falls back to Model.
	RoutingModel string `yaml:"routing_model"`

	// Temperature applies when a stage sets none.
	Temperature float32 `yaml:"temperature"`

	// MaxTokens bounds one completion; zero leaves it to the service.
	MaxTokens int `yaml:"max_tokens"`

	// CostPerKiloTokens converts token usage to task cost (RMB).
	CostPerKiloTokens float64 `yaml:"cost_per_kilo_tokens"`

	// APIKey and BaseURL are not used by the engine's own client; they
	// are injected into sandbox containers as LLM_API_KEY/LLM_BASE_URL
	// (plus the OPENAI_* compatibility aliases).
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// DefaultLLMConfig returns LLM defaults.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Addr:              "localhost:50051",
		Model:             "minimax-m2",
		Temperature:       0.2,
		CostPerKiloTokens: 0.01,
	}
}

// UtilityModel returns the model for routing/compression/extraction
// calls: the routing model when set, the default model otherwise.
func (c LLMConfig) UtilityModel() string {
	if c.RoutingModel != "" {
		return c.RoutingModel
	}
	return c.Model
}
