package config

// FeaturesConfig holds the engine's feature toggles and their bounds.
type FeaturesConfig struct {
	// StageContracts enables structured output extraction after each
	// completed stage.
	StageContracts bool `yaml:"stage_contracts"`

	// Conditions enables conditional stage skipping.
	Conditions bool `yaml:"conditions"`

	// DynamicGates inserts a confidence_review gate when a completed
	// stage self-assesses below the threshold.
	DynamicGates bool `yaml:"dynamic_gates"`

	// DynamicGateConfidenceThreshold is the cut-off in [0,1].
	DynamicGateConfidenceThreshold float64 `yaml:"dynamic_gate_confidence_threshold"`

	// DynamicRouting lets a routed stage re-order the remaining work.
	DynamicRouting bool `yaml:"dynamic_routing"`

	// InteractivePlanning pauses interactive templates after the parse
	// stage for plan review.
	InteractivePlanning bool `yaml:"interactive_planning"`

	// GraphExecution switches templates with depends_on to the
	// ready-set driver.
	GraphExecution bool `yaml:"graph_execution"`

	// Compression produces LLM summaries of stage outputs; when off,
	// truncation fallback applies.
	Compression bool `yaml:"compression"`
}

// DefaultFeaturesConfig returns feature defaults: everything the
// template can express is honored, dynamic gates opt in.
func DefaultFeaturesConfig() FeaturesConfig {
	return FeaturesConfig{
		StageContracts:                 true,
		Conditions:                     true,
		DynamicGates:                   false,
		DynamicGateConfidenceThreshold: 0.6,
		DynamicRouting:                 false,
		InteractivePlanning:            true,
		GraphExecution:                 true,
		Compression:                    true,
	}
}
