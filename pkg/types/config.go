package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-scout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// AcemapConfig holds settings for the Acemap search client.
type AcemapConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the API base (default "https://acemap.info/api/v1").
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// RequestsPerSecond throttles outbound calls. Zero disables throttling.
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second" mapstructure:"requests_per_second"`
}

// KGConfig holds settings for the knowledge-graph neighbor index.
type KGConfig struct {
	// DataPath is the triple source: a .db SQLite file or a .csv export.
	// A missing file degrades to an empty index.
	DataPath string `json:"data_path" yaml:"data_path" mapstructure:"data_path"`

	// TopK is the number of neighbor concepts fetched per recall (default 3).
	TopK int `json:"top_k" yaml:"top_k" mapstructure:"top_k"`

	// FallbackFloor is the exact-match count below which the lookup
	// widens to substring containment. Zero means "same as the requested
	// topK"; a negative value disables widening.
	FallbackFloor int `json:"fallback_floor" yaml:"fallback_floor" mapstructure:"fallback_floor"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn, or error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "console" or "json" (default console).
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Acemap  AcemapConfig  `json:"acemap" yaml:"acemap" mapstructure:"acemap"`
	KG      KGConfig      `json:"kg" yaml:"kg" mapstructure:"kg"`
	Logging LoggingConfig `json:"logging" yaml:"logging" mapstructure:"logging"`
}

// DefaultPipelineConfig returns the configuration used when no config file
// overrides are present.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Acemap: AcemapConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   20 * time.Second,
				UserAgent: "paper-scout/0.1",
			},
			BaseURL:           "https://acemap.info/api/v1",
			RequestsPerSecond: 5,
		},
		KG: KGConfig{
			DataPath: "data/gakg-subset.db",
			TopK:     3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
