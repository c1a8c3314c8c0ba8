package model

import "time"

// Config holds the full runtime configuration.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	LLM         LLMConfig         `yaml:"llm"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Server      ServerConfig      `yaml:"server"`
	Output      OutputConfig      `yaml:"output"`
}

// HTTPConfig configures URL ingestion.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy"`
}

// LLMConfig configures the semantic classifier. An empty Provider disables
// semantic checking entirely.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "openai", "anthropic", "ollama", ""
	Model     string `yaml:"model"`
	APIKey    string `yaml:"-"` // from env, never serialized
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// CacheConfig configures classifier response caching.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ConcurrencyConfig bounds parallel work.
type ConcurrencyConfig struct {
	SemanticWorkers   int     `yaml:"semantic_workers"`    // parallel classifier calls per job
	RequestsPerSecond float64 `yaml:"requests_per_second"` // classifier rate limit
	Burst             int     `yaml:"burst"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr           string        `yaml:"addr"`
	JobTTL         time.Duration `yaml:"job_ttl"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "ClauseMatch/0.2 (+https://github.com/clausematch/clausematch)",
			MaxBodyBytes: 2_000_000,
		},
		LLM: LLMConfig{
			Provider:  "", // disabled by default
			Timeout:   30,
			MaxTokens: 1000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			SemanticWorkers:   4,
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Server: ServerConfig{
			Addr:           ":8080",
			JobTTL:         24 * time.Hour,
			MaxUploadBytes: 10 << 20,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
